package handlers

import (
	"net/http"

	"saas-portal-backend/internal/auth"
	"saas-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler serves the super-admin console
type AdminHandler struct {
	entitlementService service.EntitlementServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(entitlementService service.EntitlementServiceInterface) *AdminHandler {
	return &AdminHandler{
		entitlementService: entitlementService,
	}
}

// GetConsole handles GET /api/v1/admin/console
// @Summary Admin console
// @Description Load every organization, the module catalog and the active licenses. Super admins only.
// @Tags admin
// @Produce json
// @Success 200 {object} service.ConsoleResponse
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "Super admin required"
// @Security BearerAuth
// @Router /api/v1/admin/console [get]
func (h *AdminHandler) GetConsole(c *gin.Context) {
	session, _ := auth.GetSession(c)

	console, err := h.entitlementService.LoadConsole(c.Request.Context(), session)
	if err != nil {
		respondError(c, err, "Failed to load console")
		return
	}

	c.JSON(http.StatusOK, console)
}

// ToggleModule handles POST /api/v1/admin/organizations/:id/modules/:key/toggle
// @Summary Toggle a module license
// @Description Activate or deactivate a module for an organization. currently_active is the state the console showed.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param key path string true "Module key"
// @Param request body service.ToggleRequest true "Observed state"
// @Success 200 {object} service.ToggleResponse
// @Failure 400 {object} ErrorResponse "Invalid organization ID or body"
// @Failure 403 {object} ErrorResponse "Super admin required"
// @Failure 404 {object} ErrorResponse "Organization or module not found"
// @Failure 409 {object} ErrorResponse "License already active"
// @Security BearerAuth
// @Router /api/v1/admin/organizations/{id}/modules/{key}/toggle [post]
func (h *AdminHandler) ToggleModule(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid organization ID", err)
		return
	}

	var req service.ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	session, _ := auth.GetSession(c)

	resp, err := h.entitlementService.Toggle(c.Request.Context(), session, orgID, c.Param("key"), *req.CurrentlyActive)
	if err != nil {
		respondError(c, err, "Failed to toggle module")
		return
	}

	c.JSON(http.StatusOK, resp)
}
