package handlers

import (
	"net/http"

	"saas-portal-backend/internal/auth"
	"saas-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MeHandler serves the caller's own profile and entitlements
type MeHandler struct {
	profileService     service.ProfileServiceInterface
	entitlementService service.EntitlementServiceInterface
}

// NewMeHandler creates a new me handler
func NewMeHandler(profileService service.ProfileServiceInterface, entitlementService service.EntitlementServiceInterface) *MeHandler {
	return &MeHandler{
		profileService:     profileService,
		entitlementService: entitlementService,
	}
}

// GetMe handles GET /api/v1/me
// @Summary Current user
// @Description Get the caller's profile with organization and role
// @Tags me
// @Produce json
// @Success 200 {object} service.MeResponse
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "Profile not found"
// @Security BearerAuth
// @Router /api/v1/me [get]
func (h *MeHandler) GetMe(c *gin.Context) {
	session, _ := auth.GetSession(c)

	me, err := h.profileService.GetMe(c.Request.Context(), session)
	if err != nil {
		respondError(c, err, "Failed to load profile")
		return
	}

	c.JSON(http.StatusOK, me)
}

// GetMyModules handles GET /api/v1/me/modules
// @Summary Organization modules
// @Description List the module keys the caller's organization is licensed for
// @Tags me
// @Produce json
// @Success 200 {object} service.OrganizationModulesResponse
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /api/v1/me/modules [get]
func (h *MeHandler) GetMyModules(c *gin.Context) {
	session, _ := auth.GetSession(c)

	modules, err := h.entitlementService.OrganizationModules(c.Request.Context(), session)
	if err != nil {
		respondError(c, err, "Failed to load modules")
		return
	}

	c.JSON(http.StatusOK, modules)
}
