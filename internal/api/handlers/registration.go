package handlers

import (
	"net/http"

	"saas-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RegistrationHandler handles public sign-up requests
type RegistrationHandler struct {
	registrationService service.RegistrationServiceInterface
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(registrationService service.RegistrationServiceInterface) *RegistrationHandler {
	return &RegistrationHandler{
		registrationService: registrationService,
	}
}

// Register handles POST /api/v1/auth/register
// @Summary Register
// @Description Create an identity and attach it to an organization. A pending invite for the email wins over the supplied company name.
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body service.RegisterRequest true "Registration data"
// @Success 201 {object} service.RegisterResponse "A new company was registered"
// @Success 200 {object} service.RegisterResponse "Joined an existing team"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 429 {object} ErrorResponse "Too many requests"
// @Failure 503 {object} ErrorResponse "Profile was not provisioned in time"
// @Router /api/v1/auth/register [post]
func (h *RegistrationHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	resp, err := h.registrationService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to register")
		return
	}

	status := http.StatusOK
	if resp.Outcome == service.OutcomeCompanyRegistered {
		status = http.StatusCreated
	}
	c.JSON(status, resp)
}
