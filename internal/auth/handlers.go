package auth

import (
	"net/http"

	apperrors "saas-portal-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// SignInRequest represents the sign-in request body
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ana@acme.io"`
	Password string `json:"password" binding:"required" example:"s3cret-pass"`
}

// SignOutResponse represents the response from the sign-out endpoint
type SignOutResponse struct {
	Message string `json:"message" example:"Signed out successfully"`
}

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// SignIn handles POST /api/v1/auth/sign-in
// @Summary Sign in
// @Description Verify email and password and issue a bearer token
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body SignInRequest true "Credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid email or password"
// @Failure 429 {object} map[string]interface{} "Too many requests"
// @Router /api/v1/auth/sign-in [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	token, err := h.service.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if apperrors.IsAuthentication(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign in", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, token)
}

// SignOut handles POST /api/v1/auth/sign-out
// @Summary Sign out
// @Description Revoke the bearer token used for this request
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SignOutResponse
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Router /api/v1/auth/sign-out [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	session, ok := GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	if err := h.service.SignOut(session); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, SignOutResponse{Message: "Signed out successfully"})
}
