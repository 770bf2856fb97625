package handlers

import (
	"net/http"

	"saas-portal-backend/internal/auth"
	"saas-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// ListTeam handles GET /api/v1/team
// @Summary List team
// @Description List the members and pending invites of the caller's organization. Callers without an organization get empty lists.
// @Tags team
// @Produce json
// @Success 200 {object} service.TeamResponse
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /api/v1/team [get]
func (h *TeamHandler) ListTeam(c *gin.Context) {
	session, _ := auth.GetSession(c)

	team, err := h.teamService.ListTeam(c.Request.Context(), session)
	if err != nil {
		respondError(c, err, "Failed to list team")
		return
	}

	c.JSON(http.StatusOK, team)
}

// Invite handles POST /api/v1/team/invites
// @Summary Invite a member
// @Description Invite an email to the caller's organization as a member. Only admins may invite.
// @Tags team
// @Accept json
// @Produce json
// @Param request body service.InviteRequest true "Invite data"
// @Success 201 {object} service.InviteResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "Caller is not an organization admin"
// @Security BearerAuth
// @Router /api/v1/team/invites [post]
func (h *TeamHandler) Invite(c *gin.Context) {
	var req service.InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	session, _ := auth.GetSession(c)

	invite, err := h.teamService.Invite(c.Request.Context(), session, &req)
	if err != nil {
		respondError(c, err, "Failed to create invite")
		return
	}

	c.JSON(http.StatusCreated, invite)
}
