package handlers

import (
	"net/http"

	"teampro-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InvitationHandler handles HTTP requests for meeting invitations
type InvitationHandler struct {
	invitationService service.InvitationServiceInterface
}

// NewInvitationHandler creates a new invitation handler
func NewInvitationHandler(invitationService service.InvitationServiceInterface) *InvitationHandler {
	return &InvitationHandler{
		invitationService: invitationService,
	}
}

// SendInvite handles POST /invitations
// @Summary Invite a team to a meeting
// @Description Send a meeting invitation from the mentor to every member of a team
// @Tags invitations
// @Accept json
// @Produce json
// @Param invitation body service.SendInviteRequest true "Invitation"
// @Success 201 {object} service.Result
// @Failure 400 {object} ErrorResponse "Invalid invitation"
// @Failure 403 {object} ErrorResponse "Not the mentor"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /invitations [post]
func (h *InvitationHandler) SendInvite(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req service.SendInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	res, err := h.invitationService.SendInvite(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// Respond handles POST /invitations/:id/respond
// @Summary Respond to an invitation
// @Description Accept or reject a meeting invitation
// @Tags invitations
// @Accept json
// @Produce json
// @Param id path string true "Invitation ID (UUID)"
// @Param response body service.RespondRequest true "Response"
// @Success 200 {object} service.Result
// @Failure 403 {object} ErrorResponse "Not invited"
// @Failure 409 {object} ErrorResponse "Invitation closed or already attended"
// @Security BearerAuth
// @Router /invitations/{id}/respond [post]
func (h *InvitationHandler) Respond(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "invitation")
	if !ok {
		return
	}
	var req service.RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	res, err := h.invitationService.Respond(c.Request.Context(), actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// MarkAttended handles POST /invitations/:id/attended
// @Summary Mark attendance
// @Description Record that the acting student attended an accepted meeting
// @Tags invitations
// @Produce json
// @Param id path string true "Invitation ID (UUID)"
// @Success 200 {object} service.Result
// @Failure 409 {object} ErrorResponse "Not accepted or already attended"
// @Security BearerAuth
// @Router /invitations/{id}/attended [post]
func (h *InvitationHandler) MarkAttended(c *gin.Context) {
	runByID(c, "id", "invitation", http.StatusOK, h.invitationService.MarkAttended)
}

// Cancel handles POST /invitations/:id/cancel
// @Summary Cancel an invitation
// @Description Cancel an open invitation sent by the acting mentor
// @Tags invitations
// @Produce json
// @Param id path string true "Invitation ID (UUID)"
// @Success 200 {object} service.Result
// @Failure 403 {object} ErrorResponse "Not the host"
// @Failure 409 {object} ErrorResponse "Invitation closed"
// @Security BearerAuth
// @Router /invitations/{id}/cancel [post]
func (h *InvitationHandler) Cancel(c *gin.Context) {
	runByID(c, "id", "invitation", http.StatusOK, h.invitationService.Cancel)
}

// Edit handles PUT /invitations/:id
// @Summary Edit an invitation
// @Description Change the details of an open invitation and reset every response
// @Tags invitations
// @Accept json
// @Produce json
// @Param id path string true "Invitation ID (UUID)"
// @Param details body service.InvitationDetails true "New details"
// @Success 200 {object} service.Result
// @Failure 400 {object} ErrorResponse "Invalid details"
// @Failure 403 {object} ErrorResponse "Not the host"
// @Failure 409 {object} ErrorResponse "Invitation closed"
// @Security BearerAuth
// @Router /invitations/{id} [put]
func (h *InvitationHandler) Edit(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "invitation")
	if !ok {
		return
	}
	var req service.InvitationDetails
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	res, err := h.invitationService.Edit(c.Request.Context(), actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Delete handles DELETE /invitations/:id
// @Summary Delete an invitation
// @Description Delete an invitation sent by the acting mentor
// @Tags invitations
// @Produce json
// @Param id path string true "Invitation ID (UUID)"
// @Success 200 {object} service.Result
// @Failure 403 {object} ErrorResponse "Not the host"
// @Failure 404 {object} ErrorResponse "Invitation not found"
// @Security BearerAuth
// @Router /invitations/{id} [delete]
func (h *InvitationHandler) Delete(c *gin.Context) {
	runByID(c, "id", "invitation", http.StatusOK, h.invitationService.Delete)
}

// ListForTeam handles GET /teams/:id/invitations
// @Summary List a team's invitations
// @Description List the invitations of a team after removing stale closed ones
// @Tags invitations
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {array} models.MeetingInvitation
// @Failure 403 {object} ErrorResponse "Not allowed to view team"
// @Security BearerAuth
// @Router /teams/{id}/invitations [get]
func (h *InvitationHandler) ListForTeam(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	teamID, ok := uuidParam(c, "id", "team")
	if !ok {
		return
	}
	invitations, err := h.invitationService.ListForTeam(c.Request.Context(), actor, teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invitations)
}

// ListForFaculty handles GET /invitations
// @Summary List my sent invitations
// @Description List the invitations sent by the acting mentor
// @Tags invitations
// @Produce json
// @Success 200 {array} models.MeetingInvitation
// @Failure 403 {object} ErrorResponse "Role not allowed"
// @Security BearerAuth
// @Router /invitations [get]
func (h *InvitationHandler) ListForFaculty(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	invitations, err := h.invitationService.ListForFaculty(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invitations)
}
