package handlers

import (
	"context"
	"net/http"

	"teampro-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FormationHandler handles HTTP requests for team formation
type FormationHandler struct {
	formationService service.FormationServiceInterface
}

// NewFormationHandler creates a new formation handler
func NewFormationHandler(formationService service.FormationServiceInterface) *FormationHandler {
	return &FormationHandler{
		formationService: formationService,
	}
}

// TeamRequestBody names the student a request is sent to
type TeamRequestBody struct {
	ReceiverID uuid.UUID `json:"receiver_id" binding:"required"`
}

// ListSchedules handles GET /formation/schedules
// @Summary List formation schedules
// @Description Get the team formation window of every year in the actor's department
// @Tags formation
// @Produce json
// @Success 200 {array} models.TeamFormationSchedule "Schedules"
// @Failure 403 {object} ErrorResponse "Role not allowed"
// @Security BearerAuth
// @Router /formation/schedules [get]
func (h *FormationHandler) ListSchedules(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	schedules, err := h.formationService.ListSchedules(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedules)
}

// OpenFormation handles POST /formation/schedules/open
// @Summary Open team formation
// @Description Open member selection for a year of the admin's department
// @Tags formation
// @Accept json
// @Produce json
// @Param schedule body service.ScheduleRequest true "Year to open"
// @Success 200 {object} service.Result
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Role not allowed"
// @Security BearerAuth
// @Router /formation/schedules/open [post]
func (h *FormationHandler) OpenFormation(c *gin.Context) {
	h.toggle(c, h.formationService.OpenFormation)
}

// CloseFormation handles POST /formation/schedules/close
// @Summary Close team formation
// @Description Close member selection for a year of the admin's department
// @Tags formation
// @Accept json
// @Produce json
// @Param schedule body service.ScheduleRequest true "Year to close"
// @Success 200 {object} service.Result
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Role not allowed"
// @Security BearerAuth
// @Router /formation/schedules/close [post]
func (h *FormationHandler) CloseFormation(c *gin.Context) {
	h.toggle(c, h.formationService.CloseFormation)
}

func (h *FormationHandler) toggle(c *gin.Context, fn func(ctx context.Context, actor service.ActorContext, req *service.ScheduleRequest) (*service.Result, error)) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req service.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	res, err := fn(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Pool handles GET /formation/pool
// @Summary Student selection pool
// @Description Get the students of the actor's cohort with team and request state
// @Tags formation
// @Produce json
// @Success 200 {object} service.PoolView
// @Failure 403 {object} ErrorResponse "Role not allowed"
// @Failure 422 {object} ErrorResponse "Formation closed"
// @Security BearerAuth
// @Router /formation/pool [get]
func (h *FormationHandler) Pool(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	pool, err := h.formationService.Pool(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pool)
}

// SendRequest handles POST /formation/requests
// @Summary Send a team request
// @Description Ask another student of the same cohort to form a pair team
// @Tags formation
// @Accept json
// @Produce json
// @Param request body TeamRequestBody true "Receiver"
// @Success 201 {object} service.Result
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Already teamed or pending"
// @Security BearerAuth
// @Router /formation/requests [post]
func (h *FormationHandler) SendRequest(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var body TeamRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err.Error())
		return
	}
	res, err := h.formationService.SendRequest(c.Request.Context(), actor, body.ReceiverID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// CancelRequest handles DELETE /formation/requests/to/:receiverId
// @Summary Cancel a team request
// @Description Withdraw the actor's pending request to a student
// @Tags formation
// @Produce json
// @Param receiverId path string true "Receiver student ID (UUID)"
// @Success 200 {object} service.Result
// @Failure 404 {object} ErrorResponse "No pending request"
// @Security BearerAuth
// @Router /formation/requests/to/{receiverId} [delete]
func (h *FormationHandler) CancelRequest(c *gin.Context) {
	runByID(c, "receiverId", "receiver", http.StatusOK, h.formationService.CancelRequest)
}

// AcceptRequest handles POST /formation/requests/:id/accept
// @Summary Accept a team request
// @Description Accept an incoming request and form a pair team
// @Tags formation
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Success 200 {object} service.Result "Team formed"
// @Failure 403 {object} ErrorResponse "Not the receiver"
// @Failure 409 {object} ErrorResponse "Request not pending or already teamed"
// @Security BearerAuth
// @Router /formation/requests/{id}/accept [post]
func (h *FormationHandler) AcceptRequest(c *gin.Context) {
	runByID(c, "id", "request", http.StatusOK, h.formationService.AcceptRequest)
}

// RejectRequest handles POST /formation/requests/:id/reject
// @Summary Reject a team request
// @Description Reject an incoming request
// @Tags formation
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Success 200 {object} service.Result
// @Failure 403 {object} ErrorResponse "Not the receiver"
// @Failure 409 {object} ErrorResponse "Request not pending"
// @Security BearerAuth
// @Router /formation/requests/{id}/reject [post]
func (h *FormationHandler) RejectRequest(c *gin.Context) {
	runByID(c, "id", "request", http.StatusOK, h.formationService.RejectRequest)
}

// GoIndividual handles POST /formation/individual
// @Summary Form an individual team
// @Description Form a single member team for the actor
// @Tags formation
// @Produce json
// @Success 201 {object} service.Result "Team formed"
// @Failure 409 {object} ErrorResponse "Already teamed"
// @Security BearerAuth
// @Router /formation/individual [post]
func (h *FormationHandler) GoIndividual(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	res, err := h.formationService.GoIndividual(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// GetTeam handles GET /teams/:id
// @Summary Get team by ID
// @Description Get a team visible to the actor
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} models.Team
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 403 {object} ErrorResponse "Not allowed to view team"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [get]
func (h *FormationHandler) GetTeam(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "team")
	if !ok {
		return
	}
	team, err := h.formationService.GetTeam(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// GetMyTeam handles GET /teams/me
// @Summary Get my team
// @Description Get the team of the acting student
// @Tags teams
// @Produce json
// @Success 200 {object} models.Team
// @Failure 404 {object} ErrorResponse "Not in a team"
// @Security BearerAuth
// @Router /teams/me [get]
func (h *FormationHandler) GetMyTeam(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	team, err := h.formationService.GetMyTeam(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// ListTeams handles GET /teams
// @Summary List teams
// @Description List the teams of the actor's department, or the mentored teams for faculty
// @Tags teams
// @Produce json
// @Success 200 {array} models.Team
// @Failure 403 {object} ErrorResponse "Role not allowed"
// @Security BearerAuth
// @Router /teams [get]
func (h *FormationHandler) ListTeams(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	teams, err := h.formationService.ListTeams(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Delete a team
// @Description Delete a team with its requests, ledger and invitations
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} service.Result
// @Failure 403 {object} ErrorResponse "Role not allowed"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [delete]
func (h *FormationHandler) DeleteTeam(c *gin.Context) {
	runByID(c, "id", "team", http.StatusOK, h.formationService.DeleteTeam)
}
