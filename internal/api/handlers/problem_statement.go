package handlers

import (
	"net/http"
	"strconv"

	"teampro-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProblemStatementHandler handles HTTP requests for the problem statement bank
type ProblemStatementHandler struct {
	problemStatementService service.ProblemStatementServiceInterface
}

// NewProblemStatementHandler creates a new problem statement handler
func NewProblemStatementHandler(problemStatementService service.ProblemStatementServiceInterface) *ProblemStatementHandler {
	return &ProblemStatementHandler{
		problemStatementService: problemStatementService,
	}
}

// List handles GET /problem-statements
// @Summary List the problem statement bank
// @Description List the bank entries of the actor's department
// @Tags problem-statements
// @Produce json
// @Param year query int false "Year filter (1-4)"
// @Param available query bool false "Only unassigned entries"
// @Success 200 {array} models.ProblemStatementBank
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 403 {object} ErrorResponse "Role not allowed"
// @Security BearerAuth
// @Router /problem-statements [get]
func (h *ProblemStatementHandler) List(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var query service.ProblemStatementQuery
	if raw := c.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil || year < 1 || year > 4 {
			badRequest(c, "invalid year parameter")
			return
		}
		query.Year = &year
	}
	if raw := c.Query("available"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			badRequest(c, "invalid available parameter")
			return
		}
		query.OnlyAvailable = v
	}

	entries, err := h.problemStatementService.List(c.Request.Context(), actor, query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Create handles POST /problem-statements
// @Summary Add a problem statement
// @Description Add an entry to the admin's department bank
// @Tags problem-statements
// @Accept json
// @Produce json
// @Param statement body service.ProblemStatementRequest true "Statement"
// @Success 201 {object} service.Result
// @Failure 400 {object} ErrorResponse "Invalid statement"
// @Failure 409 {object} ErrorResponse "Duplicate statement"
// @Security BearerAuth
// @Router /problem-statements [post]
func (h *ProblemStatementHandler) Create(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req service.ProblemStatementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	res, err := h.problemStatementService.Create(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// Update handles PUT /problem-statements/:id
// @Summary Edit a problem statement
// @Description Edit an entry of the admin's department bank
// @Tags problem-statements
// @Accept json
// @Produce json
// @Param id path string true "Bank entry ID (UUID)"
// @Param statement body service.ProblemStatementRequest true "Statement"
// @Success 200 {object} service.Result
// @Failure 403 {object} ErrorResponse "Other department"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 409 {object} ErrorResponse "Duplicate statement"
// @Security BearerAuth
// @Router /problem-statements/{id} [put]
func (h *ProblemStatementHandler) Update(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "problem statement")
	if !ok {
		return
	}
	var req service.ProblemStatementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	res, err := h.problemStatementService.Update(c.Request.Context(), actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Delete handles DELETE /problem-statements/:id
// @Summary Delete a problem statement
// @Description Delete an unassigned entry of the admin's department bank
// @Tags problem-statements
// @Produce json
// @Param id path string true "Bank entry ID (UUID)"
// @Success 200 {object} service.Result
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 409 {object} ErrorResponse "Entry assigned to a team"
// @Security BearerAuth
// @Router /problem-statements/{id} [delete]
func (h *ProblemStatementHandler) Delete(c *gin.Context) {
	runByID(c, "id", "problem statement", http.StatusOK, h.problemStatementService.Delete)
}
