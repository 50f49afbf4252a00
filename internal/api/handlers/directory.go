package handlers

import (
	"net/http"

	"teampro-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler handles HTTP requests for student and faculty accounts
type DirectoryHandler struct {
	directoryService service.DirectoryServiceInterface
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(directoryService service.DirectoryServiceInterface) *DirectoryHandler {
	return &DirectoryHandler{
		directoryService: directoryService,
	}
}

// CreateStudent handles POST /students
// @Summary Register a student
// @Description Register a student in the admin's department
// @Tags directory
// @Accept json
// @Produce json
// @Param student body service.CreateStudentRequest true "Student"
// @Success 201 {object} service.Result
// @Failure 400 {object} ErrorResponse "Invalid student"
// @Failure 409 {object} ErrorResponse "Email or registration number taken"
// @Security BearerAuth
// @Router /students [post]
func (h *DirectoryHandler) CreateStudent(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req service.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	res, err := h.directoryService.CreateStudent(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// CreateFaculty handles POST /faculty
// @Summary Register a faculty member
// @Description Register a faculty member in the admin's department
// @Tags directory
// @Accept json
// @Produce json
// @Param faculty body service.CreateFacultyRequest true "Faculty member"
// @Success 201 {object} service.Result
// @Failure 400 {object} ErrorResponse "Invalid faculty member"
// @Failure 409 {object} ErrorResponse "Email or faculty ID taken"
// @Security BearerAuth
// @Router /faculty [post]
func (h *DirectoryHandler) CreateFaculty(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req service.CreateFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	res, err := h.directoryService.CreateFaculty(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// ListFaculty handles GET /faculty
// @Summary List faculty
// @Description List the faculty of the actor's department
// @Tags directory
// @Produce json
// @Success 200 {array} models.Faculty
// @Failure 403 {object} ErrorResponse "Role not allowed"
// @Security BearerAuth
// @Router /faculty [get]
func (h *DirectoryHandler) ListFaculty(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	faculty, err := h.directoryService.ListFaculty(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, faculty)
}
