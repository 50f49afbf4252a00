package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	apperrors "teampro-backend/internal/errors"
	"teampro-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const proofField = "proof"

// ProgressHandler handles HTTP requests for the progress ledger
type ProgressHandler struct {
	progressService service.ProgressServiceInterface
	maxProofBytes   int64
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(progressService service.ProgressServiceInterface, maxProofBytes int64) *ProgressHandler {
	return &ProgressHandler{
		progressService: progressService,
		maxProofBytes:   maxProofBytes,
	}
}

// AssignMentorBody names the faculty member to assign
type AssignMentorBody struct {
	FacultyID uuid.UUID `json:"faculty_id" binding:"required"`
}

// AssignProblemStatementBody carries either free text or a bank entry
type AssignProblemStatementBody struct {
	Statement string     `json:"statement"`
	BankID    *uuid.UUID `json:"bank_id,omitempty"`
}

// ReviewBody carries a mentor's review of a meeting
type ReviewBody struct {
	Review string `json:"review" binding:"required"`
}

// GetProgress handles GET /teams/:id/progress
// @Summary Get team progress
// @Description Get the team's progress record and meeting ledger
// @Tags progress
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} service.ProgressView
// @Failure 403 {object} ErrorResponse "Not allowed to view team"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/progress [get]
func (h *ProgressHandler) GetProgress(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	teamID, ok := uuidParam(c, "id", "team")
	if !ok {
		return
	}
	view, err := h.progressService.GetProgress(c.Request.Context(), actor, teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// AssignMentor handles PUT /teams/:id/mentor
// @Summary Assign a mentor
// @Description Assign a faculty member of the department as the team's mentor
// @Tags progress
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param mentor body AssignMentorBody true "Faculty member"
// @Success 200 {object} service.Result
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Role or department not allowed"
// @Failure 404 {object} ErrorResponse "Team or faculty not found"
// @Security BearerAuth
// @Router /teams/{id}/mentor [put]
func (h *ProgressHandler) AssignMentor(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	teamID, ok := uuidParam(c, "id", "team")
	if !ok {
		return
	}
	var body AssignMentorBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err.Error())
		return
	}
	res, err := h.progressService.AssignMentor(c.Request.Context(), actor, teamID, body.FacultyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// AssignProblemStatement handles PUT /teams/:id/problem-statement
// @Summary Assign a problem statement
// @Description Assign free text or an entry of the department bank to the team
// @Tags progress
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param statement body AssignProblemStatementBody true "Statement text or bank entry"
// @Success 200 {object} service.Result
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Bank entry already taken"
// @Security BearerAuth
// @Router /teams/{id}/problem-statement [put]
func (h *ProgressHandler) AssignProblemStatement(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	teamID, ok := uuidParam(c, "id", "team")
	if !ok {
		return
	}
	var body AssignProblemStatementBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err.Error())
		return
	}

	var (
		res *service.Result
		err error
	)
	if body.BankID != nil {
		res, err = h.progressService.AssignFromBank(c.Request.Context(), actor, teamID, *body.BankID)
	} else {
		res, err = h.progressService.AssignProblemStatement(c.Request.Context(), actor, teamID, body.Statement)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// AddMeeting handles POST /teams/:id/meetings
// @Summary Record a meeting
// @Description Append a meeting to the team's ledger. Accepts JSON or multipart form data with an optional JPEG proof.
// @Tags progress
// @Accept json,mpfd
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param meeting body service.AddMeetingRequest false "Meeting (JSON)"
// @Param meeting_date formData string false "Meeting date (RFC3339 or YYYY-MM-DD)"
// @Param completion_percentage formData int false "Completion percentage"
// @Param notes formData string false "Notes"
// @Param invitation_id formData string false "Attended invitation ID"
// @Param proof formData file false "JPEG proof image"
// @Success 201 {object} service.Result
// @Failure 400 {object} ErrorResponse "Invalid request or proof"
// @Failure 403 {object} ErrorResponse "Not a team member"
// @Failure 409 {object} ErrorResponse "Completion regressed"
// @Failure 422 {object} ErrorResponse "Mentor or problem statement missing"
// @Security BearerAuth
// @Router /teams/{id}/meetings [post]
func (h *ProgressHandler) AddMeeting(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	teamID, ok := uuidParam(c, "id", "team")
	if !ok {
		return
	}

	var req service.AddMeetingRequest
	if isMultipart(c) {
		if err := h.bindMeetingForm(c, &req); err != nil {
			respondError(c, err)
			return
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	res, err := h.progressService.AddMeeting(c.Request.Context(), actor, teamID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// UpdateMeeting handles PUT /meetings/:id
// @Summary Update a meeting
// @Description Edit a meeting. A completion change is applied only to the latest meeting.
// @Tags progress
// @Accept json,mpfd
// @Produce json
// @Param id path string true "Meeting ID (UUID)"
// @Param meeting body service.UpdateMeetingRequest false "Changes (JSON)"
// @Param proof formData file false "Replacement JPEG proof"
// @Success 200 {object} service.Result
// @Failure 400 {object} ErrorResponse "Invalid request or proof"
// @Failure 403 {object} ErrorResponse "Not a team member"
// @Failure 404 {object} ErrorResponse "Meeting not found"
// @Security BearerAuth
// @Router /meetings/{id} [put]
func (h *ProgressHandler) UpdateMeeting(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	meetingID, ok := uuidParam(c, "id", "meeting")
	if !ok {
		return
	}

	var req service.UpdateMeetingRequest
	if isMultipart(c) {
		if err := h.bindUpdateForm(c, &req); err != nil {
			respondError(c, err)
			return
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	res, err := h.progressService.UpdateMeeting(c.Request.Context(), actor, meetingID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// AddFacultyReview handles PUT /meetings/:id/review
// @Summary Review a meeting
// @Description Attach the mentor's review to a meeting
// @Tags progress
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID (UUID)"
// @Param review body ReviewBody true "Review"
// @Success 200 {object} service.Result
// @Failure 403 {object} ErrorResponse "Not the mentor"
// @Failure 404 {object} ErrorResponse "Meeting not found"
// @Security BearerAuth
// @Router /meetings/{id}/review [put]
func (h *ProgressHandler) AddFacultyReview(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	meetingID, ok := uuidParam(c, "id", "meeting")
	if !ok {
		return
	}
	var body ReviewBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err.Error())
		return
	}
	res, err := h.progressService.AddFacultyReview(c.Request.Context(), actor, meetingID, body.Review)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetProof handles GET /meetings/:id/proof
// @Summary Download meeting proof
// @Description Stream the proof image of a meeting
// @Tags progress
// @Produce jpeg
// @Param id path string true "Meeting ID (UUID)"
// @Success 200 {file} binary "Proof image"
// @Failure 403 {object} ErrorResponse "Not allowed to view team"
// @Failure 404 {object} ErrorResponse "Meeting or proof not found"
// @Security BearerAuth
// @Router /meetings/{id}/proof [get]
func (h *ProgressHandler) GetProof(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	meetingID, ok := uuidParam(c, "id", "meeting")
	if !ok {
		return
	}
	proof, err := h.progressService.GetProof(c.Request.Context(), actor, meetingID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Cache-Control", "private, max-age=300")
	c.Data(http.StatusOK, proof.ContentType, proof.Data)
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

func (h *ProgressHandler) bindMeetingForm(c *gin.Context, req *service.AddMeetingRequest) error {
	date, err := parseFormDate(c.PostForm("meeting_date"))
	if err != nil {
		return err
	}
	req.MeetingDate = date
	if req.CompletionPercentage, err = formInt(c, "completion_percentage"); err != nil {
		return err
	}
	if req.MeetingNumber, err = formInt(c, "meeting_number"); err != nil {
		return err
	}
	req.Notes = c.PostForm("notes")
	if raw := c.PostForm("invitation_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return apperrors.NewValidationError("invitation_id", "must be a UUID")
		}
		req.InvitationID = &id
	}
	req.Proof, req.ProofFilename, err = h.readProof(c)
	return err
}

func (h *ProgressHandler) bindUpdateForm(c *gin.Context, req *service.UpdateMeetingRequest) error {
	if raw, ok := c.GetPostForm("meeting_date"); ok {
		date, err := parseFormDate(raw)
		if err != nil {
			return err
		}
		req.MeetingDate = &date
	}
	if _, ok := c.GetPostForm("completion_percentage"); ok {
		v, err := formInt(c, "completion_percentage")
		if err != nil {
			return err
		}
		req.CompletionPercentage = &v
	}
	if notes, ok := c.GetPostForm("notes"); ok {
		req.Notes = &notes
	}
	var err error
	req.Proof, req.ProofFilename, err = h.readProof(c)
	return err
}

// readProof loads the optional proof file. Reads stop one byte past the limit so the size check still fails.
func (h *ProgressHandler) readProof(c *gin.Context) ([]byte, string, error) {
	header, err := c.FormFile(proofField)
	if err == http.ErrMissingFile {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", apperrors.NewValidationError(proofField, "could not read upload")
	}
	f, err := header.Open()
	if err != nil {
		return nil, "", fmt.Errorf("failed to open proof upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxProofBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read proof upload: %w", err)
	}
	return data, header.Filename, nil
}

func parseFormDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, apperrors.NewValidationError("meeting_date", "is required")
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.NewValidationError("meeting_date", "must be RFC3339 or YYYY-MM-DD")
}

func formInt(c *gin.Context, field string) (int, error) {
	raw := c.PostForm(field)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewValidationError(field, "must be a number")
	}
	return v, nil
}
