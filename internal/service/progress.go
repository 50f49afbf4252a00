package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"teampro-backend/internal/config"
	"teampro-backend/internal/database/models"
	apperrors "teampro-backend/internal/errors"
	"teampro-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgressService maintains each team's meeting ledger and project status
type ProgressService struct {
	core
	strictCompletion bool
	proofMaxBytes    int64
}

// NewProgressService creates a new progress service
func NewProgressService(store *repository.Store, validator *validator.Validate, notifier Notifier, cfg *config.Config) *ProgressService {
	return &ProgressService{
		core:             newCore(store, validator, notifier),
		strictCompletion: cfg.StrictCompletion(),
		proofMaxBytes:    cfg.ProofMaxBytes,
	}
}

// AddMeetingRequest records a meeting in the ledger. MeetingNumber is advisory; the
// server assigns the next number in sequence.
type AddMeetingRequest struct {
	MeetingNumber        int        `json:"meeting_number" validate:"gte=0"`
	MeetingDate          time.Time  `json:"meeting_date" validate:"required"`
	CompletionPercentage int        `json:"completion_percentage" validate:"gte=0,lte=100"`
	Notes                string     `json:"notes" validate:"max=2000"`
	Proof                []byte     `json:"-"`
	ProofFilename        string     `json:"-"`
	InvitationID         *uuid.UUID `json:"invitation_id,omitempty"`
}

// UpdateMeetingRequest edits a meeting; nil fields are left unchanged
type UpdateMeetingRequest struct {
	MeetingDate          *time.Time `json:"meeting_date,omitempty"`
	CompletionPercentage *int       `json:"completion_percentage,omitempty" validate:"omitempty,gte=0,lte=100"`
	Notes                *string    `json:"notes,omitempty" validate:"omitempty,max=2000"`
	Proof                []byte     `json:"-"`
	ProofFilename        string     `json:"-"`
}

// ProgressView is a team's progress with its ledger
type ProgressView struct {
	Team          *models.Team            `json:"team"`
	Progress      *models.ProjectProgress `json:"progress"`
	Meetings      []models.TeamMeeting    `json:"meetings"`
	CanAddMeeting bool                    `json:"can_add_meeting"`
}

// Proof is a stored meeting proof image
type Proof struct {
	Data        []byte
	ContentType string
}

// GetProgress returns the team's progress, creating it on first view and syncing it with the ledger
func (s *ProgressService) GetProgress(ctx context.Context, actor ActorContext, teamID uuid.UUID) (*ProgressView, error) {
	view := &ProgressView{}
	err := s.run(ctx, actor, func(t *tx) error {
		team, err := t.team(teamID)
		if err != nil {
			return err
		}
		progress, err := ensureProgress(t, teamID)
		if err != nil {
			return err
		}
		if err := canViewTeam(actor, team, progress); err != nil {
			return err
		}
		if err := reconcile(t, progress); err != nil {
			return err
		}
		meetings, err := t.Meetings.ListByTeam(teamID)
		if err != nil {
			return fmt.Errorf("failed to list meetings: %w", err)
		}
		view.Team = team
		view.Progress = progress
		view.Meetings = meetings
		view.CanAddMeeting = progress.MeetingsAllowed() && actor.Role == models.RoleStudent
		return nil
	}, repository.TeamLock(teamID))
	if err != nil {
		return nil, err
	}
	return view, nil
}

// ReconcileProgress syncs a team's completion with its latest meeting and re-derives its status
func (s *ProgressService) ReconcileProgress(ctx context.Context, teamID uuid.UUID) (*models.ProjectProgress, error) {
	var progress *models.ProjectProgress
	err := s.store.Transaction(ctx, func(r *repository.Repositories) error {
		t := &tx{Repositories: r}
		var err error
		progress, err = t.Progress.GetByTeamID(teamID)
		if err != nil {
			return notFound(err, apperrors.ErrProjectProgressNotFound, "failed to get progress")
		}
		return reconcile(t, progress)
	}, repository.TeamLock(teamID))
	if err != nil {
		return nil, err
	}
	return progress, nil
}

// AssignMentor assigns a faculty member of the team's department as its mentor
func (s *ProgressService) AssignMentor(ctx context.Context, actor ActorContext, teamID, facultyID uuid.UUID) (*Result, error) {
	if err := actor.require(models.RoleFaculty, models.RoleAdmin); err != nil {
		return nil, err
	}

	var mentor *models.Faculty
	err := s.run(ctx, actor, func(t *tx) error {
		team, err := t.team(teamID)
		if err != nil {
			return err
		}
		if team.Department != actor.Department {
			return apperrors.ErrOtherDepartment
		}
		mentor, err = t.Faculty.GetByID(facultyID)
		if err != nil {
			return notFound(err, apperrors.ErrFacultyNotFound, "failed to get faculty")
		}
		if mentor.Department != team.Department {
			return apperrors.ErrOtherDepartment
		}

		progress, err := ensureProgress(t, teamID)
		if err != nil {
			return err
		}
		progress.AssignedFacultyID = &mentor.ID
		progress.AssignedFaculty = nil
		if err := reconcile(t, progress); err != nil {
			return err
		}
		if err := t.record(teamID, "Mentor Assigned", fmt.Sprintf("Assigned %s as mentor", mentor.FullName)); err != nil {
			return err
		}
		return t.notifyTeam(team, models.NotificationSuccess, "%s has been assigned as your mentor", mentor.FullName)
	}, repository.TeamLock(teamID))
	if err != nil {
		return nil, err
	}

	s.log(ctx, actor).WithFields(map[string]interface{}{"team_id": teamID, "faculty_id": facultyID}).Info("mentor assigned")
	return ok(fmt.Sprintf("%s assigned as mentor", mentor.FullName)), nil
}

// AssignProblemStatement sets a free-text problem statement for the team
func (s *ProgressService) AssignProblemStatement(ctx context.Context, actor ActorContext, teamID uuid.UUID, statement string) (*Result, error) {
	if err := actor.require(models.RoleFaculty, models.RoleAdmin); err != nil {
		return nil, err
	}
	statement = strings.TrimSpace(statement)
	if statement == "" {
		return nil, apperrors.NewValidationError("problem_statement", "problem statement is required")
	}

	err := s.run(ctx, actor, func(t *tx) error {
		team, err := t.team(teamID)
		if err != nil {
			return err
		}
		if team.Department != actor.Department {
			return apperrors.ErrOtherDepartment
		}
		progress, err := ensureProgress(t, teamID)
		if err != nil {
			return err
		}
		if progress.ProblemStatementBankID != nil {
			if err := t.ProblemStatements.ReleaseByTeam(teamID); err != nil {
				return fmt.Errorf("failed to release problem statement: %w", err)
			}
			progress.ProblemStatementBankID = nil
		}
		progress.ProblemStatement = statement
		if err := reconcile(t, progress); err != nil {
			return err
		}
		if err := t.record(teamID, "Problem Statement Assigned", statement); err != nil {
			return err
		}
		return t.notifyTeam(team, models.NotificationSuccess, "A problem statement has been assigned to your team")
	}, repository.TeamLock(teamID))
	if err != nil {
		return nil, err
	}

	return ok("Problem statement assigned"), nil
}

// AssignFromBank assigns an available bank entry of the team's department to the team
func (s *ProgressService) AssignFromBank(ctx context.Context, actor ActorContext, teamID, bankID uuid.UUID) (*Result, error) {
	if err := actor.require(models.RoleFaculty, models.RoleAdmin); err != nil {
		return nil, err
	}

	err := s.run(ctx, actor, func(t *tx) error {
		team, err := t.team(teamID)
		if err != nil {
			return err
		}
		if team.Department != actor.Department {
			return apperrors.ErrOtherDepartment
		}
		entry, err := t.ProblemStatements.GetByID(bankID)
		if err != nil {
			return notFound(err, apperrors.ErrProblemStatementNotFound, "failed to get problem statement")
		}
		if entry.Department != team.Department {
			return apperrors.ErrOtherDepartment
		}
		if entry.IsAssigned && (entry.AssignedTeamID == nil || *entry.AssignedTeamID != teamID) {
			return apperrors.ErrProblemStatementTaken
		}

		if err := t.ProblemStatements.ReleaseByTeam(teamID); err != nil {
			return fmt.Errorf("failed to release problem statement: %w", err)
		}
		entry.IsAssigned = true
		entry.AssignedTeamID = &teamID
		if err := t.ProblemStatements.Update(entry); err != nil {
			return fmt.Errorf("failed to assign problem statement: %w", err)
		}

		progress, err := ensureProgress(t, teamID)
		if err != nil {
			return err
		}
		progress.ProblemStatement = entry.Statement
		progress.ProblemStatementBankID = &entry.ID
		if err := reconcile(t, progress); err != nil {
			return err
		}
		if err := t.record(teamID, "Problem Statement Assigned", entry.Statement); err != nil {
			return err
		}
		return t.notifyTeam(team, models.NotificationSuccess, "A problem statement has been assigned to your team")
	}, repository.TeamLock(teamID), repository.ProblemStatementLock(bankID))
	if err != nil {
		return nil, err
	}

	return ok("Problem statement assigned from bank"), nil
}

// AddMeeting appends a meeting to the acting student's team ledger
func (s *ProgressService) AddMeeting(ctx context.Context, actor ActorContext, teamID uuid.UUID, req *AddMeetingRequest) (*Result, error) {
	if err := actor.require(models.RoleStudent); err != nil {
		return nil, err
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}
	if req.MeetingDate.IsZero() {
		return nil, apperrors.NewValidationError("meeting_date", "meeting date is required")
	}

	var contentType string
	if len(req.Proof) > 0 {
		var err error
		if contentType, err = checkProof(req.Proof, req.ProofFilename, s.proofMaxBytes); err != nil {
			return nil, err
		}
	}

	locks := []string{repository.TeamLock(teamID)}
	if req.InvitationID != nil {
		locks = append(locks, repository.InvitationLock(*req.InvitationID))
	}

	var meeting models.TeamMeeting
	err := s.run(ctx, actor, func(t *tx) error {
		team, err := t.team(teamID)
		if err != nil {
			return err
		}
		if !team.HasMember(actor.ID) {
			return apperrors.ErrNotTeamMember
		}
		progress, err := requirePrerequisites(t, teamID)
		if err != nil {
			return err
		}

		last, err := t.Meetings.MaxMeetingNumber(teamID)
		if err != nil {
			return fmt.Errorf("failed to read meeting numbers: %w", err)
		}
		if last > 0 {
			previous, err := t.Meetings.GetLatest(teamID)
			if err != nil {
				return fmt.Errorf("failed to get latest meeting: %w", err)
			}
			if !s.completionAllowed(previous.CompletionPercentage, req.CompletionPercentage) {
				return apperrors.ErrCompletionRegressed
			}
		}

		meeting = models.TeamMeeting{
			TeamID:               teamID,
			MeetingNumber:        last + 1,
			MeetingDate:          req.MeetingDate,
			CompletionPercentage: req.CompletionPercentage,
			Notes:                strings.TrimSpace(req.Notes),
			ProofImage:           req.Proof,
			ProofContentType:     contentType,
			CreatedByID:          actor.ID,
		}
		if err := t.Meetings.Create(&meeting); err != nil {
			return duplicate(err, apperrors.ErrMeetingNumberCollision, "failed to create meeting")
		}
		if err := reconcile(t, progress); err != nil {
			return err
		}

		details := fmt.Sprintf("Date: %s, Completion: %d%%", meeting.MeetingDate.Format("Jan 02, 2006"), meeting.CompletionPercentage)
		if meeting.HasProof() {
			details += ", Proof uploaded"
		}
		if err := t.record(teamID, fmt.Sprintf("Added Meeting #%d", meeting.MeetingNumber), details); err != nil {
			return err
		}

		if req.InvitationID != nil {
			return closeAttendedInvitation(t, teamID, *req.InvitationID)
		}
		return nil
	}, locks...)
	if err != nil {
		return nil, err
	}

	s.log(ctx, actor).WithFields(map[string]interface{}{"team_id": teamID, "meeting_number": meeting.MeetingNumber}).Info("meeting added")
	return ok(fmt.Sprintf("Meeting #%d added", meeting.MeetingNumber)).
		withMeetingNumber(meeting.MeetingNumber).withID(meeting.ID), nil
}

// UpdateMeeting edits a meeting. A new completion percentage is honoured only on the
// latest meeting; on earlier meetings it is ignored and the stored value is kept.
func (s *ProgressService) UpdateMeeting(ctx context.Context, actor ActorContext, meetingID uuid.UUID, req *UpdateMeetingRequest) (*Result, error) {
	if err := actor.require(models.RoleStudent); err != nil {
		return nil, err
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}

	var contentType string
	if len(req.Proof) > 0 {
		var err error
		if contentType, err = checkProof(req.Proof, req.ProofFilename, s.proofMaxBytes); err != nil {
			return nil, err
		}
	}

	current, err := s.store.Read(ctx).Meetings.GetByID(meetingID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrMeetingNotFound, "failed to get meeting")
	}
	teamID := current.TeamID

	var meeting *models.TeamMeeting
	err = s.run(ctx, actor, func(t *tx) error {
		team, err := t.team(teamID)
		if err != nil {
			return err
		}
		if !team.HasMember(actor.ID) {
			return apperrors.ErrNotTeamMember
		}
		progress, err := requirePrerequisites(t, teamID)
		if err != nil {
			return err
		}
		meeting, err = t.Meetings.GetByID(meetingID)
		if err != nil {
			return notFound(err, apperrors.ErrMeetingNotFound, "failed to get meeting")
		}

		if req.CompletionPercentage != nil {
			last, err := t.Meetings.MaxMeetingNumber(teamID)
			if err != nil {
				return fmt.Errorf("failed to read meeting numbers: %w", err)
			}
			if meeting.MeetingNumber == last {
				previous, err := t.Meetings.GetPrevious(teamID, meeting.MeetingNumber)
				if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("failed to get previous meeting: %w", err)
				}
				if previous != nil && !s.completionAllowed(previous.CompletionPercentage, *req.CompletionPercentage) {
					return apperrors.ErrCompletionRegressed
				}
				meeting.CompletionPercentage = *req.CompletionPercentage
			}
		}
		if req.MeetingDate != nil {
			meeting.MeetingDate = *req.MeetingDate
		}
		if req.Notes != nil {
			meeting.Notes = strings.TrimSpace(*req.Notes)
		}
		if len(req.Proof) > 0 {
			meeting.ProofImage = req.Proof
			meeting.ProofContentType = contentType
		}

		if err := t.Meetings.Update(meeting); err != nil {
			return fmt.Errorf("failed to update meeting: %w", err)
		}
		if err := reconcile(t, progress); err != nil {
			return err
		}
		return t.record(teamID, fmt.Sprintf("Updated Meeting #%d", meeting.MeetingNumber),
			fmt.Sprintf("Date: %s, Completion: %d%%", meeting.MeetingDate.Format("Jan 02, 2006"), meeting.CompletionPercentage))
	}, repository.TeamLock(teamID))
	if err != nil {
		return nil, err
	}

	return ok(fmt.Sprintf("Meeting #%d updated", meeting.MeetingNumber)).
		withMeetingNumber(meeting.MeetingNumber).withID(meeting.ID), nil
}

// AddFacultyReview stores the mentor's review of a meeting
func (s *ProgressService) AddFacultyReview(ctx context.Context, actor ActorContext, meetingID uuid.UUID, review string) (*Result, error) {
	if err := actor.require(models.RoleFaculty); err != nil {
		return nil, err
	}
	review = strings.TrimSpace(review)
	if review == "" {
		return nil, apperrors.NewValidationError("review", "review is required")
	}

	current, err := s.store.Read(ctx).Meetings.GetByID(meetingID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrMeetingNotFound, "failed to get meeting")
	}
	teamID := current.TeamID

	var number int
	err = s.run(ctx, actor, func(t *tx) error {
		team, err := t.team(teamID)
		if err != nil {
			return err
		}
		progress, err := t.Progress.GetByTeamID(teamID)
		if err != nil {
			return notFound(err, apperrors.ErrProjectProgressNotFound, "failed to get progress")
		}
		if progress.AssignedFacultyID == nil || *progress.AssignedFacultyID != actor.ID {
			return apperrors.ErrNotMentor
		}

		meeting, err := t.Meetings.GetByID(meetingID)
		if err != nil {
			return notFound(err, apperrors.ErrMeetingNotFound, "failed to get meeting")
		}
		now := time.Now()
		meeting.FacultyReview = review
		meeting.ReviewedAt = &now
		if err := t.Meetings.Update(meeting); err != nil {
			return fmt.Errorf("failed to save review: %w", err)
		}
		number = meeting.MeetingNumber

		if err := t.record(teamID, fmt.Sprintf("Added Review for Meeting #%d", number), review); err != nil {
			return err
		}
		return t.notifyTeam(team, models.NotificationInfo, "%s reviewed Meeting #%d", actor.Name, number)
	}, repository.TeamLock(teamID))
	if err != nil {
		return nil, err
	}

	return ok(fmt.Sprintf("Review added for Meeting #%d", number)).withMeetingNumber(number), nil
}

// GetProof returns a meeting's proof image
func (s *ProgressService) GetProof(ctx context.Context, actor ActorContext, meetingID uuid.UUID) (*Proof, error) {
	r := s.store.Read(ctx)
	meeting, err := r.Meetings.GetByID(meetingID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrMeetingNotFound, "failed to get meeting")
	}
	team, err := loadTeam(r, meeting.TeamID)
	if err != nil {
		return nil, err
	}
	progress, err := r.Progress.GetByTeamID(meeting.TeamID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	if err := canViewTeam(actor, team, progress); err != nil {
		return nil, err
	}
	if !meeting.HasProof() {
		return nil, apperrors.ErrProofNotFound
	}
	return &Proof{Data: meeting.ProofImage, ContentType: meeting.ProofContentType}, nil
}

// completionAllowed applies the configured monotonicity policy between consecutive meetings
func (s *ProgressService) completionAllowed(previous, next int) bool {
	if s.strictCompletion && previous < 100 {
		return next > previous
	}
	return next >= previous
}

// ensureProgress returns the team's progress row, creating a Not Started one when missing
func ensureProgress(t *tx, teamID uuid.UUID) (*models.ProjectProgress, error) {
	progress, err := t.Progress.GetByTeamID(teamID)
	if err == nil {
		return progress, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	progress = &models.ProjectProgress{TeamID: teamID, Status: models.ProgressStatusNotStarted}
	if err := t.Progress.Create(progress); err != nil {
		return nil, fmt.Errorf("failed to create progress: %w", err)
	}
	return progress, nil
}

// requirePrerequisites loads the progress row and checks mentor and problem statement are set
func requirePrerequisites(t *tx, teamID uuid.UUID) (*models.ProjectProgress, error) {
	progress, err := t.Progress.GetByTeamID(teamID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrPrerequisitesNotMet
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	if !progress.MeetingsAllowed() {
		return nil, apperrors.ErrPrerequisitesNotMet
	}
	return progress, nil
}

// reconcile mirrors the latest meeting's completion into progress and re-derives the status
func reconcile(t *tx, progress *models.ProjectProgress) error {
	latest, err := t.Meetings.GetLatest(progress.TeamID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to get latest meeting: %w", err)
	}
	if latest != nil {
		progress.CompletionPercentage = latest.CompletionPercentage
	}
	progress.Reconcile()
	if err := t.Progress.Update(progress); err != nil {
		return fmt.Errorf("failed to update progress: %w", err)
	}
	return nil
}

// closeAttendedInvitation marks the recording student's slot attended and removes the
// invitation, since the meeting it scheduled is now in the ledger
func closeAttendedInvitation(t *tx, teamID, invitationID uuid.UUID) error {
	invitation, err := t.Invitations.GetByID(invitationID)
	if err != nil {
		return notFound(err, apperrors.ErrInvitationNotFound, "failed to get invitation")
	}
	if invitation.TeamID != teamID {
		return apperrors.ErrInvitationNotFound
	}
	slot := invitation.ResponseFor(t.actor.ID)
	if slot == nil {
		return apperrors.ErrNotParticipant
	}
	*slot = models.ResponseAttended
	invitation.Status = models.InvitationStatusCompleted
	if err := t.Invitations.Update(invitation); err != nil {
		return fmt.Errorf("failed to update invitation: %w", err)
	}
	if err := t.Invitations.Delete(invitation.ID); err != nil {
		return fmt.Errorf("failed to delete invitation: %w", err)
	}
	return nil
}
