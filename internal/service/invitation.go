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

const defaultMeetingDuration = 60

// InvitationScope selects the invitations a staleness sweep covers
type InvitationScope string

const (
	ScopeTeam    InvitationScope = "team_id"
	ScopeFaculty InvitationScope = "faculty_id"
)

// InvitationService runs the faculty meeting invitation protocol
type InvitationService struct {
	core
	staleAfter time.Duration
	now        func() time.Time
}

// NewInvitationService creates a new invitation service
func NewInvitationService(store *repository.Store, validator *validator.Validate, notifier Notifier, cfg *config.Config) *InvitationService {
	return &InvitationService{
		core:       newCore(store, validator, notifier),
		staleAfter: cfg.InvitationStaleAfter,
		now:        time.Now,
	}
}

// InvitationDetails are the editable fields of an invitation
type InvitationDetails struct {
	Title           string    `json:"title" validate:"required,max=200"`
	Description     string    `json:"description" validate:"max=1000"`
	MeetingDateTime time.Time `json:"meeting_date_time" validate:"required"`
	Location        string    `json:"location" validate:"max=200"`
	DurationMinutes int       `json:"duration_minutes" validate:"omitempty,min=15,max=480"`
}

// SendInviteRequest invites a team to a meeting
type SendInviteRequest struct {
	TeamID uuid.UUID `json:"team_id" validate:"required"`
	InvitationDetails
}

// RespondRequest carries a student's answer to an invitation
type RespondRequest struct {
	Response models.InvitationResponse `json:"response" validate:"required,oneof=Accepted Rejected"`
}

// SendInvite creates an invitation from the team's mentor with a Pending slot per member
func (s *InvitationService) SendInvite(ctx context.Context, actor ActorContext, req *SendInviteRequest) (*Result, error) {
	if err := actor.require(models.RoleFaculty); err != nil {
		return nil, err
	}
	if err := s.checkDetails(&req.InvitationDetails); err != nil {
		return nil, err
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}

	var invitation models.MeetingInvitation
	err := s.run(ctx, actor, func(t *tx) error {
		team, err := t.team(req.TeamID)
		if err != nil {
			return err
		}
		if err := requireMentor(t, team.ID, actor.ID); err != nil {
			return err
		}

		invitation = models.MeetingInvitation{
			TeamID:           team.ID,
			FacultyID:        actor.ID,
			Student1ID:       team.Student1ID,
			Student1Response: models.ResponsePending,
			Status:           models.InvitationStatusPending,
		}
		applyDetails(&invitation, &req.InvitationDetails)
		if team.Student2ID != nil {
			pending := models.ResponsePending
			invitation.Student2ID = team.Student2ID
			invitation.Student2Response = &pending
		}
		if err := t.Invitations.Create(&invitation); err != nil {
			return fmt.Errorf("failed to create invitation: %w", err)
		}

		when := invitation.MeetingDateTime.Format("Jan 02, 2006 15:04")
		if err := t.record(team.ID, "Meeting Invitation Sent", fmt.Sprintf("%s on %s", invitation.Title, when)); err != nil {
			return err
		}
		return t.notifyTeam(team, models.NotificationInfo, "%s invited your team to \"%s\" on %s", actor.Name, invitation.Title, when)
	}, repository.TeamLock(req.TeamID))
	if err != nil {
		return nil, err
	}

	s.log(ctx, actor).WithFields(map[string]interface{}{"team_id": req.TeamID, "invitation_id": invitation.ID}).Info("meeting invitation sent")
	return ok("Meeting invitation sent").withID(invitation.ID), nil
}

// Respond records the acting student's answer on their slot and re-derives the aggregate status
func (s *InvitationService) Respond(ctx context.Context, actor ActorContext, invitationID uuid.UUID, req *RespondRequest) (*Result, error) {
	if err := actor.require(models.RoleStudent); err != nil {
		return nil, err
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}

	err := s.run(ctx, actor, func(t *tx) error {
		invitation, err := t.Invitations.GetByID(invitationID)
		if err != nil {
			return notFound(err, apperrors.ErrInvitationNotFound, "failed to get invitation")
		}
		slot := invitation.ResponseFor(actor.ID)
		if slot == nil {
			return apperrors.ErrNotParticipant
		}
		if invitation.Status != models.InvitationStatusPending && invitation.Status != models.InvitationStatusAccepted {
			return apperrors.ErrInvitationClosed
		}
		if *slot == models.ResponseAttended {
			return apperrors.ErrAlreadyAttended
		}

		*slot = req.Response
		invitation.Recompute()
		if err := t.Invitations.Update(invitation); err != nil {
			return fmt.Errorf("failed to update invitation: %w", err)
		}

		return t.record(invitation.TeamID, fmt.Sprintf("Invitation %s", req.Response),
			fmt.Sprintf("%s %s \"%s\"", actor.Name, strings.ToLower(string(req.Response)), invitation.Title))
	}, repository.InvitationLock(invitationID))
	if err != nil {
		return nil, err
	}

	return ok(fmt.Sprintf("Invitation %s", strings.ToLower(string(req.Response)))).withID(invitationID), nil
}

// MarkAttended moves the acting student's Accepted slot to Attended, completing the invitation
func (s *InvitationService) MarkAttended(ctx context.Context, actor ActorContext, invitationID uuid.UUID) (*Result, error) {
	if err := actor.require(models.RoleStudent); err != nil {
		return nil, err
	}

	err := s.run(ctx, actor, func(t *tx) error {
		invitation, err := t.Invitations.GetByID(invitationID)
		if err != nil {
			return notFound(err, apperrors.ErrInvitationNotFound, "failed to get invitation")
		}
		slot := invitation.ResponseFor(actor.ID)
		if slot == nil {
			return apperrors.ErrNotParticipant
		}
		if invitation.Status == models.InvitationStatusRejected || invitation.Status == models.InvitationStatusCancelled {
			return apperrors.ErrInvitationClosed
		}
		switch *slot {
		case models.ResponseAttended:
			return apperrors.ErrAlreadyAttended
		case models.ResponseAccepted:
		default:
			return apperrors.ErrResponseNotAccepted
		}

		*slot = models.ResponseAttended
		invitation.Recompute()
		if err := t.Invitations.Update(invitation); err != nil {
			return fmt.Errorf("failed to update invitation: %w", err)
		}
		return t.record(invitation.TeamID, "Meeting Attended", fmt.Sprintf("%s attended \"%s\"", actor.Name, invitation.Title))
	}, repository.InvitationLock(invitationID))
	if err != nil {
		return nil, err
	}

	return ok("Attendance recorded").withID(invitationID), nil
}

// Cancel closes an invitation on behalf of the faculty member who sent it
func (s *InvitationService) Cancel(ctx context.Context, actor ActorContext, invitationID uuid.UUID) (*Result, error) {
	if err := actor.require(models.RoleFaculty); err != nil {
		return nil, err
	}

	err := s.run(ctx, actor, func(t *tx) error {
		invitation, team, err := s.hostedInvitation(t, invitationID)
		if err != nil {
			return err
		}
		switch invitation.Status {
		case models.InvitationStatusCancelled, models.InvitationStatusCompleted, models.InvitationStatusAddedToProgress:
			return apperrors.ErrInvitationClosed
		}

		invitation.Status = models.InvitationStatusCancelled
		if err := t.Invitations.Update(invitation); err != nil {
			return fmt.Errorf("failed to cancel invitation: %w", err)
		}
		if err := t.record(team.ID, "Meeting Invitation Cancelled", invitation.Title); err != nil {
			return err
		}
		return t.notifyTeam(team, models.NotificationWarning, "The meeting \"%s\" has been cancelled", invitation.Title)
	}, repository.InvitationLock(invitationID))
	if err != nil {
		return nil, err
	}

	return ok("Meeting invitation cancelled").withID(invitationID), nil
}

// Edit changes an open invitation's details and resets every slot to Pending
func (s *InvitationService) Edit(ctx context.Context, actor ActorContext, invitationID uuid.UUID, req *InvitationDetails) (*Result, error) {
	if err := actor.require(models.RoleFaculty); err != nil {
		return nil, err
	}
	if err := s.checkDetails(req); err != nil {
		return nil, err
	}

	err := s.run(ctx, actor, func(t *tx) error {
		invitation, team, err := s.hostedInvitation(t, invitationID)
		if err != nil {
			return err
		}
		if invitation.Status != models.InvitationStatusPending && invitation.Status != models.InvitationStatusAccepted {
			return apperrors.ErrInvitationClosed
		}

		applyDetails(invitation, req)
		invitation.ResetResponses()
		if err := t.Invitations.Update(invitation); err != nil {
			return fmt.Errorf("failed to update invitation: %w", err)
		}

		when := invitation.MeetingDateTime.Format("Jan 02, 2006 15:04")
		if err := t.record(team.ID, "Meeting Invitation Updated", fmt.Sprintf("%s on %s", invitation.Title, when)); err != nil {
			return err
		}
		return t.notifyTeam(team, models.NotificationInfo, "The meeting \"%s\" was rescheduled to %s, please respond again", invitation.Title, when)
	}, repository.InvitationLock(invitationID))
	if err != nil {
		return nil, err
	}

	return ok("Meeting invitation updated").withID(invitationID), nil
}

// Delete removes an invitation on behalf of the faculty member who sent it
func (s *InvitationService) Delete(ctx context.Context, actor ActorContext, invitationID uuid.UUID) (*Result, error) {
	if err := actor.require(models.RoleFaculty); err != nil {
		return nil, err
	}

	err := s.run(ctx, actor, func(t *tx) error {
		invitation, team, err := s.hostedInvitation(t, invitationID)
		if err != nil {
			return err
		}
		if err := t.notifyTeam(team, models.NotificationWarning, "The meeting \"%s\" has been removed", invitation.Title); err != nil {
			return err
		}
		if err := t.Invitations.Delete(invitation.ID); err != nil {
			return fmt.Errorf("failed to delete invitation: %w", err)
		}
		return t.record(team.ID, "Meeting Invitation Deleted", invitation.Title)
	}, repository.InvitationLock(invitationID))
	if err != nil {
		return nil, err
	}

	return ok("Meeting invitation deleted"), nil
}

// ListForTeam sweeps the team's stale invitations and returns the rest
func (s *InvitationService) ListForTeam(ctx context.Context, actor ActorContext, teamID uuid.UUID) ([]models.MeetingInvitation, error) {
	r := s.store.Read(ctx)
	team, err := loadTeam(r, teamID)
	if err != nil {
		return nil, err
	}
	progress, err := r.Progress.GetByTeamID(teamID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	if err := canViewTeam(actor, team, progress); err != nil {
		return nil, err
	}

	if _, err := s.SweepStaleInvitations(ctx, ScopeTeam, teamID); err != nil {
		return nil, err
	}
	invitations, err := r.Invitations.ListByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	return invitations, nil
}

// ListForFaculty sweeps the acting faculty member's stale invitations and returns the rest
func (s *InvitationService) ListForFaculty(ctx context.Context, actor ActorContext) ([]models.MeetingInvitation, error) {
	if err := actor.require(models.RoleFaculty); err != nil {
		return nil, err
	}
	if _, err := s.SweepStaleInvitations(ctx, ScopeFaculty, actor.ID); err != nil {
		return nil, err
	}
	invitations, err := s.store.Read(ctx).Invitations.ListByFaculty(actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	return invitations, nil
}

// SweepStaleInvitations deletes finished invitations in scope, and rejected or cancelled
// ones not touched within the staleness window. It is idempotent.
func (s *InvitationService) SweepStaleInvitations(ctx context.Context, scope InvitationScope, id uuid.UUID) (int64, error) {
	switch scope {
	case ScopeTeam, ScopeFaculty:
	default:
		return 0, apperrors.NewValidationError("scope", "unknown invitation scope")
	}

	var removed int64
	err := s.store.Transaction(ctx, func(r *repository.Repositories) error {
		var err error
		removed, err = r.Invitations.SweepStale(string(scope), id, s.now().Add(-s.staleAfter))
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to sweep invitations: %w", err)
	}
	if removed > 0 {
		s.log(ctx, ActorContext{}).WithFields(map[string]interface{}{"scope": string(scope), "id": id, "removed": removed}).Info("stale invitations swept")
	}
	return removed, nil
}

// hostedInvitation loads an invitation and its team, checking the actor sent it
func (s *InvitationService) hostedInvitation(t *tx, invitationID uuid.UUID) (*models.MeetingInvitation, *models.Team, error) {
	invitation, err := t.Invitations.GetByID(invitationID)
	if err != nil {
		return nil, nil, notFound(err, apperrors.ErrInvitationNotFound, "failed to get invitation")
	}
	if invitation.FacultyID != t.actor.ID {
		return nil, nil, apperrors.ErrNotInvitationHost
	}
	team, err := t.team(invitation.TeamID)
	if err != nil {
		return nil, nil, err
	}
	return invitation, team, nil
}

// checkDetails validates invitation details and defaults the duration
func (s *InvitationService) checkDetails(d *InvitationDetails) error {
	d.Title = strings.TrimSpace(d.Title)
	if d.DurationMinutes == 0 {
		d.DurationMinutes = defaultMeetingDuration
	}
	if err := s.validate(d); err != nil {
		return err
	}
	if !d.MeetingDateTime.After(s.now()) {
		return apperrors.NewValidationError("meeting_date_time", "meeting must be scheduled in the future")
	}
	return nil
}

func applyDetails(invitation *models.MeetingInvitation, d *InvitationDetails) {
	invitation.Title = d.Title
	invitation.Description = strings.TrimSpace(d.Description)
	invitation.MeetingDateTime = d.MeetingDateTime
	invitation.Location = strings.TrimSpace(d.Location)
	invitation.DurationMinutes = d.DurationMinutes
}

// requireMentor checks the faculty member is the team's assigned mentor
func requireMentor(t *tx, teamID, facultyID uuid.UUID) error {
	progress, err := t.Progress.GetByTeamID(teamID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotMentor
	}
	if err != nil {
		return fmt.Errorf("failed to get progress: %w", err)
	}
	if progress.AssignedFacultyID == nil || *progress.AssignedFacultyID != facultyID {
		return apperrors.ErrNotMentor
	}
	return nil
}
