package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"teampro-backend/internal/database/models"
	apperrors "teampro-backend/internal/errors"
	"teampro-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Years for which a department keeps a formation schedule
const (
	minYear = 1
	maxYear = 4
)

// FormationService runs the mutual-consent team formation protocol
type FormationService struct {
	core
}

// NewFormationService creates a new formation service
func NewFormationService(store *repository.Store, validator *validator.Validate, notifier Notifier) *FormationService {
	return &FormationService{core: newCore(store, validator, notifier)}
}

// ScheduleRequest selects the year whose formation gate is toggled
type ScheduleRequest struct {
	Year int `json:"year" validate:"required,min=1,max=4"`
}

// PoolEntry is one candidate teammate in the student pool
type PoolEntry struct {
	Student                 models.Student `json:"student"`
	IsInTeam                bool           `json:"is_in_team"`
	HasPendingRequestFromMe bool           `json:"has_pending_request_from_me"`
}

// PoolView is what a student sees while choosing a teammate
type PoolView struct {
	Students         []PoolEntry          `json:"students"`
	Incoming         []models.TeamRequest `json:"incoming_requests"`
	MyPendingRequest *models.TeamRequest  `json:"my_pending_request,omitempty"`
	IsInTeam         bool                 `json:"is_in_team"`
}

// ListSchedules returns the department's schedules for every year, creating closed ones where missing
func (s *FormationService) ListSchedules(ctx context.Context, actor ActorContext) ([]models.TeamFormationSchedule, error) {
	if err := actor.require(models.RoleAdmin); err != nil {
		return nil, err
	}

	var schedules []models.TeamFormationSchedule
	err := s.run(ctx, actor, func(t *tx) error {
		existing, err := t.Schedules.ListByDepartment(actor.Department)
		if err != nil {
			return fmt.Errorf("failed to list schedules: %w", err)
		}
		byYear := make(map[int]models.TeamFormationSchedule, len(existing))
		for _, sc := range existing {
			byYear[sc.Year] = sc
		}
		for year := minYear; year <= maxYear; year++ {
			sc, found := byYear[year]
			if !found {
				sc = models.TeamFormationSchedule{Department: actor.Department, Year: year}
				if err := t.Schedules.Create(&sc); err != nil {
					return fmt.Errorf("failed to create schedule: %w", err)
				}
			}
			schedules = append(schedules, sc)
		}
		return nil
	}, repository.LockTeamFormation)
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

// OpenFormation opens the student pool of the admin's department for a year
func (s *FormationService) OpenFormation(ctx context.Context, actor ActorContext, req *ScheduleRequest) (*Result, error) {
	return s.toggleFormation(ctx, actor, req, true)
}

// CloseFormation closes the student pool of the admin's department for a year
func (s *FormationService) CloseFormation(ctx context.Context, actor ActorContext, req *ScheduleRequest) (*Result, error) {
	return s.toggleFormation(ctx, actor, req, false)
}

func (s *FormationService) toggleFormation(ctx context.Context, actor ActorContext, req *ScheduleRequest, open bool) (*Result, error) {
	if err := actor.require(models.RoleAdmin); err != nil {
		return nil, err
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}

	now := time.Now()
	err := s.run(ctx, actor, func(t *tx) error {
		schedule, err := t.Schedules.Get(actor.Department, req.Year)
		create := errors.Is(err, gorm.ErrRecordNotFound)
		if err != nil && !create {
			return fmt.Errorf("failed to get schedule: %w", err)
		}
		if create {
			schedule = &models.TeamFormationSchedule{Department: actor.Department, Year: req.Year}
		}

		schedule.IsOpen = open
		schedule.UpdatedByName = actor.Name
		if open {
			schedule.OpenedAt = &now
		} else {
			schedule.ClosedAt = &now
		}

		if create {
			err = t.Schedules.Create(schedule)
		} else {
			err = t.Schedules.Update(schedule)
		}
		if err != nil {
			return fmt.Errorf("failed to save schedule: %w", err)
		}
		return nil
	}, repository.LockTeamFormation)
	if err != nil {
		return nil, err
	}

	state := "closed"
	if open {
		state = "opened"
	}
	s.log(ctx, actor).WithFields(map[string]interface{}{"department": actor.Department, "year": req.Year}).
		Infof("team formation %s", state)
	return ok(fmt.Sprintf("Team formation %s for year %d", state, req.Year)), nil
}

// IsFormationOpen reports whether the pool is open for a department and year
func (s *FormationService) IsFormationOpen(ctx context.Context, department string, year int) (bool, error) {
	schedule, err := s.store.Read(ctx).Schedules.Get(department, year)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get schedule: %w", err)
	}
	return schedule.IsOpen, nil
}

// Pool lists the student's cohort while the formation gate for the cohort is open
func (s *FormationService) Pool(ctx context.Context, actor ActorContext) (*PoolView, error) {
	if err := actor.require(models.RoleStudent); err != nil {
		return nil, err
	}
	r := s.store.Read(ctx)

	me, err := r.Students.GetByID(actor.ID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrStudentNotFound, "failed to get student")
	}
	open, err := s.IsFormationOpen(ctx, me.Department, me.Year)
	if err != nil {
		return nil, err
	}
	if !open {
		return nil, apperrors.ErrFormationClosed
	}

	cohort, err := r.Students.ListByCohort(me.Department, me.Year, me.Semester)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	ids := make([]uuid.UUID, 0, len(cohort))
	for _, st := range cohort {
		ids = append(ids, st.ID)
	}
	teamed, err := r.Teams.TeamedStudentIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to check teams: %w", err)
	}

	view := &PoolView{IsInTeam: teamed[me.ID]}
	pending, err := r.Requests.GetPendingBySender(me.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get pending request: %w", err)
	}
	if err == nil {
		view.MyPendingRequest = pending
	}

	for _, st := range cohort {
		if st.ID == me.ID {
			continue
		}
		view.Students = append(view.Students, PoolEntry{
			Student:                 st,
			IsInTeam:                teamed[st.ID],
			HasPendingRequestFromMe: pending != nil && pending.ReceiverID == st.ID,
		})
	}

	view.Incoming, err = r.Requests.ListPendingForReceiver(me.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incoming requests: %w", err)
	}
	return view, nil
}

// SendRequest creates a pending request from the acting student to another student
func (s *FormationService) SendRequest(ctx context.Context, actor ActorContext, receiverID uuid.UUID) (*Result, error) {
	if err := actor.require(models.RoleStudent); err != nil {
		return nil, err
	}
	if receiverID == uuid.Nil {
		return nil, apperrors.NewValidationError("receiver_id", "receiver is required")
	}
	if receiverID == actor.ID {
		return nil, apperrors.NewValidationError("receiver_id", "you cannot send a request to yourself")
	}

	var request models.TeamRequest
	var receiver *models.Student
	err := s.run(ctx, actor, func(t *tx) error {
		if _, err := t.Students.GetByID(actor.ID); err != nil {
			return notFound(err, apperrors.ErrStudentNotFound, "failed to get sender")
		}
		var err error
		receiver, err = t.Students.GetByID(receiverID)
		if err != nil {
			return notFound(err, apperrors.ErrStudentNotFound, "failed to get receiver")
		}

		if _, err := t.Requests.GetPendingBySender(actor.ID); err == nil {
			return apperrors.ErrAlreadyPending
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check pending requests: %w", err)
		}

		if teamed, err := t.Teams.IsStudentTeamed(actor.ID); err != nil {
			return fmt.Errorf("failed to check sender team: %w", err)
		} else if teamed {
			return apperrors.ErrAlreadyTeamed
		}
		if teamed, err := t.Teams.IsStudentTeamed(receiverID); err != nil {
			return fmt.Errorf("failed to check receiver team: %w", err)
		} else if teamed {
			return apperrors.ErrReceiverAlreadyTeamed
		}

		request = models.TeamRequest{
			SenderID:   actor.ID,
			ReceiverID: receiverID,
			Status:     models.RequestStatusPending,
		}
		if err := t.Requests.Create(&request); err != nil {
			return duplicate(err, apperrors.ErrAlreadyPending, "failed to create team request")
		}
		return t.notify(receiverID, models.NotificationInfo, "%s sent you a team request", actor.Name)
	}, repository.LockTeamFormation)
	if err != nil {
		return nil, err
	}

	s.log(ctx, actor).WithField("receiver_id", receiverID).Info("team request sent")
	return ok(fmt.Sprintf("Team request sent to %s", receiver.FullName)).withID(request.ID), nil
}

// CancelRequest withdraws the acting student's pending request to the receiver
func (s *FormationService) CancelRequest(ctx context.Context, actor ActorContext, receiverID uuid.UUID) (*Result, error) {
	if err := actor.require(models.RoleStudent); err != nil {
		return nil, err
	}

	err := s.run(ctx, actor, func(t *tx) error {
		request, err := t.Requests.GetPendingBetween(actor.ID, receiverID)
		if err != nil {
			return notFound(err, apperrors.ErrTeamRequestNotFound, "failed to get team request")
		}
		if err := t.Requests.Delete(request.ID); err != nil {
			return fmt.Errorf("failed to delete team request: %w", err)
		}
		return nil
	}, repository.LockTeamFormation)
	if err != nil {
		return nil, err
	}

	return ok("Team request cancelled"), nil
}

// AcceptRequest forms a team from a pending request addressed to the acting student.
// When the sender has joined another team in the meantime the request is discarded.
func (s *FormationService) AcceptRequest(ctx context.Context, actor ActorContext, requestID uuid.UUID) (*Result, error) {
	if err := actor.require(models.RoleStudent); err != nil {
		return nil, err
	}

	var team models.Team
	senderTeamed := false
	err := s.run(ctx, actor, func(t *tx) error {
		request, err := t.Requests.GetByID(requestID)
		if err != nil {
			return notFound(err, apperrors.ErrTeamRequestNotFound, "failed to get team request")
		}
		if request.ReceiverID != actor.ID {
			return apperrors.ErrNotRequestOwner
		}
		if request.Status != models.RequestStatusPending {
			return apperrors.ErrRequestNotPending
		}

		if teamed, err := t.Teams.IsStudentTeamed(actor.ID); err != nil {
			return fmt.Errorf("failed to check receiver team: %w", err)
		} else if teamed {
			return apperrors.ErrAlreadyTeamed
		}
		if teamed, err := t.Teams.IsStudentTeamed(request.SenderID); err != nil {
			return fmt.Errorf("failed to check sender team: %w", err)
		} else if teamed {
			senderTeamed = true
			if err := t.Requests.Delete(request.ID); err != nil {
				return fmt.Errorf("failed to discard team request: %w", err)
			}
			return nil
		}

		sender, err := t.Students.GetByID(request.SenderID)
		if err != nil {
			return notFound(err, apperrors.ErrStudentNotFound, "failed to get sender")
		}
		number, err := nextTeamNumber(t)
		if err != nil {
			return err
		}

		receiverID := actor.ID
		team = models.Team{
			TeamNumber: number,
			Student1ID: sender.ID,
			Student2ID: &receiverID,
			Department: sender.Department,
			Year:       sender.Year,
		}
		if err := t.Teams.Create(&team); err != nil {
			return duplicate(err, apperrors.ErrAlreadyTeamed, "failed to create team")
		}

		now := time.Now()
		request.Status = models.RequestStatusAccepted
		request.RespondedAt = &now
		if err := t.Requests.Update(request); err != nil {
			return fmt.Errorf("failed to update team request: %w", err)
		}
		// The receiver's own outgoing request can no longer be honoured
		if _, err := t.Requests.DeletePendingBySender(actor.ID); err != nil {
			return fmt.Errorf("failed to clear receiver requests: %w", err)
		}

		if err := t.record(team.ID, "Team Formed",
			fmt.Sprintf("Team #%d formed by %s and %s", number, sender.FullName, actor.Name)); err != nil {
			return err
		}
		return t.notify(sender.ID, models.NotificationSuccess,
			"%s accepted your team request. You are now Team #%d", actor.Name, number)
	}, repository.LockTeamFormation)
	if err != nil {
		return nil, err
	}
	if senderTeamed {
		return nil, apperrors.ErrSenderAlreadyTeamed
	}

	s.log(ctx, actor).WithField("team_number", team.TeamNumber).Info("team formed")
	return ok(fmt.Sprintf("Team #%d created", team.TeamNumber)).
		withTeamNumber(team.TeamNumber).withID(team.ID), nil
}

// RejectRequest declines a pending request addressed to the acting student
func (s *FormationService) RejectRequest(ctx context.Context, actor ActorContext, requestID uuid.UUID) (*Result, error) {
	if err := actor.require(models.RoleStudent); err != nil {
		return nil, err
	}

	err := s.run(ctx, actor, func(t *tx) error {
		request, err := t.Requests.GetByID(requestID)
		if err != nil {
			return notFound(err, apperrors.ErrTeamRequestNotFound, "failed to get team request")
		}
		if request.ReceiverID != actor.ID {
			return apperrors.ErrNotRequestOwner
		}
		if request.Status != models.RequestStatusPending {
			return apperrors.ErrRequestNotPending
		}

		now := time.Now()
		request.Status = models.RequestStatusRejected
		request.RespondedAt = &now
		if err := t.Requests.Update(request); err != nil {
			return fmt.Errorf("failed to update team request: %w", err)
		}
		return t.notify(request.SenderID, models.NotificationDanger, "%s declined your team request", actor.Name)
	}, repository.LockTeamFormation)
	if err != nil {
		return nil, err
	}

	return ok("Team request rejected"), nil
}

// GoIndividual registers the acting student as a one-person team
func (s *FormationService) GoIndividual(ctx context.Context, actor ActorContext) (*Result, error) {
	if err := actor.require(models.RoleStudent); err != nil {
		return nil, err
	}

	var team models.Team
	err := s.run(ctx, actor, func(t *tx) error {
		me, err := t.Students.GetByID(actor.ID)
		if err != nil {
			return notFound(err, apperrors.ErrStudentNotFound, "failed to get student")
		}
		if teamed, err := t.Teams.IsStudentTeamed(me.ID); err != nil {
			return fmt.Errorf("failed to check team: %w", err)
		} else if teamed {
			return apperrors.ErrAlreadyTeamed
		}

		if _, err := t.Requests.DeletePendingBySender(me.ID); err != nil {
			return fmt.Errorf("failed to delete sent requests: %w", err)
		}
		rejected, err := t.Requests.RejectPendingForReceiver(me.ID, time.Now())
		if err != nil {
			return fmt.Errorf("failed to reject received requests: %w", err)
		}
		for _, req := range rejected {
			if err := t.notify(req.SenderID, models.NotificationWarning,
				"%s chose to work individually and declined your team request", me.FullName); err != nil {
				return err
			}
		}

		number, err := nextTeamNumber(t)
		if err != nil {
			return err
		}
		team = models.Team{
			TeamNumber:   number,
			Student1ID:   me.ID,
			IsIndividual: true,
			Department:   me.Department,
			Year:         me.Year,
		}
		if err := t.Teams.Create(&team); err != nil {
			return duplicate(err, apperrors.ErrAlreadyTeamed, "failed to create team")
		}
		return t.record(team.ID, "Registered as Individual",
			fmt.Sprintf("Team #%d registered individually by %s", number, me.FullName))
	}, repository.LockTeamFormation)
	if err != nil {
		return nil, err
	}

	s.log(ctx, actor).WithField("team_number", team.TeamNumber).Info("individual team created")
	return ok(fmt.Sprintf("You are registered individually as Team #%d", team.TeamNumber)).
		withTeamNumber(team.TeamNumber).withID(team.ID), nil
}

// GetTeam returns a team the actor may see
func (s *FormationService) GetTeam(ctx context.Context, actor ActorContext, teamID uuid.UUID) (*models.Team, error) {
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
	return team, nil
}

// GetMyTeam returns the acting student's team
func (s *FormationService) GetMyTeam(ctx context.Context, actor ActorContext) (*models.Team, error) {
	if err := actor.require(models.RoleStudent); err != nil {
		return nil, err
	}
	team, err := s.store.Read(ctx).Teams.GetByStudentID(actor.ID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrTeamNotFound, "failed to get team")
	}
	return team, nil
}

// ListTeams returns the teams of the actor's department
func (s *FormationService) ListTeams(ctx context.Context, actor ActorContext) ([]models.Team, error) {
	if err := actor.require(models.RoleFaculty, models.RoleAdmin); err != nil {
		return nil, err
	}
	teams, err := s.store.Read(ctx).Teams.ListByDepartment(actor.Department)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// DeleteTeam removes a team and everything scoped to it. Its number is never issued again.
func (s *FormationService) DeleteTeam(ctx context.Context, actor ActorContext, teamID uuid.UUID) (*Result, error) {
	if err := actor.require(models.RoleAdmin); err != nil {
		return nil, err
	}

	var number int
	err := s.run(ctx, actor, func(t *tx) error {
		team, err := t.team(teamID)
		if err != nil {
			return err
		}
		if team.Department != actor.Department {
			return apperrors.ErrOtherDepartment
		}
		number = team.TeamNumber

		steps := []struct {
			what string
			fn   func(uuid.UUID) error
		}{
			{"meetings", t.Meetings.DeleteByTeamID},
			{"invitations", t.Invitations.DeleteByTeamID},
			{"progress", t.Progress.DeleteByTeamID},
			{"problem statements", t.ProblemStatements.ReleaseByTeam},
			{"activity", t.Activity.DeleteByTeamID},
		}
		for _, step := range steps {
			if err := step.fn(team.ID); err != nil {
				return fmt.Errorf("failed to delete team %s: %w", step.what, err)
			}
		}
		if team.Student2ID != nil {
			if err := t.Requests.DeleteBetween(team.Student1ID, *team.Student2ID); err != nil {
				return fmt.Errorf("failed to delete team requests: %w", err)
			}
		}
		if err := t.Teams.Delete(team.ID); err != nil {
			return fmt.Errorf("failed to delete team: %w", err)
		}
		return t.notifyTeam(team, models.NotificationWarning, "Team #%d has been removed by the administrator", number)
	}, repository.LockTeamFormation, repository.TeamLock(teamID))
	if err != nil {
		return nil, err
	}

	s.log(ctx, actor).WithField("team_number", number).Info("team deleted")
	return ok(fmt.Sprintf("Team #%d deleted", number)).withTeamNumber(number), nil
}

// nextTeamNumber issues the next global team number. The counter never moves back,
// so numbers of deleted teams are not reused.
func nextTeamNumber(t *tx) (int, error) {
	max, err := t.Teams.MaxTeamNumber()
	if err != nil {
		return 0, fmt.Errorf("failed to read team numbers: %w", err)
	}
	number, err := t.Sequences.Next(repository.TeamNumberSequence, max)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate team number: %w", err)
	}
	return number, nil
}
