package service

import (
	"context"
	"errors"
	"fmt"

	"teampro-backend/internal/database/models"
	apperrors "teampro-backend/internal/errors"
	"teampro-backend/internal/logger"
	"teampro-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxDetailsLength = 100

// core carries the collaborators shared by every service
type core struct {
	store     *repository.Store
	validator *validator.Validate
	notifier  Notifier
}

func newCore(store *repository.Store, validator *validator.Validate, notifier Notifier) core {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return core{store: store, validator: validator, notifier: notifier}
}

func (c *core) log(ctx context.Context, actor ActorContext) *logger.Logger {
	return logger.WithContext(ctx).WithActor(string(actor.Role), actor.ID.String())
}

// validate runs struct validation and reports the first failing field
func (c *core) validate(req interface{}) error {
	err := c.validator.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(fe.Field(), fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
	}
	return apperrors.NewValidationError("", err.Error())
}

// tx is the unit of work handed to operations: repositories bound to one transaction,
// plus the notifications written in it, published only after commit.
type tx struct {
	*repository.Repositories
	actor         ActorContext
	notifications []models.Notification
}

// run executes fn in a transaction holding the given locks and publishes its notifications on commit
func (c *core) run(ctx context.Context, actor ActorContext, fn func(t *tx) error, locks ...string) error {
	var committed []models.Notification
	err := c.store.Transaction(ctx, func(r *repository.Repositories) error {
		t := &tx{Repositories: r, actor: actor}
		if err := fn(t); err != nil {
			return err
		}
		committed = t.notifications
		return nil
	}, locks...)
	if err != nil {
		return err
	}
	if len(committed) > 0 {
		if perr := c.notifier.Publish(ctx, committed); perr != nil {
			c.log(ctx, actor).WithField("error", perr.Error()).Warnf("failed to publish %d notifications", len(committed))
		}
	}
	return nil
}

// notify appends a notification to a student's inbox
func (t *tx) notify(studentID uuid.UUID, kind models.NotificationType, format string, args ...interface{}) error {
	n := models.Notification{
		StudentID: studentID,
		Message:   truncate(fmt.Sprintf(format, args...), 500),
		Type:      kind,
	}
	if err := t.Notifications.Create(&n); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	t.notifications = append(t.notifications, n)
	return nil
}

// notifyTeam notifies every member of the team
func (t *tx) notifyTeam(team *models.Team, kind models.NotificationType, format string, args ...interface{}) error {
	for _, id := range team.MemberIDs() {
		if err := t.notify(id, kind, format, args...); err != nil {
			return err
		}
	}
	return nil
}

// record appends an activity log entry for the team, performed by the transaction's actor
func (t *tx) record(teamID uuid.UUID, action, details string) error {
	entry := &models.TeamActivityLog{
		TeamID:          teamID,
		Action:          action,
		Details:         truncate(details, maxDetailsLength),
		PerformedByRole: t.actor.Role,
		PerformedByName: t.actor.Name,
	}
	if err := t.Activity.Create(entry); err != nil {
		return fmt.Errorf("failed to write activity log: %w", err)
	}
	return nil
}

// team loads a team or reports it missing
func (t *tx) team(id uuid.UUID) (*models.Team, error) {
	return loadTeam(t.Repositories, id)
}

func loadTeam(r *repository.Repositories, id uuid.UUID) (*models.Team, error) {
	team, err := r.Teams.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrTeamNotFound, "failed to get team")
	}
	return team, nil
}

// canViewTeam decides whether the actor may read a team's data
func canViewTeam(actor ActorContext, team *models.Team, progress *models.ProjectProgress) error {
	switch actor.Role {
	case models.RoleStudent:
		if team.HasMember(actor.ID) {
			return nil
		}
		return apperrors.ErrNotTeamMember
	case models.RoleFaculty:
		if progress != nil && progress.AssignedFacultyID != nil && *progress.AssignedFacultyID == actor.ID {
			return nil
		}
		if team.Department == actor.Department {
			return nil
		}
		return apperrors.ErrOtherDepartment
	case models.RoleAdmin:
		if team.Department == actor.Department {
			return nil
		}
		return apperrors.ErrOtherDepartment
	}
	return apperrors.ErrRoleNotAllowed
}

// notFound maps gorm's missing-row error to the entity's domain error and wraps anything else
func notFound(err error, target error, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}
	return fmt.Errorf("%s: %w", action, err)
}

// duplicate maps a unique index violation to a conflict and wraps anything else
func duplicate(err error, target error, action string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return target
	}
	return fmt.Errorf("%s: %w", action, err)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
