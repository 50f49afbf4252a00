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

// ActivityService exposes team activity history and student inboxes
type ActivityService struct {
	core
}

// NewActivityService creates a new activity service
func NewActivityService(store *repository.Store, validator *validator.Validate) *ActivityService {
	return &ActivityService{core: newCore(store, validator, nil)}
}

// ActivityEntry is one line of a team's history
type ActivityEntry struct {
	Action          string      `json:"action"`
	Details         string      `json:"details"`
	PerformedByRole models.Role `json:"performed_by_role"`
	PerformedByName string      `json:"performed_by_name"`
	Timestamp       time.Time   `json:"timestamp"`
}

// ListForTeam returns the team's activity, newest first
func (s *ActivityService) ListForTeam(ctx context.Context, actor ActorContext, teamID uuid.UUID) ([]ActivityEntry, error) {
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

	logs, err := r.Activity.ListByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	entries := make([]ActivityEntry, 0, len(logs))
	for _, l := range logs {
		entries = append(entries, ActivityEntry{
			Action:          l.Action,
			Details:         l.Details,
			PerformedByRole: l.PerformedByRole,
			PerformedByName: l.PerformedByName,
			Timestamp:       l.CreatedAt,
		})
	}
	return entries, nil
}

// ListNotifications returns the acting student's notifications, newest first
func (s *ActivityService) ListNotifications(ctx context.Context, actor ActorContext, unreadOnly bool) ([]models.Notification, error) {
	if err := actor.require(models.RoleStudent); err != nil {
		return nil, err
	}
	notifications, err := s.store.Read(ctx).Notifications.ListByStudent(actor.ID, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// MarkNotificationRead marks one of the acting student's notifications as read
func (s *ActivityService) MarkNotificationRead(ctx context.Context, actor ActorContext, notificationID uuid.UUID) (*Result, error) {
	if err := actor.require(models.RoleStudent); err != nil {
		return nil, err
	}

	r := s.store.Read(ctx)
	notification, err := r.Notifications.GetByID(notificationID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrNotificationNotFound, "failed to get notification")
	}
	// other students' notifications are reported as missing
	if notification.StudentID != actor.ID {
		return nil, apperrors.ErrNotificationNotFound
	}
	if !notification.IsRead {
		if err := r.Notifications.MarkRead(notificationID); err != nil {
			return nil, fmt.Errorf("failed to mark notification read: %w", err)
		}
	}
	return ok("Notification marked as read").withID(notificationID), nil
}
