package service

import (
	"context"

	"teampro-backend/internal/database/models"
)

// Notifier publishes committed notifications to a delivery transport
type Notifier interface {
	Publish(ctx context.Context, notifications []models.Notification) error
}

// NopNotifier discards notifications; the inbox rows remain the source of truth
type NopNotifier struct{}

// Publish implements Notifier
func (NopNotifier) Publish(context.Context, []models.Notification) error {
	return nil
}
