package repository

import (
	"teampro-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityLogRepository handles database operations for team activity logs
type ActivityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository creates a new activity log repository
func NewActivityLogRepository(db *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

// Create appends a log entry
func (r *ActivityLogRepository) Create(entry *models.TeamActivityLog) error {
	return r.db.Create(entry).Error
}

// ListByTeam retrieves a team's log, newest first
func (r *ActivityLogRepository) ListByTeam(teamID uuid.UUID) ([]models.TeamActivityLog, error) {
	var entries []models.TeamActivityLog
	err := r.db.Where("team_id = ?", teamID).Order("created_at DESC").Find(&entries).Error
	return entries, err
}

// DeleteByTeamID deletes the log of a team
func (r *ActivityLogRepository) DeleteByTeamID(teamID uuid.UUID) error {
	return r.db.Delete(&models.TeamActivityLog{}, "team_id = ?", teamID).Error
}
