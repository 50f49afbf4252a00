package repository

import (
	"database/sql"

	"teampro-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMeetingRepository handles database operations for team meetings
type TeamMeetingRepository struct {
	db *gorm.DB
}

// NewTeamMeetingRepository creates a new team meeting repository
func NewTeamMeetingRepository(db *gorm.DB) *TeamMeetingRepository {
	return &TeamMeetingRepository{db: db}
}

// Create creates a new team meeting
func (r *TeamMeetingRepository) Create(meeting *models.TeamMeeting) error {
	return r.db.Create(meeting).Error
}

// GetByID retrieves a team meeting by ID including its proof image
func (r *TeamMeetingRepository) GetByID(id uuid.UUID) (*models.TeamMeeting, error) {
	var meeting models.TeamMeeting
	err := r.db.First(&meeting, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// ListByTeam retrieves a team's meetings in ledger order without proof bytes
func (r *TeamMeetingRepository) ListByTeam(teamID uuid.UUID) ([]models.TeamMeeting, error) {
	var meetings []models.TeamMeeting
	err := r.db.Omit("proof_image").
		Where("team_id = ?", teamID).
		Order("meeting_number ASC").
		Find(&meetings).Error
	return meetings, err
}

// GetLatest retrieves the meeting with the highest number for a team
func (r *TeamMeetingRepository) GetLatest(teamID uuid.UUID) (*models.TeamMeeting, error) {
	var meeting models.TeamMeeting
	err := r.db.Omit("proof_image").
		Where("team_id = ?", teamID).
		Order("meeting_number DESC").
		First(&meeting).Error
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// GetPrevious retrieves the meeting right before the given number
func (r *TeamMeetingRepository) GetPrevious(teamID uuid.UUID, meetingNumber int) (*models.TeamMeeting, error) {
	var meeting models.TeamMeeting
	err := r.db.Omit("proof_image").
		Where("team_id = ? AND meeting_number < ?", teamID, meetingNumber).
		Order("meeting_number DESC").
		First(&meeting).Error
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// MaxMeetingNumber returns the highest meeting number of a team, or 0
func (r *TeamMeetingRepository) MaxMeetingNumber(teamID uuid.UUID) (int, error) {
	var max sql.NullInt64
	if err := r.db.Model(&models.TeamMeeting{}).
		Where("team_id = ?", teamID).
		Select("MAX(meeting_number)").
		Row().Scan(&max); err != nil {
		return 0, err
	}
	return int(max.Int64), nil
}

// Update updates a team meeting
func (r *TeamMeetingRepository) Update(meeting *models.TeamMeeting) error {
	return r.db.Save(meeting).Error
}

// DeleteByTeamID deletes every meeting of a team
func (r *TeamMeetingRepository) DeleteByTeamID(teamID uuid.UUID) error {
	return r.db.Delete(&models.TeamMeeting{}, "team_id = ?", teamID).Error
}
