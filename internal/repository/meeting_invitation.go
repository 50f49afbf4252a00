package repository

import (
	"time"

	"teampro-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MeetingInvitationRepository handles database operations for meeting invitations
type MeetingInvitationRepository struct {
	db *gorm.DB
}

// NewMeetingInvitationRepository creates a new meeting invitation repository
func NewMeetingInvitationRepository(db *gorm.DB) *MeetingInvitationRepository {
	return &MeetingInvitationRepository{db: db}
}

// Create creates a new meeting invitation
func (r *MeetingInvitationRepository) Create(invitation *models.MeetingInvitation) error {
	return r.db.Create(invitation).Error
}

// GetByID retrieves a meeting invitation by ID
func (r *MeetingInvitationRepository) GetByID(id uuid.UUID) (*models.MeetingInvitation, error) {
	var invitation models.MeetingInvitation
	err := r.db.First(&invitation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// ListByTeam retrieves a team's invitations, soonest meeting first
func (r *MeetingInvitationRepository) ListByTeam(teamID uuid.UUID) ([]models.MeetingInvitation, error) {
	var invitations []models.MeetingInvitation
	err := r.db.Where("team_id = ?", teamID).Order("meeting_date_time ASC").Find(&invitations).Error
	return invitations, err
}

// ListByFaculty retrieves the invitations sent by a faculty member, soonest meeting first
func (r *MeetingInvitationRepository) ListByFaculty(facultyID uuid.UUID) ([]models.MeetingInvitation, error) {
	var invitations []models.MeetingInvitation
	err := r.db.Where("faculty_id = ?", facultyID).Order("meeting_date_time ASC").Find(&invitations).Error
	return invitations, err
}

// Update updates a meeting invitation
func (r *MeetingInvitationRepository) Update(invitation *models.MeetingInvitation) error {
	return r.db.Save(invitation).Error
}

// Delete deletes a meeting invitation
func (r *MeetingInvitationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.MeetingInvitation{}, "id = ?", id).Error
}

// DeleteByTeamID deletes every invitation of a team
func (r *MeetingInvitationRepository) DeleteByTeamID(teamID uuid.UUID) error {
	return r.db.Delete(&models.MeetingInvitation{}, "team_id = ?", teamID).Error
}

// SweepStale deletes the invitations in scope that are finished, or that ended
// as rejected or cancelled before the cutoff. Scope is "team_id" or "faculty_id".
func (r *MeetingInvitationRepository) SweepStale(scope string, id uuid.UUID, cutoff time.Time) (int64, error) {
	res := r.db.
		Where(scope+" = ?", id).
		Where("status IN ? OR (status IN ? AND updated_at < ?)",
			[]models.InvitationStatus{models.InvitationStatusCompleted, models.InvitationStatusAddedToProgress},
			[]models.InvitationStatus{models.InvitationStatusRejected, models.InvitationStatusCancelled},
			cutoff).
		Delete(&models.MeetingInvitation{})
	return res.RowsAffected, res.Error
}
