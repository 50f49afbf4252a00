package repository

import (
	"time"

	"teampro-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRequestRepository handles database operations for team requests
type TeamRequestRepository struct {
	db *gorm.DB
}

// NewTeamRequestRepository creates a new team request repository
func NewTeamRequestRepository(db *gorm.DB) *TeamRequestRepository {
	return &TeamRequestRepository{db: db}
}

// Create creates a new team request
func (r *TeamRequestRepository) Create(request *models.TeamRequest) error {
	return r.db.Omit("Sender", "Receiver").Create(request).Error
}

// GetByID retrieves a team request by ID
func (r *TeamRequestRepository) GetByID(id uuid.UUID) (*models.TeamRequest, error) {
	var request models.TeamRequest
	err := r.db.First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// GetPendingBySender retrieves the single pending request sent by a student
func (r *TeamRequestRepository) GetPendingBySender(senderID uuid.UUID) (*models.TeamRequest, error) {
	var request models.TeamRequest
	err := r.db.First(&request, "sender_id = ? AND status = ?", senderID, models.RequestStatusPending).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// GetPendingBetween retrieves the pending request from sender to receiver
func (r *TeamRequestRepository) GetPendingBetween(senderID, receiverID uuid.UUID) (*models.TeamRequest, error) {
	var request models.TeamRequest
	err := r.db.First(&request, "sender_id = ? AND receiver_id = ? AND status = ?",
		senderID, receiverID, models.RequestStatusPending).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// ListPendingForReceiver retrieves the pending requests addressed to a student, newest first
func (r *TeamRequestRepository) ListPendingForReceiver(receiverID uuid.UUID) ([]models.TeamRequest, error) {
	var requests []models.TeamRequest
	err := r.db.Preload("Sender").
		Where("receiver_id = ? AND status = ?", receiverID, models.RequestStatusPending).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// Update updates a team request
func (r *TeamRequestRepository) Update(request *models.TeamRequest) error {
	return r.db.Omit("Sender", "Receiver").Save(request).Error
}

// Delete deletes a team request
func (r *TeamRequestRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TeamRequest{}, "id = ?", id).Error
}

// DeletePendingBySender deletes every pending request sent by a student
func (r *TeamRequestRepository) DeletePendingBySender(senderID uuid.UUID) (int64, error) {
	res := r.db.Where("sender_id = ? AND status = ?", senderID, models.RequestStatusPending).
		Delete(&models.TeamRequest{})
	return res.RowsAffected, res.Error
}

// RejectPendingForReceiver marks every pending request addressed to a student as rejected
func (r *TeamRequestRepository) RejectPendingForReceiver(receiverID uuid.UUID, at time.Time) ([]models.TeamRequest, error) {
	var requests []models.TeamRequest
	if err := r.db.Where("receiver_id = ? AND status = ?", receiverID, models.RequestStatusPending).
		Find(&requests).Error; err != nil {
		return nil, err
	}
	if len(requests) == 0 {
		return requests, nil
	}
	err := r.db.Model(&models.TeamRequest{}).
		Where("receiver_id = ? AND status = ?", receiverID, models.RequestStatusPending).
		Updates(map[string]interface{}{"status": models.RequestStatusRejected, "responded_at": at}).Error
	return requests, err
}

// DeleteBetween deletes every request exchanged between two students in either direction
func (r *TeamRequestRepository) DeleteBetween(a, b uuid.UUID) error {
	return r.db.Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", a, b, b, a).
		Delete(&models.TeamRequest{}).Error
}
