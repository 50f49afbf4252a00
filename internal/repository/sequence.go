package repository

import (
	"errors"

	"teampro-backend/internal/database/models"

	"gorm.io/gorm"
)

// TeamNumberSequence names the counter that issues team numbers
const TeamNumberSequence = "team_number"

// SequenceRepository issues values from named counters
type SequenceRepository struct {
	db *gorm.DB
}

// NewSequenceRepository creates a new sequence repository
func NewSequenceRepository(db *gorm.DB) *SequenceRepository {
	return &SequenceRepository{db: db}
}

// Next returns one more than the larger of the counter and floor, and stores it.
// Callers must hold a lock for the counter for the duration of their transaction.
func (r *SequenceRepository) Next(name string, floor int) (int, error) {
	var seq models.Sequence
	err := r.db.First(&seq, "name = ?", name).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	exists := err == nil

	next := seq.Value
	if floor > next {
		next = floor
	}
	next++

	if !exists {
		return next, r.db.Create(&models.Sequence{Name: name, Value: next}).Error
	}
	return next, r.db.Model(&models.Sequence{}).Where("name = ?", name).Update("value", next).Error
}
