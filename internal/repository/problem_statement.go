package repository

import (
	"teampro-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProblemStatementFilter narrows a problem statement listing
type ProblemStatementFilter struct {
	Department    string
	Year          *int
	OnlyAvailable bool
}

// ProblemStatementRepository handles database operations for the problem statement bank
type ProblemStatementRepository struct {
	db *gorm.DB
}

// NewProblemStatementRepository creates a new problem statement repository
func NewProblemStatementRepository(db *gorm.DB) *ProblemStatementRepository {
	return &ProblemStatementRepository{db: db}
}

// Create creates a new bank entry
func (r *ProblemStatementRepository) Create(entry *models.ProblemStatementBank) error {
	return r.db.Create(entry).Error
}

// GetByID retrieves a bank entry by ID
func (r *ProblemStatementRepository) GetByID(id uuid.UUID) (*models.ProblemStatementBank, error) {
	var entry models.ProblemStatementBank
	err := r.db.First(&entry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// List retrieves bank entries matching the filter, newest first
func (r *ProblemStatementRepository) List(filter ProblemStatementFilter) ([]models.ProblemStatementBank, error) {
	var entries []models.ProblemStatementBank
	query := r.db.Where("department = ?", filter.Department)
	if filter.Year != nil {
		query = query.Where("year = ?", *filter.Year)
	}
	if filter.OnlyAvailable {
		query = query.Where("is_assigned = ?", false)
	}
	err := query.Order("created_at DESC").Find(&entries).Error
	return entries, err
}

// ExistsInDepartment reports whether the statement text is already in the department's bank
func (r *ProblemStatementRepository) ExistsInDepartment(department, statement string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := r.db.Model(&models.ProblemStatementBank{}).
		Where("department = ? AND LOWER(statement) = LOWER(?)", department, statement)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// Update updates a bank entry
func (r *ProblemStatementRepository) Update(entry *models.ProblemStatementBank) error {
	return r.db.Save(entry).Error
}

// Delete deletes a bank entry
func (r *ProblemStatementRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ProblemStatementBank{}, "id = ?", id).Error
}

// ReleaseByTeam makes every entry held by a team available again
func (r *ProblemStatementRepository) ReleaseByTeam(teamID uuid.UUID) error {
	return r.db.Model(&models.ProblemStatementBank{}).
		Where("assigned_team_id = ?", teamID).
		Updates(map[string]interface{}{"is_assigned": false, "assigned_team_id": nil}).Error
}
