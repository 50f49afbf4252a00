package repository

import (
	"teampro-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectProgressRepository handles database operations for project progress rows
type ProjectProgressRepository struct {
	db *gorm.DB
}

// NewProjectProgressRepository creates a new project progress repository
func NewProjectProgressRepository(db *gorm.DB) *ProjectProgressRepository {
	return &ProjectProgressRepository{db: db}
}

// Create creates a new project progress row
func (r *ProjectProgressRepository) Create(progress *models.ProjectProgress) error {
	return r.db.Omit("AssignedFaculty").Create(progress).Error
}

// GetByTeamID retrieves the progress row of a team with its mentor
func (r *ProjectProgressRepository) GetByTeamID(teamID uuid.UUID) (*models.ProjectProgress, error) {
	var progress models.ProjectProgress
	err := r.db.Preload("AssignedFaculty").First(&progress, "team_id = ?", teamID).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// ListByFaculty retrieves the progress rows mentored by a faculty member
func (r *ProjectProgressRepository) ListByFaculty(facultyID uuid.UUID) ([]models.ProjectProgress, error) {
	var rows []models.ProjectProgress
	err := r.db.Where("assigned_faculty_id = ?", facultyID).Find(&rows).Error
	return rows, err
}

// Update updates a project progress row
func (r *ProjectProgressRepository) Update(progress *models.ProjectProgress) error {
	return r.db.Omit("AssignedFaculty").Save(progress).Error
}

// DeleteByTeamID deletes the progress row of a team
func (r *ProjectProgressRepository) DeleteByTeamID(teamID uuid.UUID) error {
	return r.db.Delete(&models.ProjectProgress{}, "team_id = ?", teamID).Error
}
