package repository

import (
	"teampro-backend/internal/database/models"

	"gorm.io/gorm"
)

// FormationScheduleRepository handles database operations for team formation schedules
type FormationScheduleRepository struct {
	db *gorm.DB
}

// NewFormationScheduleRepository creates a new formation schedule repository
func NewFormationScheduleRepository(db *gorm.DB) *FormationScheduleRepository {
	return &FormationScheduleRepository{db: db}
}

// Get retrieves the schedule of one department and year
func (r *FormationScheduleRepository) Get(department string, year int) (*models.TeamFormationSchedule, error) {
	var schedule models.TeamFormationSchedule
	err := r.db.First(&schedule, "department = ? AND year = ?", department, year).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// ListByDepartment retrieves the schedules of a department ordered by year
func (r *FormationScheduleRepository) ListByDepartment(department string) ([]models.TeamFormationSchedule, error) {
	var schedules []models.TeamFormationSchedule
	err := r.db.Where("department = ?", department).Order("year ASC").Find(&schedules).Error
	return schedules, err
}

// Create creates a new schedule
func (r *FormationScheduleRepository) Create(schedule *models.TeamFormationSchedule) error {
	return r.db.Create(schedule).Error
}

// Update updates a schedule
func (r *FormationScheduleRepository) Update(schedule *models.TeamFormationSchedule) error {
	return r.db.Save(schedule).Error
}
