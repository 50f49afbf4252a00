package repository

import (
	"teampro-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FacultyRepository handles database operations for faculty members
type FacultyRepository struct {
	db *gorm.DB
}

// NewFacultyRepository creates a new faculty repository
func NewFacultyRepository(db *gorm.DB) *FacultyRepository {
	return &FacultyRepository{db: db}
}

// Create creates a new faculty member
func (r *FacultyRepository) Create(faculty *models.Faculty) error {
	return r.db.Create(faculty).Error
}

// GetByID retrieves a faculty member by ID
func (r *FacultyRepository) GetByID(id uuid.UUID) (*models.Faculty, error) {
	var faculty models.Faculty
	err := r.db.First(&faculty, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &faculty, nil
}

// GetByEmail retrieves a faculty member by email
func (r *FacultyRepository) GetByEmail(email string) (*models.Faculty, error) {
	var faculty models.Faculty
	err := r.db.First(&faculty, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &faculty, nil
}

// GetByCode retrieves a faculty member by faculty code
func (r *FacultyRepository) GetByCode(code string) (*models.Faculty, error) {
	var faculty models.Faculty
	err := r.db.First(&faculty, "faculty_code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &faculty, nil
}

// ListByDepartment retrieves all faculty members of a department
func (r *FacultyRepository) ListByDepartment(department string) ([]models.Faculty, error) {
	var faculties []models.Faculty
	err := r.db.Where("department = ?", department).Order("full_name ASC").Find(&faculties).Error
	return faculties, err
}

// AdminRepository handles database operations for department admins
type AdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// Create creates a new admin
func (r *AdminRepository) Create(admin *models.Admin) error {
	return r.db.Create(admin).Error
}

// GetByEmail retrieves an admin by email
func (r *AdminRepository) GetByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.First(&admin, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
