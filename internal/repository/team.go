package repository

import (
	"database/sql"

	"teampro-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams and their memberships
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team and one membership row per member.
// The membership unique index rejects a student who is already in a team.
func (r *TeamRepository) Create(team *models.Team) error {
	if err := r.db.Omit("Student1", "Student2").Create(team).Error; err != nil {
		return err
	}
	for _, studentID := range team.MemberIDs() {
		membership := &models.TeamMembership{TeamID: team.ID, StudentID: studentID}
		if err := r.db.Create(membership).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetByID retrieves a team by ID with its members
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Student1").Preload("Student2").First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByStudentID retrieves the team a student belongs to
func (r *TeamRepository) GetByStudentID(studentID uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Student1").Preload("Student2").
		First(&team, "student1_id = ? OR student2_id = ?", studentID, studentID).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// IsStudentTeamed reports whether the student appears in any team row
func (r *TeamRepository) IsStudentTeamed(studentID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Team{}).
		Where("student1_id = ? OR student2_id = ?", studentID, studentID).
		Count(&count).Error
	return count > 0, err
}

// TeamedStudentIDs returns the subset of the given students that already belong to a team
func (r *TeamRepository) TeamedStudentIDs(studentIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	out := make(map[uuid.UUID]bool)
	if len(studentIDs) == 0 {
		return out, nil
	}
	var memberships []models.TeamMembership
	if err := r.db.Where("student_id IN ?", studentIDs).Find(&memberships).Error; err != nil {
		return nil, err
	}
	for _, m := range memberships {
		out[m.StudentID] = true
	}
	return out, nil
}

// ListByDepartment retrieves all teams of a department ordered by team number
func (r *TeamRepository) ListByDepartment(department string) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Preload("Student1").Preload("Student2").
		Where("department = ?", department).
		Order("team_number ASC").
		Find(&teams).Error
	return teams, err
}

// MaxTeamNumber returns the highest team number currently stored, or 0
func (r *TeamRepository) MaxTeamNumber() (int, error) {
	var max sql.NullInt64
	if err := r.db.Model(&models.Team{}).Select("MAX(team_number)").Row().Scan(&max); err != nil {
		return 0, err
	}
	return int(max.Int64), nil
}

// Delete deletes a team and its memberships
func (r *TeamRepository) Delete(id uuid.UUID) error {
	if err := r.db.Delete(&models.TeamMembership{}, "team_id = ?", id).Error; err != nil {
		return err
	}
	return r.db.Delete(&models.Team{}, "id = ?", id).Error
}
