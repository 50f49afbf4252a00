package testutils

import (
	"fmt"
	"testing"
	"time"

	"teampro-backend/internal/database"
	"teampro-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestDB holds a test database connection and cleanup function
type TestDB struct {
	DB      *gorm.DB
	Cleanup func()
}

// NewTestDB creates a new in-memory SQLite database for testing.
// Each call gets its own named database; a single connection keeps transactions serialized.
func NewTestDB(t *testing.T) (*TestDB, error) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		return nil, err
	}

	cleanup := func() {
		_ = sqlDB.Close()
	}

	return &TestDB{
		DB:      db,
		Cleanup: cleanup,
	}, nil
}

// MustCreateTestDB creates a test DB, failing the test on error.
func MustCreateTestDB(t *testing.T) *TestDB {
	t.Helper()

	tdb, err := NewTestDB(t)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	return tdb
}

// SeedStudent stores the student and returns it.
func (tdb *TestDB) SeedStudent(t *testing.T, student *models.Student) *models.Student {
	t.Helper()

	if err := tdb.DB.Create(student).Error; err != nil {
		t.Fatalf("failed to seed student: %v", err)
	}
	return student
}

// SeedFaculty stores the faculty member and returns it.
func (tdb *TestDB) SeedFaculty(t *testing.T, faculty *models.Faculty) *models.Faculty {
	t.Helper()

	if err := tdb.DB.Create(faculty).Error; err != nil {
		t.Fatalf("failed to seed faculty: %v", err)
	}
	return faculty
}

// SeedTeam stores a team for the given students with its membership rows.
// A nil second student makes an individual team.
func (tdb *TestDB) SeedTeam(t *testing.T, number int, s1 *models.Student, s2 *models.Student) *models.Team {
	t.Helper()

	team := &models.Team{
		TeamNumber: number,
		Student1ID: s1.ID,
		Department: s1.Department,
		Year:       s1.Year,
	}
	if s2 != nil {
		team.Student2ID = &s2.ID
	} else {
		team.IsIndividual = true
	}
	if err := tdb.DB.Omit("Student1", "Student2").Create(team).Error; err != nil {
		t.Fatalf("failed to seed team: %v", err)
	}
	for _, id := range team.MemberIDs() {
		if err := tdb.DB.Create(&models.TeamMembership{TeamID: team.ID, StudentID: id}).Error; err != nil {
			t.Fatalf("failed to seed membership: %v", err)
		}
	}
	return team
}

// SeedProgress stores a progress row for the team with the given assignments.
func (tdb *TestDB) SeedProgress(t *testing.T, teamID uuid.UUID, statement string, mentorID *uuid.UUID) *models.ProjectProgress {
	t.Helper()

	progress := &models.ProjectProgress{
		TeamID:            teamID,
		ProblemStatement:  statement,
		AssignedFacultyID: mentorID,
		Status:            models.ProgressStatusNotStarted,
	}
	progress.Reconcile()
	if err := tdb.DB.Omit("AssignedFaculty").Create(progress).Error; err != nil {
		t.Fatalf("failed to seed progress: %v", err)
	}
	return progress
}

// SeedMeeting stores a meeting in the team's ledger.
func (tdb *TestDB) SeedMeeting(t *testing.T, teamID uuid.UUID, number, completion int) *models.TeamMeeting {
	t.Helper()

	meeting := &models.TeamMeeting{
		TeamID:               teamID,
		MeetingNumber:        number,
		MeetingDate:          time.Now().AddDate(0, 0, -7*(10-number)),
		CompletionPercentage: completion,
	}
	if err := tdb.DB.Create(meeting).Error; err != nil {
		t.Fatalf("failed to seed meeting: %v", err)
	}
	return meeting
}

// Age moves the row's updated_at into the past without touching other columns.
func (tdb *TestDB) Age(t *testing.T, model interface{}, id uuid.UUID, by time.Duration) {
	t.Helper()

	if err := tdb.DB.Model(model).Where("id = ?", id).UpdateColumn("updated_at", time.Now().Add(-by)).Error; err != nil {
		t.Fatalf("failed to age row: %v", err)
	}
}
