package service_test

import (
	"context"
	"sync"
	"time"

	"teampro-backend/internal/config"
	"teampro-backend/internal/database/models"
	"teampro-backend/internal/repository"
	"teampro-backend/internal/service"
	"teampro-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// jpegBytes starts with the JPEG SOI and JFIF APP0 markers
var jpegBytes = append([]byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00, 0x01}, make([]byte, 64)...)

// recordingNotifier keeps every published notification
type recordingNotifier struct {
	mu        sync.Mutex
	published []models.Notification
	err       error
}

func (n *recordingNotifier) Publish(_ context.Context, notifications []models.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.published = append(n.published, notifications...)
	return n.err
}

func (n *recordingNotifier) sentTo(studentID uuid.UUID) []models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []models.Notification
	for _, p := range n.published {
		if p.StudentID == studentID {
			out = append(out, p)
		}
	}
	return out
}

// serviceSuite gives every service suite a fresh in-memory database
type serviceSuite struct {
	suite.Suite
	ctx       context.Context
	tdb       *testutils.TestDB
	store     *repository.Store
	cfg       *config.Config
	validator *validator.Validate
	notifier  *recordingNotifier
	factories *testutils.FactorySet
}

func (s *serviceSuite) SetupTest() {
	s.ctx = context.Background()
	s.tdb = testutils.MustCreateTestDB(s.T())
	s.store = repository.NewStore(s.tdb.DB)
	s.cfg = &config.Config{
		CompletionPolicy:     config.CompletionNonDecreasing,
		InvitationStaleAfter: 24 * time.Hour,
		ProofMaxBytes:        5 << 20,
	}
	s.validator = validator.New()
	s.notifier = &recordingNotifier{}
	s.factories = testutils.NewFactorySet()
}

func (s *serviceSuite) TearDownTest() {
	s.tdb.Cleanup()
}

func (s *serviceSuite) student() *models.Student {
	return s.tdb.SeedStudent(s.T(), s.factories.Student.Create())
}

func (s *serviceSuite) facultyMember() *models.Faculty {
	return s.tdb.SeedFaculty(s.T(), s.factories.Faculty.Create())
}

// readyTeam seeds a pair team whose mentor and problem statement are assigned
func (s *serviceSuite) readyTeam() (*models.Team, *models.Student, *models.Student, *models.Faculty) {
	a, b := s.student(), s.student()
	mentor := s.facultyMember()
	team := s.tdb.SeedTeam(s.T(), 1, a, b)
	s.tdb.SeedProgress(s.T(), team.ID, "Smart attendance system", &mentor.ID)
	return team, a, b, mentor
}

func (s *serviceSuite) progressOf(teamID uuid.UUID) *models.ProjectProgress {
	var progress models.ProjectProgress
	s.Require().NoError(s.tdb.DB.First(&progress, "team_id = ?", teamID).Error)
	return &progress
}

func (s *serviceSuite) activityOf(teamID uuid.UUID) []models.TeamActivityLog {
	var logs []models.TeamActivityLog
	s.Require().NoError(s.tdb.DB.Where("team_id = ?", teamID).Order("created_at ASC").Find(&logs).Error)
	return logs
}

func studentActor(st *models.Student) service.ActorContext {
	return service.ActorContext{Role: models.RoleStudent, ID: st.ID, Department: st.Department, Name: st.FullName}
}

func facultyActor(f *models.Faculty) service.ActorContext {
	return service.ActorContext{Role: models.RoleFaculty, ID: f.ID, Department: f.Department, Name: f.FullName}
}

func adminActor(department string) service.ActorContext {
	return service.ActorContext{Role: models.RoleAdmin, ID: uuid.New(), Department: department, Name: "Dept Admin"}
}
