package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"teampro-backend/internal/database/models"
	"teampro-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// StoreTestSuite tests the store and repositories against an in-memory database
type StoreTestSuite struct {
	suite.Suite
	tdb       *testutils.TestDB
	store     *Store
	factories *testutils.FactorySet
}

// SetupTest runs before each test
func (suite *StoreTestSuite) SetupTest() {
	suite.tdb = testutils.MustCreateTestDB(suite.T())
	suite.store = NewStore(suite.tdb.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownTest runs after each test
func (suite *StoreTestSuite) TearDownTest() {
	suite.tdb.Cleanup()
}

func (suite *StoreTestSuite) student() *models.Student {
	return suite.tdb.SeedStudent(suite.T(), suite.factories.Student.Create())
}

// TestTransactionRollsBack tests that an error from fn discards every write
func (suite *StoreTestSuite) TestTransactionRollsBack() {
	ctx := context.Background()
	failure := errors.New("boom")

	err := suite.store.Transaction(ctx, func(r *Repositories) error {
		if err := r.Students.Create(suite.factories.Student.Create()); err != nil {
			return err
		}
		return failure
	}, LockDirectory)
	suite.ErrorIs(err, failure)

	var count int64
	suite.Require().NoError(suite.tdb.DB.Model(&models.Student{}).Count(&count).Error)
	suite.Zero(count)

	err = suite.store.Transaction(ctx, func(r *Repositories) error {
		return r.Students.Create(suite.factories.Student.Create())
	}, LockDirectory)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.tdb.DB.Model(&models.Student{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

// TestSequenceNeverReissues tests that a counter stays ahead of deleted values
func (suite *StoreTestSuite) TestSequenceNeverReissues() {
	repo := NewSequenceRepository(suite.tdb.DB)

	first, err := repo.Next(TeamNumberSequence, 0)
	suite.Require().NoError(err)
	suite.Equal(1, first)

	second, err := repo.Next(TeamNumberSequence, 0)
	suite.Require().NoError(err)
	suite.Equal(2, second)

	// A floor above the counter wins, e.g. teams created before the counter existed
	jumped, err := repo.Next(TeamNumberSequence, 10)
	suite.Require().NoError(err)
	suite.Equal(11, jumped)

	// A lower floor, e.g. after the highest team was deleted, does not pull the counter back
	next, err := repo.Next(TeamNumberSequence, 3)
	suite.Require().NoError(err)
	suite.Equal(12, next)

	other, err := repo.Next("other", 0)
	suite.Require().NoError(err)
	suite.Equal(1, other)
}

// TestTeamCreateAndLookup tests membership rows and lookups by student
func (suite *StoreTestSuite) TestTeamCreateAndLookup() {
	repo := NewTeamRepository(suite.tdb.DB)
	a, b, solo := suite.student(), suite.student(), suite.student()

	team := &models.Team{TeamNumber: 1, Student1ID: a.ID, Student2ID: &b.ID, Department: "CSE", Year: 3}
	suite.Require().NoError(repo.Create(team))
	suite.NotEqual(uuid.Nil, team.ID)

	found, err := repo.GetByStudentID(b.ID)
	suite.Require().NoError(err)
	suite.Equal(team.ID, found.ID)
	suite.Require().NotNil(found.Student1)
	suite.Equal(a.FullName, found.Student1.FullName)

	teamed, err := repo.TeamedStudentIDs([]uuid.UUID{a.ID, b.ID, solo.ID})
	suite.Require().NoError(err)
	suite.True(teamed[a.ID])
	suite.True(teamed[b.ID])
	suite.False(teamed[solo.ID])

	// b is already a member
	clash := &models.Team{TeamNumber: 2, Student1ID: solo.ID, Student2ID: &b.ID, Department: "CSE", Year: 3}
	suite.Error(repo.Create(clash))

	highest, err := repo.MaxTeamNumber()
	suite.Require().NoError(err)
	suite.GreaterOrEqual(highest, 1)

	suite.Require().NoError(repo.Delete(team.ID))
	isTeamed, err := repo.IsStudentTeamed(a.ID)
	suite.Require().NoError(err)
	suite.False(isTeamed)
	_, err = repo.GetByID(team.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestOnePendingRequestPerSender tests the partial unique index on pending requests
func (suite *StoreTestSuite) TestOnePendingRequestPerSender() {
	repo := NewTeamRequestRepository(suite.tdb.DB)
	sender, r1, r2 := suite.student(), suite.student(), suite.student()

	first := &models.TeamRequest{SenderID: sender.ID, ReceiverID: r1.ID, Status: models.RequestStatusPending}
	suite.Require().NoError(repo.Create(first))

	second := &models.TeamRequest{SenderID: sender.ID, ReceiverID: r2.ID, Status: models.RequestStatusPending}
	suite.Error(repo.Create(second))

	// Once answered, the sender may ask again
	first.Status = models.RequestStatusRejected
	suite.Require().NoError(repo.Update(first))
	third := &models.TeamRequest{SenderID: sender.ID, ReceiverID: r2.ID, Status: models.RequestStatusPending}
	suite.Require().NoError(repo.Create(third))

	pending, err := repo.GetPendingBySender(sender.ID)
	suite.Require().NoError(err)
	suite.Equal(third.ID, pending.ID)
}

// TestRejectPendingForReceiver tests bulk rejection of incoming requests
func (suite *StoreTestSuite) TestRejectPendingForReceiver() {
	repo := NewTeamRequestRepository(suite.tdb.DB)
	receiver := suite.student()
	var senders []*models.Student
	for i := 0; i < 2; i++ {
		s := suite.student()
		senders = append(senders, s)
		suite.Require().NoError(repo.Create(&models.TeamRequest{SenderID: s.ID, ReceiverID: receiver.ID, Status: models.RequestStatusPending}))
	}

	incoming, err := repo.ListPendingForReceiver(receiver.ID)
	suite.Require().NoError(err)
	suite.Require().Len(incoming, 2)
	suite.NotNil(incoming[0].Sender)

	rejected, err := repo.RejectPendingForReceiver(receiver.ID, time.Now())
	suite.Require().NoError(err)
	suite.Len(rejected, 2)

	incoming, err = repo.ListPendingForReceiver(receiver.ID)
	suite.Require().NoError(err)
	suite.Empty(incoming)

	suite.Require().NoError(repo.DeleteBetween(receiver.ID, senders[0].ID))
	var count int64
	suite.Require().NoError(suite.tdb.DB.Model(&models.TeamRequest{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

// TestSweepStaleInvitations tests which invitations the sweep removes
func (suite *StoreTestSuite) TestSweepStaleInvitations() {
	repo := NewMeetingInvitationRepository(suite.tdb.DB)
	a, b := suite.student(), suite.student()
	team := suite.tdb.SeedTeam(suite.T(), 1, a, nil)
	other := suite.tdb.SeedTeam(suite.T(), 2, b, nil)
	facultyID := uuid.New()

	invite := func(teamID, studentID uuid.UUID, status models.InvitationStatus) *models.MeetingInvitation {
		inv := &models.MeetingInvitation{
			TeamID:           teamID,
			FacultyID:        facultyID,
			Title:            "Review " + string(status),
			MeetingDateTime:  time.Now().Add(24 * time.Hour),
			DurationMinutes:  60,
			Student1ID:       studentID,
			Student1Response: models.ResponsePending,
			Status:           status,
		}
		suite.Require().NoError(repo.Create(inv))
		return inv
	}

	completed := invite(team.ID, a.ID, models.InvitationStatusCompleted)
	oldRejected := invite(team.ID, a.ID, models.InvitationStatusRejected)
	suite.tdb.Age(suite.T(), &models.MeetingInvitation{}, oldRejected.ID, 48*time.Hour)
	freshCancelled := invite(team.ID, a.ID, models.InvitationStatusCancelled)
	oldPending := invite(team.ID, a.ID, models.InvitationStatusPending)
	suite.tdb.Age(suite.T(), &models.MeetingInvitation{}, oldPending.ID, 48*time.Hour)
	otherCompleted := invite(other.ID, b.ID, models.InvitationStatusCompleted)

	removed, err := repo.SweepStale("team_id", team.ID, time.Now().Add(-24*time.Hour))
	suite.Require().NoError(err)
	suite.Equal(int64(2), removed)

	left, err := repo.ListByTeam(team.ID)
	suite.Require().NoError(err)
	ids := map[uuid.UUID]bool{}
	for _, inv := range left {
		ids[inv.ID] = true
	}
	suite.False(ids[completed.ID])
	suite.False(ids[oldRejected.ID])
	suite.True(ids[freshCancelled.ID])
	suite.True(ids[oldPending.ID])

	_, err = repo.GetByID(otherCompleted.ID)
	suite.NoError(err)

	removed, err = repo.SweepStale("faculty_id", facultyID, time.Now().Add(-24*time.Hour))
	suite.Require().NoError(err)
	suite.Equal(int64(1), removed)
}

// TestProblemStatementQueries tests filters, case-insensitive duplicates and release
func (suite *StoreTestSuite) TestProblemStatementQueries() {
	repo := NewProblemStatementRepository(suite.tdb.DB)
	team := suite.tdb.SeedTeam(suite.T(), 1, suite.student(), nil)

	taken := suite.factories.ProblemStatement.Create()
	taken.IsAssigned = true
	taken.AssignedTeamID = &team.ID
	suite.Require().NoError(repo.Create(taken))

	free := suite.factories.ProblemStatement.Create()
	free.Statement = "Timetable clash detector"
	suite.Require().NoError(repo.Create(free))

	year := 3
	available, err := repo.List(ProblemStatementFilter{Department: "CSE", Year: &year, OnlyAvailable: true})
	suite.Require().NoError(err)
	suite.Require().Len(available, 1)
	suite.Equal(free.ID, available[0].ID)

	exists, err := repo.ExistsInDepartment("CSE", "TIMETABLE clash DETECTOR", nil)
	suite.Require().NoError(err)
	suite.True(exists)
	exists, err = repo.ExistsInDepartment("CSE", "timetable clash detector", &free.ID)
	suite.Require().NoError(err)
	suite.False(exists)
	exists, err = repo.ExistsInDepartment("ECE", "Timetable clash detector", nil)
	suite.Require().NoError(err)
	suite.False(exists)

	suite.Require().NoError(repo.ReleaseByTeam(team.ID))
	released, err := repo.GetByID(taken.ID)
	suite.Require().NoError(err)
	suite.False(released.IsAssigned)
	suite.Nil(released.AssignedTeamID)
}

// TestStoreTestSuite runs the test suite
func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
