//go:build integration
// +build integration

package repository

import (
	"context"
	"sync"
	"testing"

	"teampro-backend/internal/database/models"
	"teampro-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// StoreIntegrationTestSuite runs the store against a real Postgres container
type StoreIntegrationTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	store         *Store
	factories     *testutils.FactorySet
}

// SetupSuite runs once before all tests in the suite
func (suite *StoreIntegrationTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.store = NewStore(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// SetupTest runs before each test
func (suite *StoreIntegrationTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *StoreIntegrationTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestConcurrentTeamNumbersAreUnique tests that the advisory lock serializes number allocation
func (suite *StoreIntegrationTestSuite) TestConcurrentTeamNumbersAreUnique() {
	const workers = 8
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		numbers []int
		errs    []error
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := suite.store.Transaction(ctx, func(r *Repositories) error {
				floor, err := r.Teams.MaxTeamNumber()
				if err != nil {
					return err
				}
				n, err := r.Sequences.Next(TeamNumberSequence, floor)
				if err != nil {
					return err
				}
				mu.Lock()
				numbers = append(numbers, n)
				mu.Unlock()
				return nil
			}, LockTeamFormation)
			if err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	suite.Empty(errs)
	suite.Len(numbers, workers)
	seen := make(map[int]bool)
	for _, n := range numbers {
		suite.False(seen[n], "team number %d issued twice", n)
		seen[n] = true
	}
}

// TestPendingRequestIndex tests the partial unique index on Postgres
func (suite *StoreIntegrationTestSuite) TestPendingRequestIndex() {
	db := suite.baseTestSuite.DB
	sender := suite.factories.Student.Create()
	r1 := suite.factories.Student.Create()
	r2 := suite.factories.Student.Create()
	for _, s := range []*models.Student{sender, r1, r2} {
		suite.Require().NoError(db.Create(s).Error)
	}

	repo := NewTeamRequestRepository(db)
	suite.Require().NoError(repo.Create(&models.TeamRequest{SenderID: sender.ID, ReceiverID: r1.ID, Status: models.RequestStatusPending}))
	suite.Error(repo.Create(&models.TeamRequest{SenderID: sender.ID, ReceiverID: r2.ID, Status: models.RequestStatusPending}))
	suite.NoError(repo.Create(&models.TeamRequest{SenderID: sender.ID, ReceiverID: r2.ID, Status: models.RequestStatusRejected}))
}

// TestTransactionRollsBackUnderLock tests rollback with advisory locks held
func (suite *StoreIntegrationTestSuite) TestTransactionRollsBackUnderLock() {
	ctx := context.Background()
	student := suite.factories.Student.Create()

	err := suite.store.Transaction(ctx, func(r *Repositories) error {
		if err := r.Students.Create(student); err != nil {
			return err
		}
		return r.Students.Create(student)
	}, LockDirectory, TeamLock(student.ID))
	suite.Error(err)

	_, err = suite.store.Read(ctx).Students.GetByID(student.ID)
	suite.Error(err)
}

// TestStoreIntegrationTestSuite runs the test suite
func TestStoreIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(StoreIntegrationTestSuite))
}
