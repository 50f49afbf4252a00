package service_test

import (
	"testing"

	"teampro-backend/internal/database/models"
	apperrors "teampro-backend/internal/errors"
	"teampro-backend/internal/service"

	"github.com/stretchr/testify/suite"
)

// ProblemStatementServiceTestSuite tests the problem statement bank
type ProblemStatementServiceTestSuite struct {
	serviceSuite
	svc *service.ProblemStatementService
}

func (s *ProblemStatementServiceTestSuite) SetupTest() {
	s.serviceSuite.SetupTest()
	s.svc = service.NewProblemStatementService(s.store, s.validator)
}

func (s *ProblemStatementServiceTestSuite) TestCreateDefaultsYearAndRejectsDuplicates() {
	admin := adminActor("CSE")

	res, err := s.svc.Create(s.ctx, admin, &service.ProblemStatementRequest{Statement: "  Bus pass renewal portal "})
	s.Require().NoError(err)

	var entry models.ProblemStatementBank
	s.Require().NoError(s.tdb.DB.First(&entry, "id = ?", *res.ID).Error)
	s.Equal("Bus pass renewal portal", entry.Statement)
	s.Equal(3, entry.Year)
	s.Equal("CSE", entry.Department)
	s.Equal(admin.Name, entry.CreatedByName)

	_, err = s.svc.Create(s.ctx, admin, &service.ProblemStatementRequest{Statement: "bus pass RENEWAL portal"})
	s.ErrorIs(err, apperrors.ErrProblemStatementExists)

	// Another department may hold the same text
	_, err = s.svc.Create(s.ctx, adminActor("ECE"), &service.ProblemStatementRequest{Statement: "Bus pass renewal portal"})
	s.NoError(err)

	_, err = s.svc.Create(s.ctx, admin, &service.ProblemStatementRequest{Statement: "   "})
	s.True(apperrors.IsValidation(err))
}

func (s *ProblemStatementServiceTestSuite) TestUpdateAndDelete() {
	admin := adminActor("CSE")
	first, err := s.svc.Create(s.ctx, admin, &service.ProblemStatementRequest{Statement: "Alumni directory", Year: 4})
	s.Require().NoError(err)
	second, err := s.svc.Create(s.ctx, admin, &service.ProblemStatementRequest{Statement: "Exam seating planner", Year: 4})
	s.Require().NoError(err)

	_, err = s.svc.Update(s.ctx, admin, *second.ID, &service.ProblemStatementRequest{Statement: "alumni directory", Year: 4})
	s.ErrorIs(err, apperrors.ErrProblemStatementExists)

	_, err = s.svc.Update(s.ctx, adminActor("ECE"), *second.ID, &service.ProblemStatementRequest{Statement: "Other", Year: 4})
	s.ErrorIs(err, apperrors.ErrOtherDepartment)

	_, err = s.svc.Update(s.ctx, admin, *second.ID, &service.ProblemStatementRequest{Statement: "Exam hall seating planner", Year: 2})
	s.Require().NoError(err)

	team := s.tdb.SeedTeam(s.T(), 1, s.student(), nil)
	s.Require().NoError(s.tdb.DB.Model(&models.ProblemStatementBank{}).Where("id = ?", *first.ID).
		Updates(map[string]interface{}{"is_assigned": true, "assigned_team_id": team.ID}).Error)

	_, err = s.svc.Delete(s.ctx, admin, *first.ID)
	s.ErrorIs(err, apperrors.ErrProblemStatementTaken)

	_, err = s.svc.Delete(s.ctx, admin, *second.ID)
	s.Require().NoError(err)
}

func (s *ProblemStatementServiceTestSuite) TestListFilters() {
	admin := adminActor("CSE")
	for _, req := range []service.ProblemStatementRequest{
		{Statement: "Fee reminder bot", Year: 3},
		{Statement: "Sports room booking", Year: 3},
		{Statement: "Lab inventory", Year: 2},
	} {
		req := req
		_, err := s.svc.Create(s.ctx, admin, &req)
		s.Require().NoError(err)
	}
	_, err := s.svc.Create(s.ctx, adminActor("ECE"), &service.ProblemStatementRequest{Statement: "Signal visualiser"})
	s.Require().NoError(err)

	team := s.tdb.SeedTeam(s.T(), 1, s.student(), nil)
	s.Require().NoError(s.tdb.DB.Model(&models.ProblemStatementBank{}).Where("statement = ?", "Fee reminder bot").
		Updates(map[string]interface{}{"is_assigned": true, "assigned_team_id": team.ID}).Error)

	all, err := s.svc.List(s.ctx, facultyActor(s.facultyMember()), service.ProblemStatementQuery{})
	s.Require().NoError(err)
	s.Len(all, 3)

	year := 3
	available, err := s.svc.List(s.ctx, admin, service.ProblemStatementQuery{Year: &year, OnlyAvailable: true})
	s.Require().NoError(err)
	s.Require().Len(available, 1)
	s.Equal("Sports room booking", available[0].Statement)

	_, err = s.svc.List(s.ctx, studentActor(s.student()), service.ProblemStatementQuery{})
	s.ErrorIs(err, apperrors.ErrRoleNotAllowed)
}

func TestProblemStatementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProblemStatementServiceTestSuite))
}
