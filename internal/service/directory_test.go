package service_test

import (
	"testing"

	"teampro-backend/internal/database/models"
	apperrors "teampro-backend/internal/errors"
	"teampro-backend/internal/service"

	"github.com/stretchr/testify/suite"
)

// DirectoryServiceTestSuite tests account creation and authentication
type DirectoryServiceTestSuite struct {
	serviceSuite
	svc *service.DirectoryService
}

func (s *DirectoryServiceTestSuite) SetupTest() {
	s.serviceSuite.SetupTest()
	s.svc = service.NewDirectoryService(s.store, s.validator)
}

func newStudentRequest() *service.CreateStudentRequest {
	return &service.CreateStudentRequest{
		FullName:           "Asha Menon",
		RegistrationNumber: "21CS042",
		Email:              "Asha.Menon@College.edu",
		Password:           "s3cret-pass",
		Year:               3,
		Semester:           5,
	}
}

func (s *DirectoryServiceTestSuite) TestCreateStudentAndAuthenticate() {
	admin := adminActor("CSE")
	res, err := s.svc.CreateStudent(s.ctx, admin, newStudentRequest())
	s.Require().NoError(err)

	var stored models.Student
	s.Require().NoError(s.tdb.DB.First(&stored, "id = ?", *res.ID).Error)
	s.Equal("asha.menon@college.edu", stored.Email)
	s.Equal("CSE", stored.Department)
	s.NotEqual("s3cret-pass", stored.PasswordHash)

	actor, err := s.svc.Authenticate(s.ctx, &service.LoginRequest{
		Role:     models.RoleStudent,
		Email:    "ASHA.MENON@college.edu",
		Password: "s3cret-pass",
	})
	s.Require().NoError(err)
	s.Equal(stored.ID, actor.ID)
	s.Equal(models.RoleStudent, actor.Role)
	s.Equal("CSE", actor.Department)
	s.Equal("Asha Menon", actor.Name)

	_, err = s.svc.Authenticate(s.ctx, &service.LoginRequest{
		Role:     models.RoleStudent,
		Email:    "asha.menon@college.edu",
		Password: "wrong-pass",
	})
	s.ErrorIs(err, apperrors.ErrInvalidCredentials)

	_, err = s.svc.Authenticate(s.ctx, &service.LoginRequest{
		Role:     models.RoleFaculty,
		Email:    "asha.menon@college.edu",
		Password: "s3cret-pass",
	})
	s.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (s *DirectoryServiceTestSuite) TestCreateStudentConflicts() {
	admin := adminActor("CSE")
	_, err := s.svc.CreateStudent(s.ctx, admin, newStudentRequest())
	s.Require().NoError(err)

	sameEmail := newStudentRequest()
	sameEmail.RegistrationNumber = "21CS043"
	_, err = s.svc.CreateStudent(s.ctx, admin, sameEmail)
	s.ErrorIs(err, apperrors.ErrStudentExists)

	sameReg := newStudentRequest()
	sameReg.Email = "other@college.edu"
	_, err = s.svc.CreateStudent(s.ctx, admin, sameReg)
	s.ErrorIs(err, apperrors.ErrStudentExists)

	invalid := newStudentRequest()
	invalid.Email = "not-an-email"
	_, err = s.svc.CreateStudent(s.ctx, admin, invalid)
	s.True(apperrors.IsValidation(err))

	_, err = s.svc.CreateStudent(s.ctx, studentActor(s.student()), newStudentRequest())
	s.ErrorIs(err, apperrors.ErrRoleNotAllowed)
}

func (s *DirectoryServiceTestSuite) TestCreateFacultyAndList() {
	admin := adminActor("ECE")
	_, err := s.svc.CreateFaculty(s.ctx, admin, &service.CreateFacultyRequest{
		FullName:    "Dr. Ravi Kumar",
		FacultyCode: "ECE007",
		Email:       "ravi@college.edu",
		Password:    "mentor-pass",
		Designation: "Professor",
	})
	s.Require().NoError(err)

	_, err = s.svc.CreateFaculty(s.ctx, admin, &service.CreateFacultyRequest{
		FullName:    "Dr. R. Kumar",
		FacultyCode: "ECE007",
		Email:       "rkumar@college.edu",
		Password:    "mentor-pass",
	})
	s.ErrorIs(err, apperrors.ErrFacultyExists)

	faculty, err := s.svc.ListFaculty(s.ctx, admin)
	s.Require().NoError(err)
	s.Require().Len(faculty, 1)
	s.Equal("ECE", faculty[0].Department)

	actor, err := s.svc.Authenticate(s.ctx, &service.LoginRequest{Role: models.RoleFaculty, Email: "ravi@college.edu", Password: "mentor-pass"})
	s.Require().NoError(err)
	s.Equal(models.RoleFaculty, actor.Role)
}

func (s *DirectoryServiceTestSuite) TestCreateAdmin() {
	req := &service.CreateAdminRequest{
		FullName:   "HoD CSE",
		Email:      "hod.cse@college.edu",
		Password:   "admin-pass",
		Department: "CSE",
	}
	_, err := s.svc.CreateAdmin(s.ctx, req)
	s.Require().NoError(err)

	_, err = s.svc.CreateAdmin(s.ctx, req)
	s.ErrorIs(err, apperrors.ErrAdminExists)

	actor, err := s.svc.Authenticate(s.ctx, &service.LoginRequest{Role: models.RoleAdmin, Email: req.Email, Password: "admin-pass"})
	s.Require().NoError(err)
	s.Equal("CSE", actor.Department)
}

func TestDirectoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DirectoryServiceTestSuite))
}
