package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"teampro-backend/internal/api/handlers"
	"teampro-backend/internal/database/models"
	apperrors "teampro-backend/internal/errors"
	"teampro-backend/internal/mocks"
	"teampro-backend/internal/service"
	"teampro-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// DirectoryHandlerTestSuite defines the test suite for DirectoryHandler
type DirectoryHandlerTestSuite struct {
	handlerSuite
	mockService *mocks.MockDirectoryServiceInterface
	handler     *handlers.DirectoryHandler
}

// SetupTest sets up the test suite
func (suite *DirectoryHandlerTestSuite) SetupTest() {
	suite.setup(models.RoleAdmin)
	suite.mockService = mocks.NewMockDirectoryServiceInterface(suite.ctrl)
	suite.handler = handlers.NewDirectoryHandler(suite.mockService)

	suite.v1.POST("/students", suite.handler.CreateStudent)
	suite.v1.POST("/faculty", suite.handler.CreateFaculty)
	suite.v1.GET("/faculty", suite.handler.ListFaculty)
}

func (suite *DirectoryHandlerTestSuite) TestCreateStudent() {
	body := map[string]interface{}{
		"full_name":           "Asha Menon",
		"registration_number": "21CS042",
		"email":               "asha@college.edu",
		"password":            "s3cret-pass",
		"year":                3,
		"semester":            5,
	}

	suite.mockService.EXPECT().
		CreateStudent(gomock.Any(), suite.actor, &service.CreateStudentRequest{
			FullName:           "Asha Menon",
			RegistrationNumber: "21CS042",
			Email:              "asha@college.edu",
			Password:           "s3cret-pass",
			Year:               3,
			Semester:           5,
		}).
		Return(result("Student created"), nil)
	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/students", body, map[string]string{
		"Accept": "application/json",
	})
	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusCreated)

	suite.mockService.EXPECT().CreateStudent(gomock.Any(), suite.actor, gomock.Any()).Return(nil, apperrors.ErrStudentExists)
	recorder = suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/students", body)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already exists", "StudentExists")

	suite.mockService.EXPECT().CreateStudent(gomock.Any(), suite.actor, gomock.Any()).
		Return(nil, apperrors.NewValidationError("email", "must be a valid email"))
	recorder = suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/students", body)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "email", "ValidationError")
}

func (suite *DirectoryHandlerTestSuite) TestCreateFaculty() {
	suite.mockService.EXPECT().CreateFaculty(gomock.Any(), suite.actor, gomock.Any()).Return(nil, apperrors.ErrFacultyExists)
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/faculty", map[string]interface{}{
		"full_name":    "Dr. Ravi Kumar",
		"faculty_code": "CSE007",
		"email":        "ravi@college.edu",
		"password":     "mentor-pass",
	})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "", "FacultyExists")

	recorder = suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/faculty", "not an object")
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "", "ValidationError")
}

func (suite *DirectoryHandlerTestSuite) TestListFaculty() {
	suite.mockService.EXPECT().ListFaculty(gomock.Any(), suite.actor).
		Return([]models.Faculty{{FullName: "Dr. Ravi Kumar", Department: "CSE", PasswordHash: "hash"}}, nil)
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/faculty", nil)
	suite.Equal(http.StatusOK, recorder.Code)
	suite.NotContains(recorder.Body.String(), "hash")

	suite.mockService.EXPECT().ListFaculty(gomock.Any(), suite.actor).Return(nil, errors.New("connection reset"))
	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/faculty", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "internal server error", "")
	suite.NotContains(recorder.Body.String(), "connection reset")
}

// TestDirectoryHandlerTestSuite runs the test suite
func TestDirectoryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DirectoryHandlerTestSuite))
}
