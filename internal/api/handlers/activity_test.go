package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"teampro-backend/internal/api/handlers"
	"teampro-backend/internal/database/models"
	apperrors "teampro-backend/internal/errors"
	"teampro-backend/internal/mocks"
	"teampro-backend/internal/service"
	"teampro-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ActivityHandlerTestSuite defines the test suite for ActivityHandler
type ActivityHandlerTestSuite struct {
	handlerSuite
	mockService *mocks.MockActivityServiceInterface
	handler     *handlers.ActivityHandler
}

// SetupTest sets up the test suite
func (suite *ActivityHandlerTestSuite) SetupTest() {
	suite.setup(models.RoleStudent)
	suite.mockService = mocks.NewMockActivityServiceInterface(suite.ctrl)
	suite.handler = handlers.NewActivityHandler(suite.mockService)

	suite.v1.GET("/teams/:id/activity", suite.handler.ListTeamActivity)
	suite.v1.GET("/notifications", suite.handler.ListNotifications)
	suite.v1.PUT("/notifications/:id/read", suite.handler.MarkNotificationRead)
}

func (suite *ActivityHandlerTestSuite) TestListTeamActivity() {
	teamID := uuid.New()
	entries := []service.ActivityEntry{
		{Action: "Added Meeting #2", PerformedByRole: models.RoleStudent, Timestamp: time.Now()},
		{Action: "Added Meeting #1", PerformedByRole: models.RoleStudent, Timestamp: time.Now().Add(-time.Hour)},
	}
	suite.mockService.EXPECT().ListForTeam(gomock.Any(), suite.actor, teamID).Return(entries, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/"+teamID.String()+"/activity", nil)
	var got []service.ActivityEntry
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	suite.Require().Len(got, 2)
	suite.Equal("Added Meeting #2", got[0].Action)

	suite.mockService.EXPECT().ListForTeam(gomock.Any(), suite.actor, teamID).Return(nil, apperrors.ErrNotTeamMember)
	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/"+teamID.String()+"/activity", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "not a member", "AuthorizationError")
}

func (suite *ActivityHandlerTestSuite) TestListNotifications() {
	suite.T().Run("All", func(t *testing.T) {
		suite.mockService.EXPECT().ListNotifications(gomock.Any(), suite.actor, false).
			Return([]models.Notification{{Message: "Team formed", Type: models.NotificationSuccess}}, nil)
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/notifications", nil)
		var got []models.Notification
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &got)
		suite.Require().Len(got, 1)
		suite.Equal(models.NotificationSuccess, got[0].Type)
	})

	suite.T().Run("Unread only", func(t *testing.T) {
		suite.mockService.EXPECT().ListNotifications(gomock.Any(), suite.actor, true).Return([]models.Notification{}, nil)
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/notifications?unread=true", nil)
		testutils.AssertSuccessResponse(t, recorder, http.StatusOK)
	})

	suite.T().Run("Invalid flag", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/notifications?unread=maybe", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid unread parameter", "ValidationError")
	})
}

func (suite *ActivityHandlerTestSuite) TestMarkNotificationRead() {
	id := uuid.New()
	suite.mockService.EXPECT().MarkNotificationRead(gomock.Any(), suite.actor, id).Return(result("Notification marked as read"), nil)
	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/notifications/"+id.String()+"/read", nil)
	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK)

	suite.mockService.EXPECT().MarkNotificationRead(gomock.Any(), suite.actor, id).Return(nil, apperrors.ErrNotificationNotFound)
	recorder = suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/notifications/"+id.String()+"/read", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "notification not found", "NotFound")
}

// TestActivityHandlerTestSuite runs the test suite
func TestActivityHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ActivityHandlerTestSuite))
}
