package service_test

import (
	"errors"
	"testing"

	"teampro-backend/internal/database/models"
	apperrors "teampro-backend/internal/errors"
	"teampro-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// FormationServiceTestSuite tests the team formation protocol
type FormationServiceTestSuite struct {
	serviceSuite
	svc *service.FormationService
}

func (s *FormationServiceTestSuite) SetupTest() {
	s.serviceSuite.SetupTest()
	s.svc = service.NewFormationService(s.store, s.validator, s.notifier)
}

func (s *FormationServiceTestSuite) pendingRequest(sender, receiver *models.Student) uuid.UUID {
	res, err := s.svc.SendRequest(s.ctx, studentActor(sender), receiver.ID)
	s.Require().NoError(err)
	s.Require().NotNil(res.ID)
	return *res.ID
}

func (s *FormationServiceTestSuite) requestStatus(id uuid.UUID) (models.RequestStatus, bool) {
	var request models.TeamRequest
	if err := s.tdb.DB.First(&request, "id = ?", id).Error; err != nil {
		return "", false
	}
	return request.Status, true
}

func (s *FormationServiceTestSuite) TestAcceptFormsTeamThenSenderCannotSendAgain() {
	a, b, c := s.student(), s.student(), s.student()

	requestID := s.pendingRequest(a, b)
	res, err := s.svc.AcceptRequest(s.ctx, studentActor(b), requestID)
	s.Require().NoError(err)
	s.True(res.Success)
	s.Require().NotNil(res.TeamNumber)
	s.Equal(1, *res.TeamNumber)

	team, err := s.svc.GetMyTeam(s.ctx, studentActor(a))
	s.Require().NoError(err)
	s.Equal(1, team.TeamNumber)
	s.Equal(a.ID, team.Student1ID)
	s.Require().NotNil(team.Student2ID)
	s.Equal(b.ID, *team.Student2ID)
	s.False(team.IsIndividual)

	status, found := s.requestStatus(requestID)
	s.True(found)
	s.Equal(models.RequestStatusAccepted, status)

	_, err = s.svc.SendRequest(s.ctx, studentActor(a), c.ID)
	s.ErrorIs(err, apperrors.ErrAlreadyTeamed)
	s.Equal("AlreadyTeamed", apperrors.Code(err))
}

func (s *FormationServiceTestSuite) TestSendRequestAllowsOnePendingPerSender() {
	a, b, c := s.student(), s.student(), s.student()
	s.pendingRequest(a, b)

	_, err := s.svc.SendRequest(s.ctx, studentActor(a), c.ID)
	s.ErrorIs(err, apperrors.ErrAlreadyPending)

	var count int64
	s.Require().NoError(s.tdb.DB.Model(&models.TeamRequest{}).
		Where("sender_id = ? AND status = ?", a.ID, models.RequestStatusPending).Count(&count).Error)
	s.Equal(int64(1), count)
}

func (s *FormationServiceTestSuite) TestSendRequestToTeamedReceiver() {
	a, b, c := s.student(), s.student(), s.student()
	s.tdb.SeedTeam(s.T(), 1, b, c)

	_, err := s.svc.SendRequest(s.ctx, studentActor(a), b.ID)
	s.ErrorIs(err, apperrors.ErrReceiverAlreadyTeamed)
	s.True(errors.Is(err, apperrors.ErrAlreadyTeamed))
}

func (s *FormationServiceTestSuite) TestSendRequestValidation() {
	a := s.student()

	_, err := s.svc.SendRequest(s.ctx, studentActor(a), a.ID)
	s.True(apperrors.IsValidation(err))

	_, err = s.svc.SendRequest(s.ctx, studentActor(a), uuid.New())
	s.ErrorIs(err, apperrors.ErrStudentNotFound)

	_, err = s.svc.SendRequest(s.ctx, adminActor("CSE"), a.ID)
	s.ErrorIs(err, apperrors.ErrRoleNotAllowed)
}

func (s *FormationServiceTestSuite) TestSendRequestNotifiesReceiverAfterCommit() {
	a, b := s.student(), s.student()
	s.pendingRequest(a, b)

	published := s.notifier.sentTo(b.ID)
	s.Require().Len(published, 1)
	s.Equal(models.NotificationInfo, published[0].Type)
	s.Contains(published[0].Message, a.FullName)

	var stored []models.Notification
	s.Require().NoError(s.tdb.DB.Where("student_id = ?", b.ID).Find(&stored).Error)
	s.Len(stored, 1)
}

func (s *FormationServiceTestSuite) TestPublishFailureDoesNotFailOperation() {
	a, b := s.student(), s.student()
	s.notifier.err = errors.New("redis unavailable")

	res, err := s.svc.SendRequest(s.ctx, studentActor(a), b.ID)
	s.Require().NoError(err)
	s.True(res.Success)
}

func (s *FormationServiceTestSuite) TestAcceptRequestChecks() {
	a, b, c := s.student(), s.student(), s.student()
	requestID := s.pendingRequest(a, b)

	_, err := s.svc.AcceptRequest(s.ctx, studentActor(c), requestID)
	s.ErrorIs(err, apperrors.ErrNotRequestOwner)

	_, err = s.svc.AcceptRequest(s.ctx, studentActor(b), uuid.New())
	s.ErrorIs(err, apperrors.ErrTeamRequestNotFound)

	_, err = s.svc.RejectRequest(s.ctx, studentActor(b), requestID)
	s.Require().NoError(err)
	_, err = s.svc.AcceptRequest(s.ctx, studentActor(b), requestID)
	s.ErrorIs(err, apperrors.ErrRequestNotPending)
}

func (s *FormationServiceTestSuite) TestAcceptDiscardsRequestWhenSenderAlreadyTeamed() {
	a, b, c := s.student(), s.student(), s.student()
	requestID := s.pendingRequest(a, b)
	s.tdb.SeedTeam(s.T(), 7, a, c)

	_, err := s.svc.AcceptRequest(s.ctx, studentActor(b), requestID)
	s.ErrorIs(err, apperrors.ErrSenderAlreadyTeamed)

	_, found := s.requestStatus(requestID)
	s.False(found)

	_, err = s.svc.GetMyTeam(s.ctx, studentActor(b))
	s.ErrorIs(err, apperrors.ErrTeamNotFound)
}

func (s *FormationServiceTestSuite) TestAcceptLeavesOtherIncomingRequestsPending() {
	a, b, c := s.student(), s.student(), s.student()
	fromA := s.pendingRequest(a, c)
	fromB := s.pendingRequest(b, c)

	_, err := s.svc.AcceptRequest(s.ctx, studentActor(c), fromA)
	s.Require().NoError(err)

	status, found := s.requestStatus(fromB)
	s.True(found)
	s.Equal(models.RequestStatusPending, status)

	_, err = s.svc.AcceptRequest(s.ctx, studentActor(c), fromB)
	s.ErrorIs(err, apperrors.ErrAlreadyTeamed)
}

func (s *FormationServiceTestSuite) TestAcceptClearsReceiverOutgoingRequest() {
	a, b, c := s.student(), s.student(), s.student()
	outgoing := s.pendingRequest(b, c)
	incoming := s.pendingRequest(a, b)

	_, err := s.svc.AcceptRequest(s.ctx, studentActor(b), incoming)
	s.Require().NoError(err)

	_, found := s.requestStatus(outgoing)
	s.False(found)
	s.Len(s.notifier.sentTo(a.ID), 1)
	s.Equal(models.NotificationSuccess, s.notifier.sentTo(a.ID)[0].Type)
}

func (s *FormationServiceTestSuite) TestRejectRequestNotifiesSender() {
	a, b := s.student(), s.student()
	requestID := s.pendingRequest(a, b)

	res, err := s.svc.RejectRequest(s.ctx, studentActor(b), requestID)
	s.Require().NoError(err)
	s.True(res.Success)

	status, _ := s.requestStatus(requestID)
	s.Equal(models.RequestStatusRejected, status)
	published := s.notifier.sentTo(a.ID)
	s.Require().Len(published, 1)
	s.Equal(models.NotificationDanger, published[0].Type)

	// A rejected request no longer blocks the sender
	_, err = s.svc.SendRequest(s.ctx, studentActor(a), b.ID)
	s.NoError(err)
}

func (s *FormationServiceTestSuite) TestCancelRequest() {
	a, b := s.student(), s.student()
	requestID := s.pendingRequest(a, b)

	_, err := s.svc.CancelRequest(s.ctx, studentActor(a), b.ID)
	s.Require().NoError(err)
	_, found := s.requestStatus(requestID)
	s.False(found)

	_, err = s.svc.CancelRequest(s.ctx, studentActor(a), b.ID)
	s.ErrorIs(err, apperrors.ErrTeamRequestNotFound)
}

func (s *FormationServiceTestSuite) TestGoIndividual() {
	a, b, c := s.student(), s.student(), s.student()
	sent := s.pendingRequest(a, b)
	received := s.pendingRequest(c, a)

	res, err := s.svc.GoIndividual(s.ctx, studentActor(a))
	s.Require().NoError(err)
	s.Require().NotNil(res.TeamNumber)

	team, err := s.svc.GetMyTeam(s.ctx, studentActor(a))
	s.Require().NoError(err)
	s.True(team.IsIndividual)
	s.Nil(team.Student2ID)

	_, found := s.requestStatus(sent)
	s.False(found)
	status, _ := s.requestStatus(received)
	s.Equal(models.RequestStatusRejected, status)

	warned := s.notifier.sentTo(c.ID)
	s.Require().Len(warned, 1)
	s.Equal(models.NotificationWarning, warned[0].Type)

	logs := s.activityOf(team.ID)
	s.Require().Len(logs, 1)
	s.Equal("Registered as Individual", logs[0].Action)

	_, err = s.svc.GoIndividual(s.ctx, studentActor(a))
	s.ErrorIs(err, apperrors.ErrAlreadyTeamed)
}

func (s *FormationServiceTestSuite) TestTeamNumbersAreNeverReissued() {
	a, b, c := s.student(), s.student(), s.student()

	res, err := s.svc.AcceptRequest(s.ctx, studentActor(b), s.pendingRequest(a, b))
	s.Require().NoError(err)
	s.Equal(1, *res.TeamNumber)

	_, err = s.svc.DeleteTeam(s.ctx, adminActor("CSE"), *res.ID)
	s.Require().NoError(err)

	res, err = s.svc.GoIndividual(s.ctx, studentActor(c))
	s.Require().NoError(err)
	s.Equal(2, *res.TeamNumber)
}

func (s *FormationServiceTestSuite) TestTeamNumberContinuesAfterSeededTeams() {
	a, b := s.student(), s.student()
	s.tdb.SeedTeam(s.T(), 41, s.student(), nil)

	res, err := s.svc.AcceptRequest(s.ctx, studentActor(b), s.pendingRequest(a, b))
	s.Require().NoError(err)
	s.Equal(42, *res.TeamNumber)
}

func (s *FormationServiceTestSuite) TestDeleteTeamRemovesScopedRows() {
	team, a, b, _ := s.readyTeam()
	s.tdb.SeedMeeting(s.T(), team.ID, 1, 20)
	entry := s.factories.ProblemStatement.Create()
	entry.IsAssigned = true
	entry.AssignedTeamID = &team.ID
	s.Require().NoError(s.tdb.DB.Create(entry).Error)

	_, err := s.svc.DeleteTeam(s.ctx, adminActor("ECE"), team.ID)
	s.ErrorIs(err, apperrors.ErrOtherDepartment)

	_, err = s.svc.DeleteTeam(s.ctx, adminActor("CSE"), team.ID)
	s.Require().NoError(err)

	for _, model := range []interface{}{&models.TeamMeeting{}, &models.ProjectProgress{}, &models.TeamMembership{}} {
		var count int64
		s.Require().NoError(s.tdb.DB.Model(model).Where("team_id = ?", team.ID).Count(&count).Error)
		s.Zero(count)
	}
	var released models.ProblemStatementBank
	s.Require().NoError(s.tdb.DB.First(&released, "id = ?", entry.ID).Error)
	s.False(released.IsAssigned)
	s.Nil(released.AssignedTeamID)

	// Both students can form teams again
	_, err = s.svc.SendRequest(s.ctx, studentActor(a), b.ID)
	s.NoError(err)
}

func (s *FormationServiceTestSuite) TestPoolFollowsFormationSchedule() {
	me, mate, other := s.student(), s.student(), s.student()
	s.tdb.SeedStudent(s.T(), s.factories.Student.WithCohort("CSE", 2, 3))
	s.tdb.SeedTeam(s.T(), 1, other, nil)

	_, err := s.svc.Pool(s.ctx, studentActor(me))
	s.ErrorIs(err, apperrors.ErrFormationClosed)

	admin := adminActor("CSE")
	_, err = s.svc.OpenFormation(s.ctx, admin, &service.ScheduleRequest{Year: 3})
	s.Require().NoError(err)
	s.pendingRequest(me, mate)

	view, err := s.svc.Pool(s.ctx, studentActor(me))
	s.Require().NoError(err)
	s.False(view.IsInTeam)
	s.Require().NotNil(view.MyPendingRequest)
	s.Len(view.Students, 2)
	for _, entry := range view.Students {
		s.NotEqual(me.ID, entry.Student.ID)
		switch entry.Student.ID {
		case mate.ID:
			s.True(entry.HasPendingRequestFromMe)
			s.False(entry.IsInTeam)
		case other.ID:
			s.True(entry.IsInTeam)
		}
	}

	_, err = s.svc.CloseFormation(s.ctx, admin, &service.ScheduleRequest{Year: 3})
	s.Require().NoError(err)
	_, err = s.svc.Pool(s.ctx, studentActor(me))
	s.ErrorIs(err, apperrors.ErrFormationClosed)
}

func (s *FormationServiceTestSuite) TestListSchedulesCoversEveryYear() {
	admin := adminActor("CSE")
	_, err := s.svc.OpenFormation(s.ctx, admin, &service.ScheduleRequest{Year: 2})
	s.Require().NoError(err)

	schedules, err := s.svc.ListSchedules(s.ctx, admin)
	s.Require().NoError(err)
	s.Require().Len(schedules, 4)
	for i, sc := range schedules {
		s.Equal(i+1, sc.Year)
		s.Equal(sc.Year == 2, sc.IsOpen)
	}

	_, err = s.svc.OpenFormation(s.ctx, admin, &service.ScheduleRequest{Year: 5})
	s.True(apperrors.IsValidation(err))
}

func (s *FormationServiceTestSuite) TestGetTeamVisibility() {
	team, a, _, mentor := s.readyTeam()
	outsider := s.student()

	_, err := s.svc.GetTeam(s.ctx, studentActor(a), team.ID)
	s.NoError(err)
	_, err = s.svc.GetTeam(s.ctx, facultyActor(mentor), team.ID)
	s.NoError(err)
	_, err = s.svc.GetTeam(s.ctx, studentActor(outsider), team.ID)
	s.ErrorIs(err, apperrors.ErrNotTeamMember)
	_, err = s.svc.GetTeam(s.ctx, adminActor("ECE"), team.ID)
	s.ErrorIs(err, apperrors.ErrOtherDepartment)
}

func TestFormationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FormationServiceTestSuite))
}
