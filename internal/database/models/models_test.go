package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNextProgressStatus(t *testing.T) {
	testCases := []struct {
		name         string
		current      ProgressStatus
		hasMentor    bool
		hasStatement bool
		completion   int
		expected     ProgressStatus
	}{
		{"empty becomes not started", "", false, false, 0, ProgressStatusNotStarted},
		{"mentor only from not started", ProgressStatusNotStarted, true, false, 0, ProgressStatusMentorAssigned},
		{"mentor only from pending", ProgressStatusPending, true, false, 0, ProgressStatusMentorAssigned},
		{"statement only from not started", ProgressStatusNotStarted, false, true, 0, ProgressStatusProblemStatementAssigned},
		{"both assigned", ProgressStatusMentorAssigned, true, true, 0, ProgressStatusInProgress},
		{"both assigned from statement", ProgressStatusProblemStatementAssigned, true, true, 30, ProgressStatusInProgress},
		{"full completion", ProgressStatusInProgress, true, true, 100, ProgressStatusCompleted},
		{"full completion without assignments", ProgressStatusNotStarted, false, false, 100, ProgressStatusCompleted},
		{"completed is sticky", ProgressStatusCompleted, true, true, 40, ProgressStatusCompleted},
		{"statement only keeps mentor assigned", ProgressStatusMentorAssigned, false, true, 0, ProgressStatusMentorAssigned},
		{"nothing keeps pending", ProgressStatusPending, false, false, 0, ProgressStatusPending},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NextProgressStatus(tc.current, tc.hasMentor, tc.hasStatement, tc.completion)
			assert.Equal(t, tc.expected, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestProjectProgressMeetingsAllowed(t *testing.T) {
	mentor := uuid.New()

	p := &ProjectProgress{ProblemStatement: "   "}
	assert.False(t, p.MeetingsAllowed())

	p.AssignedFacultyID = &mentor
	assert.False(t, p.MeetingsAllowed())

	p.ProblemStatement = "Build a parking lot tracker"
	assert.True(t, p.MeetingsAllowed())

	p.Reconcile()
	assert.Equal(t, ProgressStatusInProgress, p.Status)
}

func TestDeriveInvitationStatus(t *testing.T) {
	testCases := []struct {
		name      string
		responses []InvitationResponse
		expected  InvitationStatus
	}{
		{"all pending", []InvitationResponse{ResponsePending, ResponsePending}, InvitationStatusPending},
		{"one accepted", []InvitationResponse{ResponseAccepted, ResponsePending}, InvitationStatusPending},
		{"all accepted", []InvitationResponse{ResponseAccepted, ResponseAccepted}, InvitationStatusAccepted},
		{"single slot accepted", []InvitationResponse{ResponseAccepted}, InvitationStatusAccepted},
		{"accepted then rejected", []InvitationResponse{ResponseAccepted, ResponseRejected}, InvitationStatusRejected},
		{"rejected then pending", []InvitationResponse{ResponseRejected, ResponsePending}, InvitationStatusRejected},
		{"rejected beats attended", []InvitationResponse{ResponseAttended, ResponseRejected}, InvitationStatusRejected},
		{"attended completes", []InvitationResponse{ResponseAttended, ResponseAccepted}, InvitationStatusCompleted},
		{"attended with pending completes", []InvitationResponse{ResponsePending, ResponseAttended}, InvitationStatusCompleted},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DeriveInvitationStatus(tc.responses))
		})
	}
}

func TestMeetingInvitationSlots(t *testing.T) {
	s1, s2 := uuid.New(), uuid.New()
	pending := ResponsePending
	inv := &MeetingInvitation{
		Student1ID:       s1,
		Student1Response: ResponseAccepted,
		Student2ID:       &s2,
		Student2Response: &pending,
		Status:           InvitationStatusPending,
	}

	*inv.ResponseFor(s2) = ResponseRejected
	inv.Recompute()
	assert.Equal(t, InvitationStatusRejected, inv.Status)
	assert.Nil(t, inv.ResponseFor(uuid.New()))

	inv.ResetResponses()
	assert.Equal(t, ResponsePending, inv.Student1Response)
	assert.Equal(t, ResponsePending, *inv.Student2Response)
	assert.Equal(t, InvitationStatusPending, inv.Status)

	inv.Status = InvitationStatusCancelled
	inv.Recompute()
	assert.Equal(t, InvitationStatusCancelled, inv.Status)
}

func TestIndividualInvitationHasOneSlot(t *testing.T) {
	inv := &MeetingInvitation{Student1ID: uuid.New(), Student1Response: ResponseAccepted}
	assert.Len(t, inv.Responses(), 1)
	inv.Recompute()
	assert.Equal(t, InvitationStatusAccepted, inv.Status)
}

func TestTeamMembers(t *testing.T) {
	s1, s2 := uuid.New(), uuid.New()
	team := &Team{Student1ID: s1}
	assert.True(t, team.HasMember(s1))
	assert.False(t, team.HasMember(s2))
	assert.Equal(t, []uuid.UUID{s1}, team.MemberIDs())

	team.Student2ID = &s2
	assert.True(t, team.HasMember(s2))
	assert.Equal(t, []uuid.UUID{s1, s2}, team.MemberIDs())
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("Guest").IsValid())
	assert.True(t, RequestStatusPending.IsValid())
	assert.False(t, RequestStatus("Cancelled").IsValid())
	assert.True(t, InvitationStatusAddedToProgress.IsValid())
	assert.True(t, ResponseAttended.IsValid())
	assert.False(t, InvitationResponse("Maybe").IsValid())
	assert.True(t, NotificationDanger.IsValid())
	assert.False(t, NotificationType("error").IsValid())
}
