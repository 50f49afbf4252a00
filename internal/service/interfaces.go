package service

import (
	"context"

	"teampro-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// FormationServiceInterface defines the interface for the team formation service
type FormationServiceInterface interface {
	ListSchedules(ctx context.Context, actor ActorContext) ([]models.TeamFormationSchedule, error)
	OpenFormation(ctx context.Context, actor ActorContext, req *ScheduleRequest) (*Result, error)
	CloseFormation(ctx context.Context, actor ActorContext, req *ScheduleRequest) (*Result, error)
	Pool(ctx context.Context, actor ActorContext) (*PoolView, error)
	SendRequest(ctx context.Context, actor ActorContext, receiverID uuid.UUID) (*Result, error)
	CancelRequest(ctx context.Context, actor ActorContext, receiverID uuid.UUID) (*Result, error)
	AcceptRequest(ctx context.Context, actor ActorContext, requestID uuid.UUID) (*Result, error)
	RejectRequest(ctx context.Context, actor ActorContext, requestID uuid.UUID) (*Result, error)
	GoIndividual(ctx context.Context, actor ActorContext) (*Result, error)
	GetTeam(ctx context.Context, actor ActorContext, teamID uuid.UUID) (*models.Team, error)
	GetMyTeam(ctx context.Context, actor ActorContext) (*models.Team, error)
	ListTeams(ctx context.Context, actor ActorContext) ([]models.Team, error)
	DeleteTeam(ctx context.Context, actor ActorContext, teamID uuid.UUID) (*Result, error)
}

// ProgressServiceInterface defines the interface for the progress ledger service
type ProgressServiceInterface interface {
	GetProgress(ctx context.Context, actor ActorContext, teamID uuid.UUID) (*ProgressView, error)
	AssignMentor(ctx context.Context, actor ActorContext, teamID, facultyID uuid.UUID) (*Result, error)
	AssignProblemStatement(ctx context.Context, actor ActorContext, teamID uuid.UUID, statement string) (*Result, error)
	AssignFromBank(ctx context.Context, actor ActorContext, teamID, bankID uuid.UUID) (*Result, error)
	AddMeeting(ctx context.Context, actor ActorContext, teamID uuid.UUID, req *AddMeetingRequest) (*Result, error)
	UpdateMeeting(ctx context.Context, actor ActorContext, meetingID uuid.UUID, req *UpdateMeetingRequest) (*Result, error)
	AddFacultyReview(ctx context.Context, actor ActorContext, meetingID uuid.UUID, review string) (*Result, error)
	GetProof(ctx context.Context, actor ActorContext, meetingID uuid.UUID) (*Proof, error)
}

// InvitationServiceInterface defines the interface for the meeting invitation service
type InvitationServiceInterface interface {
	SendInvite(ctx context.Context, actor ActorContext, req *SendInviteRequest) (*Result, error)
	Respond(ctx context.Context, actor ActorContext, invitationID uuid.UUID, req *RespondRequest) (*Result, error)
	MarkAttended(ctx context.Context, actor ActorContext, invitationID uuid.UUID) (*Result, error)
	Cancel(ctx context.Context, actor ActorContext, invitationID uuid.UUID) (*Result, error)
	Edit(ctx context.Context, actor ActorContext, invitationID uuid.UUID, req *InvitationDetails) (*Result, error)
	Delete(ctx context.Context, actor ActorContext, invitationID uuid.UUID) (*Result, error)
	ListForTeam(ctx context.Context, actor ActorContext, teamID uuid.UUID) ([]models.MeetingInvitation, error)
	ListForFaculty(ctx context.Context, actor ActorContext) ([]models.MeetingInvitation, error)
}

// ActivityServiceInterface defines the interface for the activity and notification service
type ActivityServiceInterface interface {
	ListForTeam(ctx context.Context, actor ActorContext, teamID uuid.UUID) ([]ActivityEntry, error)
	ListNotifications(ctx context.Context, actor ActorContext, unreadOnly bool) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, actor ActorContext, notificationID uuid.UUID) (*Result, error)
}

// ProblemStatementServiceInterface defines the interface for the problem statement bank service
type ProblemStatementServiceInterface interface {
	Create(ctx context.Context, actor ActorContext, req *ProblemStatementRequest) (*Result, error)
	Update(ctx context.Context, actor ActorContext, id uuid.UUID, req *ProblemStatementRequest) (*Result, error)
	Delete(ctx context.Context, actor ActorContext, id uuid.UUID) (*Result, error)
	List(ctx context.Context, actor ActorContext, query ProblemStatementQuery) ([]models.ProblemStatementBank, error)
}

// DirectoryServiceInterface defines the interface for the directory service
type DirectoryServiceInterface interface {
	CreateStudent(ctx context.Context, actor ActorContext, req *CreateStudentRequest) (*Result, error)
	CreateFaculty(ctx context.Context, actor ActorContext, req *CreateFacultyRequest) (*Result, error)
	CreateAdmin(ctx context.Context, req *CreateAdminRequest) (*Result, error)
	ListFaculty(ctx context.Context, actor ActorContext) ([]models.Faculty, error)
	Authenticate(ctx context.Context, req *LoginRequest) (*ActorContext, error)
}

var (
	_ FormationServiceInterface        = (*FormationService)(nil)
	_ ProgressServiceInterface         = (*ProgressService)(nil)
	_ InvitationServiceInterface       = (*InvitationService)(nil)
	_ ActivityServiceInterface         = (*ActivityService)(nil)
	_ ProblemStatementServiceInterface = (*ProblemStatementService)(nil)
	_ DirectoryServiceInterface        = (*DirectoryService)(nil)
)
