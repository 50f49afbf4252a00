package repository

import (
	"time"

	"teampro-backend/internal/database/models"

	"github.com/google/uuid"
)

// StudentRepositoryInterface defines the interface for student repository operations
type StudentRepositoryInterface interface {
	Create(student *models.Student) error
	GetByID(id uuid.UUID) (*models.Student, error)
	GetByEmail(email string) (*models.Student, error)
	GetByRegistrationNumber(regNo string) (*models.Student, error)
	ListByCohort(department string, year, semester int) ([]models.Student, error)
}

// FacultyRepositoryInterface defines the interface for faculty repository operations
type FacultyRepositoryInterface interface {
	Create(faculty *models.Faculty) error
	GetByID(id uuid.UUID) (*models.Faculty, error)
	GetByEmail(email string) (*models.Faculty, error)
	GetByCode(code string) (*models.Faculty, error)
	ListByDepartment(department string) ([]models.Faculty, error)
}

// AdminRepositoryInterface defines the interface for admin repository operations
type AdminRepositoryInterface interface {
	Create(admin *models.Admin) error
	GetByEmail(email string) (*models.Admin, error)
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByStudentID(studentID uuid.UUID) (*models.Team, error)
	IsStudentTeamed(studentID uuid.UUID) (bool, error)
	TeamedStudentIDs(studentIDs []uuid.UUID) (map[uuid.UUID]bool, error)
	ListByDepartment(department string) ([]models.Team, error)
	MaxTeamNumber() (int, error)
	Delete(id uuid.UUID) error
}

// SequenceRepositoryInterface defines the interface for sequence operations
type SequenceRepositoryInterface interface {
	Next(name string, floor int) (int, error)
}

// TeamRequestRepositoryInterface defines the interface for team request repository operations
type TeamRequestRepositoryInterface interface {
	Create(request *models.TeamRequest) error
	GetByID(id uuid.UUID) (*models.TeamRequest, error)
	GetPendingBySender(senderID uuid.UUID) (*models.TeamRequest, error)
	GetPendingBetween(senderID, receiverID uuid.UUID) (*models.TeamRequest, error)
	ListPendingForReceiver(receiverID uuid.UUID) ([]models.TeamRequest, error)
	Update(request *models.TeamRequest) error
	Delete(id uuid.UUID) error
	DeletePendingBySender(senderID uuid.UUID) (int64, error)
	RejectPendingForReceiver(receiverID uuid.UUID, at time.Time) ([]models.TeamRequest, error)
	DeleteBetween(a, b uuid.UUID) error
}

// ProjectProgressRepositoryInterface defines the interface for project progress repository operations
type ProjectProgressRepositoryInterface interface {
	Create(progress *models.ProjectProgress) error
	GetByTeamID(teamID uuid.UUID) (*models.ProjectProgress, error)
	ListByFaculty(facultyID uuid.UUID) ([]models.ProjectProgress, error)
	Update(progress *models.ProjectProgress) error
	DeleteByTeamID(teamID uuid.UUID) error
}

// TeamMeetingRepositoryInterface defines the interface for team meeting repository operations
type TeamMeetingRepositoryInterface interface {
	Create(meeting *models.TeamMeeting) error
	GetByID(id uuid.UUID) (*models.TeamMeeting, error)
	ListByTeam(teamID uuid.UUID) ([]models.TeamMeeting, error)
	GetLatest(teamID uuid.UUID) (*models.TeamMeeting, error)
	GetPrevious(teamID uuid.UUID, meetingNumber int) (*models.TeamMeeting, error)
	MaxMeetingNumber(teamID uuid.UUID) (int, error)
	Update(meeting *models.TeamMeeting) error
	DeleteByTeamID(teamID uuid.UUID) error
}

// MeetingInvitationRepositoryInterface defines the interface for meeting invitation repository operations
type MeetingInvitationRepositoryInterface interface {
	Create(invitation *models.MeetingInvitation) error
	GetByID(id uuid.UUID) (*models.MeetingInvitation, error)
	ListByTeam(teamID uuid.UUID) ([]models.MeetingInvitation, error)
	ListByFaculty(facultyID uuid.UUID) ([]models.MeetingInvitation, error)
	Update(invitation *models.MeetingInvitation) error
	Delete(id uuid.UUID) error
	DeleteByTeamID(teamID uuid.UUID) error
	SweepStale(scope string, id uuid.UUID, cutoff time.Time) (int64, error)
}

// ProblemStatementRepositoryInterface defines the interface for problem statement bank operations
type ProblemStatementRepositoryInterface interface {
	Create(entry *models.ProblemStatementBank) error
	GetByID(id uuid.UUID) (*models.ProblemStatementBank, error)
	List(filter ProblemStatementFilter) ([]models.ProblemStatementBank, error)
	ExistsInDepartment(department, statement string, excludeID *uuid.UUID) (bool, error)
	Update(entry *models.ProblemStatementBank) error
	Delete(id uuid.UUID) error
	ReleaseByTeam(teamID uuid.UUID) error
}

// ActivityLogRepositoryInterface defines the interface for activity log operations
type ActivityLogRepositoryInterface interface {
	Create(entry *models.TeamActivityLog) error
	ListByTeam(teamID uuid.UUID) ([]models.TeamActivityLog, error)
	DeleteByTeamID(teamID uuid.UUID) error
}

// NotificationRepositoryInterface defines the interface for notification operations
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	GetByID(id uuid.UUID) (*models.Notification, error)
	ListByStudent(studentID uuid.UUID, unreadOnly bool) ([]models.Notification, error)
	MarkRead(id uuid.UUID) error
}

// FormationScheduleRepositoryInterface defines the interface for formation schedule operations
type FormationScheduleRepositoryInterface interface {
	Get(department string, year int) (*models.TeamFormationSchedule, error)
	ListByDepartment(department string) ([]models.TeamFormationSchedule, error)
	Create(schedule *models.TeamFormationSchedule) error
	Update(schedule *models.TeamFormationSchedule) error
}
