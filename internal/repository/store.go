package repository

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lock keys serialize the read-check-write sequences of one aggregate
const (
	LockTeamFormation = "team-formation"
	LockDirectory     = "directory"
)

// TeamLock returns the lock key guarding a team's progress ledger
func TeamLock(id uuid.UUID) string {
	return "team:" + id.String()
}

// InvitationLock returns the lock key guarding a meeting invitation
func InvitationLock(id uuid.UUID) string {
	return "invitation:" + id.String()
}

// ProblemStatementLock returns the lock key guarding a bank entry
func ProblemStatementLock(id uuid.UUID) string {
	return "problem-statement:" + id.String()
}

// Repositories groups every repository bound to the same connection or transaction
type Repositories struct {
	Students          StudentRepositoryInterface
	Faculty           FacultyRepositoryInterface
	Admins            AdminRepositoryInterface
	Teams             TeamRepositoryInterface
	Sequences         SequenceRepositoryInterface
	Requests          TeamRequestRepositoryInterface
	Progress          ProjectProgressRepositoryInterface
	Meetings          TeamMeetingRepositoryInterface
	Invitations       MeetingInvitationRepositoryInterface
	ProblemStatements ProblemStatementRepositoryInterface
	Activity          ActivityLogRepositoryInterface
	Notifications     NotificationRepositoryInterface
	Schedules         FormationScheduleRepositoryInterface
}

// NewRepositories builds every repository on top of db
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Students:          NewStudentRepository(db),
		Faculty:           NewFacultyRepository(db),
		Admins:            NewAdminRepository(db),
		Teams:             NewTeamRepository(db),
		Sequences:         NewSequenceRepository(db),
		Requests:          NewTeamRequestRepository(db),
		Progress:          NewProjectProgressRepository(db),
		Meetings:          NewTeamMeetingRepository(db),
		Invitations:       NewMeetingInvitationRepository(db),
		ProblemStatements: NewProblemStatementRepository(db),
		Activity:          NewActivityLogRepository(db),
		Notifications:     NewNotificationRepository(db),
		Schedules:         NewFormationScheduleRepository(db),
	}
}

// Store is the entry point to the entity store
type Store struct {
	db *gorm.DB
}

// NewStore creates a new store
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB returns the underlying connection
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Read returns repositories for queries outside of a transaction
func (s *Store) Read(ctx context.Context) *Repositories {
	return NewRepositories(s.db.WithContext(ctx))
}

// Transaction runs fn with repositories bound to a single transaction.
// On Postgres each lock key is taken as a transaction scoped advisory lock, in sorted
// order, before fn runs. Other dialects rely on the database serializing writers.
func (s *Store) Transaction(ctx context.Context, fn func(r *Repositories) error, locks ...string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == "postgres" && len(locks) > 0 {
			keys := append([]string(nil), locks...)
			sort.Strings(keys)
			for _, key := range keys {
				if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error; err != nil {
					return err
				}
			}
		}
		return fn(NewRepositories(tx))
	})
}
