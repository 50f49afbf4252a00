package service

import (
	"teampro-backend/internal/database/models"
	apperrors "teampro-backend/internal/errors"

	"github.com/google/uuid"
)

// ActorContext identifies who invokes an operation. It is passed explicitly to every call.
type ActorContext struct {
	Role       models.Role `json:"role"`
	ID         uuid.UUID   `json:"id"`
	Department string      `json:"department"`
	Name       string      `json:"name"`
}

// Is reports whether the actor has one of the roles
func (a ActorContext) Is(roles ...models.Role) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}

func (a ActorContext) require(roles ...models.Role) error {
	if a.ID == uuid.Nil || !a.Is(roles...) {
		return apperrors.ErrRoleNotAllowed
	}
	return nil
}

// Result is the envelope every mutating operation returns on success
type Result struct {
	Success       bool       `json:"success"`
	Message       string     `json:"message"`
	TeamNumber    *int       `json:"team_number,omitempty"`
	MeetingNumber *int       `json:"meeting_number,omitempty"`
	ID            *uuid.UUID `json:"id,omitempty"`
}

func ok(message string) *Result {
	return &Result{Success: true, Message: message}
}

func (r *Result) withTeamNumber(n int) *Result {
	r.TeamNumber = &n
	return r
}

func (r *Result) withMeetingNumber(n int) *Result {
	r.MeetingNumber = &n
	return r
}

func (r *Result) withID(id uuid.UUID) *Result {
	r.ID = &id
	return r
}
