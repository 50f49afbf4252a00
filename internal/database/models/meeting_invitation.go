package models

import (
	"time"

	"github.com/google/uuid"
)

// MeetingInvitation is a faculty-initiated meeting with per-student responses
type MeetingInvitation struct {
	BaseModel
	TeamID           uuid.UUID           `json:"team_id" gorm:"type:uuid;not null;index"`
	FacultyID        uuid.UUID           `json:"faculty_id" gorm:"type:uuid;not null;index"`
	Title            string              `json:"title" gorm:"not null;size:200"`
	Description      string              `json:"description" gorm:"size:1000"`
	MeetingDateTime  time.Time           `json:"meeting_date_time" gorm:"not null"`
	Location         string              `json:"location" gorm:"size:200"`
	DurationMinutes  int                 `json:"duration_minutes" gorm:"not null;default:60"`
	Student1ID       uuid.UUID           `json:"student1_id" gorm:"type:uuid;not null"`
	Student1Response InvitationResponse  `json:"student1_response" gorm:"type:varchar(20);not null;default:'Pending'"`
	Student2ID       *uuid.UUID          `json:"student2_id,omitempty" gorm:"type:uuid"`
	Student2Response *InvitationResponse `json:"student2_response,omitempty" gorm:"type:varchar(20)"`
	Status           InvitationStatus    `json:"status" gorm:"type:varchar(20);not null;default:'Pending';index"`
}

// TableName returns the table name for MeetingInvitation
func (MeetingInvitation) TableName() string {
	return "meeting_invitations"
}

// ResponseFor returns the response slot held by the student, or nil when the student has no slot
func (i *MeetingInvitation) ResponseFor(studentID uuid.UUID) *InvitationResponse {
	if i.Student1ID == studentID {
		return &i.Student1Response
	}
	if i.Student2ID != nil && *i.Student2ID == studentID && i.Student2Response != nil {
		return i.Student2Response
	}
	return nil
}

// Responses returns every present response slot
func (i *MeetingInvitation) Responses() []InvitationResponse {
	out := []InvitationResponse{i.Student1Response}
	if i.Student2ID != nil && i.Student2Response != nil {
		out = append(out, *i.Student2Response)
	}
	return out
}

// ResetResponses puts every present slot back to Pending
func (i *MeetingInvitation) ResetResponses() {
	i.Student1Response = ResponsePending
	if i.Student2ID != nil {
		pending := ResponsePending
		i.Student2Response = &pending
	}
	i.Status = InvitationStatusPending
}

// Recompute derives the aggregate Status from the response slots.
// Cancelled and AddedToProgress are set explicitly and are never overwritten.
func (i *MeetingInvitation) Recompute() {
	if i.Status == InvitationStatusCancelled || i.Status == InvitationStatusAddedToProgress {
		return
	}
	i.Status = DeriveInvitationStatus(i.Responses())
}

// DeriveInvitationStatus aggregates slot responses: any rejection rejects the invitation,
// any attendance completes it, and it is accepted only once every slot has accepted.
func DeriveInvitationStatus(responses []InvitationResponse) InvitationStatus {
	if len(responses) == 0 {
		return InvitationStatusPending
	}
	attended := false
	allAccepted := true
	for _, r := range responses {
		switch r {
		case ResponseRejected:
			return InvitationStatusRejected
		case ResponseAttended:
			attended = true
		case ResponseAccepted:
		default:
			allAccepted = false
		}
	}
	if attended {
		return InvitationStatusCompleted
	}
	if allAccepted {
		return InvitationStatusAccepted
	}
	return InvitationStatusPending
}
