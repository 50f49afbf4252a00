package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamRequest is a directed invitation from one student to another to form a team
type TeamRequest struct {
	BaseModel
	SenderID    uuid.UUID     `json:"sender_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_team_requests_pending_sender,where:status = 'Pending'"`
	ReceiverID  uuid.UUID     `json:"receiver_id" gorm:"type:uuid;not null;index"`
	Status      RequestStatus `json:"status" gorm:"type:varchar(20);not null;default:'Pending'"`
	RespondedAt *time.Time    `json:"responded_at,omitempty"`

	// Relationships
	Sender   *Student `json:"sender,omitempty" gorm:"foreignKey:SenderID"`
	Receiver *Student `json:"receiver,omitempty" gorm:"foreignKey:ReceiverID"`
}

// TableName returns the table name for TeamRequest
func (TeamRequest) TableName() string {
	return "team_requests"
}
