package models

import (
	"github.com/google/uuid"
)

// Notification is a row in a student's inbox
type Notification struct {
	BaseModel
	StudentID uuid.UUID        `json:"student_id" gorm:"type:uuid;not null;index"`
	Message   string           `json:"message" gorm:"not null;size:500"`
	Type      NotificationType `json:"type" gorm:"type:varchar(20);not null;default:'info'"`
	IsRead    bool             `json:"is_read" gorm:"not null;default:false"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
