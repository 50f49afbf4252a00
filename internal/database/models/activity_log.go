package models

import (
	"github.com/google/uuid"
)

// TeamActivityLog is an immutable audit entry for a team
type TeamActivityLog struct {
	BaseModel
	TeamID          uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index"`
	Action          string    `json:"action" gorm:"not null;size:100"`
	Details         string    `json:"details" gorm:"size:500"`
	PerformedByRole Role      `json:"performed_by_role" gorm:"type:varchar(20);not null"`
	PerformedByName string    `json:"performed_by_name" gorm:"size:100"`
}

// TableName returns the table name for TeamActivityLog
func (TeamActivityLog) TableName() string {
	return "team_activity_logs"
}
