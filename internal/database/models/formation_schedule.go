package models

import (
	"time"
)

// TeamFormationSchedule gates the student pool for one department and year
type TeamFormationSchedule struct {
	BaseModel
	Department    string     `json:"department" gorm:"not null;size:100;uniqueIndex:idx_formation_schedule_scope"`
	Year          int        `json:"year" gorm:"not null;uniqueIndex:idx_formation_schedule_scope"`
	IsOpen        bool       `json:"is_open" gorm:"not null;default:false"`
	OpenedAt      *time.Time `json:"opened_at,omitempty"`
	ClosedAt      *time.Time `json:"closed_at,omitempty"`
	UpdatedByName string     `json:"updated_by_name" gorm:"size:100"`
}

// TableName returns the table name for TeamFormationSchedule
func (TeamFormationSchedule) TableName() string {
	return "team_formation_schedules"
}
