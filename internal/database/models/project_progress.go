package models

import (
	"strings"

	"github.com/google/uuid"
)

// ProjectProgress holds the mentor, problem statement and derived status of a team's project
type ProjectProgress struct {
	BaseModel
	TeamID                 uuid.UUID      `json:"team_id" gorm:"type:uuid;not null;uniqueIndex"`
	ProblemStatement       string         `json:"problem_statement" gorm:"type:text"`
	ProblemStatementBankID *uuid.UUID     `json:"problem_statement_bank_id,omitempty" gorm:"type:uuid"`
	AssignedFacultyID      *uuid.UUID     `json:"assigned_faculty_id,omitempty" gorm:"type:uuid;index"`
	CompletionPercentage   int            `json:"completion_percentage" gorm:"not null;default:0"`
	Status                 ProgressStatus `json:"status" gorm:"type:varchar(40);not null;default:'Not Started'"`

	// Relationships
	AssignedFaculty *Faculty `json:"assigned_faculty,omitempty" gorm:"foreignKey:AssignedFacultyID"`
}

// TableName returns the table name for ProjectProgress
func (ProjectProgress) TableName() string {
	return "project_progresses"
}

// HasMentor reports whether a faculty mentor is assigned
func (p *ProjectProgress) HasMentor() bool {
	return p.AssignedFacultyID != nil && *p.AssignedFacultyID != uuid.Nil
}

// HasProblemStatement reports whether a non-blank problem statement is assigned
func (p *ProjectProgress) HasProblemStatement() bool {
	return strings.TrimSpace(p.ProblemStatement) != ""
}

// MeetingsAllowed reports whether both prerequisites for logging meetings are in place
func (p *ProjectProgress) MeetingsAllowed() bool {
	return p.HasMentor() && p.HasProblemStatement()
}

// Reconcile recomputes Status from the current fields
func (p *ProjectProgress) Reconcile() {
	p.Status = NextProgressStatus(p.Status, p.HasMentor(), p.HasProblemStatement(), p.CompletionPercentage)
}

// NextProgressStatus applies the progress state machine.
// Completed is terminal; reaching 100% completes the project regardless of assignments.
func NextProgressStatus(current ProgressStatus, hasMentor, hasStatement bool, completion int) ProgressStatus {
	if current == ProgressStatusCompleted || completion >= 100 {
		return ProgressStatusCompleted
	}
	if hasMentor && hasStatement {
		return ProgressStatusInProgress
	}
	early := current == "" || current == ProgressStatusNotStarted || current == ProgressStatusPending
	switch {
	case hasMentor && early:
		return ProgressStatusMentorAssigned
	case hasStatement && early:
		return ProgressStatusProblemStatementAssigned
	case current == "":
		return ProgressStatusNotStarted
	}
	return current
}
