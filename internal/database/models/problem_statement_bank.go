package models

import (
	"github.com/google/uuid"
)

// ProblemStatementBank is a department and year scoped catalog entry
type ProblemStatementBank struct {
	BaseModel
	Statement      string     `json:"statement" gorm:"type:text;not null"`
	Department     string     `json:"department" gorm:"not null;size:100;index:idx_problem_statements_scope"`
	Year           int        `json:"year" gorm:"not null;index:idx_problem_statements_scope"`
	IsAssigned     bool       `json:"is_assigned" gorm:"not null;default:false"`
	AssignedTeamID *uuid.UUID `json:"assigned_team_id,omitempty" gorm:"type:uuid;index"`
	CreatedByName  string     `json:"created_by_name" gorm:"size:100"`
}

// TableName returns the table name for ProblemStatementBank
func (ProblemStatementBank) TableName() string {
	return "problem_statement_banks"
}
