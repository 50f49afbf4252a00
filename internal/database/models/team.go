package models

import (
	"github.com/google/uuid"
)

// Team is a pair of students, or a single student working individually
type Team struct {
	BaseModel
	TeamNumber   int        `json:"team_number" gorm:"uniqueIndex;not null"`
	Student1ID   uuid.UUID  `json:"student1_id" gorm:"type:uuid;not null;index"`
	Student2ID   *uuid.UUID `json:"student2_id,omitempty" gorm:"type:uuid;index"`
	IsIndividual bool       `json:"is_individual" gorm:"not null;default:false"`
	Department   string     `json:"department" gorm:"not null;size:100;index"`
	Year         int        `json:"year" gorm:"not null"`

	// Relationships
	Student1 *Student `json:"student1,omitempty" gorm:"foreignKey:Student1ID"`
	Student2 *Student `json:"student2,omitempty" gorm:"foreignKey:Student2ID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// HasMember reports whether the student is one of the team's members
func (t *Team) HasMember(studentID uuid.UUID) bool {
	if t.Student1ID == studentID {
		return true
	}
	return t.Student2ID != nil && *t.Student2ID == studentID
}

// MemberIDs returns the ids of every present member, Student1 first
func (t *Team) MemberIDs() []uuid.UUID {
	ids := []uuid.UUID{t.Student1ID}
	if t.Student2ID != nil {
		ids = append(ids, *t.Student2ID)
	}
	return ids
}

// TeamMembership backs the one-team-per-student rule with a unique index
type TeamMembership struct {
	BaseModel
	TeamID    uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index"`
	StudentID uuid.UUID `json:"student_id" gorm:"type:uuid;not null;uniqueIndex"`
}

// TableName returns the table name for TeamMembership
func (TeamMembership) TableName() string {
	return "team_memberships"
}

// Sequence is a named counter that only moves forward
type Sequence struct {
	Name  string `gorm:"primaryKey;size:50"`
	Value int
}

// TableName returns the table name for Sequence
func (Sequence) TableName() string {
	return "sequences"
}
