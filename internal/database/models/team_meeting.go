package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamMeeting is one entry of a team's progress ledger
type TeamMeeting struct {
	BaseModel
	TeamID               uuid.UUID  `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_meetings_number"`
	MeetingNumber        int        `json:"meeting_number" gorm:"not null;uniqueIndex:idx_team_meetings_number"`
	MeetingDate          time.Time  `json:"meeting_date" gorm:"not null"`
	CompletionPercentage int        `json:"completion_percentage" gorm:"not null;default:0"`
	Notes                string     `json:"notes" gorm:"type:text"`
	ProofImage           []byte     `json:"-"`
	ProofContentType     string     `json:"proof_content_type,omitempty" gorm:"size:50"`
	FacultyReview        string     `json:"faculty_review" gorm:"type:text"`
	ReviewedAt           *time.Time `json:"reviewed_at,omitempty"`
	CreatedByID          uuid.UUID  `json:"created_by_id" gorm:"type:uuid"`
}

// TableName returns the table name for TeamMeeting
func (TeamMeeting) TableName() string {
	return "team_meetings"
}

// HasProof reports whether a proof image is stored
func (m *TeamMeeting) HasProof() bool {
	return len(m.ProofImage) > 0
}
