package models

// Faculty represents a faculty member who mentors teams
type Faculty struct {
	BaseModel
	FullName     string `json:"full_name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	FacultyCode  string `json:"faculty_code" gorm:"uniqueIndex;not null;size:50" validate:"required,min=1,max=50"`
	Email        string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string `json:"-" gorm:"not null;size:100"`
	Department   string `json:"department" gorm:"not null;size:100;index" validate:"required,max=100"`
	Designation  string `json:"designation" gorm:"size:100" validate:"max=100"`
}

// TableName returns the table name for Faculty
func (Faculty) TableName() string {
	return "faculties"
}
