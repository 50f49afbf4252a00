package models

// Student represents a student who can form a team
type Student struct {
	BaseModel
	FullName           string `json:"full_name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	RegistrationNumber string `json:"registration_number" gorm:"uniqueIndex;not null;size:50" validate:"required,min=1,max=50"`
	Email              string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash       string `json:"-" gorm:"not null;size:100"`
	Department         string `json:"department" gorm:"not null;size:100;index" validate:"required,max=100"`
	Year               int    `json:"year" gorm:"not null" validate:"required,min=1,max=4"`
	Semester           int    `json:"semester" gorm:"not null" validate:"required,min=1,max=8"`
}

// TableName returns the table name for Student
func (Student) TableName() string {
	return "students"
}
