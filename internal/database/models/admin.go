package models

// Admin oversees the teams of one department
type Admin struct {
	BaseModel
	FullName     string `json:"full_name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Email        string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string `json:"-" gorm:"not null;size:100"`
	Department   string `json:"department" gorm:"not null;size:100" validate:"required,max=100"`
}

// TableName returns the table name for Admin
func (Admin) TableName() string {
	return "admins"
}
