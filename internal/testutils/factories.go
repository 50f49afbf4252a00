package testutils

import (
	"strings"
	"time"

	"teampro-backend/internal/database/models"

	"github.com/google/uuid"
)

// StudentFactory provides methods to create test Student data
type StudentFactory struct{}

// NewStudentFactory creates a new StudentFactory
func NewStudentFactory() *StudentFactory {
	return &StudentFactory{}
}

// Create creates a test Student with default values
func (f *StudentFactory) Create() *models.Student {
	id := uuid.New()
	// Unique email and registration number derived from the id
	short := strings.ToUpper(id.String()[:8])

	return &models.Student{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FullName:           "Student " + short,
		RegistrationNumber: "REG" + short,
		Email:              strings.ToLower(short) + "@students.test.edu",
		PasswordHash:       "hashed",
		Department:         "CSE",
		Year:               3,
		Semester:           5,
	}
}

// WithName sets a custom name for the student
func (f *StudentFactory) WithName(name string) *models.Student {
	student := f.Create()
	student.FullName = name
	return student
}

// WithCohort places the student in a department, year and semester
func (f *StudentFactory) WithCohort(department string, year, semester int) *models.Student {
	student := f.Create()
	student.Department = department
	student.Year = year
	student.Semester = semester
	return student
}

// FacultyFactory provides methods to create test Faculty data
type FacultyFactory struct{}

// NewFacultyFactory creates a new FacultyFactory
func NewFacultyFactory() *FacultyFactory {
	return &FacultyFactory{}
}

// Create creates a test Faculty with default values
func (f *FacultyFactory) Create() *models.Faculty {
	id := uuid.New()
	short := strings.ToUpper(id.String()[:8])

	return &models.Faculty{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FullName:     "Dr. " + short,
		FacultyCode:  "FAC" + short,
		Email:        strings.ToLower(short) + "@faculty.test.edu",
		PasswordHash: "hashed",
		Department:   "CSE",
		Designation:  "Assistant Professor",
	}
}

// WithDepartment sets a custom department for the faculty member
func (f *FacultyFactory) WithDepartment(department string) *models.Faculty {
	faculty := f.Create()
	faculty.Department = department
	return faculty
}

// ProblemStatementFactory provides methods to create test bank entries
type ProblemStatementFactory struct{}

// NewProblemStatementFactory creates a new ProblemStatementFactory
func NewProblemStatementFactory() *ProblemStatementFactory {
	return &ProblemStatementFactory{}
}

// Create creates a test bank entry with default values
func (f *ProblemStatementFactory) Create() *models.ProblemStatementBank {
	return &models.ProblemStatementBank{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Statement:     "Campus parking availability tracker " + uuid.NewString()[:6],
		Department:    "CSE",
		Year:          3,
		CreatedByName: "Admin",
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Student          *StudentFactory
	Faculty          *FacultyFactory
	ProblemStatement *ProblemStatementFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Student:          NewStudentFactory(),
		Faculty:          NewFacultyFactory(),
		ProblemStatement: NewProblemStatementFactory(),
	}
}
