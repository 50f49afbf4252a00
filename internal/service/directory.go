package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"teampro-backend/internal/database/models"
	apperrors "teampro-backend/internal/errors"
	"teampro-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DirectoryService manages the people known to the system and their credentials
type DirectoryService struct {
	core
	hashCost int
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(store *repository.Store, validator *validator.Validate) *DirectoryService {
	return &DirectoryService{core: newCore(store, validator, nil), hashCost: bcrypt.DefaultCost}
}

// CreateStudentRequest registers a student
type CreateStudentRequest struct {
	FullName           string `json:"full_name" validate:"required,min=1,max=100"`
	RegistrationNumber string `json:"registration_number" validate:"required,min=1,max=50"`
	Email              string `json:"email" validate:"required,email,max=255"`
	Password           string `json:"password" validate:"required,min=8,max=72"`
	Year               int    `json:"year" validate:"required,min=1,max=4"`
	Semester           int    `json:"semester" validate:"required,min=1,max=8"`
}

// CreateFacultyRequest registers a faculty member
type CreateFacultyRequest struct {
	FullName    string `json:"full_name" validate:"required,min=1,max=100"`
	FacultyCode string `json:"faculty_code" validate:"required,min=1,max=50"`
	Email       string `json:"email" validate:"required,email,max=255"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
	Designation string `json:"designation" validate:"max=100"`
}

// CreateAdminRequest registers a department admin
type CreateAdminRequest struct {
	FullName   string `json:"full_name" validate:"required,min=1,max=100"`
	Email      string `json:"email" validate:"required,email,max=255"`
	Password   string `json:"password" validate:"required,min=8,max=72"`
	Department string `json:"department" validate:"required,max=100"`
}

// LoginRequest carries credentials for one role
type LoginRequest struct {
	Role     models.Role `json:"role" validate:"required,oneof=Student Faculty Admin"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required"`
}

// CreateStudent registers a student in the acting admin's department
func (s *DirectoryService) CreateStudent(ctx context.Context, actor ActorContext, req *CreateStudentRequest) (*Result, error) {
	if err := actor.require(models.RoleAdmin); err != nil {
		return nil, err
	}
	req.Email = normalizeEmail(req.Email)
	req.RegistrationNumber = strings.TrimSpace(req.RegistrationNumber)
	if err := s.validate(req); err != nil {
		return nil, err
	}
	hash, err := s.hash(req.Password)
	if err != nil {
		return nil, err
	}

	student := models.Student{
		FullName:           strings.TrimSpace(req.FullName),
		RegistrationNumber: req.RegistrationNumber,
		Email:              req.Email,
		PasswordHash:       hash,
		Department:         actor.Department,
		Year:               req.Year,
		Semester:           req.Semester,
	}
	err = s.run(ctx, actor, func(t *tx) error {
		if err := s.checkEmailFree(t, student.Email); err != nil {
			return err
		}
		if _, err := t.Students.GetByRegistrationNumber(student.RegistrationNumber); err == nil {
			return apperrors.ErrStudentExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check registration number: %w", err)
		}
		if err := t.Students.Create(&student); err != nil {
			return duplicate(err, apperrors.ErrStudentExists, "failed to create student")
		}
		return nil
	}, repository.LockDirectory)
	if err != nil {
		return nil, err
	}

	s.log(ctx, actor).WithField("student_id", student.ID).Info("student created")
	return ok("Student created").withID(student.ID), nil
}

// CreateFaculty registers a faculty member in the acting admin's department
func (s *DirectoryService) CreateFaculty(ctx context.Context, actor ActorContext, req *CreateFacultyRequest) (*Result, error) {
	if err := actor.require(models.RoleAdmin); err != nil {
		return nil, err
	}
	req.Email = normalizeEmail(req.Email)
	req.FacultyCode = strings.TrimSpace(req.FacultyCode)
	if err := s.validate(req); err != nil {
		return nil, err
	}
	hash, err := s.hash(req.Password)
	if err != nil {
		return nil, err
	}

	faculty := models.Faculty{
		FullName:     strings.TrimSpace(req.FullName),
		FacultyCode:  req.FacultyCode,
		Email:        req.Email,
		PasswordHash: hash,
		Department:   actor.Department,
		Designation:  strings.TrimSpace(req.Designation),
	}
	err = s.run(ctx, actor, func(t *tx) error {
		if err := s.checkEmailFree(t, faculty.Email); err != nil {
			return err
		}
		if _, err := t.Faculty.GetByCode(faculty.FacultyCode); err == nil {
			return apperrors.ErrFacultyExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check faculty code: %w", err)
		}
		if err := t.Faculty.Create(&faculty); err != nil {
			return duplicate(err, apperrors.ErrFacultyExists, "failed to create faculty")
		}
		return nil
	}, repository.LockDirectory)
	if err != nil {
		return nil, err
	}

	s.log(ctx, actor).WithField("faculty_id", faculty.ID).Info("faculty created")
	return ok("Faculty created").withID(faculty.ID), nil
}

// CreateAdmin registers a department admin. It is used when provisioning a deployment.
func (s *DirectoryService) CreateAdmin(ctx context.Context, req *CreateAdminRequest) (*Result, error) {
	req.Email = normalizeEmail(req.Email)
	if err := s.validate(req); err != nil {
		return nil, err
	}
	hash, err := s.hash(req.Password)
	if err != nil {
		return nil, err
	}

	admin := models.Admin{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        req.Email,
		PasswordHash: hash,
		Department:   strings.TrimSpace(req.Department),
	}
	err = s.run(ctx, ActorContext{}, func(t *tx) error {
		if err := s.checkEmailFree(t, admin.Email); err != nil {
			return err
		}
		if err := t.Admins.Create(&admin); err != nil {
			return duplicate(err, apperrors.ErrAdminExists, "failed to create admin")
		}
		return nil
	}, repository.LockDirectory)
	if err != nil {
		return nil, err
	}

	return ok("Admin created").withID(admin.ID), nil
}

// ListFaculty returns the faculty of the actor's department
func (s *DirectoryService) ListFaculty(ctx context.Context, actor ActorContext) ([]models.Faculty, error) {
	if err := actor.require(models.RoleFaculty, models.RoleAdmin); err != nil {
		return nil, err
	}
	faculty, err := s.store.Read(ctx).Faculty.ListByDepartment(actor.Department)
	if err != nil {
		return nil, fmt.Errorf("failed to list faculty: %w", err)
	}
	return faculty, nil
}

// Authenticate checks credentials and returns the actor they identify
func (s *DirectoryService) Authenticate(ctx context.Context, req *LoginRequest) (*ActorContext, error) {
	req.Email = normalizeEmail(req.Email)
	if err := s.validate(req); err != nil {
		return nil, err
	}

	r := s.store.Read(ctx)
	var (
		actor ActorContext
		hash  string
		err   error
	)
	switch req.Role {
	case models.RoleStudent:
		var student *models.Student
		if student, err = r.Students.GetByEmail(req.Email); err == nil {
			actor = ActorContext{Role: req.Role, ID: student.ID, Department: student.Department, Name: student.FullName}
			hash = student.PasswordHash
		}
	case models.RoleFaculty:
		var faculty *models.Faculty
		if faculty, err = r.Faculty.GetByEmail(req.Email); err == nil {
			actor = ActorContext{Role: req.Role, ID: faculty.ID, Department: faculty.Department, Name: faculty.FullName}
			hash = faculty.PasswordHash
		}
	case models.RoleAdmin:
		var admin *models.Admin
		if admin, err = r.Admins.GetByEmail(req.Email); err == nil {
			actor = ActorContext{Role: req.Role, ID: admin.ID, Department: admin.Department, Name: admin.FullName}
			hash = admin.PasswordHash
		}
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return &actor, nil
}

func (s *DirectoryService) hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// checkEmailFree reports a conflict when any kind of account already uses the email
func (s *DirectoryService) checkEmailFree(t *tx, email string) error {
	if _, err := t.Students.GetByEmail(email); err == nil {
		return apperrors.ErrStudentExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if _, err := t.Faculty.GetByEmail(email); err == nil {
		return apperrors.ErrFacultyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if _, err := t.Admins.GetByEmail(email); err == nil {
		return apperrors.ErrAdminExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check email: %w", err)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
