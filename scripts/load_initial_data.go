package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"teampro-backend/internal/api/routes"
	"teampro-backend/internal/config"
	"teampro-backend/internal/database"
	"teampro-backend/internal/database/models"
	apperrors "teampro-backend/internal/errors"
	"teampro-backend/internal/service"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the service requests
type AdminData struct {
	FullName   string `yaml:"full_name"`
	Email      string `yaml:"email"`
	Password   string `yaml:"password"`
	Department string `yaml:"department"`
}

type StudentData struct {
	FullName           string `yaml:"full_name"`
	RegistrationNumber string `yaml:"registration_number"`
	Email              string `yaml:"email"`
	Password           string `yaml:"password"`
	Department         string `yaml:"department"`
	Year               int    `yaml:"year"`
	Semester           int    `yaml:"semester"`
}

type FacultyData struct {
	FullName    string `yaml:"full_name"`
	FacultyCode string `yaml:"faculty_code"`
	Email       string `yaml:"email"`
	Password    string `yaml:"password"`
	Department  string `yaml:"department"`
	Designation string `yaml:"designation"`
}

type ProblemStatementData struct {
	Statement  string `yaml:"statement"`
	Department string `yaml:"department"`
	Year       int    `yaml:"year"`
}

type ScheduleData struct {
	Department string `yaml:"department"`
	Year       int    `yaml:"year"`
	Open       bool   `yaml:"open"`
}

// File structures
type AdminsFile struct {
	Admins []AdminData `yaml:"admins"`
}

type StudentsFile struct {
	Students []StudentData `yaml:"students"`
}

type FacultyFile struct {
	Faculty []FacultyData `yaml:"faculty"`
}

type ProblemStatementsFile struct {
	ProblemStatements []ProblemStatementData `yaml:"problem_statements"`
}

type SchedulesFile struct {
	Schedules []ScheduleData `yaml:"schedules"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	services := routes.NewServices(db, cfg, nil)
	if err := loadDataFromYAMLFiles(context.Background(), services, cfg.SeedDataDir); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// seedActor is the department admin the seed acts as
func seedActor(department string) service.ActorContext {
	return service.ActorContext{Role: models.RoleAdmin, Department: department, Name: "Initial data loader"}
}

func loadDataFromYAMLFiles(ctx context.Context, services *routes.Services, dataDir string) error {
	adminFiles, err := loadFiles[AdminsFile](dataDir, "admins")
	if err != nil {
		return fmt.Errorf("failed to load admins: %w", err)
	}
	studentFiles, err := loadFiles[StudentsFile](dataDir, "students")
	if err != nil {
		return fmt.Errorf("failed to load students: %w", err)
	}
	facultyFiles, err := loadFiles[FacultyFile](dataDir, "faculty")
	if err != nil {
		return fmt.Errorf("failed to load faculty: %w", err)
	}
	statementFiles, err := loadFiles[ProblemStatementsFile](dataDir, "problem_statements")
	if err != nil {
		return fmt.Errorf("failed to load problem statements: %w", err)
	}
	scheduleFiles, err := loadFiles[SchedulesFile](dataDir, "schedules")
	if err != nil {
		return fmt.Errorf("failed to load schedules: %w", err)
	}

	var (
		admins     []AdminData
		students   []StudentData
		faculty    []FacultyData
		statements []ProblemStatementData
		schedules  []ScheduleData
	)
	for _, f := range adminFiles {
		admins = append(admins, f.Admins...)
	}
	for _, f := range studentFiles {
		students = append(students, f.Students...)
	}
	for _, f := range facultyFiles {
		faculty = append(faculty, f.Faculty...)
	}
	for _, f := range statementFiles {
		statements = append(statements, f.ProblemStatements...)
	}
	for _, f := range scheduleFiles {
		schedules = append(schedules, f.Schedules...)
	}

	created := 0
	for _, a := range admins {
		_, err := services.Directory.CreateAdmin(ctx, &service.CreateAdminRequest{
			FullName:   a.FullName,
			Email:      a.Email,
			Password:   a.Password,
			Department: a.Department,
		})
		if ok, err := tally(err, &created); !ok {
			return fmt.Errorf("failed to create admin %s: %w", a.Email, err)
		}
	}
	log.Printf("📋 Admins: %d created, %d total", created, len(admins))

	created = 0
	for _, f := range faculty {
		_, err := services.Directory.CreateFaculty(ctx, seedActor(f.Department), &service.CreateFacultyRequest{
			FullName:    f.FullName,
			FacultyCode: f.FacultyCode,
			Email:       f.Email,
			Password:    f.Password,
			Designation: f.Designation,
		})
		if ok, err := tally(err, &created); !ok {
			return fmt.Errorf("failed to create faculty %s: %w", f.FacultyCode, err)
		}
	}
	log.Printf("📋 Faculty: %d created, %d total", created, len(faculty))

	created = 0
	for _, s := range students {
		_, err := services.Directory.CreateStudent(ctx, seedActor(s.Department), &service.CreateStudentRequest{
			FullName:           s.FullName,
			RegistrationNumber: s.RegistrationNumber,
			Email:              s.Email,
			Password:           s.Password,
			Year:               s.Year,
			Semester:           s.Semester,
		})
		if ok, err := tally(err, &created); !ok {
			return fmt.Errorf("failed to create student %s: %w", s.RegistrationNumber, err)
		}
	}
	log.Printf("📋 Students: %d created, %d total", created, len(students))

	created = 0
	for _, p := range statements {
		_, err := services.ProblemStatement.Create(ctx, seedActor(p.Department), &service.ProblemStatementRequest{
			Statement: p.Statement,
			Year:      p.Year,
		})
		if ok, err := tally(err, &created); !ok {
			log.Printf("⚠️  Warning: failed to create problem statement %q: %v", p.Statement, err)
		}
	}
	log.Printf("📋 Problem statements: %d created, %d total", created, len(statements))

	for _, s := range schedules {
		req := &service.ScheduleRequest{Year: s.Year}
		var err error
		if s.Open {
			_, err = services.Formation.OpenFormation(ctx, seedActor(s.Department), req)
		} else {
			_, err = services.Formation.CloseFormation(ctx, seedActor(s.Department), req)
		}
		if err != nil {
			return fmt.Errorf("failed to set schedule %s year %d: %w", s.Department, s.Year, err)
		}
	}
	log.Printf("📋 Schedules: %d applied", len(schedules))

	return nil
}

// tally counts a creation; an existing record is skipped so the loader can be re-run
func tally(err error, created *int) (bool, error) {
	switch {
	case err == nil:
		*created++
		return true, nil
	case apperrors.IsConflict(err):
		return true, nil
	default:
		return false, err
	}
}

// loadFiles decodes every YAML file under dataDir whose name contains name.
// A missing data directory yields no files.
func loadFiles[F any](dataDir, name string) ([]F, error) {
	var files []F

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == dataDir {
				return filepath.SkipDir
			}
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(filepath.Base(path), name) {
			var file F
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			files = append(files, file)
		}
		return nil
	})

	return files, err
}
