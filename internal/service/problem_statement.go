package service

import (
	"context"
	"fmt"
	"strings"

	"teampro-backend/internal/database/models"
	apperrors "teampro-backend/internal/errors"
	"teampro-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const defaultStatementYear = 3

// ProblemStatementService manages a department's problem statement bank
type ProblemStatementService struct {
	core
}

// NewProblemStatementService creates a new problem statement service
func NewProblemStatementService(store *repository.Store, validator *validator.Validate) *ProblemStatementService {
	return &ProblemStatementService{core: newCore(store, validator, nil)}
}

// ProblemStatementRequest creates or edits a bank entry
type ProblemStatementRequest struct {
	Statement string `json:"statement" validate:"required,max=5000"`
	Year      int    `json:"year" validate:"omitempty,min=1,max=4"`
}

// ProblemStatementQuery filters a bank listing
type ProblemStatementQuery struct {
	Year          *int
	OnlyAvailable bool
}

// Create adds a statement to the acting admin's department bank
func (s *ProblemStatementService) Create(ctx context.Context, actor ActorContext, req *ProblemStatementRequest) (*Result, error) {
	if err := actor.require(models.RoleAdmin); err != nil {
		return nil, err
	}
	if err := s.normalize(req); err != nil {
		return nil, err
	}

	entry := models.ProblemStatementBank{
		Statement:     req.Statement,
		Department:    actor.Department,
		Year:          req.Year,
		CreatedByName: actor.Name,
	}
	err := s.run(ctx, actor, func(t *tx) error {
		exists, err := t.ProblemStatements.ExistsInDepartment(actor.Department, req.Statement, nil)
		if err != nil {
			return fmt.Errorf("failed to check problem statement: %w", err)
		}
		if exists {
			return apperrors.ErrProblemStatementExists
		}
		if err := t.ProblemStatements.Create(&entry); err != nil {
			return fmt.Errorf("failed to create problem statement: %w", err)
		}
		return nil
	}, repository.LockDirectory)
	if err != nil {
		return nil, err
	}

	s.log(ctx, actor).WithField("problem_statement_id", entry.ID).Info("problem statement created")
	return ok("Problem statement created").withID(entry.ID), nil
}

// Update edits a bank entry of the acting admin's department
func (s *ProblemStatementService) Update(ctx context.Context, actor ActorContext, id uuid.UUID, req *ProblemStatementRequest) (*Result, error) {
	if err := actor.require(models.RoleAdmin); err != nil {
		return nil, err
	}
	if err := s.normalize(req); err != nil {
		return nil, err
	}

	err := s.run(ctx, actor, func(t *tx) error {
		entry, err := s.ownEntry(t, id)
		if err != nil {
			return err
		}
		exists, err := t.ProblemStatements.ExistsInDepartment(actor.Department, req.Statement, &id)
		if err != nil {
			return fmt.Errorf("failed to check problem statement: %w", err)
		}
		if exists {
			return apperrors.ErrProblemStatementExists
		}
		entry.Statement = req.Statement
		entry.Year = req.Year
		if err := t.ProblemStatements.Update(entry); err != nil {
			return fmt.Errorf("failed to update problem statement: %w", err)
		}
		return nil
	}, repository.LockDirectory, repository.ProblemStatementLock(id))
	if err != nil {
		return nil, err
	}

	return ok("Problem statement updated").withID(id), nil
}

// Delete removes an unassigned bank entry of the acting admin's department
func (s *ProblemStatementService) Delete(ctx context.Context, actor ActorContext, id uuid.UUID) (*Result, error) {
	if err := actor.require(models.RoleAdmin); err != nil {
		return nil, err
	}

	err := s.run(ctx, actor, func(t *tx) error {
		entry, err := s.ownEntry(t, id)
		if err != nil {
			return err
		}
		if entry.IsAssigned {
			return apperrors.ErrProblemStatementTaken
		}
		if err := t.ProblemStatements.Delete(id); err != nil {
			return fmt.Errorf("failed to delete problem statement: %w", err)
		}
		return nil
	}, repository.ProblemStatementLock(id))
	if err != nil {
		return nil, err
	}

	return ok("Problem statement deleted"), nil
}

// List returns the bank of the actor's department
func (s *ProblemStatementService) List(ctx context.Context, actor ActorContext, query ProblemStatementQuery) ([]models.ProblemStatementBank, error) {
	if err := actor.require(models.RoleFaculty, models.RoleAdmin); err != nil {
		return nil, err
	}
	entries, err := s.store.Read(ctx).ProblemStatements.List(repository.ProblemStatementFilter{
		Department:    actor.Department,
		Year:          query.Year,
		OnlyAvailable: query.OnlyAvailable,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list problem statements: %w", err)
	}
	return entries, nil
}

func (s *ProblemStatementService) normalize(req *ProblemStatementRequest) error {
	req.Statement = strings.TrimSpace(req.Statement)
	if req.Year == 0 {
		req.Year = defaultStatementYear
	}
	return s.validate(req)
}

func (s *ProblemStatementService) ownEntry(t *tx, id uuid.UUID) (*models.ProblemStatementBank, error) {
	entry, err := t.ProblemStatements.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrProblemStatementNotFound, "failed to get problem statement")
	}
	if entry.Department != t.actor.Department {
		return nil, apperrors.ErrOtherDepartment
	}
	return entry, nil
}
