package salesperson

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bespoked-bikes/sales-backend/pkg/db"
	"github.com/bespoked-bikes/sales-backend/pkg/db/models"
	pkgerrors "github.com/bespoked-bikes/sales-backend/pkg/errors"
	"github.com/bespoked-bikes/sales-backend/pkg/types"
)

// Service exposes sales team management operations.
type Service interface {
	ListSalespersons(ctx context.Context) ([]SalespersonDTO, error)
	GetSalesperson(ctx context.Context, salespersonID uuid.UUID) (*SalespersonDTO, error)
	CreateSalesperson(ctx context.Context, input CreateSalespersonInput) (*SalespersonDTO, error)
	UpdateSalesperson(ctx context.Context, salespersonID uuid.UUID, input UpdateSalespersonInput) (*SalespersonDTO, error)
}

// CreateSalespersonInput holds the validated payload to create a salesperson.
type CreateSalespersonInput struct {
	FirstName       string
	LastName        string
	Address         string
	Phone           string
	StartDate       *types.Date
	TerminationDate *types.Date
	Manager         string
}

// UpdateSalespersonInput holds optional mutation values for a salesperson.
// A non-nil TerminationDate pointing at a zero date clears the field.
type UpdateSalespersonInput struct {
	FirstName       *string
	LastName        *string
	Address         *string
	Phone           *string
	StartDate       *types.Date
	TerminationDate *types.Date
	Manager         *string
}

type service struct {
	repo *Repository
}

// NewService constructs a salesperson service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("salesperson repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListSalespersons(ctx context.Context) ([]SalespersonDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list salespersons")
	}
	return NewSalespersonDTOs(rows), nil
}

func (s *service) GetSalesperson(ctx context.Context, salespersonID uuid.UUID) (*SalespersonDTO, error) {
	row, err := s.repo.FindByID(ctx, salespersonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "salesperson not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load salesperson")
	}
	return NewSalespersonDTO(row), nil
}

// CreateSalesperson inserts a new member of the sales team.
func (s *service) CreateSalesperson(ctx context.Context, input CreateSalespersonInput) (*SalespersonDTO, error) {
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	if firstName == "" || lastName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "first_name and last_name are required")
	}
	if err := s.ensureNameAvailable(ctx, firstName, lastName, uuid.Nil); err != nil {
		return nil, err
	}

	row := &models.Salesperson{
		ID:              uuid.New(),
		FirstName:       firstName,
		LastName:        lastName,
		Address:         strings.TrimSpace(input.Address),
		Phone:           strings.TrimSpace(input.Phone),
		StartDate:       input.StartDate,
		TerminationDate: input.TerminationDate,
		Manager:         strings.TrimSpace(input.Manager),
	}
	created, err := s.repo.Create(ctx, row)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "another salesperson with the same phone already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert salesperson")
	}
	return NewSalespersonDTO(created), nil
}

// UpdateSalesperson mutates an existing salesperson.
func (s *service) UpdateSalesperson(ctx context.Context, salespersonID uuid.UUID, input UpdateSalespersonInput) (*SalespersonDTO, error) {
	row, err := s.repo.FindByID(ctx, salespersonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "salesperson not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load salesperson")
	}

	applyUpdateToSalesperson(row, input)
	if row.FirstName == "" || row.LastName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "first_name and last_name are required")
	}
	if input.FirstName != nil || input.LastName != nil {
		if err := s.ensureNameAvailable(ctx, row.FirstName, row.LastName, row.ID); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.Update(ctx, row)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "another salesperson with the same phone already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update salesperson")
	}
	return NewSalespersonDTO(updated), nil
}

func (s *service) ensureNameAvailable(ctx context.Context, firstName, lastName string, selfID uuid.UUID) error {
	existing, err := s.repo.FindByName(ctx, firstName, lastName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check salesperson name")
	}
	if existing.ID != selfID {
		return pkgerrors.New(pkgerrors.CodeConflict, "another salesperson with the same name already exists")
	}
	return nil
}

func applyUpdateToSalesperson(row *models.Salesperson, input UpdateSalespersonInput) {
	if input.FirstName != nil {
		row.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		row.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Address != nil {
		row.Address = strings.TrimSpace(*input.Address)
	}
	if input.Phone != nil {
		row.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.StartDate != nil {
		row.StartDate = input.StartDate
	}
	if input.TerminationDate != nil {
		if input.TerminationDate.IsZero() {
			row.TerminationDate = nil
		} else {
			row.TerminationDate = input.TerminationDate
		}
	}
	if input.Manager != nil {
		row.Manager = strings.TrimSpace(*input.Manager)
	}
}
