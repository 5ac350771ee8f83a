package customer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bespoked-bikes/sales-backend/pkg/db/models"
	pkgerrors "github.com/bespoked-bikes/sales-backend/pkg/errors"
	"github.com/bespoked-bikes/sales-backend/pkg/types"
)

// Service exposes customer management operations.
type Service interface {
	ListCustomers(ctx context.Context) ([]CustomerDTO, error)
	GetCustomer(ctx context.Context, customerID uuid.UUID) (*CustomerDTO, error)
	CreateCustomer(ctx context.Context, input CreateCustomerInput) (*CustomerDTO, error)
	UpdateCustomer(ctx context.Context, customerID uuid.UUID, input UpdateCustomerInput) (*CustomerDTO, error)
}

// CreateCustomerInput holds the validated payload to create a customer.
type CreateCustomerInput struct {
	FirstName string
	LastName  string
	Address   string
	Phone     string
	StartDate *types.Date
}

// UpdateCustomerInput holds optional mutation values for a customer.
type UpdateCustomerInput struct {
	FirstName *string
	LastName  *string
	Address   *string
	Phone     *string
	StartDate *types.Date
}

type service struct {
	repo *Repository
}

// NewService constructs a customer service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("customer repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListCustomers(ctx context.Context) ([]CustomerDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list customers")
	}
	return NewCustomerDTOs(rows), nil
}

func (s *service) GetCustomer(ctx context.Context, customerID uuid.UUID) (*CustomerDTO, error) {
	row, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customer")
	}
	return NewCustomerDTO(row), nil
}

// CreateCustomer inserts a new customer.
func (s *service) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*CustomerDTO, error) {
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	if firstName == "" || lastName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "first_name and last_name are required")
	}

	phone := strings.TrimSpace(input.Phone)
	if err := s.ensurePhoneAvailable(ctx, phone, uuid.Nil); err != nil {
		return nil, err
	}

	row := &models.Customer{
		ID:        uuid.New(),
		FirstName: firstName,
		LastName:  lastName,
		Address:   strings.TrimSpace(input.Address),
		Phone:     phone,
		StartDate: input.StartDate,
	}
	created, err := s.repo.Create(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert customer")
	}
	return NewCustomerDTO(created), nil
}

// UpdateCustomer mutates an existing customer.
func (s *service) UpdateCustomer(ctx context.Context, customerID uuid.UUID, input UpdateCustomerInput) (*CustomerDTO, error) {
	row, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customer")
	}

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
		phone := strings.TrimSpace(*input.Phone)
		if phone != row.Phone {
			if err := s.ensurePhoneAvailable(ctx, phone, row.ID); err != nil {
				return nil, err
			}
		}
		row.Phone = phone
	}
	if input.StartDate != nil {
		row.StartDate = input.StartDate
	}
	if row.FirstName == "" || row.LastName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "first_name and last_name are required")
	}

	updated, err := s.repo.Update(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update customer")
	}
	return NewCustomerDTO(updated), nil
}

// ensurePhoneAvailable rejects a phone already held by another
// customer. Blank phones are not claimed.
func (s *service) ensurePhoneAvailable(ctx context.Context, phone string, selfID uuid.UUID) error {
	if phone == "" {
		return nil
	}
	existing, err := s.repo.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check customer phone")
	}
	if existing.ID != selfID {
		return pkgerrors.New(pkgerrors.CodeConflict, "a customer with this phone already exists")
	}
	return nil
}
