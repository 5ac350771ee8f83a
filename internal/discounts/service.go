package discount

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bespoked-bikes/sales-backend/pkg/db/models"
	pkgerrors "github.com/bespoked-bikes/sales-backend/pkg/errors"
	"github.com/bespoked-bikes/sales-backend/pkg/types"
)

// Service exposes discount window management.
type Service interface {
	List(ctx context.Context) ([]DiscountDTO, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]DiscountDTO, error)
	Create(ctx context.Context, input CreateDiscountInput) (*DiscountDTO, error)
	Update(ctx context.Context, discountID uuid.UUID, input UpdateDiscountInput) (*DiscountDTO, error)
}

// CreateDiscountInput holds the validated payload to create a discount.
type CreateDiscountInput struct {
	ProductID          uuid.UUID
	BeginDate          types.Date
	EndDate            types.Date
	DiscountPercentage decimal.Decimal
}

// UpdateDiscountInput holds optional mutation values for a discount.
type UpdateDiscountInput struct {
	BeginDate          *types.Date
	EndDate            *types.Date
	DiscountPercentage *decimal.Decimal
}

type productLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type service struct {
	repo     *Repository
	products productLoader
}

// NewService constructs a discount service instance.
func NewService(repo *Repository, products productLoader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("discount repository required")
	}
	if products == nil {
		return nil, fmt.Errorf("product repository required")
	}
	return &service{repo: repo, products: products}, nil
}

func (s *service) List(ctx context.Context) ([]DiscountDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list discounts")
	}
	return NewDiscountDTOs(rows), nil
}

func (s *service) ListByProduct(ctx context.Context, productID uuid.UUID) ([]DiscountDTO, error) {
	rows, err := s.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list product discounts")
	}
	return NewDiscountDTOs(rows), nil
}

// Create validates the window and inserts a new discount.
func (s *service) Create(ctx context.Context, input CreateDiscountInput) (*DiscountDTO, error) {
	if err := validateWindow(input.BeginDate, input.EndDate); err != nil {
		return nil, err
	}
	if err := validatePercentage(input.DiscountPercentage); err != nil {
		return nil, err
	}

	if _, err := s.products.FindByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	discount := &models.Discount{
		ID:                 uuid.New(),
		ProductID:          input.ProductID,
		BeginDate:          input.BeginDate,
		EndDate:            input.EndDate,
		DiscountPercentage: input.DiscountPercentage,
	}
	created, err := s.repo.Create(ctx, discount)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert discount")
	}
	return NewDiscountDTO(created), nil
}

// Update mutates an existing discount window.
func (s *service) Update(ctx context.Context, discountID uuid.UUID, input UpdateDiscountInput) (*DiscountDTO, error) {
	discount, err := s.repo.FindByID(ctx, discountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "discount not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load discount")
	}

	if input.BeginDate != nil {
		discount.BeginDate = *input.BeginDate
	}
	if input.EndDate != nil {
		discount.EndDate = *input.EndDate
	}
	if input.DiscountPercentage != nil {
		if err := validatePercentage(*input.DiscountPercentage); err != nil {
			return nil, err
		}
		discount.DiscountPercentage = *input.DiscountPercentage
	}
	if err := validateWindow(discount.BeginDate, discount.EndDate); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, discount)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update discount")
	}
	return NewDiscountDTO(updated), nil
}

func validateWindow(begin, end types.Date) error {
	if begin.IsZero() || end.IsZero() {
		return pkgerrors.New(pkgerrors.CodeValidation, "begin_date and end_date are required")
	}
	if begin.After(end.Time) {
		return pkgerrors.New(pkgerrors.CodeValidation, "begin_date must not be after end_date")
	}
	return nil
}

func validatePercentage(value decimal.Decimal) error {
	if value.LessThanOrEqual(decimal.Zero) || value.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return pkgerrors.New(pkgerrors.CodeValidation, "discount_percentage must be between 0 and 1 exclusive")
	}
	return nil
}
