package product

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bespoked-bikes/sales-backend/pkg/db"
	"github.com/bespoked-bikes/sales-backend/pkg/db/models"
	pkgerrors "github.com/bespoked-bikes/sales-backend/pkg/errors"
	"github.com/bespoked-bikes/sales-backend/pkg/types"
)

// Service exposes catalog management operations.
type Service interface {
	ListProducts(ctx context.Context) ([]ProductDTO, error)
	GetProduct(ctx context.Context, productID uuid.UUID) (*ProductDTO, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error)
	UpdateProduct(ctx context.Context, productID uuid.UUID, input UpdateProductInput) (*ProductDTO, error)
}

// CreateProductInput holds the validated payload to create a product.
type CreateProductInput struct {
	Name                 string
	Manufacturer         string
	Style                string
	PurchasePrice        decimal.Decimal
	SalePrice            decimal.Decimal
	QtyOnHand            int
	CommissionPercentage decimal.Decimal
}

// UpdateProductInput holds optional mutation values for a product.
type UpdateProductInput struct {
	Name                 *string
	Manufacturer         *string
	Style                *string
	PurchasePrice        *decimal.Decimal
	SalePrice            *decimal.Decimal
	QtyOnHand            *int
	CommissionPercentage *decimal.Decimal
}

type priceResolver interface {
	EffectivePrice(ctx context.Context, product *models.Product, on types.Date) (decimal.Decimal, error)
}

type service struct {
	repo   *Repository
	pricer priceResolver
}

// NewService constructs a product service instance.
func NewService(repo *Repository, pricer priceResolver) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if pricer == nil {
		return nil, fmt.Errorf("pricing engine required")
	}
	return &service{repo: repo, pricer: pricer}, nil
}

// ListProducts returns the catalog with today's selling price resolved
// per product.
func (s *service) ListProducts(ctx context.Context) ([]ProductDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}

	today := types.DateOf(time.Now())
	out := make([]ProductDTO, 0, len(rows))
	for i := range rows {
		price, err := s.pricer.EffectivePrice(ctx, &rows[i], today)
		if err != nil {
			return nil, err
		}
		out = append(out, *NewProductDTO(&rows[i], price))
	}
	return out, nil
}

func (s *service) GetProduct(ctx context.Context, productID uuid.UUID) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	price, err := s.pricer.EffectivePrice(ctx, product, types.DateOf(time.Now()))
	if err != nil {
		return nil, err
	}
	return NewProductDTO(product, price), nil
}

// CreateProduct inserts a new catalog product.
func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	name := strings.TrimSpace(input.Name)
	if err := validateProductValues(name, input.PurchasePrice, input.SalePrice, input.QtyOnHand, input.CommissionPercentage); err != nil {
		return nil, err
	}
	if err := s.ensureNameAvailable(ctx, name, uuid.Nil); err != nil {
		return nil, err
	}

	product := &models.Product{
		ID:                   uuid.New(),
		Name:                 name,
		Manufacturer:         strings.TrimSpace(input.Manufacturer),
		Style:                strings.TrimSpace(input.Style),
		PurchasePrice:        input.PurchasePrice,
		SalePrice:            input.SalePrice,
		QtyOnHand:            input.QtyOnHand,
		CommissionPercentage: input.CommissionPercentage,
	}
	created, err := s.repo.Create(ctx, product)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "another product with the same name already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert product")
	}

	price, err := s.pricer.EffectivePrice(ctx, created, types.DateOf(time.Now()))
	if err != nil {
		return nil, err
	}
	return NewProductDTO(created, price), nil
}

// UpdateProduct mutates an existing catalog product.
func (s *service) UpdateProduct(ctx context.Context, productID uuid.UUID, input UpdateProductInput) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	applyUpdateToProduct(product, input)
	if err := validateProductValues(product.Name, product.PurchasePrice, product.SalePrice, product.QtyOnHand, product.CommissionPercentage); err != nil {
		return nil, err
	}
	if input.Name != nil {
		if err := s.ensureNameAvailable(ctx, product.Name, product.ID); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "another product with the same name already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update product")
	}

	price, err := s.pricer.EffectivePrice(ctx, updated, types.DateOf(time.Now()))
	if err != nil {
		return nil, err
	}
	return NewProductDTO(updated, price), nil
}

func (s *service) ensureNameAvailable(ctx context.Context, name string, selfID uuid.UUID) error {
	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check product name")
	}
	if existing.ID != selfID {
		return pkgerrors.New(pkgerrors.CodeConflict, "another product with the same name already exists")
	}
	return nil
}

func applyUpdateToProduct(product *models.Product, input UpdateProductInput) {
	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Manufacturer != nil {
		product.Manufacturer = strings.TrimSpace(*input.Manufacturer)
	}
	if input.Style != nil {
		product.Style = strings.TrimSpace(*input.Style)
	}
	if input.PurchasePrice != nil {
		product.PurchasePrice = *input.PurchasePrice
	}
	if input.SalePrice != nil {
		product.SalePrice = *input.SalePrice
	}
	if input.QtyOnHand != nil {
		product.QtyOnHand = *input.QtyOnHand
	}
	if input.CommissionPercentage != nil {
		product.CommissionPercentage = *input.CommissionPercentage
	}
}

func validateProductValues(name string, purchase, sale decimal.Decimal, qty int, commission decimal.Decimal) error {
	if name == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if purchase.IsNegative() || sale.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "prices must be non-negative")
	}
	if qty < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "qty_on_hand must be non-negative")
	}
	if commission.IsNegative() || commission.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return pkgerrors.New(pkgerrors.CodeValidation, "commission_percentage must be between 0 and 1")
	}
	return nil
}
