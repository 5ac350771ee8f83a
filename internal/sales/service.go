package sale

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	customerpkg "github.com/bespoked-bikes/sales-backend/internal/customers"
	productpkg "github.com/bespoked-bikes/sales-backend/internal/products"
	salespersonpkg "github.com/bespoked-bikes/sales-backend/internal/salespersons"
	"github.com/bespoked-bikes/sales-backend/pkg/db"
	"github.com/bespoked-bikes/sales-backend/pkg/db/models"
	pkgerrors "github.com/bespoked-bikes/sales-backend/pkg/errors"
	"github.com/bespoked-bikes/sales-backend/pkg/types"
)

// Service exposes the sale recording workflow.
type Service interface {
	ListSales(ctx context.Context, from, to *types.Date) ([]SaleDTO, error)
	CreateSale(ctx context.Context, input CreateSaleInput) (*SaleDTO, error)
}

// CreateSaleInput holds the validated payload to record a sale.
type CreateSaleInput struct {
	ProductID     uuid.UUID
	SalespersonID uuid.UUID
	CustomerID    uuid.UUID
	SalesDate     types.Date
}

type priceResolver interface {
	EffectivePrice(ctx context.Context, product *models.Product, on types.Date) (decimal.Decimal, error)
}

type service struct {
	repo         *Repository
	dbClient     *db.Client
	products     *productpkg.Repository
	salespersons *salespersonpkg.Repository
	customers    *customerpkg.Repository
	pricer       priceResolver
}

// NewService constructs a sale service instance.
func NewService(repo *Repository, dbClient *db.Client, products *productpkg.Repository, salespersons *salespersonpkg.Repository, customers *customerpkg.Repository, pricer priceResolver) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("sale repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	if products == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if salespersons == nil {
		return nil, fmt.Errorf("salesperson repository required")
	}
	if customers == nil {
		return nil, fmt.Errorf("customer repository required")
	}
	if pricer == nil {
		return nil, fmt.Errorf("pricing engine required")
	}
	return &service{
		repo:         repo,
		dbClient:     dbClient,
		products:     products,
		salespersons: salespersons,
		customers:    customers,
		pricer:       pricer,
	}, nil
}

// ListSales returns recorded sales with the price that applied on each
// sale date.
func (s *service) ListSales(ctx context.Context, from, to *types.Date) ([]SaleDTO, error) {
	if (from == nil) != (to == nil) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "start_date and end_date must be provided together")
	}
	if from != nil && from.After(to.Time) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "start_date must not be after end_date")
	}

	rows, err := s.repo.List(ctx, from, to)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list sales")
	}

	out := make([]SaleDTO, 0, len(rows))
	for i := range rows {
		price, err := s.pricer.EffectivePrice(ctx, rows[i].Product, rows[i].SalesDate)
		if err != nil {
			return nil, err
		}
		out = append(out, *NewSaleDTO(&rows[i], price))
	}
	return out, nil
}

// CreateSale records a sale of one unit. The stock decrement and the
// sale insert commit atomically, so two concurrent sales cannot both
// claim the last unit.
func (s *service) CreateSale(ctx context.Context, input CreateSaleInput) (*SaleDTO, error) {
	if input.SalesDate.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "sales_date is required")
	}

	var createdID uuid.UUID
	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txSales := s.repo.WithTx(tx)
		txProducts := s.products.WithTx(tx)

		if _, err := txProducts.FindByID(ctx, input.ProductID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
		}
		if _, err := s.salespersons.WithTx(tx).FindByID(ctx, input.SalespersonID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "salesperson not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load salesperson")
		}
		if _, err := s.customers.WithTx(tx).FindByID(ctx, input.CustomerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customer")
		}

		claimed, err := txProducts.DecrementStock(ctx, input.ProductID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decrement stock")
		}
		if !claimed {
			return pkgerrors.New(pkgerrors.CodeOutOfStock, "product is out of stock")
		}

		sale := &models.Sale{
			ID:            uuid.New(),
			ProductID:     input.ProductID,
			SalespersonID: input.SalespersonID,
			CustomerID:    input.CustomerID,
			SalesDate:     input.SalesDate,
		}
		if _, err := txSales.Create(ctx, sale); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert sale")
		}
		createdID = sale.ID
		return nil
	}); err != nil {
		if pkgerrors.As(err) != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create sale")
	}

	created, err := s.repo.FindByID(ctx, createdID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load sale")
	}
	price, err := s.pricer.EffectivePrice(ctx, created.Product, created.SalesDate)
	if err != nil {
		return nil, err
	}
	return NewSaleDTO(created, price), nil
}
