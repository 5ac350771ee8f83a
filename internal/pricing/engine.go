package pricing

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

type discountFinder interface {
	FindActive(ctx context.Context, productID uuid.UUID, on types.Date) (*models.Discount, error)
}

// Engine resolves the selling price of a product on a given date.
// Prices are always derived at read time; nothing here is cached or
// persisted.
type Engine struct {
	discounts discountFinder
}

// NewEngine constructs a pricing engine instance.
func NewEngine(discounts discountFinder) (*Engine, error) {
	if discounts == nil {
		return nil, fmt.Errorf("discount repository required")
	}
	return &Engine{discounts: discounts}, nil
}

// EffectivePrice returns the price a customer pays for the product on
// the given date. With an active discount the price is the purchase
// price reduced by the discount percentage, rounded to cents.
// Without one the undiscounted list price is returned as stored.
func (e *Engine) EffectivePrice(ctx context.Context, product *models.Product, on types.Date) (decimal.Decimal, error) {
	if product == nil {
		return decimal.Zero, pkgerrors.New(pkgerrors.CodeValidation, "product is required")
	}

	discount, err := e.discounts.FindActive(ctx, product.ID, on)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return product.SalePrice, nil
		}
		return decimal.Zero, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve discount")
	}

	factor := decimal.NewFromInt(1).Sub(discount.DiscountPercentage)
	return product.PurchasePrice.Mul(factor).Round(2), nil
}
