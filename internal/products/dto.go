package product

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bespoked-bikes/sales-backend/pkg/db/models"
)

// ProductDTO is the API representation of a catalog product. SalePrice
// carries the effective selling price for today, so an active discount
// is visible directly in catalog reads.
type ProductDTO struct {
	ID                   uuid.UUID       `json:"id"`
	Name                 string          `json:"name"`
	Manufacturer         string          `json:"manufacturer"`
	Style                string          `json:"style"`
	PurchasePrice        decimal.Decimal `json:"purchase_price"`
	SalePrice            decimal.Decimal `json:"sale_price"`
	QtyOnHand            int             `json:"qty_on_hand"`
	CommissionPercentage decimal.Decimal `json:"commission_percentage"`
}

// NewProductDTO maps a product row plus its resolved selling price.
func NewProductDTO(product *models.Product, sellingPrice decimal.Decimal) *ProductDTO {
	return &ProductDTO{
		ID:                   product.ID,
		Name:                 product.Name,
		Manufacturer:         product.Manufacturer,
		Style:                product.Style,
		PurchasePrice:        product.PurchasePrice,
		SalePrice:            sellingPrice,
		QtyOnHand:            product.QtyOnHand,
		CommissionPercentage: product.CommissionPercentage,
	}
}
