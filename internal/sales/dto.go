package sale

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bespoked-bikes/sales-backend/pkg/db/models"
	"github.com/bespoked-bikes/sales-backend/pkg/types"
)

// SaleDTO is the API representation of a recorded sale. SalePrice is
// the price that applied on the sale date, discounts included.
type SaleDTO struct {
	ID                   uuid.UUID       `json:"id"`
	ProductID            uuid.UUID       `json:"product_id"`
	Product              string          `json:"product"`
	SalespersonID        uuid.UUID       `json:"salesperson_id"`
	Salesperson          string          `json:"salesperson"`
	CustomerID           uuid.UUID       `json:"customer_id"`
	Customer             string          `json:"customer"`
	SalesDate            types.Date      `json:"sales_date"`
	SalePrice            decimal.Decimal `json:"sale_price"`
	CommissionPercentage decimal.Decimal `json:"commission_percentage"`
}

// NewSaleDTO maps a sale row plus its resolved price. The sale must
// carry its preloaded associations.
func NewSaleDTO(sale *models.Sale, price decimal.Decimal) *SaleDTO {
	dto := &SaleDTO{
		ID:            sale.ID,
		ProductID:     sale.ProductID,
		SalespersonID: sale.SalespersonID,
		CustomerID:    sale.CustomerID,
		SalesDate:     sale.SalesDate,
		SalePrice:     price,
	}
	if sale.Product != nil {
		dto.Product = sale.Product.Name
		dto.CommissionPercentage = sale.Product.CommissionPercentage
	}
	if sale.Salesperson != nil {
		dto.Salesperson = sale.Salesperson.FullName()
	}
	if sale.Customer != nil {
		dto.Customer = sale.Customer.FullName()
	}
	return dto
}
