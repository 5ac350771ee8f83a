package discount

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bespoked-bikes/sales-backend/pkg/db/models"
	"github.com/bespoked-bikes/sales-backend/pkg/types"
)

// DiscountDTO is the API representation of a discount window.
type DiscountDTO struct {
	ID                 uuid.UUID       `json:"id"`
	ProductID          uuid.UUID       `json:"product_id"`
	BeginDate          types.Date      `json:"begin_date"`
	EndDate            types.Date      `json:"end_date"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
}

// NewDiscountDTO maps a discount row to its API shape.
func NewDiscountDTO(discount *models.Discount) *DiscountDTO {
	return &DiscountDTO{
		ID:                 discount.ID,
		ProductID:          discount.ProductID,
		BeginDate:          discount.BeginDate,
		EndDate:            discount.EndDate,
		DiscountPercentage: discount.DiscountPercentage,
	}
}

// NewDiscountDTOs maps a slice of discount rows.
func NewDiscountDTOs(discounts []models.Discount) []DiscountDTO {
	out := make([]DiscountDTO, 0, len(discounts))
	for i := range discounts {
		out = append(out, *NewDiscountDTO(&discounts[i]))
	}
	return out
}
