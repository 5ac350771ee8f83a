package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bespoked-bikes/sales-backend/pkg/types"
)

// Discount is a time-bounded percentage off a product's purchase
// price. Windows are inclusive on both ends and may overlap; lookups
// order by creation so the earliest row wins.
type Discount struct {
	ID                 uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID          uuid.UUID       `gorm:"column:product_id;type:uuid;not null;index"`
	BeginDate          types.Date      `gorm:"column:begin_date;type:date;not null"`
	EndDate            types.Date      `gorm:"column:end_date;type:date;not null"`
	DiscountPercentage decimal.Decimal `gorm:"column:discount_percentage;type:numeric(6,4);not null"`
	CreatedAt          time.Time       `gorm:"column:created_at;autoCreateTime"`

	Product *Product `gorm:"foreignKey:ProductID"`
}

func (Discount) TableName() string { return "discounts" }

// Covers reports whether the window contains the given date, bounds
// included.
func (d Discount) Covers(on types.Date) bool {
	return on.OnOrAfter(d.BeginDate) && on.OnOrBefore(d.EndDate)
}
