package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/bespoked-bikes/sales-backend/pkg/types"
)

// Sale records a single unit sold. Pricing is never persisted here; it
// is derived from the product and the discount window covering
// SalesDate whenever the sale is read back.
type Sale struct {
	ID            uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID     uuid.UUID  `gorm:"column:product_id;type:uuid;not null;index"`
	SalespersonID uuid.UUID  `gorm:"column:salesperson_id;type:uuid;not null;index"`
	CustomerID    uuid.UUID  `gorm:"column:customer_id;type:uuid;not null;index"`
	SalesDate     types.Date `gorm:"column:sales_date;type:date;not null;index"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime"`

	Product     *Product     `gorm:"foreignKey:ProductID"`
	Salesperson *Salesperson `gorm:"foreignKey:SalespersonID"`
	Customer    *Customer    `gorm:"foreignKey:CustomerID"`
}

func (Sale) TableName() string { return "sales" }
