package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog item. PurchasePrice is what customers pay before
// discounting; SalePrice is the undiscounted list price used for
// commission math.
type Product struct {
	ID                   uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name                 string          `gorm:"column:name;not null;uniqueIndex"`
	Manufacturer         string          `gorm:"column:manufacturer;not null"`
	Style                string          `gorm:"column:style"`
	PurchasePrice        decimal.Decimal `gorm:"column:purchase_price;type:numeric(12,2);not null"`
	SalePrice            decimal.Decimal `gorm:"column:sale_price;type:numeric(12,2);not null"`
	QtyOnHand            int             `gorm:"column:qty_on_hand;not null;default:0"`
	CommissionPercentage decimal.Decimal `gorm:"column:commission_percentage;type:numeric(6,4);not null"`
	CreatedAt            time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt            time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Product) TableName() string { return "products" }
