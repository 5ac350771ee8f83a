package discount

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/bespoked-bikes/sales-backend/pkg/db/models"
	"github.com/bespoked-bikes/sales-backend/pkg/types"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:discounts_" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	ddl := []string{
		`CREATE TABLE products (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			manufacturer TEXT NOT NULL DEFAULT '',
			style TEXT NOT NULL DEFAULT '',
			purchase_price NUMERIC NOT NULL,
			sale_price NUMERIC NOT NULL,
			qty_on_hand INTEGER NOT NULL DEFAULT 0,
			commission_percentage NUMERIC NOT NULL,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE discounts (
			id TEXT PRIMARY KEY,
			product_id TEXT NOT NULL,
			begin_date DATE NOT NULL,
			end_date DATE NOT NULL,
			discount_percentage NUMERIC NOT NULL,
			created_at DATETIME
		)`,
	}
	for _, stmt := range ddl {
		if err := conn.Exec(stmt).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}
	return conn
}

func mustCreateTestProduct(t *testing.T, tx *gorm.DB) *models.Product {
	t.Helper()
	product := &models.Product{
		ID:                   uuid.New(),
		Name:                 "Bike " + uuid.NewString(),
		Manufacturer:         "WeRToys",
		Style:                "Racing",
		PurchasePrice:        decimal.RequireFromString("100.00"),
		SalePrice:            decimal.RequireFromString("95.00"),
		QtyOnHand:            5,
		CommissionPercentage: decimal.RequireFromString("0.10"),
	}
	if err := tx.Create(product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return product
}

func mustCreateTestDiscount(t *testing.T, tx *gorm.DB, productID uuid.UUID, begin, end types.Date, pct string, createdAt time.Time) *models.Discount {
	t.Helper()
	discount := &models.Discount{
		ID:                 uuid.New(),
		ProductID:          productID,
		BeginDate:          begin,
		EndDate:            end,
		DiscountPercentage: decimal.RequireFromString(pct),
		CreatedAt:          createdAt,
	}
	if err := tx.Create(discount).Error; err != nil {
		t.Fatalf("create discount: %v", err)
	}
	return discount
}
