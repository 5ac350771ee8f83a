package pricing

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	discountpkg "github.com/bespoked-bikes/sales-backend/internal/discounts"
	"github.com/bespoked-bikes/sales-backend/pkg/db/models"
	"github.com/bespoked-bikes/sales-backend/pkg/types"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:pricing_" + uuid.NewString() + "?mode=memory&cache=shared"
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

func seedProduct(t *testing.T, conn *gorm.DB, purchase, sale string) *models.Product {
	t.Helper()
	product := &models.Product{
		ID:                   uuid.New(),
		Name:                 "Bike " + uuid.NewString(),
		Manufacturer:         "WeRToys",
		PurchasePrice:        decimal.RequireFromString(purchase),
		SalePrice:            decimal.RequireFromString(sale),
		QtyOnHand:            5,
		CommissionPercentage: decimal.RequireFromString("0.10"),
	}
	require.NoError(t, conn.Create(product).Error)
	return product
}

func seedDiscount(t *testing.T, conn *gorm.DB, productID uuid.UUID, begin, end types.Date, pct string) {
	t.Helper()
	require.NoError(t, conn.Create(&models.Discount{
		ID:                 uuid.New(),
		ProductID:          productID,
		BeginDate:          begin,
		EndDate:            end,
		DiscountPercentage: decimal.RequireFromString(pct),
	}).Error)
}

func TestEffectivePriceWithoutDiscountReturnsListPrice(t *testing.T) {
	t.Parallel()

	conn := newTestDB(t)
	engine, err := NewEngine(discountpkg.NewRepository(conn))
	require.NoError(t, err)

	product := seedProduct(t, conn, "100.00", "95.00")
	price, err := engine.EffectivePrice(context.Background(), product, types.NewDate(2023, time.June, 1))
	require.NoError(t, err)
	require.True(t, price.Equal(decimal.RequireFromString("95.00")), "got %s", price)
}

func TestEffectivePriceAppliesActiveDiscount(t *testing.T) {
	t.Parallel()

	conn := newTestDB(t)
	engine, err := NewEngine(discountpkg.NewRepository(conn))
	require.NoError(t, err)

	product := seedProduct(t, conn, "100.00", "95.00")
	begin := types.NewDate(2023, time.December, 1)
	end := types.NewDate(2024, time.January, 31)
	seedDiscount(t, conn, product.ID, begin, end, "0.05")

	// 100 * (1 - 0.05) = 95.00, derived from the purchase price
	for _, on := range []types.Date{begin, types.NewDate(2023, time.December, 25), end} {
		price, err := engine.EffectivePrice(context.Background(), product, on)
		require.NoError(t, err)
		require.True(t, price.Equal(decimal.RequireFromString("95.00")), "date %s got %s", on, price)
	}

	outside, err := engine.EffectivePrice(context.Background(), product, types.NewDate(2024, time.February, 1))
	require.NoError(t, err)
	require.True(t, outside.Equal(product.SalePrice))
}

func TestEffectivePriceRoundsToCents(t *testing.T) {
	t.Parallel()

	conn := newTestDB(t)
	engine, err := NewEngine(discountpkg.NewRepository(conn))
	require.NoError(t, err)

	product := seedProduct(t, conn, "99.99", "120.00")
	on := types.NewDate(2023, time.June, 15)
	seedDiscount(t, conn, product.ID,
		types.NewDate(2023, time.June, 1), types.NewDate(2023, time.June, 30), "0.333")

	// 99.99 * 0.667 = 66.693330 -> 66.69
	price, err := engine.EffectivePrice(context.Background(), product, on)
	require.NoError(t, err)
	require.Equal(t, "66.69", price.StringFixed(2))
}

func TestEffectivePriceRequiresProduct(t *testing.T) {
	t.Parallel()

	conn := newTestDB(t)
	engine, err := NewEngine(discountpkg.NewRepository(conn))
	require.NoError(t, err)

	_, err = engine.EffectivePrice(context.Background(), nil, types.NewDate(2023, time.June, 1))
	require.Error(t, err)
}
