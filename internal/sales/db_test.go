package sale

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
	dsn := "file:sales_" + uuid.NewString() + "?mode=memory&cache=shared"
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
		`CREATE TABLE salespersons (
			id TEXT PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			address TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL UNIQUE,
			start_date DATE,
			termination_date DATE,
			manager TEXT NOT NULL DEFAULT '',
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE customers (
			id TEXT PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			address TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			start_date DATE,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE sales (
			id TEXT PRIMARY KEY,
			product_id TEXT NOT NULL,
			salesperson_id TEXT NOT NULL,
			customer_id TEXT NOT NULL,
			sales_date DATE NOT NULL,
			created_at DATETIME
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

func seedProduct(t *testing.T, conn *gorm.DB, name string, qty int, purchase, sale, commission string) *models.Product {
	t.Helper()
	product := &models.Product{
		ID:                   uuid.New(),
		Name:                 name,
		Manufacturer:         "WeRToys",
		PurchasePrice:        decimal.RequireFromString(purchase),
		SalePrice:            decimal.RequireFromString(sale),
		QtyOnHand:            qty,
		CommissionPercentage: decimal.RequireFromString(commission),
	}
	if err := conn.Create(product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return product
}

func seedSalesperson(t *testing.T, conn *gorm.DB, first, last string) *models.Salesperson {
	t.Helper()
	start := types.NewDate(2023, time.January, 1)
	row := &models.Salesperson{
		ID:        uuid.New(),
		FirstName: first,
		LastName:  last,
		Phone:     "phone-" + uuid.NewString(),
		StartDate: &start,
	}
	if err := conn.Create(row).Error; err != nil {
		t.Fatalf("create salesperson: %v", err)
	}
	return row
}

func seedCustomer(t *testing.T, conn *gorm.DB, first, last string) *models.Customer {
	t.Helper()
	row := &models.Customer{
		ID:        uuid.New(),
		FirstName: first,
		LastName:  last,
	}
	if err := conn.Create(row).Error; err != nil {
		t.Fatalf("create customer: %v", err)
	}
	return row
}
