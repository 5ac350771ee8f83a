package product

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	discountpkg "github.com/bespoked-bikes/sales-backend/internal/discounts"
	"github.com/bespoked-bikes/sales-backend/internal/pricing"
	"github.com/bespoked-bikes/sales-backend/pkg/db/models"
	pkgerrors "github.com/bespoked-bikes/sales-backend/pkg/errors"
	"github.com/bespoked-bikes/sales-backend/pkg/types"
)

func TestCreateProductRejectsDuplicateName(t *testing.T) {
	t.Parallel()

	conn := newTestDB(t)
	repo := NewRepository(conn)
	engine, err := pricing.NewEngine(discountpkg.NewRepository(conn))
	require.NoError(t, err)
	svc, err := NewService(repo, engine)
	require.NoError(t, err)
	ctx := context.Background()

	input := CreateProductInput{
		Name:                 "SuperFast",
		Manufacturer:         "WeRToys",
		Style:                "Racing",
		PurchasePrice:        decimal.RequireFromString("100.00"),
		SalePrice:            decimal.RequireFromString("95.00"),
		QtyOnHand:            5,
		CommissionPercentage: decimal.RequireFromString("0.10"),
	}
	_, err = svc.CreateProduct(ctx, input)
	require.NoError(t, err)

	_, err = svc.CreateProduct(ctx, input)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeConflict, typed.Code())
}

func TestUpdateProductNameConflict(t *testing.T) {
	t.Parallel()

	conn := newTestDB(t)
	repo := NewRepository(conn)
	engine, err := pricing.NewEngine(discountpkg.NewRepository(conn))
	require.NoError(t, err)
	svc, err := NewService(repo, engine)
	require.NoError(t, err)
	ctx := context.Background()

	mustCreateTestProduct(t, conn, "SuperFast", 5)
	other := mustCreateTestProduct(t, conn, "SuperCool", 10)

	taken := "SuperFast"
	_, err = svc.UpdateProduct(ctx, other.ID, UpdateProductInput{Name: &taken})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeConflict, typed.Code())

	// renaming to its own current name is not a conflict
	self := "SuperCool"
	updated, err := svc.UpdateProduct(ctx, other.ID, UpdateProductInput{Name: &self})
	require.NoError(t, err)
	require.Equal(t, "SuperCool", updated.Name)
}

func TestUpdateProductAppliesPartialFields(t *testing.T) {
	t.Parallel()

	conn := newTestDB(t)
	repo := NewRepository(conn)
	engine, err := pricing.NewEngine(discountpkg.NewRepository(conn))
	require.NoError(t, err)
	svc, err := NewService(repo, engine)
	require.NoError(t, err)
	ctx := context.Background()

	seeded := mustCreateTestProduct(t, conn, "SuperFast", 5)

	qty := 9
	price := decimal.RequireFromString("110.00")
	updated, err := svc.UpdateProduct(ctx, seeded.ID, UpdateProductInput{
		QtyOnHand:     &qty,
		PurchasePrice: &price,
	})
	require.NoError(t, err)
	require.Equal(t, 9, updated.QtyOnHand)
	require.True(t, updated.PurchasePrice.Equal(price))
	require.Equal(t, "SuperFast", updated.Name)
}

func TestUpdateProductMissing(t *testing.T) {
	t.Parallel()

	conn := newTestDB(t)
	repo := NewRepository(conn)
	engine, err := pricing.NewEngine(discountpkg.NewRepository(conn))
	require.NoError(t, err)
	svc, err := NewService(repo, engine)
	require.NoError(t, err)

	name := "Ghost"
	_, err = svc.UpdateProduct(context.Background(), uuid.New(), UpdateProductInput{Name: &name})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestListProductsResolvesTodayPrice(t *testing.T) {
	t.Parallel()

	conn := newTestDB(t)
	repo := NewRepository(conn)
	engine, err := pricing.NewEngine(discountpkg.NewRepository(conn))
	require.NoError(t, err)
	svc, err := NewService(repo, engine)
	require.NoError(t, err)
	ctx := context.Background()

	discounted := mustCreateTestProduct(t, conn, "SuperFast", 5)
	plain := mustCreateTestProduct(t, conn, "SuperCool", 10)

	today := types.DateOf(time.Now())
	window := &models.Discount{
		ID:                 uuid.New(),
		ProductID:          discounted.ID,
		BeginDate:          types.NewDate(today.Year(), today.Month(), 1),
		EndDate:            types.NewDate(today.Year()+1, today.Month(), 1),
		DiscountPercentage: decimal.RequireFromString("0.10"),
	}
	require.NoError(t, conn.Create(window).Error)

	rows, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byName := map[string]ProductDTO{}
	for _, row := range rows {
		byName[row.Name] = row
	}
	// 100 * 0.90 = 90.00 from the purchase price
	require.Equal(t, "90.00", byName["SuperFast"].SalePrice.StringFixed(2))
	require.Equal(t, "95.00", byName["SuperCool"].SalePrice.StringFixed(2))
	require.True(t, byName["SuperCool"].SalePrice.Equal(plain.SalePrice))
}

func TestCreateProductValidation(t *testing.T) {
	t.Parallel()

	conn := newTestDB(t)
	repo := NewRepository(conn)
	engine, err := pricing.NewEngine(discountpkg.NewRepository(conn))
	require.NoError(t, err)
	svc, err := NewService(repo, engine)
	require.NoError(t, err)
	ctx := context.Background()

	cases := []struct {
		name  string
		input CreateProductInput
	}{
		{
			name:  "empty name",
			input: CreateProductInput{Name: "  "},
		},
		{
			name: "negative price",
			input: CreateProductInput{
				Name:          "Bad",
				PurchasePrice: decimal.RequireFromString("-1"),
			},
		},
		{
			name: "commission out of range",
			input: CreateProductInput{
				Name:                 "Bad",
				CommissionPercentage: decimal.NewFromInt(2),
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateProduct(ctx, tc.input)
			require.Error(t, err)
			typed := pkgerrors.As(err)
			require.NotNil(t, typed)
			require.Equal(t, pkgerrors.CodeValidation, typed.Code())
		})
	}
}
