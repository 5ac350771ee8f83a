package discount

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bespoked-bikes/sales-backend/pkg/db/models"
	"github.com/bespoked-bikes/sales-backend/pkg/types"
)

func TestFindActiveCoversInclusiveBounds(t *testing.T) {
	t.Parallel()

	conn := newTestDB(t)
	ctx := context.Background()
	repo := NewRepository(conn)

	product := mustCreateTestProduct(t, conn)
	begin := types.NewDate(2023, time.December, 1)
	end := types.NewDate(2024, time.January, 31)
	seeded := mustCreateTestDiscount(t, conn, product.ID, begin, end, "0.05", time.Now())

	for _, on := range []types.Date{
		begin,
		types.NewDate(2023, time.December, 15),
		end,
	} {
		found, err := repo.FindActive(ctx, product.ID, on)
		require.NoError(t, err, "date %s", on)
		require.Equal(t, seeded.ID, found.ID)
		require.True(t, found.Covers(on))
	}

	for _, on := range []types.Date{
		types.NewDate(2023, time.November, 30),
		types.NewDate(2024, time.February, 1),
	} {
		_, err := repo.FindActive(ctx, product.ID, on)
		require.True(t, errors.Is(err, gorm.ErrRecordNotFound), "date %s", on)
	}
}

func TestFindActiveIgnoresOtherProducts(t *testing.T) {
	t.Parallel()

	conn := newTestDB(t)
	ctx := context.Background()
	repo := NewRepository(conn)

	discounted := mustCreateTestProduct(t, conn)
	plain := mustCreateTestProduct(t, conn)
	on := types.NewDate(2023, time.June, 10)
	mustCreateTestDiscount(t, conn, discounted.ID,
		types.NewDate(2023, time.June, 1), types.NewDate(2023, time.June, 30), "0.10", time.Now())

	_, err := repo.FindActive(ctx, plain.ID, on)
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestFindActiveOverlapResolvesToEarliestCreated(t *testing.T) {
	t.Parallel()

	conn := newTestDB(t)
	ctx := context.Background()
	repo := NewRepository(conn)

	product := mustCreateTestProduct(t, conn)
	begin := types.NewDate(2023, time.June, 1)
	end := types.NewDate(2023, time.June, 30)

	base := time.Date(2023, time.May, 1, 12, 0, 0, 0, time.UTC)
	older := mustCreateTestDiscount(t, conn, product.ID, begin, end, "0.05", base)
	mustCreateTestDiscount(t, conn, product.ID, begin, end, "0.50", base.Add(time.Hour))

	found, err := repo.FindActive(ctx, product.ID, types.NewDate(2023, time.June, 15))
	require.NoError(t, err)
	require.Equal(t, older.ID, found.ID)
}

func TestFindActiveCreationTieBreaksOnID(t *testing.T) {
	t.Parallel()

	conn := newTestDB(t)
	ctx := context.Background()
	repo := NewRepository(conn)

	product := mustCreateTestProduct(t, conn)
	begin := types.NewDate(2023, time.June, 1)
	end := types.NewDate(2023, time.June, 30)
	createdAt := time.Date(2023, time.May, 1, 12, 0, 0, 0, time.UTC)

	lower := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	higher := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	for _, row := range []*models.Discount{
		{ID: higher, ProductID: product.ID, BeginDate: begin, EndDate: end,
			DiscountPercentage: decimal.RequireFromString("0.50"), CreatedAt: createdAt},
		{ID: lower, ProductID: product.ID, BeginDate: begin, EndDate: end,
			DiscountPercentage: decimal.RequireFromString("0.05"), CreatedAt: createdAt},
	} {
		require.NoError(t, conn.Create(row).Error)
	}

	found, err := repo.FindActive(ctx, product.ID, types.NewDate(2023, time.June, 15))
	require.NoError(t, err)
	require.Equal(t, lower, found.ID)
}

func TestListByProductOrdersByCreation(t *testing.T) {
	t.Parallel()

	conn := newTestDB(t)
	ctx := context.Background()
	repo := NewRepository(conn)

	product := mustCreateTestProduct(t, conn)
	base := time.Date(2023, time.May, 1, 12, 0, 0, 0, time.UTC)
	first := mustCreateTestDiscount(t, conn, product.ID,
		types.NewDate(2023, time.June, 1), types.NewDate(2023, time.June, 30), "0.05", base)
	second := mustCreateTestDiscount(t, conn, product.ID,
		types.NewDate(2023, time.July, 1), types.NewDate(2023, time.July, 31), "0.10", base.Add(time.Minute))

	rows, err := repo.ListByProduct(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, first.ID, rows[0].ID)
	require.Equal(t, second.ID, rows[1].ID)
}
