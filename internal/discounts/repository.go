package discount

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bespoked-bikes/sales-backend/pkg/db/models"
	"github.com/bespoked-bikes/sales-backend/pkg/types"
)

// Repository wires together discount persistence helpers.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// FindActive returns the discount whose window covers the given date
// for the product, bounds inclusive. Overlapping windows resolve to
// the earliest created row, id as the tie-break.
func (r *Repository) FindActive(ctx context.Context, productID uuid.UUID, on types.Date) (*models.Discount, error) {
	var discount models.Discount
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND begin_date <= ? AND end_date >= ?", productID, on, on).
		Order("created_at ASC, id ASC").
		First(&discount).
		Error
	if err != nil {
		return nil, err
	}
	return &discount, nil
}

// FindByID loads a discount row.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Discount, error) {
	var discount models.Discount
	if err := r.db.WithContext(ctx).First(&discount, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &discount, nil
}

// List returns all discounts, oldest first.
func (r *Repository) List(ctx context.Context) ([]models.Discount, error) {
	var rows []models.Discount
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&rows).
		Error
	return rows, err
}

// ListByProduct returns the discounts configured for one product.
func (r *Repository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]models.Discount, error) {
	var rows []models.Discount
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at ASC").
		Find(&rows).
		Error
	return rows, err
}

// Create inserts a new discount row.
func (r *Repository) Create(ctx context.Context, discount *models.Discount) (*models.Discount, error) {
	if err := r.db.WithContext(ctx).Create(discount).Error; err != nil {
		return nil, err
	}
	return discount, nil
}

// Update persists changes to an existing discount row.
func (r *Repository) Update(ctx context.Context, discount *models.Discount) (*models.Discount, error) {
	if err := r.db.WithContext(ctx).Save(discount).Error; err != nil {
		return nil, err
	}
	return discount, nil
}
