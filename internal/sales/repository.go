package sale

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bespoked-bikes/sales-backend/pkg/db/models"
	"github.com/bespoked-bikes/sales-backend/pkg/types"
)

// Repository wires together sale persistence helpers.
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

// Create inserts a new sale row.
func (r *Repository) Create(ctx context.Context, sale *models.Sale) (*models.Sale, error) {
	if err := r.db.WithContext(ctx).Create(sale).Error; err != nil {
		return nil, err
	}
	return sale, nil
}

// FindByID loads a sale with its product, salesperson and customer.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Sale, error) {
	var sale models.Sale
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Salesperson").
		Preload("Customer").
		First(&sale, "id = ?", id).
		Error
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

// List returns sales with associations, optionally restricted to an
// inclusive date range.
func (r *Repository) List(ctx context.Context, from, to *types.Date) ([]models.Sale, error) {
	qb := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Salesperson").
		Preload("Customer").
		Order("created_at ASC")
	if from != nil && to != nil {
		qb = qb.Where("sales_date BETWEEN ? AND ?", *from, *to)
	}

	var rows []models.Sale
	err := qb.Find(&rows).Error
	return rows, err
}

// ListForSalespersonBetween returns a salesperson's sales within the
// inclusive date range, with products preloaded for commission math.
func (r *Repository) ListForSalespersonBetween(ctx context.Context, salespersonID uuid.UUID, begin, end types.Date) ([]models.Sale, error) {
	var rows []models.Sale
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("salesperson_id = ? AND sales_date BETWEEN ? AND ?", salespersonID, begin, end).
		Order("sales_date ASC").
		Find(&rows).
		Error
	return rows, err
}
