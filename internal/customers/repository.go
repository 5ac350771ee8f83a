package customer

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bespoked-bikes/sales-backend/pkg/db/models"
)

// Repository wires together customer persistence helpers.
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

// FindByID loads the customer row.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	var row models.Customer
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// FindByPhone loads a customer by exact phone match.
func (r *Repository) FindByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	var row models.Customer
	if err := r.db.WithContext(ctx).First(&row, "phone = ?", phone).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns all customers, oldest first.
func (r *Repository) List(ctx context.Context) ([]models.Customer, error) {
	var rows []models.Customer
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&rows).
		Error
	return rows, err
}

// Create inserts a new customer row.
func (r *Repository) Create(ctx context.Context, row *models.Customer) (*models.Customer, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// Update persists changes to an existing customer row.
func (r *Repository) Update(ctx context.Context, row *models.Customer) (*models.Customer, error) {
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}
