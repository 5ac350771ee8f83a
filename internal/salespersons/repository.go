package salesperson

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bespoked-bikes/sales-backend/pkg/db/models"
)

// Repository wires together salesperson persistence helpers.
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

// FindByID loads the salesperson row.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Salesperson, error) {
	var row models.Salesperson
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// FindByName loads a salesperson by exact first and last name.
func (r *Repository) FindByName(ctx context.Context, firstName, lastName string) (*models.Salesperson, error) {
	var row models.Salesperson
	err := r.db.WithContext(ctx).
		First(&row, "first_name = ? AND last_name = ?", firstName, lastName).
		Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns the whole sales team, oldest first.
func (r *Repository) List(ctx context.Context) ([]models.Salesperson, error) {
	var rows []models.Salesperson
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&rows).
		Error
	return rows, err
}

// Create inserts a new salesperson row.
func (r *Repository) Create(ctx context.Context, row *models.Salesperson) (*models.Salesperson, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// Update persists changes to an existing salesperson row.
func (r *Repository) Update(ctx context.Context, row *models.Salesperson) (*models.Salesperson, error) {
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}
