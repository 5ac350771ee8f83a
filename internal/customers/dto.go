package customer

import (
	"github.com/google/uuid"

	"github.com/bespoked-bikes/sales-backend/pkg/db/models"
	"github.com/bespoked-bikes/sales-backend/pkg/types"
)

// CustomerDTO is the API representation of a customer.
type CustomerDTO struct {
	ID        uuid.UUID   `json:"id"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Address   string      `json:"address"`
	Phone     string      `json:"phone"`
	StartDate *types.Date `json:"start_date"`
}

// NewCustomerDTO maps a customer row to its API shape.
func NewCustomerDTO(row *models.Customer) *CustomerDTO {
	return &CustomerDTO{
		ID:        row.ID,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Address:   row.Address,
		Phone:     row.Phone,
		StartDate: row.StartDate,
	}
}

// NewCustomerDTOs maps a slice of customer rows.
func NewCustomerDTOs(rows []models.Customer) []CustomerDTO {
	out := make([]CustomerDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewCustomerDTO(&rows[i]))
	}
	return out
}
