package salesperson

import (
	"github.com/google/uuid"

	"github.com/bespoked-bikes/sales-backend/pkg/db/models"
	"github.com/bespoked-bikes/sales-backend/pkg/types"
)

// SalespersonDTO is the API representation of a salesperson.
type SalespersonDTO struct {
	ID              uuid.UUID   `json:"id"`
	FirstName       string      `json:"first_name"`
	LastName        string      `json:"last_name"`
	Address         string      `json:"address"`
	Phone           string      `json:"phone"`
	StartDate       *types.Date `json:"start_date"`
	TerminationDate *types.Date `json:"termination_date"`
	Manager         string      `json:"manager"`
}

// NewSalespersonDTO maps a salesperson row to its API shape.
func NewSalespersonDTO(row *models.Salesperson) *SalespersonDTO {
	return &SalespersonDTO{
		ID:              row.ID,
		FirstName:       row.FirstName,
		LastName:        row.LastName,
		Address:         row.Address,
		Phone:           row.Phone,
		StartDate:       row.StartDate,
		TerminationDate: row.TerminationDate,
		Manager:         row.Manager,
	}
}

// NewSalespersonDTOs maps a slice of salesperson rows.
func NewSalespersonDTOs(rows []models.Salesperson) []SalespersonDTO {
	out := make([]SalespersonDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewSalespersonDTO(&rows[i]))
	}
	return out
}
