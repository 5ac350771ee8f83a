package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/bespoked-bikes/sales-backend/pkg/types"
)

type Salesperson struct {
	ID              uuid.UUID   `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	FirstName       string      `gorm:"column:first_name;not null"`
	LastName        string      `gorm:"column:last_name;not null"`
	Address         string      `gorm:"column:address"`
	Phone           string      `gorm:"column:phone;not null;uniqueIndex"`
	StartDate       *types.Date `gorm:"column:start_date;type:date"`
	TerminationDate *types.Date `gorm:"column:termination_date;type:date"`
	Manager         string      `gorm:"column:manager"`
	CreatedAt       time.Time   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time   `gorm:"column:updated_at;autoUpdateTime"`
}

func (Salesperson) TableName() string { return "salespersons" }

// FullName joins the name parts the way reports display them.
func (s Salesperson) FullName() string {
	return s.FirstName + " " + s.LastName
}
