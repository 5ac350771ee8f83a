package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/bespoked-bikes/sales-backend/pkg/types"
)

type Customer struct {
	ID        uuid.UUID   `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	FirstName string      `gorm:"column:first_name;not null"`
	LastName  string      `gorm:"column:last_name;not null"`
	Address   string      `gorm:"column:address"`
	Phone     string      `gorm:"column:phone"`
	StartDate *types.Date `gorm:"column:start_date;type:date"`
	CreatedAt time.Time   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time   `gorm:"column:updated_at;autoUpdateTime"`
}

func (Customer) TableName() string { return "customers" }

func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
