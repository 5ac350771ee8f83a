package commission

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	salepkg "github.com/bespoked-bikes/sales-backend/internal/sales"
	salespersonpkg "github.com/bespoked-bikes/sales-backend/internal/salespersons"
	"github.com/bespoked-bikes/sales-backend/pkg/enums"
	pkgerrors "github.com/bespoked-bikes/sales-backend/pkg/errors"
)

// QuarterlyCommissionDTO is one salesperson's line in the quarterly
// report.
type QuarterlyCommissionDTO struct {
	Salesperson     string          `json:"salesperson"`
	TotalSales      decimal.Decimal `json:"total_sales"`
	TotalCommission decimal.Decimal `json:"total_commission"`
}

// Service exposes commission reporting.
type Service interface {
	QuarterlyCommissions(ctx context.Context, quarter enums.Quarter) (map[uuid.UUID]QuarterlyCommissionDTO, error)
}

type service struct {
	salespersons *salespersonpkg.Repository
	sales        *salepkg.Repository
	year         int
}

// NewService constructs a commission service reporting over the given
// calendar year.
func NewService(salespersons *salespersonpkg.Repository, sales *salepkg.Repository, year int) (Service, error) {
	if salespersons == nil {
		return nil, fmt.Errorf("salesperson repository required")
	}
	if sales == nil {
		return nil, fmt.Errorf("sale repository required")
	}
	if year <= 0 {
		return nil, fmt.Errorf("reporting year required")
	}
	return &service{salespersons: salespersons, sales: sales, year: year}, nil
}

// QuarterlyCommissions aggregates each salesperson's totals for the
// quarter. Totals use the product's current list price and commission
// percentage, not the price that applied on the sale date, so a
// catalog change is reflected retroactively in the report. Every
// salesperson appears, including those without sales in the quarter.
func (s *service) QuarterlyCommissions(ctx context.Context, quarter enums.Quarter) (map[uuid.UUID]QuarterlyCommissionDTO, error) {
	begin, end := quarter.Range(s.year)

	team, err := s.salespersons.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list salespersons")
	}

	report := make(map[uuid.UUID]QuarterlyCommissionDTO, len(team))
	for i := range team {
		rows, err := s.sales.ListForSalespersonBetween(ctx, team[i].ID, begin, end)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list quarter sales")
		}

		totalSales := decimal.Zero
		totalCommission := decimal.Zero
		for j := range rows {
			if rows[j].Product == nil {
				continue
			}
			totalSales = totalSales.Add(rows[j].Product.SalePrice)
			totalCommission = totalCommission.Add(rows[j].Product.CommissionPercentage.Mul(rows[j].Product.SalePrice))
		}

		report[team[i].ID] = QuarterlyCommissionDTO{
			Salesperson:     team[i].FullName(),
			TotalSales:      totalSales,
			TotalCommission: totalCommission.Round(2),
		}
	}
	return report, nil
}
