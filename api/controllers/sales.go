package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/bespoked-bikes/sales-backend/api/responses"
	"github.com/bespoked-bikes/sales-backend/api/validators"
	salesvc "github.com/bespoked-bikes/sales-backend/internal/sales"
	pkgerrors "github.com/bespoked-bikes/sales-backend/pkg/errors"
	"github.com/bespoked-bikes/sales-backend/pkg/logger"
	"github.com/bespoked-bikes/sales-backend/pkg/types"
)

// ListSales returns recorded sales, optionally filtered to an
// inclusive date range via start_date and end_date query parameters.
func ListSales(svc salesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "sale service unavailable"))
			return
		}

		from, err := validators.DateQueryParam(r, "start_date")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		to, err := validators.DateQueryParam(r, "end_date")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := svc.ListSales(r.Context(), from, to)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, rows)
	}
}

func CreateSale(svc salesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "sale service unavailable"))
			return
		}

		var payload createSaleRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toCreateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sale, err := svc.CreateSale(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, sale)
	}
}

type createSaleRequest struct {
	ProductID     string     `json:"product_id" validate:"required,uuid"`
	SalespersonID string     `json:"salesperson_id" validate:"required,uuid"`
	CustomerID    string     `json:"customer_id" validate:"required,uuid"`
	SalesDate     types.Date `json:"sales_date"`
}

func (r createSaleRequest) toCreateInput() (salesvc.CreateSaleInput, error) {
	productID, err := uuid.Parse(strings.TrimSpace(r.ProductID))
	if err != nil {
		return salesvc.CreateSaleInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product_id")
	}
	salespersonID, err := uuid.Parse(strings.TrimSpace(r.SalespersonID))
	if err != nil {
		return salesvc.CreateSaleInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid salesperson_id")
	}
	customerID, err := uuid.Parse(strings.TrimSpace(r.CustomerID))
	if err != nil {
		return salesvc.CreateSaleInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid customer_id")
	}

	return salesvc.CreateSaleInput{
		ProductID:     productID,
		SalespersonID: salespersonID,
		CustomerID:    customerID,
		SalesDate:     r.SalesDate,
	}, nil
}
