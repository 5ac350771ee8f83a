package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bespoked-bikes/sales-backend/api/responses"
	"github.com/bespoked-bikes/sales-backend/api/validators"
	discountsvc "github.com/bespoked-bikes/sales-backend/internal/discounts"
	pkgerrors "github.com/bespoked-bikes/sales-backend/pkg/errors"
	"github.com/bespoked-bikes/sales-backend/pkg/logger"
	"github.com/bespoked-bikes/sales-backend/pkg/types"
)

// ListDiscounts returns discount windows, optionally filtered by the
// product_id query parameter.
func ListDiscounts(svc discountsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "discount service unavailable"))
			return
		}

		raw := strings.TrimSpace(r.URL.Query().Get("product_id"))
		if raw == "" {
			rows, err := svc.List(r.Context())
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			responses.WriteSuccess(w, rows)
			return
		}

		productID, err := uuid.Parse(raw)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product_id"))
			return
		}

		rows, err := svc.ListByProduct(r.Context(), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, rows)
	}
}

func CreateDiscount(svc discountsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "discount service unavailable"))
			return
		}

		var payload createDiscountRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toCreateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		discount, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, discount)
	}
}

func UpdateDiscount(svc discountsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "discount service unavailable"))
			return
		}

		discountID, err := uuidParam(r, "discountId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateDiscountRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		discount, err := svc.Update(r.Context(), discountID, payload.toUpdateInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, discount)
	}
}

type createDiscountRequest struct {
	ProductID          string          `json:"product_id" validate:"required,uuid"`
	BeginDate          types.Date      `json:"begin_date"`
	EndDate            types.Date      `json:"end_date"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
}

func (r createDiscountRequest) toCreateInput() (discountsvc.CreateDiscountInput, error) {
	productID, err := uuid.Parse(strings.TrimSpace(r.ProductID))
	if err != nil {
		return discountsvc.CreateDiscountInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product_id")
	}

	return discountsvc.CreateDiscountInput{
		ProductID:          productID,
		BeginDate:          r.BeginDate,
		EndDate:            r.EndDate,
		DiscountPercentage: r.DiscountPercentage,
	}, nil
}

type updateDiscountRequest struct {
	BeginDate          *types.Date      `json:"begin_date,omitempty"`
	EndDate            *types.Date      `json:"end_date,omitempty"`
	DiscountPercentage *decimal.Decimal `json:"discount_percentage,omitempty"`
}

func (r updateDiscountRequest) toUpdateInput() discountsvc.UpdateDiscountInput {
	return discountsvc.UpdateDiscountInput{
		BeginDate:          r.BeginDate,
		EndDate:            r.EndDate,
		DiscountPercentage: r.DiscountPercentage,
	}
}
