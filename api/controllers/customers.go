package controllers

import (
	"net/http"
	"strings"

	"github.com/bespoked-bikes/sales-backend/api/responses"
	"github.com/bespoked-bikes/sales-backend/api/validators"
	customersvc "github.com/bespoked-bikes/sales-backend/internal/customers"
	pkgerrors "github.com/bespoked-bikes/sales-backend/pkg/errors"
	"github.com/bespoked-bikes/sales-backend/pkg/logger"
	"github.com/bespoked-bikes/sales-backend/pkg/types"
)

func ListCustomers(svc customersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customer service unavailable"))
			return
		}

		customers, err := svc.ListCustomers(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, customers)
	}
}

func GetCustomer(svc customersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customer service unavailable"))
			return
		}

		customerID, err := uuidParam(r, "customerId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		row, err := svc.GetCustomer(r.Context(), customerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, row)
	}
}

func CreateCustomer(svc customersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customer service unavailable"))
			return
		}

		var payload createCustomerRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		row, err := svc.CreateCustomer(r.Context(), payload.toCreateInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, row)
	}
}

func UpdateCustomer(svc customersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customer service unavailable"))
			return
		}

		customerID, err := uuidParam(r, "customerId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateCustomerRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		row, err := svc.UpdateCustomer(r.Context(), customerID, payload.toUpdateInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, row)
	}
}

type createCustomerRequest struct {
	FirstName string      `json:"first_name" validate:"required"`
	LastName  string      `json:"last_name" validate:"required"`
	Address   string      `json:"address"`
	Phone     string      `json:"phone"`
	StartDate *types.Date `json:"start_date,omitempty"`
}

func (r createCustomerRequest) toCreateInput() customersvc.CreateCustomerInput {
	return customersvc.CreateCustomerInput{
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		Address:   strings.TrimSpace(r.Address),
		Phone:     strings.TrimSpace(r.Phone),
		StartDate: r.StartDate,
	}
}

type updateCustomerRequest struct {
	FirstName *string     `json:"first_name,omitempty"`
	LastName  *string     `json:"last_name,omitempty"`
	Address   *string     `json:"address,omitempty"`
	Phone     *string     `json:"phone,omitempty"`
	StartDate *types.Date `json:"start_date,omitempty"`
}

func (r updateCustomerRequest) toUpdateInput() customersvc.UpdateCustomerInput {
	return customersvc.UpdateCustomerInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Address:   r.Address,
		Phone:     r.Phone,
		StartDate: r.StartDate,
	}
}
