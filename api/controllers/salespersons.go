package controllers

import (
	"net/http"
	"strings"

	"github.com/bespoked-bikes/sales-backend/api/responses"
	"github.com/bespoked-bikes/sales-backend/api/validators"
	salespersonsvc "github.com/bespoked-bikes/sales-backend/internal/salespersons"
	pkgerrors "github.com/bespoked-bikes/sales-backend/pkg/errors"
	"github.com/bespoked-bikes/sales-backend/pkg/logger"
	"github.com/bespoked-bikes/sales-backend/pkg/types"
)

func ListSalespersons(svc salespersonsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "salesperson service unavailable"))
			return
		}

		team, err := svc.ListSalespersons(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, team)
	}
}

func GetSalesperson(svc salespersonsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "salesperson service unavailable"))
			return
		}

		salespersonID, err := uuidParam(r, "salespersonId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		row, err := svc.GetSalesperson(r.Context(), salespersonID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, row)
	}
}

func CreateSalesperson(svc salespersonsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "salesperson service unavailable"))
			return
		}

		var payload createSalespersonRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		row, err := svc.CreateSalesperson(r.Context(), payload.toCreateInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, row)
	}
}

func UpdateSalesperson(svc salespersonsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "salesperson service unavailable"))
			return
		}

		salespersonID, err := uuidParam(r, "salespersonId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateSalespersonRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		row, err := svc.UpdateSalesperson(r.Context(), salespersonID, payload.toUpdateInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, row)
	}
}

type createSalespersonRequest struct {
	FirstName       string      `json:"first_name" validate:"required"`
	LastName        string      `json:"last_name" validate:"required"`
	Address         string      `json:"address"`
	Phone           string      `json:"phone" validate:"required"`
	StartDate       *types.Date `json:"start_date,omitempty"`
	TerminationDate *types.Date `json:"termination_date,omitempty"`
	Manager         string      `json:"manager"`
}

func (r createSalespersonRequest) toCreateInput() salespersonsvc.CreateSalespersonInput {
	return salespersonsvc.CreateSalespersonInput{
		FirstName:       strings.TrimSpace(r.FirstName),
		LastName:        strings.TrimSpace(r.LastName),
		Address:         strings.TrimSpace(r.Address),
		Phone:           strings.TrimSpace(r.Phone),
		StartDate:       r.StartDate,
		TerminationDate: r.TerminationDate,
		Manager:         strings.TrimSpace(r.Manager),
	}
}

type updateSalespersonRequest struct {
	FirstName       *string     `json:"first_name,omitempty"`
	LastName        *string     `json:"last_name,omitempty"`
	Address         *string     `json:"address,omitempty"`
	Phone           *string     `json:"phone,omitempty"`
	StartDate       *types.Date `json:"start_date,omitempty"`
	TerminationDate *types.Date `json:"termination_date,omitempty"`
	Manager         *string     `json:"manager,omitempty"`
}

func (r updateSalespersonRequest) toUpdateInput() salespersonsvc.UpdateSalespersonInput {
	return salespersonsvc.UpdateSalespersonInput{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Address:         r.Address,
		Phone:           r.Phone,
		StartDate:       r.StartDate,
		TerminationDate: r.TerminationDate,
		Manager:         r.Manager,
	}
}
