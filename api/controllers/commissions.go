package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/bespoked-bikes/sales-backend/api/responses"
	commissionsvc "github.com/bespoked-bikes/sales-backend/internal/commissions"
	"github.com/bespoked-bikes/sales-backend/pkg/enums"
	pkgerrors "github.com/bespoked-bikes/sales-backend/pkg/errors"
	"github.com/bespoked-bikes/sales-backend/pkg/logger"
)

// QuarterlyCommissions returns each salesperson's totals for the
// requested quarter. A blank or unrecognized quarter parameter yields
// an empty report rather than an error.
func QuarterlyCommissions(svc commissionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "commission service unavailable"))
			return
		}

		quarter, err := enums.ParseQuarter(r.URL.Query().Get("quarter"))
		if err != nil {
			responses.WriteSuccess(w, map[uuid.UUID]commissionsvc.QuarterlyCommissionDTO{})
			return
		}

		report, err := svc.QuarterlyCommissions(r.Context(), quarter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, report)
	}
}
