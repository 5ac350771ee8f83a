package controllers

import (
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bespoked-bikes/sales-backend/api/responses"
	"github.com/bespoked-bikes/sales-backend/api/validators"
	productsvc "github.com/bespoked-bikes/sales-backend/internal/products"
	pkgerrors "github.com/bespoked-bikes/sales-backend/pkg/errors"
	"github.com/bespoked-bikes/sales-backend/pkg/logger"
)

// ListProducts returns the catalog with today's selling price resolved
// per product.
func ListProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		products, err := svc.ListProducts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, products)
	}
}

func GetProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		productID, err := uuidParam(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.GetProduct(r.Context(), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

func CreateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		var payload createProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.CreateProduct(r.Context(), payload.toCreateInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

func UpdateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		productID, err := uuidParam(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.UpdateProduct(r.Context(), productID, payload.toUpdateInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

type createProductRequest struct {
	Name                 string          `json:"name" validate:"required"`
	Manufacturer         string          `json:"manufacturer"`
	Style                string          `json:"style"`
	PurchasePrice        decimal.Decimal `json:"purchase_price"`
	SalePrice            decimal.Decimal `json:"sale_price"`
	QtyOnHand            int             `json:"qty_on_hand" validate:"min=0"`
	CommissionPercentage decimal.Decimal `json:"commission_percentage"`
}

func (r createProductRequest) toCreateInput() productsvc.CreateProductInput {
	return productsvc.CreateProductInput{
		Name:                 strings.TrimSpace(r.Name),
		Manufacturer:         strings.TrimSpace(r.Manufacturer),
		Style:                strings.TrimSpace(r.Style),
		PurchasePrice:        r.PurchasePrice,
		SalePrice:            r.SalePrice,
		QtyOnHand:            r.QtyOnHand,
		CommissionPercentage: r.CommissionPercentage,
	}
}

type updateProductRequest struct {
	Name                 *string          `json:"name,omitempty"`
	Manufacturer         *string          `json:"manufacturer,omitempty"`
	Style                *string          `json:"style,omitempty"`
	PurchasePrice        *decimal.Decimal `json:"purchase_price,omitempty"`
	SalePrice            *decimal.Decimal `json:"sale_price,omitempty"`
	QtyOnHand            *int             `json:"qty_on_hand,omitempty" validate:"omitempty,min=0"`
	CommissionPercentage *decimal.Decimal `json:"commission_percentage,omitempty"`
}

func (r updateProductRequest) toUpdateInput() productsvc.UpdateProductInput {
	return productsvc.UpdateProductInput{
		Name:                 r.Name,
		Manufacturer:         r.Manufacturer,
		Style:                r.Style,
		PurchasePrice:        r.PurchasePrice,
		SalePrice:            r.SalePrice,
		QtyOnHand:            r.QtyOnHand,
		CommissionPercentage: r.CommissionPercentage,
	}
}
