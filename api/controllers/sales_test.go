package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	salesvc "github.com/bespoked-bikes/sales-backend/internal/sales"
	pkgerrors "github.com/bespoked-bikes/sales-backend/pkg/errors"
	"github.com/bespoked-bikes/sales-backend/pkg/logger"
	"github.com/bespoked-bikes/sales-backend/pkg/types"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

type stubSaleService struct {
	lastFrom  *types.Date
	lastTo    *types.Date
	lastInput salesvc.CreateSaleInput
	createErr error
}

func (s *stubSaleService) ListSales(ctx context.Context, from, to *types.Date) ([]salesvc.SaleDTO, error) {
	s.lastFrom = from
	s.lastTo = to
	return []salesvc.SaleDTO{}, nil
}

func (s *stubSaleService) CreateSale(ctx context.Context, input salesvc.CreateSaleInput) (*salesvc.SaleDTO, error) {
	s.lastInput = input
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &salesvc.SaleDTO{ID: uuid.New(), SalesDate: input.SalesDate}, nil
}

func TestListSalesParsesDateRange(t *testing.T) {
	stub := &stubSaleService{}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sales?start_date=2023-02-01&end_date=2023-03-31", nil)
	rec := httptest.NewRecorder()

	ListSales(stub, testLogger()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.lastFrom)
	require.NotNil(t, stub.lastTo)
	require.Equal(t, "2023-02-01", stub.lastFrom.String())
	require.Equal(t, "2023-03-31", stub.lastTo.String())
}

func TestListSalesRejectsMalformedDate(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sales?start_date=02-01-2023", nil)
	rec := httptest.NewRecorder()

	ListSales(&stubSaleService{}, testLogger()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateSaleDecodesPayload(t *testing.T) {
	stub := &stubSaleService{}
	productID := uuid.New()
	salespersonID := uuid.New()
	customerID := uuid.New()

	body := `{"product_id":"` + productID.String() + `","salesperson_id":"` + salespersonID.String() + `","customer_id":"` + customerID.String() + `","sales_date":"2023-02-01"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sales", strings.NewReader(body))
	rec := httptest.NewRecorder()

	CreateSale(stub, testLogger()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, productID, stub.lastInput.ProductID)
	require.Equal(t, salespersonID, stub.lastInput.SalespersonID)
	require.Equal(t, customerID, stub.lastInput.CustomerID)
	require.Equal(t, types.NewDate(2023, time.February, 1), stub.lastInput.SalesDate)
}

func TestCreateSaleRejectsUnknownFields(t *testing.T) {
	body := `{"product_id":"` + uuid.NewString() + `","salesperson_id":"` + uuid.NewString() + `","customer_id":"` + uuid.NewString() + `","sales_date":"2023-02-01","quantity":3}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sales", strings.NewReader(body))
	rec := httptest.NewRecorder()

	CreateSale(&stubSaleService{}, testLogger()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateSaleOutOfStockStatus(t *testing.T) {
	stub := &stubSaleService{createErr: pkgerrors.New(pkgerrors.CodeOutOfStock, "product is out of stock")}
	body := `{"product_id":"` + uuid.NewString() + `","salesperson_id":"` + uuid.NewString() + `","customer_id":"` + uuid.NewString() + `","sales_date":"2023-02-01"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sales", strings.NewReader(body))
	rec := httptest.NewRecorder()

	CreateSale(stub, testLogger()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, "OUT_OF_STOCK", payload.Error.Code)
}
