package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/merchstudio/customizer/internal/adapter/config"
	"github.com/merchstudio/customizer/internal/adapter/storage/files"
	"github.com/merchstudio/customizer/internal/core/domain"
	"github.com/merchstudio/customizer/internal/core/port/mock"
)

func newTestRouter(t *testing.T, svc *mock.MockService) *Router {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()

	orderHandler, err := NewOrderHandler(svc, logger)
	assert.NoError(t, err)
	ratesHandler, err := NewRatesHandler(svc, logger)
	assert.NoError(t, err)

	store, err := files.NewStore(t.TempDir())
	assert.NoError(t, err)
	imageHandler, err := NewImageHandler(store, 5<<20, logger)
	assert.NoError(t, err)

	r, err := NewRouter(
		&config.HTTP{HostString: "localhost:0"},
		&config.Uploads{Dir: t.TempDir()},
		orderHandler, ratesHandler, imageHandler, logger)
	assert.NoError(t, err)

	return r
}

func doJSON(r *Router, method, target string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func testPrices() map[domain.Currency]decimal.Decimal {
	return map[domain.Currency]decimal.Decimal{
		domain.CurrencyCAD: decimal.MustParse("31.95"),
		domain.CurrencyUSD: decimal.MustParse("23.64"),
		domain.CurrencyEUR: decimal.MustParse("21.73"),
	}
}

func TestCreateOrder_Validation(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tests := []struct {
		name     string
		body     map[string]any
		expError string
	}{
		{
			name:     "missing product type",
			body:     map[string]any{"color": "black"},
			expError: "productType and color are required",
		},
		{
			name:     "missing color",
			body:     map[string]any{"productType": "tshirt", "material": "light-cotton"},
			expError: "productType and color are required",
		},
		{
			name:     "tshirt without material",
			body:     map[string]any{"productType": "tshirt", "color": "black"},
			expError: "material is required for t-shirts",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			svc := mock.NewMockService(mockCtrl)
			r := newTestRouter(t, svc)

			rec := doJSON(r, http.MethodPost, "/api/orders", test.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp map[string]string
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, test.expError, resp["error"])
		})
	}
}

func TestCreateOrder_Success(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	svc := mock.NewMockService(mockCtrl)

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	created := &domain.Order{
		ID:          "order-1",
		ProductType: domain.ProductTypeTShirt,
		Material:    domain.MaterialLightCotton,
		Color:       domain.ColorBlack,
		CustomText:  "Hello World",
		ImageURL:    "x.jpg",
		BasePrice:   decimal.MustParse("16.95"),
		TotalPrice:  decimal.MustParse("31.95"),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	svc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(created, nil)
	svc.EXPECT().PriceInCurrencies(gomock.Any(), created.TotalPrice).Return(testPrices(), nil)

	r := newTestRouter(t, svc)

	rec := doJSON(r, http.MethodPost, "/api/orders", map[string]any{
		"productType": "tshirt",
		"material":    "light-cotton",
		"color":       "black",
		"customText":  "Hello World",
		"imageUrl":    "x.jpg",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Order struct {
			ID         string  `json:"id"`
			BasePrice  float64 `json:"basePrice"`
			TotalPrice float64 `json:"totalPrice"`
		} `json:"order"`
		PriceInCurrencies map[string]float64 `json:"priceInCurrencies"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "order-1", resp.Order.ID)
	assert.InDelta(t, 16.95, resp.Order.BasePrice, 0.001)
	assert.InDelta(t, 31.95, resp.Order.TotalPrice, 0.001)
	assert.InDelta(t, 23.64, resp.PriceInCurrencies["USD"], 0.001)
}

func TestGetOrder_NotFound(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	svc := mock.NewMockService(mockCtrl)
	svc.EXPECT().GetOrder(gomock.Any(), "missing").Return(nil, domain.ErrOrderNotFound)

	r := newTestRouter(t, svc)

	rec := doJSON(r, http.MethodGet, "/api/orders/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Order not found", resp["error"])
}

func TestDeleteOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	svc := mock.NewMockService(mockCtrl)
	svc.EXPECT().DeleteOrder(gomock.Any(), "order-1").Return(nil)
	svc.EXPECT().DeleteOrder(gomock.Any(), "missing").Return(domain.ErrOrderNotFound)

	r := newTestRouter(t, svc)

	rec := doJSON(r, http.MethodDelete, "/api/orders/order-1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(r, http.MethodDelete, "/api/orders/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExchangeRates(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	svc := mock.NewMockService(mockCtrl)
	svc.EXPECT().ExchangeRates(gomock.Any()).Return(domain.RateMap{
		domain.CurrencyCAD: decimal.One,
		domain.CurrencyUSD: decimal.MustParse("0.74"),
		domain.CurrencyEUR: decimal.MustParse("0.68"),
	}, nil)

	r := newTestRouter(t, svc)

	rec := doJSON(r, http.MethodGet, "/api/exchange-rates", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]float64
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.InDelta(t, 1.0, resp["CAD"], 0.001)
	assert.InDelta(t, 0.74, resp["USD"], 0.001)
	assert.InDelta(t, 0.68, resp["EUR"], 0.001)
}

func TestUpload_NoFile(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	svc := mock.NewMockService(mockCtrl)
	r := newTestRouter(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/upload", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "No image file provided", resp["error"])
}

func TestUpdateOrder_BadBody(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	svc := mock.NewMockService(mockCtrl)
	r := newTestRouter(t, svc)

	req := httptest.NewRequest(http.MethodPut, "/api/orders/order-1", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
