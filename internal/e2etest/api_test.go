package e2etest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/merchstudio/customizer/internal/adapter/client/rates"
	"github.com/merchstudio/customizer/internal/adapter/config"
	handler "github.com/merchstudio/customizer/internal/adapter/handler/http"
	"github.com/merchstudio/customizer/internal/adapter/storage/files"
	"github.com/merchstudio/customizer/internal/adapter/storage/memory"
	"github.com/merchstudio/customizer/internal/core/service"
)

type orderBody struct {
	ID          string  `json:"id"`
	ProductType string  `json:"productType"`
	Material    string  `json:"material"`
	Color       string  `json:"color"`
	CustomText  string  `json:"customText"`
	ImageURL    string  `json:"imageUrl"`
	BasePrice   float64 `json:"basePrice"`
	TotalPrice  float64 `json:"totalPrice"`
}

type pricedOrderBody struct {
	Order             orderBody          `json:"order"`
	PriceInCurrencies map[string]float64 `json:"priceInCurrencies"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rateAPI := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success":true,"rates":{"USD":0.74,"EUR":0.68}}`)
	}))
	t.Cleanup(rateAPI.Close)

	logger := zap.NewNop()

	repo, err := memory.NewRepository()
	assert.NoError(t, err)

	rateClient, err := rates.NewClient(&config.Rates{BaseURL: rateAPI.URL, APIKey: "test-key"}, logger)
	assert.NoError(t, err)

	svc, err := service.NewService(repo, rateClient, logger)
	assert.NoError(t, err)

	store, err := files.NewStore(t.TempDir())
	assert.NoError(t, err)

	orderHandler, err := handler.NewOrderHandler(svc, logger)
	assert.NoError(t, err)
	ratesHandler, err := handler.NewRatesHandler(svc, logger)
	assert.NoError(t, err)
	imageHandler, err := handler.NewImageHandler(store, 5<<20, logger)
	assert.NoError(t, err)

	router, err := handler.NewRouter(
		&config.HTTP{HostString: "localhost:0"},
		&config.Uploads{Dir: t.TempDir()},
		orderHandler, ratesHandler, imageHandler, logger)
	assert.NoError(t, err)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func doRequest(t *testing.T, srv *httptest.Server, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, srv.URL+path, &buf)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	assert.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	assert.NoError(t, err)
	return resp, out.Bytes()
}

func TestOrderLifecycle(t *testing.T) {
	srv := newTestServer(t)

	// create a customized t-shirt with text and image surcharges
	resp, body := doRequest(t, srv, http.MethodPost, "/api/orders", map[string]any{
		"productType": "tshirt",
		"material":    "light-cotton",
		"color":       "black",
		"customText":  "Hello World",
		"imageUrl":    "x.jpg",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created pricedOrderBody
	assert.NoError(t, json.Unmarshal(body, &created))
	assert.NotEmpty(t, created.Order.ID)
	assert.InDelta(t, 16.95, created.Order.BasePrice, 0.001)
	assert.InDelta(t, 31.95, created.Order.TotalPrice, 0.001)
	assert.InDelta(t, 31.95, created.PriceInCurrencies["CAD"], 0.001)
	assert.InDelta(t, 31.95*0.74, created.PriceInCurrencies["USD"], 0.001)
	assert.InDelta(t, 31.95*0.68, created.PriceInCurrencies["EUR"], 0.001)

	id := created.Order.ID

	// read it back
	resp, body = doRequest(t, srv, http.MethodGet, "/api/orders/"+id, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched pricedOrderBody
	assert.NoError(t, json.Unmarshal(body, &fetched))
	assert.Equal(t, "Hello World", fetched.Order.CustomText)
	assert.InDelta(t, 31.95, fetched.Order.TotalPrice, 0.001)

	// switching material recomputes both prices
	resp, body = doRequest(t, srv, http.MethodPut, "/api/orders/"+id, map[string]any{
		"material": "heavy-cotton",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var updated pricedOrderBody
	assert.NoError(t, json.Unmarshal(body, &updated))
	assert.Equal(t, "heavy-cotton", updated.Order.Material)
	assert.InDelta(t, 19.95, updated.Order.BasePrice, 0.001)
	assert.InDelta(t, 34.95, updated.Order.TotalPrice, 0.001)

	// delete, then the order is gone
	resp, _ = doRequest(t, srv, http.MethodDelete, "/api/orders/"+id, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doRequest(t, srv, http.MethodGet, "/api/orders/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSweaterPricing(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doRequest(t, srv, http.MethodPost, "/api/orders", map[string]any{
		"productType": "sweater",
		"color":       "pink",
		"customText":  "Sweater Text",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created pricedOrderBody
	assert.NoError(t, json.Unmarshal(body, &created))
	assert.InDelta(t, 32.95, created.Order.BasePrice, 0.001)
	assert.InDelta(t, 37.95, created.Order.TotalPrice, 0.001)
}

func TestListOrders(t *testing.T) {
	srv := newTestServer(t)

	colors := []string{"black", "white", "green"}
	for _, color := range colors {
		resp, _ := doRequest(t, srv, http.MethodPost, "/api/orders", map[string]any{
			"productType": "tshirt",
			"material":    "light-cotton",
			"color":       color,
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, body := doRequest(t, srv, http.MethodGet, "/api/orders", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var listed []pricedOrderBody
	assert.NoError(t, json.Unmarshal(body, &listed))
	assert.Len(t, listed, 3)
	for i, color := range colors {
		assert.Equal(t, color, listed[i].Order.Color)
	}
}

func TestExchangeRatesEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doRequest(t, srv, http.MethodGet, "/api/exchange-rates", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var rates map[string]float64
	assert.NoError(t, json.Unmarshal(body, &rates))
	assert.InDelta(t, 1.0, rates["CAD"], 0.001)
	assert.InDelta(t, 0.74, rates["USD"], 0.001)
	assert.InDelta(t, 0.68, rates["EUR"], 0.001)
}

func TestCreateOrderValidation(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doRequest(t, srv, http.MethodPost, "/api/orders", map[string]any{
		"productType": "sweater",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp map[string]string
	assert.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "productType and color are required", errResp["error"])
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doRequest(t, srv, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health map[string]string
	assert.NoError(t, json.Unmarshal(body, &health))
	assert.Equal(t, "ok", health["status"])
	assert.NotEmpty(t, health["timestamp"])
}
