package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/merchstudio/customizer/internal/core/domain"
	"github.com/merchstudio/customizer/internal/core/port"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type createOrderRequest struct {
	ProductType string `json:"productType"`
	Material    string `json:"material"`
	Color       string `json:"color"`
	CustomText  string `json:"customText"`
	ImageURL    string `json:"imageUrl"`
}

type updateOrderRequest struct {
	Material   *string `json:"material"`
	Color      *string `json:"color"`
	CustomText *string `json:"customText"`
	ImageURL   *string `json:"imageUrl"`
}

type orderResponse struct {
	ID          string      `json:"id"`
	ProductType string      `json:"productType"`
	Material    string      `json:"material,omitempty"`
	Color       string      `json:"color"`
	CustomText  string      `json:"customText,omitempty"`
	ImageURL    string      `json:"imageUrl,omitempty"`
	BasePrice   jsonDecimal `json:"basePrice"`
	TotalPrice  jsonDecimal `json:"totalPrice"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type pricedOrderResponse struct {
	Order             orderResponse                   `json:"order"`
	PriceInCurrencies map[domain.Currency]jsonDecimal `json:"priceInCurrencies"`
}

func newOrderResponse(o *domain.Order) orderResponse {
	return orderResponse{
		ID:          o.ID,
		ProductType: string(o.ProductType),
		Material:    string(o.Material),
		Color:       string(o.Color),
		CustomText:  o.CustomText,
		ImageURL:    o.ImageURL,
		BasePrice:   jsonDecimal(o.BasePrice),
		TotalPrice:  jsonDecimal(o.TotalPrice),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func (oh *OrderHandler) pricedResponse(ctx *gin.Context, o *domain.Order) (*pricedOrderResponse, error) {
	prices, err := oh.service.PriceInCurrencies(ctx, o.TotalPrice)
	if err != nil {
		return nil, err
	}

	converted := make(map[domain.Currency]jsonDecimal, len(prices))
	for currency, amount := range prices {
		converted[currency] = jsonDecimal(amount)
	}

	return &pricedOrderResponse{
		Order:             newOrderResponse(o),
		PriceInCurrencies: converted,
	}, nil
}

func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	var req createOrderRequest
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleError(ctx, domain.ErrBadRequest, "Failed to create order")
		return
	}

	if req.ProductType == "" || req.Color == "" {
		oh.handleError(ctx, domain.ErrProductTypeColorRequired, "Failed to create order")
		return
	}
	if req.ProductType == string(domain.ProductTypeTShirt) && req.Material == "" {
		oh.handleError(ctx, domain.ErrMaterialRequired, "Failed to create order")
		return
	}

	order := &domain.Order{
		ProductType: domain.ProductType(req.ProductType),
		Material:    domain.Material(req.Material),
		Color:       domain.Color(req.Color),
		CustomText:  req.CustomText,
		ImageURL:    req.ImageURL,
	}

	created, err := oh.service.CreateOrder(ctx, order)
	if err != nil {
		oh.handleError(ctx, err, "Failed to create order")
		return
	}

	resp, err := oh.pricedResponse(ctx, created)
	if err != nil {
		oh.handleError(ctx, err, "Failed to create order")
		return
	}

	oh.handleSuccessWithStatus(ctx, resp, http.StatusCreated)
}

func (oh *OrderHandler) ListOrders(ctx *gin.Context) {
	list, err := oh.service.ListOrders(ctx)
	if err != nil {
		oh.handleError(ctx, err, "Failed to get orders")
		return
	}

	result := make([]pricedOrderResponse, 0, len(list))
	for _, o := range list {
		resp, err := oh.pricedResponse(ctx, o)
		if err != nil {
			oh.handleError(ctx, err, "Failed to get orders")
			return
		}
		result = append(result, *resp)
	}

	oh.handleSuccess(ctx, result)
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	id := ctx.Param("id")

	order, err := oh.service.GetOrder(ctx, id)
	if err != nil {
		oh.handleError(ctx, err, "Failed to get order")
		return
	}

	resp, err := oh.pricedResponse(ctx, order)
	if err != nil {
		oh.handleError(ctx, err, "Failed to get order")
		return
	}

	oh.handleSuccess(ctx, resp)
}

func (oh *OrderHandler) UpdateOrder(ctx *gin.Context) {
	id := ctx.Param("id")

	var req updateOrderRequest
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleError(ctx, domain.ErrBadRequest, "Failed to update order")
		return
	}

	update := domain.OrderUpdate{
		CustomText: req.CustomText,
		ImageURL:   req.ImageURL,
	}
	if req.Material != nil {
		m := domain.Material(*req.Material)
		update.Material = &m
	}
	if req.Color != nil {
		c := domain.Color(*req.Color)
		update.Color = &c
	}

	updated, err := oh.service.UpdateOrder(ctx, id, update)
	if err != nil {
		oh.handleError(ctx, err, "Failed to update order")
		return
	}

	resp, err := oh.pricedResponse(ctx, updated)
	if err != nil {
		oh.handleError(ctx, err, "Failed to update order")
		return
	}

	oh.handleSuccess(ctx, resp)
}

func (oh *OrderHandler) DeleteOrder(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := oh.service.DeleteOrder(ctx, id); err != nil {
		oh.handleError(ctx, err, "Failed to delete order")
		return
	}

	oh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}
