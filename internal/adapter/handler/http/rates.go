package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/merchstudio/customizer/internal/core/domain"
	"github.com/merchstudio/customizer/internal/core/port"
)

type RatesHandler struct {
	Handler
	service port.Service
}

func NewRatesHandler(service port.Service, logger *zap.Logger) (*RatesHandler, error) {
	return &RatesHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

func (rh *RatesHandler) ExchangeRates(ctx *gin.Context) {
	rates, err := rh.service.ExchangeRates(ctx)
	if err != nil {
		rh.handleError(ctx, err, "Failed to get exchange rates")
		return
	}

	result := make(map[domain.Currency]jsonDecimal, len(rates))
	for currency, rate := range rates {
		result[currency] = jsonDecimal(rate)
	}

	rh.handleSuccess(ctx, result)
}
