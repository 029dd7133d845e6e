package port

import (
	"context"

	"github.com/govalues/decimal"
	"github.com/merchstudio/customizer/internal/core/domain"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type Service interface {
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	UpdateOrder(ctx context.Context, id string, update domain.OrderUpdate) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id string) error

	PriceInCurrencies(ctx context.Context, amount decimal.Decimal) (map[domain.Currency]decimal.Decimal, error)
	ExchangeRates(ctx context.Context) (domain.RateMap, error)
}
