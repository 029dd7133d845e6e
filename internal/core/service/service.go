// Package service implements the storefront order logic on top of the
// repository and rate-provider ports.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"go.uber.org/zap"

	"github.com/merchstudio/customizer/internal/core/domain"
	"github.com/merchstudio/customizer/internal/core/port"
	"github.com/merchstudio/customizer/internal/core/pricing"
)

type Service struct {
	repo   port.OrderRepository
	rates  port.RateProvider
	logger *zap.Logger
}

func NewService(repo port.OrderRepository, rates port.RateProvider, logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:   repo,
		rates:  rates,
		logger: logger,
	}, nil
}

// CreateOrder prices the configuration, assigns an id and both timestamps,
// and stores the record. Request validation happens at the HTTP boundary.
func (s *Service) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	base, total, err := pricing.Quote(order.ProductType, order.Material, order.Color,
		order.CustomText, order.ImageURL != "")
	if err != nil {
		s.logger.Error("price order", zap.Error(err))
		return nil, domain.ErrInternal
	}

	order.ID = uuid.NewString()
	order.BasePrice = base
	order.TotalPrice = total

	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	newOrder, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("create order", zap.Error(err))
		return nil, err
	}

	return newOrder, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.ReadOrder(ctx, id)
}

func (s *Service) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	list, err := s.repo.ListOrders(ctx)
	if err != nil {
		s.logger.Error("list orders", zap.Error(err))
		return nil, err
	}
	return list, nil
}

// UpdateOrder applies the non-nil fields of update to the stored order,
// reprices the merged state and refreshes UpdatedAt. The product type is
// never changed.
func (s *Service) UpdateOrder(ctx context.Context, id string, update domain.OrderUpdate) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Material != nil {
		order.Material = *update.Material
	}
	if update.Color != nil {
		order.Color = *update.Color
	}
	if update.CustomText != nil {
		order.CustomText = *update.CustomText
	}
	if update.ImageURL != nil {
		order.ImageURL = *update.ImageURL
	}

	base, total, err := pricing.Quote(order.ProductType, order.Material, order.Color,
		order.CustomText, order.ImageURL != "")
	if err != nil {
		s.logger.Error("price order", zap.Error(err))
		return nil, domain.ErrInternal
	}
	order.BasePrice = base
	order.TotalPrice = total
	order.UpdatedAt = time.Now()

	updated, err := s.repo.UpdateOrder(ctx, order)
	if err != nil {
		s.logger.Error("update order", zap.Error(err), zap.String("id", id))
		return nil, err
	}

	return updated, nil
}

func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	return s.repo.DeleteOrder(ctx, id)
}

// PriceInCurrencies converts an amount in the base currency into every
// currency the rate provider knows about. No rounding is applied here;
// display formatting happens at the boundary.
func (s *Service) PriceInCurrencies(ctx context.Context, amount decimal.Decimal) (map[domain.Currency]decimal.Decimal, error) {
	rates, err := s.rates.Rates(ctx)
	if err != nil {
		s.logger.Error("get rates", zap.Error(err))
		return nil, err
	}

	prices := make(map[domain.Currency]decimal.Decimal, len(rates))
	for currency, rate := range rates {
		converted, err := amount.Mul(rate)
		if err != nil {
			return nil, fmt.Errorf("math error:%w", err)
		}
		prices[currency] = converted
	}

	return prices, nil
}

func (s *Service) ExchangeRates(ctx context.Context) (domain.RateMap, error) {
	return s.rates.Rates(ctx)
}
