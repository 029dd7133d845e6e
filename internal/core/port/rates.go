package port

import (
	"context"

	"github.com/merchstudio/customizer/internal/core/domain"
)

//go:generate mockgen -source=rates.go -destination=mock/rates.go -package=mock
type RateProvider interface {
	// Rates returns conversion multipliers against the base currency.
	// Implementations degrade to static fallback values instead of failing.
	Rates(ctx context.Context) (domain.RateMap, error)
}
