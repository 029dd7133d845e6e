package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type Currency string

const (
	CurrencyCAD Currency = "CAD"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// BaseCurrency is the currency prices are authoritatively stored in.
// All conversion rates are multipliers against it.
const BaseCurrency = CurrencyCAD

// RateMap maps a currency code to its multiplier against the base currency.
// The base currency multiplier is always 1.
type RateMap map[Currency]decimal.Decimal

// RateSnapshot is the cached result of the last successful exchange-rate
// fetch. It is never persisted across restarts.
type RateSnapshot struct {
	Rates     RateMap
	FetchedAt time.Time
}
