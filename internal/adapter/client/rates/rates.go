// Package rates is a client for the external exchange-rate API. It caches
// the last successful snapshot and degrades to static fallback rates on any
// failure, so callers never see an error from it.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/govalues/decimal"
	"go.uber.org/zap"

	"github.com/merchstudio/customizer/internal/adapter/config"
	"github.com/merchstudio/customizer/internal/core/domain"
)

const defaultCacheTTL = 5 * time.Minute

type Client struct {
	logger     *zap.Logger
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cacheTTL   time.Duration
	now        func() time.Time

	mu       sync.Mutex
	snapshot *domain.RateSnapshot
}

func NewClient(cfg *config.Rates, log *zap.Logger) (*Client, error) {
	return &Client{
		logger:  log,
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		cacheTTL: defaultCacheTTL,
		now:      time.Now,
	}, nil
}

type ratesResponse struct {
	Success bool `json:"success"`
	Rates   struct {
		USD float64 `json:"USD"`
		EUR float64 `json:"EUR"`
	} `json:"rates"`
	Error struct {
		Info string `json:"info"`
	} `json:"error"`
}

// Rates returns the cached snapshot while it is younger than the cache TTL,
// otherwise fetches fresh rates. A failed fetch yields the fallback rates
// and leaves the cache untouched, so the next call retries the network.
// Two concurrent cache misses may both fetch; both store equivalent data.
func (c *Client) Rates(ctx context.Context) (domain.RateMap, error) {
	c.mu.Lock()
	if c.snapshot != nil && c.now().Sub(c.snapshot.FetchedAt) < c.cacheTTL {
		cached := c.snapshot.Rates
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	fetched, err := c.fetch(ctx)
	if err != nil {
		c.logger.Warn("exchange rate fetch failed, serving fallback rates", zap.Error(err))
		return FallbackRates(), nil
	}

	c.mu.Lock()
	c.snapshot = &domain.RateSnapshot{Rates: fetched, FetchedAt: c.now()}
	c.mu.Unlock()

	return fetched, nil
}

func (c *Client) fetch(ctx context.Context) (domain.RateMap, error) {
	requestStr := fmt.Sprintf("%s?access_key=%s&base=%s&symbols=USD,EUR",
		c.baseURL, c.apiKey, domain.BaseCurrency)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestStr, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request error: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad response %v for rate request", resp.StatusCode)
	}

	var result ratesResponse
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("error on response decode: %w", err)
	}

	if !result.Success {
		info := result.Error.Info
		if info == "" {
			info = "unknown error"
		}
		return nil, fmt.Errorf("rate api error: %s", info)
	}

	usd, err := decimal.NewFromFloat64(result.Rates.USD)
	if err != nil {
		return nil, fmt.Errorf("error on response decode: %w", err)
	}
	eur, err := decimal.NewFromFloat64(result.Rates.EUR)
	if err != nil {
		return nil, fmt.Errorf("error on response decode: %w", err)
	}

	return domain.RateMap{
		domain.BaseCurrency: decimal.One,
		domain.CurrencyUSD:  usd,
		domain.CurrencyEUR:  eur,
	}, nil
}

// FallbackRates returns the static rates served while the API is
// unavailable. Never cached.
func FallbackRates() domain.RateMap {
	return domain.RateMap{
		domain.CurrencyCAD: decimal.One,
		domain.CurrencyUSD: decimal.MustParse("0.74"),
		domain.CurrencyEUR: decimal.MustParse("0.68"),
	}
}
