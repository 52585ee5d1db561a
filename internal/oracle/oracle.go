// Package oracle provides OPTIK price quotes. The live variant proxies an
// external HTTP endpoint; the static variant serves fixed quotes for
// development and tests.
package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"optik-arcade/internal/config"
)

type Quote struct {
	Pair      string    `json:"pair"`
	PriceUSD  float64   `json:"price_usd"`
	Source    string    `json:"source"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PriceSource quotes a trading pair such as "OPTIK/USD".
type PriceSource interface {
	Price(ctx context.Context, pair string) (*Quote, error)
}

// FromConfig selects the price source named by PRICE_SOURCE.
func FromConfig(cfg config.ServerConfig) (PriceSource, error) {
	switch cfg.PriceSource {
	case "static", "":
		return NewStatic(), nil
	case "live":
		if cfg.PriceEndpoint == "" {
			return nil, fmt.Errorf("oracle: live source needs PRICE_ENDPOINT")
		}
		return NewLive(cfg.PriceEndpoint), nil
	}
	return nil, fmt.Errorf("oracle: unknown price source %q", cfg.PriceSource)
}

// Static serves fixed development quotes.
type Static struct {
	prices map[string]float64
	now    func() time.Time
}

func NewStatic() *Static {
	return &Static{
		prices: map[string]float64{
			"OPTIK/USD": 0.05,
			"SOL/USD":   150,
		},
		now: time.Now,
	}
}

func (s *Static) Price(_ context.Context, pair string) (*Quote, error) {
	p, ok := s.prices[strings.ToUpper(pair)]
	if !ok {
		return nil, fmt.Errorf("oracle: unknown pair %q", pair)
	}
	return &Quote{Pair: strings.ToUpper(pair), PriceUSD: p, Source: "static", UpdatedAt: s.now()}, nil
}

// Live fetches quotes from a JSON endpoint shaped like Quote.
type Live struct {
	endpoint string
	client   *http.Client
}

func NewLive(endpoint string) *Live {
	return &Live{
		endpoint: strings.TrimRight(endpoint, "/"),
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (l *Live) Price(ctx context.Context, pair string) (*Quote, error) {
	url := l.endpoint + "?pair=" + strings.ToUpper(pair)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("oracle: fetch price: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("oracle: price endpoint returned %d", resp.StatusCode)
	}
	var q Quote
	if err := json.NewDecoder(resp.Body).Decode(&q); err != nil {
		return nil, fmt.Errorf("oracle: decode quote: %w", err)
	}
	if q.Pair == "" {
		q.Pair = strings.ToUpper(pair)
	}
	q.Source = "live"
	return &q, nil
}
