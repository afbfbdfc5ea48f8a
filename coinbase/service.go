package coinbase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"go-cash-declaration/domain"
)

const ApiUrlBase = "https://api.coinbase.com/v2"

// Service wraps the coinbase REST API
type Service interface {
	// ExchangeRates returns how many units of each quoted currency equal one unit of currency.
	// Quotes that are not numeric are left out of the result.
	ExchangeRates(ctx context.Context, currency domain.Currency) (domain.Rates, error)
}

// service coinbase API
type service struct {
	// url base API url
	url string

	// client for HTTP requests
	client http.Client
}

// NewService constructs a valid coinbase Service.
// A zero timeout leaves requests bounded only by ctx and the transport.
func NewService(url string, timeout time.Duration) Service {
	if url == "" {
		url = ApiUrlBase
	}
	return &service{
		url: url,
		client: http.Client{
			Timeout: timeout,
		},
	}
}

// ExchangeRates loads the current exchange rates for a given currency.
func (s *service) ExchangeRates(ctx context.Context, currency domain.Currency) (domain.Rates, error) {
	type Response struct {
		Data struct {
			Currency string
			Rates    map[string]json.RawMessage // maps currency codes to rates
		}
	}

	url := fmt.Sprintf("%v/exchange-rates?currency=%v", s.url, currency)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building http request: %w", err)
	}
	httpResponse, err := s.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode > 299 {
		return nil, fmt.Errorf("http get: unexpected status %v", httpResponse.Status)
	}

	bytes, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, fmt.Errorf("reading json: %w", err)
	}

	var response Response
	err = json.Unmarshal(bytes, &response)
	if err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}

	rates := domain.Rates{}
	for k, v := range response.Data.Rates {
		d, ok := parseQuote(v)
		if !ok {
			continue
		}
		rates[domain.Currency(k)] = domain.Rate(d.InexactFloat64())
	}

	return rates, nil
}

// parseQuote accepts a quote sent either as a JSON string ("12000.5") or a JSON number.
func parseQuote(raw json.RawMessage) (decimal.Decimal, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		s = string(raw)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
