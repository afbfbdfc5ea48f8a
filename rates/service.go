package rates

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"go-cash-declaration/coinbase"
	"go-cash-declaration/domain"
)

// Snapshot a complete rate table and when it was fetched
type Snapshot struct {
	Rates     domain.Rates
	FetchedAt time.Time
}

// Service fetches home currency rates for a set of currencies
type Service interface {
	// FetchRates returns a rate for every currency or a *FetchError.
	// A partially filled table is never returned.
	FetchRates(ctx context.Context, currencies []domain.Currency) (Snapshot, error)
}

type service struct {
	// source answers one lookup per currency. It must be concurrency-safe.
	source coinbase.Service

	// home the currency every rate is quoted in
	home domain.Currency

	now func() time.Time
}

// NewService constructs a valid Service
func NewService(source coinbase.Service, home domain.Currency) Service {
	return &service{
		source: source,
		home:   home,
		now:    time.Now,
	}
}

// lookup the outcome of one currency's request
type lookup struct {
	rate domain.Rate
	ok   bool
}

// FetchRates issues one lookup per currency concurrently and waits for all of them.
func (s *service) FetchRates(ctx context.Context, currencies []domain.Currency) (Snapshot, error) {
	// each goroutine only writes its own slot, results are merged after Wait
	lookups := make([]lookup, len(currencies))

	var g errgroup.Group
	for i, currency := range currencies {
		g.Go(func() error {
			quotes, err := s.source.ExchangeRates(ctx, currency)
			if err != nil {
				return fmt.Errorf("%v: %w", currency, err)
			}
			lookups[i] = s.homeRate(quotes)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Snapshot{}, newFetchError(err)
	}

	table := make(domain.Rates, len(currencies))
	for i, currency := range currencies {
		if !lookups[i].ok {
			return Snapshot{}, newFetchError(ErrIncompleteRates)
		}
		table[currency] = lookups[i].rate
	}

	return Snapshot{Rates: table, FetchedAt: s.now()}, nil
}

// homeRate picks the home currency quote and rounds it to whole units.
func (s *service) homeRate(quotes domain.Rates) lookup {
	rate, ok := quotes[s.home]
	if !ok || !usable(rate) {
		return lookup{}
	}
	rounded := decimal.NewFromFloat(float64(rate)).Round(0)
	return lookup{rate: domain.Rate(rounded.InexactFloat64()), ok: true}
}

// usable rejects quotes that cannot be a price: NaN, infinities and negatives.
func usable(rate domain.Rate) bool {
	return rate >= 0 && (rate.Valid() || rate == 0)
}
