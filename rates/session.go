package rates

import (
	"context"
	"errors"
	"sync"
	"time"

	"go-cash-declaration/domain"
)

// State of the most recent fetch
type State int

const (
	Idle State = iota
	Fetching
	Failed
	Ready
)

func (s State) String() string {
	switch s {
	case Fetching:
		return "fetching"
	case Failed:
		return "failed"
	case Ready:
		return "ready"
	default:
		return "idle"
	}
}

// Status what a caller needs to show about fetching
type Status struct {
	State State

	// Message the error shown while State is Failed
	Message string

	// FetchedAt completion time of the last successful fetch, zero if there was none
	FetchedAt time.Time
}

// Session holds the rate table a caller evaluates against. Rates are entered
// by hand with SetRate or replaced wholesale by Refresh.
// Session is concurrency safe.
type Session struct {
	service    Service
	currencies []domain.Currency

	mu     sync.Mutex
	rates  domain.Rates
	status Status

	// generation identifies the newest Refresh; older ones may not write
	generation uint64
}

// NewSession returns an idle Session that fetches currencies through s.
func NewSession(s Service, currencies []domain.Currency) *Session {
	return &Session{
		service:    s,
		currencies: currencies,
		rates:      domain.Rates{},
	}
}

// Rates returns a copy of the current table.
func (s *Session) Rates() domain.Rates {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rates.Clone()
}

// Status returns the state of the latest fetch.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// SetRate records a manually entered rate. Invalid rates are kept as entered
// and evaluate as unknown.
func (s *Session) SetRate(currency domain.Currency, rate domain.Rate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rates[currency] = rate
}

// Refresh fetches every currency and replaces their rates on success.
// On failure the table is left as it was and the error is kept in Status.
// If another Refresh starts before this one returns, this one's outcome is
// discarded and ErrSuperseded is returned.
func (s *Session) Refresh(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	s.generation++
	generation := s.generation
	s.status.State = Fetching
	s.status.Message = ""
	s.mu.Unlock()

	snapshot, err := s.service.FetchRates(ctx, s.currencies)

	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		return Snapshot{}, ErrSuperseded
	}

	if err != nil {
		s.status.State = Failed
		s.status.Message = userMessage(err)
		return Snapshot{}, err
	}

	for currency, rate := range snapshot.Rates {
		s.rates[currency] = rate
	}
	s.status = Status{State: Ready, FetchedAt: snapshot.FetchedAt}
	return snapshot, nil
}

func userMessage(err error) string {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Message
	}
	return newFetchError(err).Message
}
