package rates

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"go-cash-declaration/domain"
)

// loggingService decorates a rates.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) FetchRates(ctx context.Context, currencies []domain.Currency) (snapshot Snapshot, err error) {
	defer func(begin time.Time) {
		logger := level.Info(s.logger)
		if err != nil {
			logger = level.Error(s.logger)
		}
		logger.Log(
			"method", "fetch_rates",
			"currencies", len(currencies),
			"rates", len(snapshot.Rates),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchRates(ctx, currencies)
}
