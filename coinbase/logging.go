package coinbase

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"go-cash-declaration/domain"
)

// loggingService decorates a coinbase.Service with logging
type loggingService struct {
	next   Service
	logger log.Logger
}

// NewLoggingService return a new logging service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) ExchangeRates(ctx context.Context, currency domain.Currency) (rates domain.Rates, err error) {
	defer func(begin time.Time) {
		logger := level.Debug(s.logger)
		if err != nil {
			logger = level.Warn(s.logger)
		}
		logger.Log(
			"method", "exchange_rates",
			"currency", currency,
			"quotes", len(rates),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ExchangeRates(ctx, currency)
}
