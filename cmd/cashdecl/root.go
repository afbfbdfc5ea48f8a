package main

import (
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"go-cash-declaration/coinbase"
	"go-cash-declaration/config"
	"go-cash-declaration/domain"
	"go-cash-declaration/rates"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cashdecl",
		Short:         "Check whether carried cash must be declared in Singapore, the UAE or the EU",
		SilenceUsage: true,
	}
	root.AddCommand(checkCmd())
	root.AddCommand(ratesCmd())
	root.AddCommand(interactiveCmd())
	return root
}

// app everything a command needs, built from configuration
type app struct {
	cfg     *config.Config
	logger  log.Logger
	session *rates.Session
}

func newApp(errOut io.Writer) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	w := log.NewSyncWriter(errOut)
	logger := log.NewLogfmtLogger(w)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	logger = level.NewFilter(logger, allow(cfg.LogLevel))

	for _, warning := range cfg.Warnings {
		level.Warn(logger).Log("msg", warning)
	}

	coinbaseService := coinbase.NewService(cfg.CoinbaseURL, cfg.HTTPTimeout)
	coinbaseService = coinbase.NewLoggingService(log.With(logger, "component", "coinbase_rest"), coinbaseService)

	ratesService := rates.NewService(coinbaseService, domain.IDR)
	ratesService = rates.NewLoggingService(log.With(logger, "component", "rates"), ratesService)

	return &app{
		cfg:     cfg,
		logger:  logger,
		session: rates.NewSession(ratesService, domain.ForeignCurrencies),
	}, nil
}

func allow(lvl string) level.Option {
	switch lvl {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}
