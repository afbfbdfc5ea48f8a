package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"go-cash-declaration/coinbase"
)

// Config holds application configuration.
type Config struct {
	CoinbaseURL string

	// HTTPTimeout bounds each rate lookup. Zero means no client timeout.
	HTTPTimeout time.Duration

	LogLevel  string
	AutoFetch bool

	// Warnings problems found while loading, for the caller to log
	Warnings []string
}

const envPrefix = "CASHDECL"

// Load reads configuration from CASHDECL_* environment variables and a .env file if present.
func Load() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("COINBASE_URL", coinbase.ApiUrlBase)
	v.SetDefault("HTTP_TIMEOUT", "0s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("AUTO_FETCH", false)

	cfg := &Config{}

	cfg.CoinbaseURL = strings.TrimRight(v.GetString("COINBASE_URL"), "/")
	if cfg.CoinbaseURL == "" {
		cfg.CoinbaseURL = coinbase.ApiUrlBase
	}

	timeoutStr := v.GetString("HTTP_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout < 0 {
		timeout = 0
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("invalid %s_HTTP_TIMEOUT %q, using no timeout", envPrefix, timeoutStr))
	}
	cfg.HTTPTimeout = timeout

	cfg.LogLevel = strings.ToLower(v.GetString("LOG_LEVEL"))
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid %s_LOG_LEVEL %q", envPrefix, cfg.LogLevel)
	}

	cfg.AutoFetch = v.GetBool("AUTO_FETCH")

	return cfg, nil
}
