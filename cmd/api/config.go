package main

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"dashboard.solarcredits.org/internal/appconf"
	"dashboard.solarcredits.org/internal/pvwatts"
)

// envDefaults reads flag defaults from the environment, remembering any
// value that does not parse.
type envDefaults struct {
	getenv func(string) string
	errs   []error
}

func (e *envDefaults) str(name, fallback string) string {
	if v := e.getenv(name); v != "" {
		return v
	}
	return fallback
}

func (e *envDefaults) integer(name string, fallback int) int {
	v := e.getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s: %w", name, err))
		return fallback
	}
	return n
}

func (e *envDefaults) duration(name string, fallback time.Duration) time.Duration {
	v := e.getenv(name)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s: %w", name, err))
		return fallback
	}
	return d
}

// loadConfig parses command-line flags. Environment variables (typically
// loaded from .env) replace the built-in defaults; explicit flags win over
// both.
func loadConfig(args []string, getenv func(string) string) (appconf.Config, error) {
	var cfg appconf.Config
	var envFlag, apiKeysFlag string

	env := &envDefaults{getenv: getenv}
	fs := flag.NewFlagSet("api", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "port", env.integer("PORT", 4000), "API server port")
	fs.StringVar(&envFlag, "env", env.str("ENV", "development"), "Environment (development|test|production)")
	fs.StringVar(&apiKeysFlag, "api-keys", env.str("API_KEYS", "test"), "Comma Separated API Keys (test, etc)")
	fs.IntVar(&cfg.RateLimit, "rate-limit", env.integer("RATE_LIMIT", 100), "Requests per second per API key (negative disables)")
	fs.StringVar(&cfg.DBPath, "db-path", env.str("DB_PATH", "stores.db"), "Path to the SQLite database, or :memory:")
	fs.StringVar(&cfg.SeedFile, "seed-file", env.str("SEED_FILE", ""), "JSON file of stores imported at startup")
	fs.StringVar(&cfg.StoreAPIURL, "store-api-url", env.str("STORE_API_URL", ""), "Base URL of the store service (default: this server)")
	fs.StringVar(&cfg.StoreAPIKey, "store-api-key", env.str("STORE_API_KEY", ""), "API key for the store service (default: first of -api-keys)")
	fs.StringVar(&cfg.PVWattsURL, "pvwatts-url", env.str("PVWATTS_URL", pvwatts.DefaultBaseURL), "Base URL of the PVWatts service")
	fs.StringVar(&cfg.PVWattsAPIKey, "pvwatts-api-key", env.str("PVWATTS_API_KEY", "DEMO_KEY"), "PVWatts API key")
	fs.IntVar(&cfg.PVWattsRatePerHour, "pvwatts-rate-per-hour", env.integer("PVWATTS_RATE_PER_HOUR", 1000), "Outbound PVWatts requests per hour")
	fs.DurationVar(&cfg.HTTPClientTimeout, "http-client-timeout", env.duration("HTTP_CLIENT_TIMEOUT", 10*time.Second), "Timeout for outbound HTTP calls")

	if len(env.errs) > 0 {
		return cfg, fmt.Errorf("invalid environment: %w", errors.Join(env.errs...))
	}
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	cfg.Env = appconf.EnvFlagToEnvironment(envFlag)

	if apiKeysFlag != "" {
		for _, key := range strings.Split(apiKeysFlag, ",") {
			if key = strings.TrimSpace(key); key != "" {
				cfg.ApiKeys = append(cfg.ApiKeys, key)
			}
		}
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return cfg, fmt.Errorf("port out of range: %d", cfg.Port)
	}

	if cfg.StoreAPIURL == "" {
		cfg.StoreAPIURL = fmt.Sprintf("http://localhost:%d", cfg.Port)
	}
	if cfg.StoreAPIKey == "" && len(cfg.ApiKeys) > 0 {
		cfg.StoreAPIKey = cfg.ApiKeys[0]
	}

	return cfg, nil
}
