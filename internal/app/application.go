package app

import (
	"log/slog"

	"dashboard.solarcredits.org/internal/appconf"
	"dashboard.solarcredits.org/internal/generation"
	"dashboard.solarcredits.org/storedb"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config  appconf.Config
	Logger  *slog.Logger
	StoreDB *storedb.Client
	// Loader fetches stores through the store resource endpoint and asks
	// the estimation service for projections.
	Loader *generation.Loader
}
