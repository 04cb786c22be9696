package generation

import (
	"context"
	"errors"
	"log/slog"

	"dashboard.solarcredits.org/internal/logging"
	"dashboard.solarcredits.org/internal/models"
	"dashboard.solarcredits.org/internal/pvwatts"
	"dashboard.solarcredits.org/internal/storeclient"
)

// StoreFetcher reads a store record by id.
type StoreFetcher interface {
	GetStore(ctx context.Context, id string) (*models.Store, error)
}

// Estimator produces a solar projection for an input.
type Estimator interface {
	Estimate(ctx context.Context, input pvwatts.Input) (*pvwatts.Result, error)
}

// Loader runs the load sequence of a generation view: fetch the store,
// derive the estimate input, request the projection.
type Loader struct {
	stores    StoreFetcher
	estimator Estimator
	logger    *slog.Logger
}

func NewLoader(stores StoreFetcher, estimator Estimator, logger *slog.Logger) *Loader {
	return &Loader{
		stores:    stores,
		estimator: estimator,
		logger:    logger,
	}
}

// Load drives storeID from LoadingStore to a terminal phase, passing every
// intermediate state to report (which may be nil). A cancelled ctx stops the
// sequence without reporting further states; the last reported state is
// returned.
func (l *Loader) Load(ctx context.Context, storeID string, report func(State)) State {
	emit := func(s State) State {
		if report != nil {
			report(s)
		}
		return s
	}

	state := emit(State{Phase: LoadingStore, StoreID: storeID})

	store, err := l.stores.GetStore(ctx, storeID)
	if ctx.Err() != nil {
		return state
	}
	if err != nil || store == nil {
		if err != nil && !errors.Is(err, storeclient.ErrNotFound) {
			logging.LogError(l.logger, "failed to fetch store", err,
				slog.String("store_id", storeID),
				slog.String("component", "generation_view"))
		}
		return emit(State{Phase: NotFound, StoreID: storeID})
	}

	state = emit(State{
		Phase:   HasStore,
		StoreID: storeID,
		Store:   store,
		Credits: FormatCredits(store.SolarCredits),
	})

	state.Phase = LoadingOutput
	state = emit(state)

	result, err := l.estimator.Estimate(ctx, DeriveInput(store))
	if ctx.Err() != nil {
		return state
	}
	if err == nil && len(result.Outputs.ACMonthly) == 0 {
		err = errors.New("estimate returned no monthly output")
	}
	if err != nil {
		logging.LogError(l.logger, "failed to fetch solar output", err,
			slog.String("store_id", storeID),
			slog.String("component", "generation_view"))
		state.Phase = OutputFailed
		return emit(state)
	}

	state.Phase = OutputReady
	state.Series = result.Outputs.ACMonthly
	return emit(state)
}
