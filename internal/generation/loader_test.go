package generation

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard.solarcredits.org/internal/logging"
	"dashboard.solarcredits.org/internal/models"
)

func newTestLoader(stores *fakeStores, estimator *fakeEstimator) (*Loader, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewLoader(stores, estimator, logging.NewStructuredLogger(&buf, slog.LevelInfo)), &buf
}

func phasesOf(states []State) []Phase {
	phases := make([]Phase, len(states))
	for i, s := range states {
		phases[i] = s.Phase
	}
	return phases
}

func TestLoadOutputReady(t *testing.T) {
	store := &models.Store{ID: "s1", Name: "Main St", Latitude: ptr(40.0), SolarCredits: "42.7"}
	estimator := &fakeEstimator{series: map[float64][]float64{40: twelveMonths}}
	loader, _ := newTestLoader(newFakeStores(store), estimator)

	var seen []State
	final := loader.Load(context.Background(), "s1", func(s State) { seen = append(seen, s) })

	assert.Equal(t, []Phase{LoadingStore, HasStore, LoadingOutput, OutputReady}, phasesOf(seen))
	assert.Equal(t, OutputReady, final.Phase)
	assert.Equal(t, "42", final.Credits)
	assert.Equal(t, twelveMonths, final.Series)
	assert.True(t, final.ShowStore())
	assert.True(t, final.ShowChart())
	require.NotNil(t, final.Chart())
	assert.Len(t, final.Chart().Points(), 12)
}

func TestLoadStoreNotFound(t *testing.T) {
	estimator := &fakeEstimator{}
	loader, logs := newTestLoader(newFakeStores(), estimator)

	var seen []State
	final := loader.Load(context.Background(), "missing", func(s State) { seen = append(seen, s) })

	assert.Equal(t, []Phase{LoadingStore, NotFound}, phasesOf(seen))
	assert.False(t, final.ShowStore())
	assert.False(t, final.ShowChart())
	assert.Empty(t, estimator.calls(), "no estimate without a store")
	assert.Empty(t, logs.String(), "a missing store is not an error")
}

func TestLoadStoreTransportErrorRendersNotFound(t *testing.T) {
	stores := newFakeStores()
	stores.err = assert.AnError
	loader, logs := newTestLoader(stores, &fakeEstimator{})

	final := loader.Load(context.Background(), "s1", nil)

	assert.Equal(t, NotFound, final.Phase)
	assert.Contains(t, logs.String(), `"msg":"failed to fetch store"`)
	assert.Contains(t, logs.String(), `"store_id":"s1"`)
}

func TestLoadMissingFieldsStillEstimates(t *testing.T) {
	store := &models.Store{ID: "bare", SolarCredits: "5"}
	estimator := &fakeEstimator{series: map[float64][]float64{0: twelveMonths}}
	loader, _ := newTestLoader(newFakeStores(store), estimator)

	final := loader.Load(context.Background(), "bare", nil)

	calls := estimator.calls()
	require.Len(t, calls, 1, "estimate is attempted even with missing fields")
	assert.Nil(t, calls[0].Lat)
	assert.Nil(t, calls[0].Lon)
	assert.Nil(t, calls[0].SystemCapacity)
	assert.Equal(t, OutputReady, final.Phase)
}

func TestLoadEstimateFailure(t *testing.T) {
	store := &models.Store{ID: "s1", SolarCredits: "abc"}
	estimator := &fakeEstimator{err: assert.AnError}
	loader, logs := newTestLoader(newFakeStores(store), estimator)

	var seen []State
	final := loader.Load(context.Background(), "s1", func(s State) { seen = append(seen, s) })

	assert.Equal(t, []Phase{LoadingStore, HasStore, LoadingOutput, OutputFailed}, phasesOf(seen))
	assert.True(t, final.ShowStore(), "store panel still renders")
	assert.False(t, final.ShowChart(), "chart panel is omitted")
	assert.Nil(t, final.Chart())
	assert.Empty(t, final.Series)
	assert.Equal(t, "NaN", final.Credits)
	assert.Len(t, estimator.calls(), 1, "no retry")
	assert.Contains(t, logs.String(), `"msg":"failed to fetch solar output"`)
}

func TestLoadEmptySeriesIsFailure(t *testing.T) {
	store := &models.Store{ID: "s1", Latitude: ptr(1.0)}
	estimator := &fakeEstimator{series: map[float64][]float64{1: {}}}
	loader, _ := newTestLoader(newFakeStores(store), estimator)

	final := loader.Load(context.Background(), "s1", nil)

	assert.Equal(t, OutputFailed, final.Phase)
	assert.False(t, final.ShowChart())
}

func TestLoadCancelledStopsReporting(t *testing.T) {
	store := &models.Store{ID: "s1"}
	stores := newFakeStores(store)
	gate := stores.block("s1")
	defer close(gate)
	estimator := &fakeEstimator{}
	loader, _ := newTestLoader(stores, estimator)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var seen []State
	final := loader.Load(ctx, "s1", func(s State) { seen = append(seen, s) })

	assert.Equal(t, []Phase{LoadingStore}, phasesOf(seen))
	assert.Equal(t, LoadingStore, final.Phase)
	assert.Empty(t, estimator.calls())
}

func TestStateSnapshot(t *testing.T) {
	state := State{
		Phase:   OutputReady,
		StoreID: "s1",
		Store:   &models.Store{ID: "s1", Name: "Main St"},
		Credits: "42",
		Series:  twelveMonths,
	}

	snap := state.Snapshot()
	assert.Equal(t, OutputReady, snap.Phase)
	assert.Equal(t, "Main St", snap.StoreName)
	assert.Equal(t, "42", snap.Credits)
	assert.True(t, snap.ShowChart)
	require.NotNil(t, snap.Chart)

	notFound := State{Phase: NotFound, StoreID: "x"}.Snapshot()
	assert.False(t, notFound.ShowChart)
	assert.Nil(t, notFound.Chart)
	assert.Empty(t, notFound.Credits)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "output_ready", OutputReady.String())
	assert.Equal(t, "phase(42)", Phase(42).String())
	assert.True(t, NotFound.Terminal())
	assert.True(t, OutputFailed.Terminal())
	assert.False(t, LoadingOutput.Terminal())

	text, err := LoadingStore.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "loading_store", string(text))
}
