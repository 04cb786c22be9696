package generation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"dashboard.solarcredits.org/internal/models"
)

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("load task did not finish")
	}
}

func TestViewLoadsStore(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := &models.Store{ID: "s1", Latitude: ptr(40.0), SolarCredits: "42.7"}
	loader, _ := newTestLoader(newFakeStores(store), &fakeEstimator{series: map[float64][]float64{40: twelveMonths}})
	view := NewView(loader)
	defer view.Close()

	assert.Equal(t, Idle, view.State().Phase)

	waitDone(t, view.SetStoreID(context.Background(), "s1"))

	state := view.State()
	assert.Equal(t, OutputReady, state.Phase)
	assert.Equal(t, "42", state.Credits)
}

func TestViewSameIDDoesNotReload(t *testing.T) {
	defer goleak.VerifyNone(t)

	stores := newFakeStores(&models.Store{ID: "s1"})
	loader, _ := newTestLoader(stores, &fakeEstimator{series: map[float64][]float64{0: twelveMonths}})
	view := NewView(loader)
	defer view.Close()

	first := view.SetStoreID(context.Background(), "s1")
	waitDone(t, first)
	second := view.SetStoreID(context.Background(), "s1")
	waitDone(t, second)

	assert.Equal(t, 1, stores.callCount())

	waitDone(t, view.SetStoreID(context.Background(), "s2"))
	assert.Equal(t, 2, stores.callCount())
	assert.Equal(t, NotFound, view.State().Phase)
}

func TestViewDiscardsStaleResponse(t *testing.T) {
	defer goleak.VerifyNone(t)

	slow := &models.Store{ID: "slow", Name: "Slow", Latitude: ptr(1.0), SolarCredits: "1"}
	fast := &models.Store{ID: "fast", Name: "Fast", Latitude: ptr(2.0), SolarCredits: "2"}
	stores := newFakeStores(slow, fast)
	stores.ignored = true // the slow fetch completes even though it was cancelled
	gate := stores.block("slow")

	estimator := &fakeEstimator{series: map[float64][]float64{
		1: {1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		2: twelveMonths,
	}}
	loader, _ := newTestLoader(stores, estimator)

	var mu sync.Mutex
	var applied []State
	view := NewView(loader, WithOnChange(func(s State) {
		mu.Lock()
		applied = append(applied, s)
		mu.Unlock()
	}))
	defer view.Close()

	slowDone := view.SetStoreID(context.Background(), "slow")
	fastDone := view.SetStoreID(context.Background(), "fast")
	waitDone(t, fastDone)

	close(gate)
	waitDone(t, slowDone)

	state := view.State()
	assert.Equal(t, "fast", state.StoreID)
	assert.Equal(t, OutputReady, state.Phase)
	assert.Equal(t, "Fast", state.Store.Name)
	assert.Equal(t, twelveMonths, state.Series)

	mu.Lock()
	defer mu.Unlock()
	for _, s := range applied {
		if s.Store != nil {
			assert.NotEqual(t, "slow", s.Store.ID, "stale store must never be applied")
		}
	}
	for _, in := range estimator.calls() {
		require.NotNil(t, in.Lat)
		assert.NotEqual(t, 1.0, *in.Lat, "cancelled task must not reach the estimator")
	}
}

func TestViewCloseCancelsInFlight(t *testing.T) {
	defer goleak.VerifyNone(t)

	stores := newFakeStores(&models.Store{ID: "s1"})
	gate := stores.block("s1")
	defer close(gate)
	loader, _ := newTestLoader(stores, &fakeEstimator{})
	view := NewView(loader)

	done := view.SetStoreID(context.Background(), "s1")
	view.Close()
	waitDone(t, done)

	phase := view.State().Phase
	assert.Contains(t, []Phase{Idle, LoadingStore}, phase, "nothing is applied after close")
}

func TestViewParentContextCancellation(t *testing.T) {
	defer goleak.VerifyNone(t)

	stores := newFakeStores(&models.Store{ID: "s1"})
	gate := stores.block("s1")
	defer close(gate)
	loader, _ := newTestLoader(stores, &fakeEstimator{})
	view := NewView(loader)
	defer view.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := view.SetStoreID(ctx, "s1")
	cancel()
	waitDone(t, done)

	assert.False(t, view.State().Phase.Terminal())
}
