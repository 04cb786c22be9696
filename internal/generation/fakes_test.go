package generation

import (
	"context"
	"sync"

	"dashboard.solarcredits.org/internal/models"
	"dashboard.solarcredits.org/internal/pvwatts"
	"dashboard.solarcredits.org/internal/storeclient"
)

func ptr[T any](v T) *T { return &v }

var twelveMonths = []float64{305.1, 330.2, 450.3, 480.4, 520.5, 530.6, 540.7, 510.8, 470.9, 400.1, 310.2, 280.3}

type fakeStores struct {
	mu      sync.Mutex
	stores  map[string]*models.Store
	gates   map[string]chan struct{}
	err     error
	calls   []string
	ignored bool // keep waiting on a gate even after ctx is cancelled
}

func newFakeStores(stores ...*models.Store) *fakeStores {
	f := &fakeStores{stores: map[string]*models.Store{}, gates: map[string]chan struct{}{}}
	for _, s := range stores {
		f.stores[s.ID] = s
	}
	return f
}

// block makes GetStore(id) wait until the returned channel is closed.
func (f *fakeStores) block(id string) chan struct{} {
	gate := make(chan struct{})
	f.mu.Lock()
	f.gates[id] = gate
	f.mu.Unlock()
	return gate
}

func (f *fakeStores) GetStore(ctx context.Context, id string) (*models.Store, error) {
	f.mu.Lock()
	f.calls = append(f.calls, id)
	gate := f.gates[id]
	store := f.stores[id]
	err := f.err
	f.mu.Unlock()

	if gate != nil {
		if f.ignored {
			<-gate
		} else {
			select {
			case <-gate:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, storeclient.ErrNotFound
	}
	return store, nil
}

func (f *fakeStores) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeEstimator struct {
	mu     sync.Mutex
	series map[float64][]float64 // keyed by latitude; nil latitude uses key 0
	err    error
	inputs []pvwatts.Input
}

func (f *fakeEstimator) Estimate(ctx context.Context, input pvwatts.Input) (*pvwatts.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, input)
	if f.err != nil {
		return nil, f.err
	}
	key := 0.0
	if input.Lat != nil {
		key = *input.Lat
	}
	return &pvwatts.Result{Outputs: pvwatts.Outputs{ACMonthly: f.series[key]}}, nil
}

func (f *fakeEstimator) calls() []pvwatts.Input {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]pvwatts.Input(nil), f.inputs...)
}
