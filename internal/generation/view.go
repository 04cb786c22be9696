package generation

import (
	"context"
	"sync"
)

// View holds the display state of one generation page and owns the load task
// for its current store id. Changing the id cancels the running task, and
// states reported by a superseded task are discarded.
type View struct {
	loader   *Loader
	onChange func(State)

	mu      sync.Mutex
	state   State
	storeID string
	seq     uint64
	cancel  context.CancelFunc
	done    chan struct{}
	wg      sync.WaitGroup
}

// ViewOption configures a View.
type ViewOption func(*View)

// WithOnChange registers fn to receive every applied state. fn is called with
// the view's lock held and must not call back into the View.
func WithOnChange(fn func(State)) ViewOption {
	return func(v *View) {
		v.onChange = fn
	}
}

func NewView(loader *Loader, opts ...ViewOption) *View {
	v := &View{loader: loader}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// SetStoreID activates the view for storeID. The returned channel is closed
// when the load task for storeID has finished. Calling it again with the
// current id starts nothing and returns the existing channel.
func (v *View) SetStoreID(ctx context.Context, storeID string) <-chan struct{} {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.done != nil && v.storeID == storeID {
		return v.done
	}

	if v.cancel != nil {
		v.cancel()
	}

	v.seq++
	seq := v.seq
	taskCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	v.storeID = storeID
	v.cancel = cancel
	v.done = done
	v.setState(State{Phase: Idle, StoreID: storeID})

	v.wg.Add(1)
	go func() {
		defer v.wg.Done()
		defer close(done)
		defer cancel()
		v.loader.Load(taskCtx, storeID, func(s State) {
			v.apply(seq, s)
		})
	}()

	return done
}

// State returns the current display state.
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Close cancels any running task and waits for it to exit.
func (v *View) Close() {
	v.mu.Lock()
	if v.cancel != nil {
		v.cancel()
	}
	v.seq++
	v.mu.Unlock()

	v.wg.Wait()
}

func (v *View) apply(seq uint64, s State) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if seq != v.seq {
		return
	}
	v.setState(s)
}

func (v *View) setState(s State) {
	v.state = s
	if v.onChange != nil {
		v.onChange(s)
	}
}
