package generation

import (
	"fmt"

	"dashboard.solarcredits.org/internal/models"
)

// Phase is the position of a view in its load sequence:
//
//	Idle -> LoadingStore -> NotFound
//	                     -> HasStore -> LoadingOutput -> OutputReady
//	                                                  -> OutputFailed
//
// NotFound, OutputReady and OutputFailed are terminal for a store id.
type Phase int

const (
	Idle Phase = iota
	LoadingStore
	NotFound
	HasStore
	LoadingOutput
	OutputReady
	OutputFailed
)

var phaseNames = [...]string{
	Idle:          "idle",
	LoadingStore:  "loading_store",
	NotFound:      "not_found",
	HasStore:      "has_store",
	LoadingOutput: "loading_output",
	OutputReady:   "output_ready",
	OutputFailed:  "output_failed",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("phase(%d)", int(p))
	}
	return phaseNames[p]
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Terminal reports whether no further transitions happen for the store id.
func (p Phase) Terminal() bool {
	return p == NotFound || p == OutputReady || p == OutputFailed
}

// State is a snapshot of a generation view. Store is set from HasStore on,
// Series only in OutputReady.
type State struct {
	Phase   Phase
	StoreID string
	Store   *models.Store
	Credits string
	Series  []float64
}

// ShowStore reports whether the store panel (current month, credits) is
// rendered. Before the store arrives the view shows only "Store not found!".
func (s State) ShowStore() bool {
	return s.Store != nil && s.Phase >= HasStore
}

// ShowChart reports whether the chart panel is rendered.
func (s State) ShowChart() bool {
	return s.ShowStore() && s.Phase == OutputReady && len(s.Series) > 0
}

// Chart returns the chart configuration, or nil when no chart is shown.
func (s State) Chart() *ChartConfig {
	if !s.ShowChart() {
		return nil
	}
	chart := MonthlyChart(s.Series)
	return &chart
}

// Snapshot is the JSON form of a State.
type Snapshot struct {
	Phase     Phase        `json:"phase"`
	StoreID   string       `json:"storeId"`
	StoreName string       `json:"storeName,omitempty"`
	Credits   string       `json:"credits,omitempty"`
	ShowChart bool         `json:"showChart"`
	Chart     *ChartConfig `json:"chart,omitempty"`
}

func (s State) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:     s.Phase,
		StoreID:   s.StoreID,
		ShowChart: s.ShowChart(),
		Chart:     s.Chart(),
	}
	if s.ShowStore() {
		snap.StoreName = s.Store.Name
		snap.Credits = s.Credits
	}
	return snap
}
