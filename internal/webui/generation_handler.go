package webui

import (
	"encoding/json"
	"html/template"
	"net/http"

	"dashboard.solarcredits.org/internal/generation"
	"dashboard.solarcredits.org/internal/logging"
	"dashboard.solarcredits.org/internal/utils"
)

// StoreNotFoundText is the whole body of the page for an unknown store.
const StoreNotFoundText = "Store not found!"

type generationPage struct {
	Heading        string
	Description    string
	CurrentMonth   string
	StoreName      string
	Credits        string
	ShowChart      bool
	ChartConfig    template.JS
	ChartScriptURL string
}

func (webUI *WebUI) generationPageHandler(w http.ResponseWriter, r *http.Request) {
	storeID := utils.ExtractIDFromParams(r, "storeId")
	if err := utils.ValidateID(storeID); err != nil {
		webUI.storeNotFound(w)
		return
	}

	state, ok := webUI.loadState(r, storeID)
	if !ok {
		return
	}
	if !state.ShowStore() {
		webUI.storeNotFound(w)
		return
	}

	page := generationPage{
		Heading:        "Solar Energy Generation",
		Description:    "View your solar system's generation data",
		CurrentMonth:   webUI.Now().Format("January 2006"),
		StoreName:      state.Store.Name,
		Credits:        state.Credits,
		ShowChart:      state.ShowChart(),
		ChartScriptURL: ChartScriptURL,
	}

	if chart := state.Chart(); chart != nil {
		b, err := json.Marshal(chart)
		if err != nil {
			logging.LogError(logging.FromContext(r.Context()), "failed to encode chart", err)
			page.ShowChart = false
		} else {
			// json.Marshal escapes <, > and &, so the document is safe inside a script element.
			page.ChartConfig = template.JS(b)
		}
	}

	webUI.render(w, r, http.StatusOK, "generation.html", page)
}

// loadState runs the generation view for storeID and waits for it to settle.
// It reports false when the client went away first.
func (webUI *WebUI) loadState(r *http.Request, storeID string) (generation.State, bool) {
	view := generation.NewView(webUI.Loader)
	defer view.Close()

	select {
	case <-view.SetStoreID(r.Context(), storeID):
		return view.State(), true
	case <-r.Context().Done():
		return generation.State{}, false
	}
}

func (webUI *WebUI) storeNotFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte(StoreNotFoundText))
}
