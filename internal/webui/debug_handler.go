package webui

import (
	"net/http"

	"github.com/davecgh/go-spew/spew"

	"dashboard.solarcredits.org/internal/utils"
)

type debugData struct {
	Title string
	Pre   string
}

// debugStoreHandler dumps the settled generation state of a store.
func (webUI *WebUI) debugStoreHandler(w http.ResponseWriter, r *http.Request) {
	storeID := utils.ExtractIDFromParams(r, "storeId")

	var data interface{}
	title := "Generation state: " + storeID

	if err := utils.ValidateID(storeID); err != nil {
		data = map[string]string{"error": err.Error()}
		title = "Invalid store id"
	} else {
		state, ok := webUI.loadState(r, storeID)
		if !ok {
			return
		}
		data = state
	}

	config := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
	webUI.render(w, r, http.StatusOK, "debug.html", debugData{
		Title: title,
		Pre:   config.Sdump(data),
	})
}
