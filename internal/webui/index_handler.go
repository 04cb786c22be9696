package webui

import (
	"net/http"

	"dashboard.solarcredits.org/internal/logging"
	"dashboard.solarcredits.org/internal/models"
)

type indexPage struct {
	Stores []models.StoreSummary
}

func (webUI *WebUI) indexHandler(w http.ResponseWriter, r *http.Request) {
	stores, err := webUI.StoreDB.ListStores(r.Context())
	if err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to list stores", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	webUI.render(w, r, http.StatusOK, "index.html", indexPage{Stores: stores})
}
