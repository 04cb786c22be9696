package restapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"dashboard.solarcredits.org/internal/models"
	"dashboard.solarcredits.org/internal/utils"
	"dashboard.solarcredits.org/storedb"
)

// storeHandler serves the raw store record, the document the generation view
// consumes.
func (api *RestAPI) storeHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r, "id")

	if err := utils.ValidateID(id); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"id": {err.Error()},
		})
		return
	}

	store, err := api.StoreDB.GetStore(r.Context(), id)
	if errors.Is(err, storedb.ErrStoreNotFound) {
		api.sendNotFound(w, r)
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendJSON(w, r, http.StatusOK, store)
}

func (api *RestAPI) storesHandler(w http.ResponseWriter, r *http.Request) {
	stores, err := api.StoreDB.ListStores(r.Context())
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewListResponse(stores, false))
}

func (api *RestAPI) putStoreHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r, "id")

	var store models.Store
	decoder := json.NewDecoder(io.LimitReader(r.Body, 1<<16))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&store); err != nil {
		api.badRequestResponse(w, r, "malformed store document")
		return
	}

	if store.ID == "" {
		store.ID = id
	}
	if store.ID != id {
		api.validationErrorResponse(w, r, map[string][]string{
			"id": {"id in body does not match the URL"},
		})
		return
	}

	if fieldErrors := utils.ValidateStore(store); len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	if err := api.StoreDB.UpsertStore(r.Context(), store); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendJSON(w, r, http.StatusOK, store)
}
