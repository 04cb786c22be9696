package restapi

import (
	"net/http"

	"dashboard.solarcredits.org/internal/generation"
	"dashboard.solarcredits.org/internal/models"
	"dashboard.solarcredits.org/internal/utils"
)

// generationHandler runs the generation view for a store and returns the
// resulting state as JSON.
func (api *RestAPI) generationHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r, "id")

	if err := utils.ValidateID(id); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"id": {err.Error()},
		})
		return
	}

	state := api.Loader.Load(r.Context(), id, nil)
	if r.Context().Err() != nil {
		return
	}
	if state.Phase == generation.NotFound {
		api.sendNotFound(w, r)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(state.Snapshot()))
}
