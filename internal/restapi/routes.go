package restapi

import (
	"net/http"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

func (api *RestAPI) SetRoutes(mux *http.ServeMux) {
	mux.Handle("GET /api/stores", validateAPIKey(api, api.storesHandler))
	mux.Handle("GET /api/stores/{id}", validateAPIKey(api, api.storeHandler))
	mux.Handle("PUT /api/stores/{id}", validateAPIKey(api, api.putStoreHandler))
	mux.Handle("GET /api/stores/{id}/generation.json", validateAPIKey(api, api.generationHandler))
}
