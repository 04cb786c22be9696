package webui

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"dashboard.solarcredits.org/internal/appconf"
	"dashboard.solarcredits.org/internal/restapi"
)

// Handler returns the page routes. Store pages are routed by httprouter;
// static assets and the debug dump sit in front of it on a ServeMux because
// httprouter cannot mix a root wildcard with fixed first segments.
func (webUI *WebUI) Handler() http.Handler {
	router := httprouter.New()
	router.Handler(http.MethodGet, "/", http.HandlerFunc(webUI.indexHandler))
	router.Handler(http.MethodGet, "/:storeId/generation", http.HandlerFunc(webUI.generationPageHandler))

	mux := http.NewServeMux()
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(webUI.static)))
	if webUI.Config.Env != appconf.Production {
		mux.HandleFunc("GET /debug/stores/{storeId}", webUI.debugStoreHandler)
	}
	mux.Handle("/", router)

	return restapi.SecurityHeaders(PageContentSecurityPolicy)(mux)
}
