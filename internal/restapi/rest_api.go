package restapi

import (
	"net/http"
	"time"

	"dashboard.solarcredits.org/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter *RateLimitMiddleware
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second),
	}
}

// Handler returns the JSON API with its middleware chain: security headers,
// per-key rate limiting, then the routes.
func (api *RestAPI) Handler() http.Handler {
	mux := http.NewServeMux()
	api.SetRoutes(mux)
	return api.WithSecurityHeaders(api.rateLimiter.Handler(mux))
}

// Shutdown stops background work owned by the API.
func (api *RestAPI) Shutdown() {
	api.rateLimiter.Stop()
}
