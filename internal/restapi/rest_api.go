package restapi

import (
	"net/http"
	"time"

	"qibla.arahkiblat.org/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter *RateLimitMiddleware
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second, app.Clock),
	}
}

// Handler builds the router and wraps it in the middleware chain.
// Outermost first: security headers, request logging, compression, rate limiting.
func (api *RestAPI) Handler() http.Handler {
	var handler http.Handler = api.Routes()
	if api.rateLimiter != nil {
		handler = api.rateLimiter.Handler(handler)
	}
	handler = CompressionMiddleware(handler)
	handler = NewRequestLoggingMiddleware(api.Logger, api.Metrics)(handler)
	return api.WithSecurityHeaders(handler)
}

// Shutdown stops background work owned by the API.
func (api *RestAPI) Shutdown() {
	if api.rateLimiter != nil {
		api.rateLimiter.Stop()
	}
}
