package app

import (
	"net/http"
	"slices"
)

// RequestHasInvalidAPIKey reports whether the request's ?key= is missing or unknown.
func (app *Application) RequestHasInvalidAPIKey(r *http.Request) bool {
	return app.IsInvalidAPIKey(r.URL.Query().Get("key"))
}

// IsInvalidAPIKey reports whether key is empty or not one of the configured keys.
func (app *Application) IsInvalidAPIKey(key string) bool {
	return key == "" || !slices.Contains(app.Config.ApiKeys, key)
}
