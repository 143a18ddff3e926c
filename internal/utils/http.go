package utils

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractIDFromParams reads a route parameter and drops a trailing ".json",
// so /orientation/<id> and /orientation/<id>.json address the same session.
func ExtractIDFromParams(r *http.Request, paramName string) string {
	raw := httprouter.ParamsFromContext(r.Context()).ByName(paramName)
	return strings.TrimSuffix(strings.TrimSpace(raw), ".json")
}
