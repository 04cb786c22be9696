package utils

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractIDFromParams returns the named path parameter with a trailing
// ".json" removed. Parameters set by httprouter take precedence over
// net/http pattern wildcards.
func ExtractIDFromParams(r *http.Request, paramName string) string {
	rawID := httprouter.ParamsFromContext(r.Context()).ByName(paramName)
	if rawID == "" {
		rawID = r.PathValue(paramName)
	}
	return strings.TrimSuffix(rawID, ".json")
}
