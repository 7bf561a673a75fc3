package handlers

import (
	"net/http"
	"os"
)

// EnvHandler reports the public runtime settings the service was started
// with. Only allow-listed names are ever returned so credentials such as
// DATABASE_URL cannot leak.
type EnvHandler struct {
	names []string
}

// NewEnvHandler creates an EnvHandler exposing the given variable names.
func NewEnvHandler(names []string) *EnvHandler {
	return &EnvHandler{names: names}
}

// List handles GET /api/envvars. Variables that are unset are omitted.
func (h *EnvHandler) List(w http.ResponseWriter, r *http.Request) {
	vars := make(map[string]string, len(h.names))
	for _, name := range h.names {
		if value, ok := os.LookupEnv(name); ok {
			vars[name] = value
		}
	}
	WriteJSONOK(w, vars)
}
