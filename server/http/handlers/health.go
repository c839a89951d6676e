package handlers

import (
	"encoding/json"
	"net/http"
)

// Health reports liveness and whether the default catalog is ready.
func Health(catalogLoaded bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":         "ok",
			"catalog_loaded": catalogLoaded,
		})
	}
}
