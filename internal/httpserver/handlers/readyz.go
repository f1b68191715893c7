package handlers

import (
	"net/http"

	"github.com/wayfarelabs/wayfare/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready bool `json:"ready"`
}

// Readyz reports readiness to serve recommendations: the catalog must
// have loaded at least one location.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ready := d.CatalogIndex != nil && d.CatalogIndex.Count() > 0
		status := http.StatusOK
		if !ready {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, readyzResponse{Ready: ready})
	}
}
