package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/wayfarelabs/wayfare/internal/httpserver/deps"
)

type componentStatus struct {
	OK              bool   `json:"ok"`
	LocationsLoaded *int   `json:"locations_loaded,omitempty"`
	Cities          *int   `json:"cities,omitempty"`
	LastReload      string `json:"last_reload,omitempty"`
	Mode            string `json:"mode,omitempty"`
	Impact          string `json:"impact,omitempty"`
	Error           string `json:"error,omitempty"`
}

type infraResponse struct {
	ServingMode string                     `json:"serving_mode"`
	Components  map[string]componentStatus `json:"components"`
}

func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locationsCount := d.CatalogIndex.Count()
		citiesCount := len(d.CatalogIndex.Cities())
		lastReload := d.CatalogIndex.LastReload()
		lastReloadStr := "never"
		if !lastReload.IsZero() {
			lastReloadStr = lastReload.Format("2006-01-02 15:04:05")
		}

		components := map[string]componentStatus{
			"catalog": {
				OK:              locationsCount > 0,
				LocationsLoaded: &locationsCount,
				Cities:          &citiesCount,
				LastReload:      lastReloadStr,
			},
			"redis": checkRedis(d),
		}

		writeJSON(w, http.StatusOK, infraResponse{
			ServingMode: determineServingMode(components),
			Components:  components,
		})
	}
}

// determineServingMode summarizes component health. An empty catalog is
// critical; a down Redis only costs caching and history persistence.
func determineServingMode(components map[string]componentStatus) string {
	if catalog, exists := components["catalog"]; exists && !catalog.OK {
		return "critical"
	}
	if redis, exists := components["redis"]; exists && !redis.OK {
		return "degraded"
	}
	return "full"
}

func checkRedis(d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "history-and-cache-disabled",
			Error:  "client not initialized",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := d.RedisClient.Ping(ctx).Err(); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "history-and-cache-disabled",
			Error:  "timeout",
		}
	}

	return componentStatus{
		OK:     true,
		Mode:   "optimal",
		Impact: "history-and-cache-enabled",
		Error:  "none",
	}
}
