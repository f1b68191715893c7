package handlers

import (
	"net/http"

	"github.com/wayfarelabs/wayfare/internal/httpserver/deps"
	"github.com/wayfarelabs/wayfare/internal/logger"
)

type reloadResponse struct {
	Triggered bool   `json:"triggered"`
	Message   string `json:"message"`
}

// Reload triggers a manual catalog reload. The trigger channel has a
// buffer of one, so a reload already in flight makes this a no-op.
func Reload(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		select {
		case d.ReloadTrigger <- struct{}{}:
			d.Logger.Info("manual catalog reload triggered via endpoint",
				logger.String("remote_ip", r.RemoteAddr))
			writeJSON(w, http.StatusAccepted, reloadResponse{
				Triggered: true,
				Message:   "catalog reload triggered",
			})
		default:
			d.Logger.Warn("catalog reload already in progress",
				logger.String("remote_ip", r.RemoteAddr))
			writeJSON(w, http.StatusTooManyRequests, reloadResponse{
				Triggered: false,
				Message:   "reload already in progress, please wait",
			})
		}
	}
}
