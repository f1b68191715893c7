package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/wayfarelabs/wayfare/internal/httpserver/deps"
	"github.com/wayfarelabs/wayfare/internal/httpserver/handlers"
)

func init() { Register(registerHistory) }

func registerHistory(r chi.Router, d deps.Deps) {
	r.Route("/api/trips/{tripID}/history", func(r chi.Router) {
		r.Get("/", handlers.GetHistory(d))
		r.Post("/", handlers.AppendHistory(d))
		r.Post("/undo", handlers.UndoHistory(d))
		r.Post("/redo", handlers.RedoHistory(d))
	})
}
