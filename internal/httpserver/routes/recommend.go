package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/wayfarelabs/wayfare/internal/httpserver/deps"
	"github.com/wayfarelabs/wayfare/internal/httpserver/handlers"
)

func init() { Register(registerRecommend) }

func registerRecommend(r chi.Router, d deps.Deps) {
	r.Post("/api/recommend", handlers.Recommend(d))
}
