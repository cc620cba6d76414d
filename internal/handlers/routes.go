package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes builds the HTTP router
func (ctx *Context) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", ctx.HandleHealth)
	r.Get("/ws", ctx.HandleWebSocket)
	r.Get("/api/estimate", ctx.HandleEstimate)
	r.Route("/rooms/{roomID}", func(r chi.Router) {
		r.Get("/events", ctx.HandleWatch)
		r.Get("/results", ctx.HandleResults)
		r.Get("/qr.png", ctx.HandleShareCode)
	})
	return r
}
