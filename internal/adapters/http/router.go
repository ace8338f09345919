// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/retro-board/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	sessionHandler *handlers.SessionHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/retros/{shareId}/sessions", sessionHandler.OpenSession)

		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", sessionHandler.GetSession)
			r.Delete("/", sessionHandler.CloseSession)

			// Local view state.
			r.Put("/search", sessionHandler.Search)
			r.Post("/sort", sessionHandler.ToggleSort)
			r.Post("/columns/{columnId}/visibility", sessionHandler.ToggleColumn)

			// Board commands.
			r.Post("/columns", sessionHandler.AddColumn)
			r.Post("/columns/{columnId}/cards", sessionHandler.AddCard)

			// Drag and drop, card joins.
			r.Post("/drag", sessionHandler.StartDrag)
			r.Post("/drop/columns/{columnId}", sessionHandler.DropOnColumn)
			r.Post("/drop/cards/{cardId}", sessionHandler.DropOnCard)
			r.Post("/join/confirm", sessionHandler.ConfirmJoin)
			r.Post("/join/cancel", sessionHandler.CancelJoin)

			r.Get("/messages", sessionHandler.Messages)

			// Moderator panel.
			r.Get("/moderator", sessionHandler.Moderator)
			r.Post("/steps/next", sessionHandler.NextStep)
			r.Post("/steps/previous", sessionHandler.PreviousStep)
			r.Get("/export.csv", sessionHandler.Export)
		})
	})

	return r
}
