// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-agent/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. The timeout middleware
// is passed separately because it only wraps the short-lived routes: chat
// turns block on model calls and the span stream stays open indefinitely,
// so both run without a request deadline. Pass nil to disable it.
func NewRouter(
	chatHandler *handlers.ChatHandler,
	todoHandler *handlers.TodoHandler,
	tracesHandler *handlers.TracesHandler,
	healthHandler *handlers.HealthHandler,
	timeout func(http.Handler) http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/healthz/live", healthHandler.Liveness)
	r.Get("/healthz/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Long-running routes, no request timeout.
		r.Post("/chat", chatHandler.Chat)
		r.Get("/traces/stream", tracesHandler.StreamSpans)

		r.Group(func(r chi.Router) {
			if timeout != nil {
				r.Use(timeout)
			}

			r.Delete("/chat/{session_key}", chatHandler.ResetSession)

			// Todo CRUD.
			r.Get("/todos", todoHandler.ListTodos)
			r.Post("/todos", todoHandler.CreateTodo)
			r.Get("/todos/{id}", todoHandler.GetTodo)
			r.Patch("/todos/{id}", todoHandler.UpdateTodo)
			r.Delete("/todos/{id}", todoHandler.DeleteTodo)

			// Trace inspection.
			r.Get("/traces", tracesHandler.ListTraces)
			r.Get("/traces/{trace_id}", tracesHandler.GetTrace)
		})
	})

	return r
}
