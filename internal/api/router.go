package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates a chi router with all API routes mounted.
// sseHandler, if non-nil, is mounted at GET /events.
func NewRouter(svc *Service, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()

	// Wins.
	r.Get("/wins", h.ListWins)
	r.Get("/wins/{id}", h.GetWin)

	// Stats.
	r.Get("/stats", h.GetStats)

	// Timeline.
	r.Get("/timeline", h.ListTimeline)
	r.Get("/timeline/months", h.ListMonths)
	r.Get("/timeline/busiest", h.ListBusiest)
	r.Get("/timeline/heat", h.GetHeat)

	// SSE endpoint.
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
