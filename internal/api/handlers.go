package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rr-ventures/website-aiusecases/internal/apperr"
	"github.com/rr-ventures/website-aiusecases/internal/derive"
	"github.com/rr-ventures/website-aiusecases/internal/models"
	"github.com/rr-ventures/website-aiusecases/internal/query"
)

// Handler holds API route handlers.
type Handler struct {
	svc *Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// parseTags splits a comma-separated tag filter, dropping empty entries.
func parseTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, apperr.ErrNotLoaded):
		writeJSON(w, http.StatusServiceUnavailable, errorBody("dataset not loaded"))
	case errors.Is(err, apperr.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
	default:
		slog.Error(op+" failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
	}
}

// ListWins handles GET /api/wins.
//
//	@Summary		List wins with optional search, tag filter and sort
//	@Tags			wins
//	@Produce		json
//	@Param			q		query		string	false	"Free-text search"
//	@Param			tags	query		string	false	"Comma-separated tags (all required)"
//	@Param			sort	query		string	false	"Sort order"	Enums(wow_desc, newest, oldest)
//	@Success		200		{object}	WinListResponse
//	@Failure		503		{object}	errResponse
//	@Router			/wins [get]
func (h *Handler) ListWins(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q := query.Query{
		Text:         params.Get("q"),
		RequiredTags: parseTags(params.Get("tags")),
		Sort:         params.Get("sort"),
	}

	wins, total, err := h.svc.Wins(q)
	if err != nil {
		h.writeServiceError(w, err, "list wins")
		return
	}
	if wins == nil {
		wins = []models.Win{}
	}
	writeJSON(w, http.StatusOK, WinListResponse{Wins: wins, Total: total})
}

// GetWin handles GET /api/wins/{id}.
//
//	@Summary		Get a single win by ID
//	@Tags			wins
//	@Produce		json
//	@Param			id	path		string	true	"Win ID"
//	@Success		200	{object}	WinDetail
//	@Failure		404	{object}	errResponse
//	@Router			/wins/{id} [get]
func (h *Handler) GetWin(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("id is required"))
		return
	}
	win, err := h.svc.Win(id)
	if err != nil {
		h.writeServiceError(w, err, "get win")
		return
	}
	writeJSON(w, http.StatusOK, win)
}

// GetStats handles GET /api/stats.
//
//	@Summary		Aggregate portfolio stats
//	@Tags			stats
//	@Produce		json
//	@Success		200	{object}	StatsView
//	@Failure		503	{object}	errResponse
//	@Router			/stats [get]
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats()
	if err != nil {
		h.writeServiceError(w, err, "get stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// ListTimeline handles GET /api/timeline.
//
//	@Summary		Full daily timeline, newest first
//	@Tags			timeline
//	@Produce		json
//	@Success		200	{object}	TimelineResponse
//	@Failure		503	{object}	errResponse
//	@Router			/timeline [get]
func (h *Handler) ListTimeline(w http.ResponseWriter, r *http.Request) {
	days, err := h.svc.Timeline()
	if err != nil {
		h.writeServiceError(w, err, "list timeline")
		return
	}
	if days == nil {
		days = []models.Day{}
	}
	writeJSON(w, http.StatusOK, TimelineResponse{Days: days})
}

// ListMonths handles GET /api/timeline/months.
//
//	@Summary		Timeline grouped by month
//	@Tags			timeline
//	@Produce		json
//	@Success		200	{object}	MonthsResponse
//	@Failure		503	{object}	errResponse
//	@Router			/timeline/months [get]
func (h *Handler) ListMonths(w http.ResponseWriter, r *http.Request) {
	months, err := h.svc.Months()
	if err != nil {
		h.writeServiceError(w, err, "list months")
		return
	}
	if months == nil {
		months = []derive.MonthGroup{}
	}
	writeJSON(w, http.StatusOK, MonthsResponse{Months: months})
}

// ListBusiest handles GET /api/timeline/busiest.
//
//	@Summary		Busiest days by item count
//	@Tags			timeline
//	@Produce		json
//	@Success		200	{object}	BusiestResponse
//	@Failure		503	{object}	errResponse
//	@Router			/timeline/busiest [get]
func (h *Handler) ListBusiest(w http.ResponseWriter, r *http.Request) {
	days, err := h.svc.Busiest()
	if err != nil {
		h.writeServiceError(w, err, "list busiest")
		return
	}
	if days == nil {
		days = []derive.DayActivity{}
	}
	writeJSON(w, http.StatusOK, BusiestResponse{Days: days})
}

// GetHeat handles GET /api/timeline/heat.
//
//	@Summary		Recent-activity heat strip
//	@Tags			timeline
//	@Produce		json
//	@Success		200	{object}	derive.HeatStrip
//	@Failure		503	{object}	errResponse
//	@Router			/timeline/heat [get]
func (h *Handler) GetHeat(w http.ResponseWriter, r *http.Request) {
	strip, err := h.svc.Heat()
	if err != nil {
		h.writeServiceError(w, err, "get heat")
		return
	}
	writeJSON(w, http.StatusOK, strip)
}
