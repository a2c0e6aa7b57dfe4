package api

import (
	"github.com/rr-ventures/website-aiusecases/internal/apperr"
	"github.com/rr-ventures/website-aiusecases/internal/dataset"
	"github.com/rr-ventures/website-aiusecases/internal/derive"
	"github.com/rr-ventures/website-aiusecases/internal/models"
	"github.com/rr-ventures/website-aiusecases/internal/query"
)

// Service answers read queries against the latest dataset snapshot.
type Service struct {
	store *dataset.Store
}

// NewService creates a new Service backed by the given snapshot store.
func NewService(store *dataset.Store) *Service {
	return &Service{store: store}
}

func (s *Service) snapshot() (*dataset.Snapshot, error) {
	snap, ok := s.store.Current()
	if !ok {
		return nil, apperr.ErrNotLoaded
	}
	return snap, nil
}

// Wins returns wins matching q, plus the total count before filtering.
func (s *Service) Wins(q query.Query) ([]models.Win, int, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, 0, err
	}
	return query.FilterAndSort(snap.Wins, q), len(snap.Wins), nil
}

// Win returns a single win by ID with its derived highlight bullets.
func (s *Service) Win(id string) (*WinDetail, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	for i := range snap.Wins {
		if snap.Wins[i].ID == id {
			return &WinDetail{
				Win:        snap.Wins[i],
				Highlights: derive.Highlights(snap.Wins[i]),
			}, nil
		}
	}
	return nil, apperr.ErrNotFound
}

// Stats returns aggregate stats plus the wider tag-chip list.
func (s *Service) Stats() (*StatsView, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	counts := derive.TagCounts(snap.Wins)
	return &StatsView{
		Stats: snap.Stats,
		Chips: derive.TopTags(counts, derive.TopTagsChips),
	}, nil
}

// Timeline returns all timeline days, newest first.
func (s *Service) Timeline() ([]models.Day, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return snap.Days, nil
}

// Months returns timeline days grouped by month, newest month first.
func (s *Service) Months() ([]derive.MonthGroup, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return derive.Months(snap.Days), nil
}

// Busiest returns the top days by item count.
func (s *Service) Busiest() ([]derive.DayActivity, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return derive.BusiestDays(snap.Days, derive.BusiestTopN), nil
}

// Heat returns the recent-activity heat strip.
func (s *Service) Heat() (*derive.HeatStrip, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	strip := derive.Heat(snap.Days, derive.HeatWindowDays)
	return &strip, nil
}

// Ready reports whether a snapshot is available to serve.
func (s *Service) Ready() bool {
	_, ok := s.store.Current()
	return ok
}
