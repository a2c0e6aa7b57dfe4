package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rr-ventures/website-aiusecases/internal/derive"
	"github.com/rr-ventures/website-aiusecases/internal/models"
	"github.com/rr-ventures/website-aiusecases/internal/normalize"
)

// Snapshot is one fully-normalized dataset generation. Snapshots are
// immutable once built; a reload produces a new one rather than patching
// the old.
type Snapshot struct {
	Wins     []models.Win
	Days     []models.Day
	Stats    derive.Stats
	LoadedAt time.Time
}

// Loader fetches and normalizes the two payloads.
type Loader struct {
	wins     Source
	timeline Source
}

// NewLoader creates a loader over the wins and timeline sources.
func NewLoader(wins, timeline Source) *Loader {
	return &Loader{wins: wins, timeline: timeline}
}

// Load fetches both payloads concurrently and builds a snapshot. The load is
// all-or-nothing: if either fetch or JSON decode fails, no snapshot is
// produced. Malformed records inside a well-formed payload never fail the
// load; normalization degrades them instead.
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	var rawWins, rawTimeline any

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return fetchJSON(gCtx, l.wins, &rawWins)
	})
	g.Go(func() error {
		return fetchJSON(gCtx, l.timeline, &rawTimeline)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	wins := normalize.Wins(rawWins)
	days := normalize.Timeline(rawTimeline)
	return &Snapshot{
		Wins:     wins,
		Days:     days,
		Stats:    derive.Compute(wins, days),
		LoadedAt: time.Now(),
	}, nil
}

func fetchJSON(ctx context.Context, src Source, out *any) error {
	data, err := src.Fetch(ctx)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("dataset: decode %s: %w", src.Location(), err)
	}
	return nil
}
