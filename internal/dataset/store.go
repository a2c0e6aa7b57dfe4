package dataset

import (
	"context"
	"log/slog"
	"sync"
)

// Store holds the current snapshot. The snapshot is replaced wholesale on
// each successful load; readers always see either the previous complete
// generation or the new one, never a partial model.
type Store struct {
	mu      sync.RWMutex
	current *Snapshot
}

// NewStore creates an empty store. Current returns ok=false until the first
// successful load.
func NewStore() *Store {
	return &Store{}
}

// Replace installs a new snapshot.
func (s *Store) Replace(sn *Snapshot) {
	s.mu.Lock()
	s.current = sn
	s.mu.Unlock()
}

// Current returns the active snapshot, with ok=false when no load has
// succeeded yet.
func (s *Store) Current() (*Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.current != nil
}

// Reloader serializes loads into a store. Loads are fully sequential: an
// overlapping trigger waits for the in-flight load to finish rather than
// racing it, and a completed load always replaces the snapshot wholesale.
type Reloader struct {
	loader *Loader
	store  *Store
	logger *slog.Logger

	mu       sync.Mutex
	onReload func(*Snapshot)
}

// NewReloader creates a reloader. onReload, if non-nil, is called after each
// successful snapshot replacement.
func NewReloader(loader *Loader, store *Store, logger *slog.Logger, onReload func(*Snapshot)) *Reloader {
	return &Reloader{loader: loader, store: store, logger: logger, onReload: onReload}
}

// Reload runs one load cycle. On failure the previous snapshot stays
// in place.
func (r *Reloader) Reload(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sn, err := r.loader.Load(ctx)
	if err != nil {
		return err
	}
	r.store.Replace(sn)
	r.logger.Info("dataset loaded",
		slog.Int("wins", len(sn.Wins)),
		slog.Int("days", len(sn.Days)))
	if r.onReload != nil {
		r.onReload(sn)
	}
	return nil
}
