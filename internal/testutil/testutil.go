// Package testutil provides shared fixtures for dataset and API tests.
package testutil

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// SampleWinsJSON is a small wins payload exercising the main coercions.
func SampleWinsJSON() []byte {
	return []byte(`[
		{
			"id": "ship-migration",
			"title": "Shipped the migration",
			"date_start": "2024-02-01",
			"date_end": "2024-02-03",
			"tags": ["backend", "sql"],
			"source_refs": ["ref-1"],
			"wow_score": 9,
			"problem": "Legacy schema drift",
			"approach": "- audit schema\n- write migration",
			"evidence_snippets": ["before/after timings"],
			"prompt_template": "You are a migration assistant.",
			"short_script": "We moved 40 tables in a day.",
			"redactions_applied": true
		},
		{
			"title": "Triaged the incident backlog",
			"date_start": "2024-03-10",
			"tags": ["ops"],
			"wow_score": 9
		},
		{
			"date": "2024-01-15",
			"tags": "backend",
			"wow_score": "5"
		}
	]`)
}

// SampleTimelineJSON is a map-shaped timeline payload with mixed value
// shapes, including an entry that normalization must drop.
func SampleTimelineJSON() []byte {
	return []byte(`{
		"2024-02-01": {"day_summary": "migration day", "items": ["dump prod", "run migration", "verify"]},
		"2024-02-02": {"summary": "cleanup", "entries": [{"text": "drop old tables"}]},
		"2024-01-15": "quiet day",
		"bad-date": "ignored"
	}`)
}

// TempDataFiles writes the sample payloads into a temp dir and returns their
// paths.
func TempDataFiles(t *testing.T) (winsPath, timelinePath string) {
	t.Helper()
	return WriteDataFiles(t, SampleWinsJSON(), SampleTimelineJSON())
}

// WriteDataFiles writes arbitrary payload bytes into a temp dir and returns
// their paths.
func WriteDataFiles(t *testing.T, wins, timeline []byte) (winsPath, timelinePath string) {
	t.Helper()
	dir := t.TempDir()
	winsPath = filepath.Join(dir, "big_wins.json")
	timelinePath = filepath.Join(dir, "daily_timeline.json")
	if err := os.WriteFile(winsPath, wins, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(timelinePath, timeline, 0o644); err != nil {
		t.Fatal(err)
	}
	return winsPath, timelinePath
}

// QuietLogger returns a logger that only surfaces errors, keeping test
// output readable.
func QuietLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}
