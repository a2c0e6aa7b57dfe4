// Package query filters and sorts the normalized win collection. All
// operations return new slices and never mutate their input.
package query

import (
	"sort"
	"strings"

	"github.com/rr-ventures/website-aiusecases/internal/models"
)

// Sort policies.
const (
	SortWowDesc = "wow_desc" // default: wow score desc, ties by newest first
	SortNewest  = "newest"
	SortOldest  = "oldest"
)

// Query is the presentation layer's current filter state.
type Query struct {
	Text         string
	RequiredTags []string
	Sort         string
}

// FilterAndSort applies the text and tag filters, then sorts by the query's
// policy. Unknown sort values fall back to SortWowDesc. An empty result is a
// valid outcome, not an error.
func FilterAndSort(wins []models.Win, q Query) []models.Win {
	text := strings.ToLower(strings.TrimSpace(q.Text))

	out := make([]models.Win, 0, len(wins))
	for _, w := range wins {
		if text != "" && !strings.Contains(w.SearchIndex, text) {
			continue
		}
		if !hasAllTags(w, q.RequiredTags) {
			continue
		}
		out = append(out, w)
	}

	switch q.Sort {
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].SortEpoch > out[j].SortEpoch
		})
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].SortEpoch < out[j].SortEpoch
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].WowScore != out[j].WowScore {
				return out[i].WowScore > out[j].WowScore
			}
			return out[i].SortEpoch > out[j].SortEpoch
		})
	}
	return out
}

// hasAllTags reports whether the win's tag set is a superset of required
// (AND semantics). An empty requirement matches everything.
func hasAllTags(w models.Win, required []string) bool {
	if len(required) == 0 {
		return true
	}
	set := make(map[string]struct{}, len(w.Tags))
	for _, t := range w.Tags {
		set[t] = struct{}{}
	}
	for _, t := range required {
		if _, ok := set[t]; !ok {
			return false
		}
	}
	return true
}
