// Package derive implements pure, stateless derivations over the normalized
// collections: tag frequencies, date ranges, busiest days, month grouping
// and heat bucketing. Functions never mutate their inputs and are safe to
// recompute on every request.
package derive

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/rr-ventures/website-aiusecases/internal/coerce"
	"github.com/rr-ventures/website-aiusecases/internal/models"
)

// Derivation window sizes.
const (
	TopTagsHeadline = 6   // headline stats
	TopTagsChips    = 18  // selectable filter chips
	BusiestTopN     = 5   // busiest-days list
	HeatWindowDays  = 120 // heat-strip window
)

// UnknownMonthKey buckets days whose date does not yield a YYYY-MM key.
// Unreachable through normalization (undated days are dropped) but the
// grouping functions handle it without panicking.
const UnknownMonthKey = "unknown"

// TagCount pairs a tag with the number of wins carrying it.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// TagCounts counts, for each tag, how many wins carry it. A win carrying the
// same tag twice still contributes a single increment for that tag.
func TagCounts(wins []models.Win) map[string]int {
	counts := make(map[string]int)
	for _, w := range wins {
		seen := make(map[string]struct{}, len(w.Tags))
		for _, t := range w.Tags {
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			counts[t]++
		}
	}
	return counts
}

// TopTags returns the n most frequent tags, descending by count with ties
// broken by ascending tag name.
func TopTags(counts map[string]int, n int) []TagCount {
	out := make([]TagCount, 0, len(counts))
	for tag, count := range counts {
		out = append(out, TagCount{Tag: tag, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// DateRange returns the minimum DateStart and the maximum of DateEnd (or
// DateStart when no end is set) across all wins. Both are empty when no win
// carries a resolvable date.
func DateRange(wins []models.Win) (minDate, maxDate string) {
	var minEpoch, maxEpoch int64
	for _, w := range wins {
		if s, ok := coerce.EpochOK(w.DateStart); ok {
			if minDate == "" || s < minEpoch {
				minEpoch, minDate = s, w.DateStart
			}
		}
		end := w.DateEnd
		if end == "" {
			end = w.DateStart
		}
		if e, ok := coerce.EpochOK(end); ok {
			if maxDate == "" || e > maxEpoch {
				maxEpoch, maxDate = e, end
			}
		}
	}
	return minDate, maxDate
}

// DayActivity summarizes one day's activity volume.
type DayActivity struct {
	Date    string `json:"date"`
	Count   int    `json:"count"`
	Summary string `json:"summary"`
}

// BusiestDay returns the day with the most items, ties broken by the most
// recent date. Nil when there are no days or no day has any items.
func BusiestDay(days []models.Day) *DayActivity {
	ranked := BusiestDays(days, 1)
	if len(ranked) == 0 || ranked[0].Count == 0 {
		return nil
	}
	top := ranked[0]
	return &top
}

// BusiestDays returns the top n days by item count, ties broken by the most
// recent date.
func BusiestDays(days []models.Day, n int) []DayActivity {
	out := make([]DayActivity, 0, len(days))
	for _, d := range days {
		out = append(out, DayActivity{Date: d.Date, Count: d.ItemCount(), Summary: d.DaySummary})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return coerce.Epoch(out[i].Date) > coerce.Epoch(out[j].Date)
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// MonthKey reduces an ISO date to its YYYY-MM bucket key, or UnknownMonthKey
// when the date does not carry one.
func MonthKey(date string) string {
	if len(date) >= 7 && isDigits(date[:4]) && date[4] == '-' && isDigits(date[5:7]) {
		return date[:7]
	}
	return UnknownMonthKey
}

// MonthLabel renders a bucket key as a human-readable month name.
func MonthLabel(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return "Unknown month"
	}
	return t.Format("January 2006")
}

// MonthGroup is one month's worth of timeline days.
type MonthGroup struct {
	Key       string       `json:"key"`
	Label     string       `json:"label"`
	Days      []models.Day `json:"days"`
	ItemTotal int          `json:"item_total"`
}

// Months buckets days by month, most recent month first. Days keep their
// incoming order within a bucket. The unknown bucket, if ever produced,
// sorts ahead of dated ones.
func Months(days []models.Day) []MonthGroup {
	groups := make(map[string]*MonthGroup)
	var keys []string
	for _, d := range days {
		key := MonthKey(d.Date)
		g, ok := groups[key]
		if !ok {
			g = &MonthGroup{Key: key, Label: MonthLabel(key)}
			groups[key] = g
			keys = append(keys, key)
		}
		g.Days = append(g.Days, d)
		g.ItemTotal += d.ItemCount()
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	out := make([]MonthGroup, 0, len(keys))
	for _, key := range keys {
		out = append(out, *groups[key])
	}
	return out
}

// HeatCell is one day's intensity bucket for the heat-strip visualization.
type HeatCell struct {
	Date      string `json:"date"`
	Count     int    `json:"count"`
	Intensity int    `json:"intensity"` // 0..5
}

// HeatStrip is the heat-strip view: cells in ascending date order plus the
// literal number of days covered, used in the strip label.
type HeatStrip struct {
	Cells      []HeatCell `json:"cells"`
	WindowDays int        `json:"window_days"`
}

// Heat buckets the most recent window days into 0..5 intensity levels
// relative to the busiest day inside the window.
func Heat(days []models.Day, window int) HeatStrip {
	asc := make([]models.Day, len(days))
	copy(asc, days)
	sort.SliceStable(asc, func(i, j int) bool {
		return coerce.Epoch(asc[i].Date) < coerce.Epoch(asc[j].Date)
	})
	if window >= 0 && len(asc) > window {
		asc = asc[len(asc)-window:]
	}

	maxCount := 1
	for _, d := range asc {
		if n := d.ItemCount(); n > maxCount {
			maxCount = n
		}
	}

	cells := make([]HeatCell, len(asc))
	for i, d := range asc {
		ratio := float64(d.ItemCount()) / float64(maxCount)
		intensity := int(coerce.Clamp(math.Ceil(ratio*5), 0, 5))
		cells[i] = HeatCell{Date: d.Date, Count: d.ItemCount(), Intensity: intensity}
	}
	return HeatStrip{Cells: cells, WindowDays: len(cells)}
}

// Highlights derives up to three "why this is impressive" bullets from a
// win's existing fields. Nothing is invented: every bullet only counts what
// the record already documents.
func Highlights(w models.Win) []string {
	var bullets []string
	if n := len(w.ApproachLines); n > 0 {
		bullets = append(bullets, fmt.Sprintf("Clear, reusable workflow (%d step%s documented).", n, plural(n)))
	}
	if n := len(w.EvidenceSnippets); n > 0 {
		bullets = append(bullets, fmt.Sprintf("Backed by evidence snippets (%d captured).", n))
	}
	if n := len(w.SourceRefs); n > 0 {
		bullets = append(bullets, fmt.Sprintf("Traceable to source references (%d linked).", n))
	}
	if len(bullets) == 0 && len(w.Tags) > 0 {
		n := len(w.Tags)
		bullets = append(bullets, fmt.Sprintf("Well-scoped use-case tagged across %d area%s.", n, plural(n)))
	}
	if len(bullets) > 3 {
		bullets = bullets[:3]
	}
	return bullets
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
