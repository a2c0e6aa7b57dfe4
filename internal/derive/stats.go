package derive

import "github.com/rr-ventures/website-aiusecases/internal/models"

// Stats is the headline statistics bundle recomputed on every data load.
type Stats struct {
	TotalWins     int          `json:"total_wins"`
	TimelineCount int          `json:"timeline_count"`
	TopTags       []TagCount   `json:"top_tags"`
	DateRangeMin  string       `json:"date_range_min,omitempty"`
	DateRangeMax  string       `json:"date_range_max,omitempty"`
	BusiestDay    *DayActivity `json:"busiest_day,omitempty"`
}

// Compute derives the full stats bundle from the normalized collections.
func Compute(wins []models.Win, days []models.Day) Stats {
	minDate, maxDate := DateRange(wins)
	return Stats{
		TotalWins:     len(wins),
		TimelineCount: len(days),
		TopTags:       TopTags(TagCounts(wins), TopTagsHeadline),
		DateRangeMin:  minDate,
		DateRangeMax:  maxDate,
		BusiestDay:    BusiestDay(days),
	}
}
