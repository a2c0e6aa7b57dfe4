package api

import (
	"github.com/rr-ventures/website-aiusecases/internal/derive"
	"github.com/rr-ventures/website-aiusecases/internal/models"
)

// WinListResponse wraps a filtered win listing.
type WinListResponse struct {
	Wins  []models.Win `json:"wins" validate:"required"`
	Total int          `json:"total" example:"12" validate:"required"`
}

// WinDetail is the full win response with derived highlight bullets.
type WinDetail struct {
	models.Win
	Highlights []string `json:"highlights"`
}

// StatsView extends the aggregate stats with the wider tag-chip list.
type StatsView struct {
	derive.Stats
	Chips []derive.TagCount `json:"chips"`
}

// TimelineResponse wraps the full timeline listing.
type TimelineResponse struct {
	Days []models.Day `json:"days" validate:"required"`
}

// MonthsResponse wraps the month-grouped timeline.
type MonthsResponse struct {
	Months []derive.MonthGroup `json:"months" validate:"required"`
}

// BusiestResponse wraps the busiest-day ranking.
type BusiestResponse struct {
	Days []derive.DayActivity `json:"days" validate:"required"`
}
