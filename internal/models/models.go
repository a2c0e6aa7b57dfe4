// Package models defines the canonical domain types for the portfolio.
package models

// Win is one documented AI use-case success record, normalized from a
// loosely-typed JSON object. All fields are totalized: absent or malformed
// input degrades to the documented default rather than failing.
type Win struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	DateStart         string   `json:"date_start,omitempty"` // ISO YYYY-MM-DD, "" when absent
	DateEnd           string   `json:"date_end,omitempty"`   // does NOT default to DateStart
	Tags              []string `json:"tags"`
	SourceRefs        []string `json:"source_refs"`
	WowScore          float64  `json:"wow_score"` // clamped to [0, 10]
	Problem           string   `json:"problem"`
	Approach          any      `json:"approach,omitempty"` // raw payload value, retained verbatim
	ApproachLines     []string `json:"approach_lines"`
	EvidenceSnippets  []string `json:"evidence_snippets"`
	PromptTemplate    string   `json:"prompt_template"`
	ShortScript       string   `json:"short_script"`
	RedactionsApplied bool     `json:"redactions_applied"`

	// Precomputed at normalization time so filtering and sorting stay O(1)
	// per entry.
	SearchIndex string `json:"-"`
	SortEpoch   int64  `json:"-"`
}

// Day is one calendar day of logged activity. Rows without a parseable date
// are dropped during normalization, so Date is always set.
type Day struct {
	Date       string   `json:"date"`
	DaySummary string   `json:"day_summary"`
	Items      []Item   `json:"items"`
	SourceRefs []string `json:"source_refs"`
}

// Item is a single activity entry within a Day. Text is never blank after
// normalization.
type Item struct {
	Text string `json:"text"`
}

// ItemCount returns the number of activity items logged for the day.
func (d Day) ItemCount() int {
	return len(d.Items)
}
