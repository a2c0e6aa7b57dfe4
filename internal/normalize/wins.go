// Package normalize converts raw, loosely-schematized JSON payloads into the
// canonical domain model. Normalization never fails: malformed fields
// degrade to documented defaults and unparseable records are dropped, so
// that partially-authored content still renders.
package normalize

import (
	"fmt"
	"strings"

	"github.com/rr-ventures/website-aiusecases/internal/coerce"
	"github.com/rr-ventures/website-aiusecases/internal/models"
)

// DefaultWinTitle substitutes for a missing or blank title.
const DefaultWinTitle = "Untitled win"

// Wins converts the raw wins payload into canonical Win entities, preserving
// input order. Non-array input yields an empty result. Unknown fields are
// ignored.
func Wins(raw any) []models.Win {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}

	wins := make([]models.Win, 0, len(list))
	for _, entry := range list {
		// Non-object entries degrade to an all-defaults record; lookups on
		// a nil map below return nil.
		obj, _ := entry.(map[string]any)

		id := strings.TrimSpace(coerce.String(obj["id"]))
		if id == "" {
			id = fmt.Sprintf("win_%d", len(wins)+1)
		}
		title := strings.TrimSpace(coerce.String(obj["title"]))
		if title == "" {
			title = DefaultWinTitle
		}

		dateStart := coerce.ISODate(obj["date_start"])
		if dateStart == "" {
			dateStart = coerce.ISODate(obj["date"])
		}

		tags := coerce.StringList(obj["tags"])
		problem := strings.TrimSpace(coerce.String(obj["problem"]))

		w := models.Win{
			ID:                id,
			Title:             title,
			DateStart:         dateStart,
			DateEnd:           coerce.ISODate(obj["date_end"]),
			Tags:              tags,
			SourceRefs:        coerce.StringList(obj["source_refs"]),
			WowScore:          coerce.Clamp(coerce.Number(obj["wow_score"]), 0, 10),
			Problem:           problem,
			Approach:          obj["approach"],
			ApproachLines:     coerce.Lines(obj["approach"]),
			EvidenceSnippets:  coerce.StringList(obj["evidence_snippets"]),
			PromptTemplate:    strings.TrimSpace(coerce.String(obj["prompt_template"])),
			ShortScript:       strings.TrimSpace(coerce.String(obj["short_script"])),
			RedactionsApplied: coerce.Truthy(obj["redactions_applied"]),
		}
		w.SearchIndex = searchIndex(title, problem, tags)
		w.SortEpoch = coerce.Epoch(dateStart)
		wins = append(wins, w)
	}
	return wins
}

// searchIndex builds the lowercase haystack used by substring filtering.
func searchIndex(title, problem string, tags []string) string {
	parts := []string{title, problem, strings.Join(tags, " ")}
	return strings.ToLower(strings.Join(parts, " · "))
}
