package normalize

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/rr-ventures/website-aiusecases/internal/coerce"
	"github.com/rr-ventures/website-aiusecases/internal/models"
)

// Timeline converts the raw timeline payload into Day entities sorted
// descending by date (most recent first, ties stable on collection order).
//
// Two payload shapes are accepted: a list of day objects each carrying a
// date field, and a map keyed by date string. Entries whose date does not
// parse are skipped silently.
func Timeline(raw any) []models.Day {
	var days []models.Day

	switch v := raw.(type) {
	case []any:
		for _, entry := range v {
			obj, _ := entry.(map[string]any)
			date := coerce.ISODate(obj["date"])
			if date == "" {
				continue
			}
			days = append(days, models.Day{
				Date:       date,
				DaySummary: strings.TrimSpace(coerce.String(obj["day_summary"])),
				Items:      Items(obj["items"]),
				SourceRefs: coerce.StringList(obj["source_refs"]),
			})
		}
	case map[string]any:
		for key, val := range v {
			date := coerce.ISODate(key)
			if date == "" {
				continue
			}
			days = append(days, mapShapeDay(date, val))
		}
	}

	sort.SliceStable(days, func(i, j int) bool {
		return coerce.Epoch(days[i].Date) > coerce.Epoch(days[j].Date)
	})
	return days
}

// mapShapeDay resolves one value of the map-shaped payload. A plain string
// is the day summary with zero items; an object carries day_summary/summary
// and an items source resolved from items, then items_list, then entries,
// then the whole value itself.
func mapShapeDay(date string, val any) models.Day {
	if s, ok := val.(string); ok {
		return models.Day{Date: date, DaySummary: strings.TrimSpace(s)}
	}

	obj, _ := val.(map[string]any)
	summary := coerce.String(obj["day_summary"])
	if summary == "" {
		summary = coerce.String(obj["summary"])
	}

	itemsSrc := val
	for _, key := range []string{"items", "items_list", "entries"} {
		if src, ok := obj[key]; ok && src != nil {
			itemsSrc = src
			break
		}
	}

	return models.Day{
		Date:       date,
		DaySummary: strings.TrimSpace(summary),
		Items:      Items(itemsSrc),
		SourceRefs: coerce.StringList(obj["source_refs"]),
	}
}

// itemTextKeys is the priority order for extracting item text from objects.
var itemTextKeys = []string{"text", "item", "title", "summary", "description"}

// Items coerces an items source into activity items. Accepted shapes: a list
// of strings or objects, a single string, or a single object. Anything else
// yields zero items; blank items are dropped.
func Items(src any) []models.Item {
	var out []models.Item
	switch v := src.(type) {
	case []any:
		for _, it := range v {
			switch x := it.(type) {
			case nil:
				continue
			case string:
				out = appendItem(out, x)
			case map[string]any:
				out = appendItem(out, objectItemText(x))
			default:
				out = appendItem(out, coerce.String(x))
			}
		}
	case string:
		out = appendItem(out, v)
	case map[string]any:
		out = appendItem(out, structuralDump(v))
	}
	return out
}

// objectItemText extracts item text from the first present key in priority
// order, falling back to a structural dump when the extracted text is blank.
func objectItemText(obj map[string]any) string {
	for _, key := range itemTextKeys {
		if v, ok := obj[key]; ok && v != nil {
			if text := strings.TrimSpace(coerce.String(v)); text != "" {
				return text
			}
			break
		}
	}
	return structuralDump(obj)
}

// structuralDump renders an object as compact JSON so no authored content is
// silently dropped.
func structuralDump(obj map[string]any) string {
	b, err := json.Marshal(obj)
	if err != nil {
		return ""
	}
	return string(b)
}

func appendItem(items []models.Item, text string) []models.Item {
	text = strings.TrimSpace(text)
	if text == "" {
		return items
	}
	return append(items, models.Item{Text: text})
}
