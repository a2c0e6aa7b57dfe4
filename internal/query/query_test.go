package query

import (
	"testing"

	"github.com/rr-ventures/website-aiusecases/internal/coerce"
	"github.com/rr-ventures/website-aiusecases/internal/models"
)

func datedWin(id string, wow float64, dateStart string, tags ...string) models.Win {
	return models.Win{
		ID:          id,
		Title:       id,
		DateStart:   dateStart,
		Tags:        tags,
		WowScore:    wow,
		SearchIndex: id,
		SortEpoch:   coerce.Epoch(dateStart),
	}
}

func ids(wins []models.Win) []string {
	out := make([]string, len(wins))
	for i, w := range wins {
		out[i] = w.ID
	}
	return out
}

func TestFilterAndSort_WowDescTieBrokenByDate(t *testing.T) {
	wins := []models.Win{
		datedWin("feb", 9, "2024-02-01"),
		datedWin("mar", 9, "2024-03-01"),
		datedWin("jan", 5, "2024-01-01"),
	}
	got := ids(FilterAndSort(wins, Query{Sort: SortWowDesc}))
	want := []string{"mar", "feb", "jan"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestFilterAndSort_NewestOldest(t *testing.T) {
	wins := []models.Win{
		datedWin("a", 1, "2024-01-01"),
		datedWin("b", 1, "2024-03-01"),
		datedWin("undated", 1, ""),
	}
	newest := ids(FilterAndSort(wins, Query{Sort: SortNewest}))
	if newest[0] != "b" || newest[2] != "undated" {
		t.Errorf("newest order = %v", newest)
	}
	oldest := ids(FilterAndSort(wins, Query{Sort: SortOldest}))
	if oldest[0] != "undated" || oldest[2] != "b" {
		t.Errorf("oldest order = %v", oldest)
	}
}

func TestFilterAndSort_UnknownSortFallsBack(t *testing.T) {
	wins := []models.Win{
		datedWin("low", 2, "2024-01-01"),
		datedWin("high", 8, "2024-01-01"),
	}
	got := ids(FilterAndSort(wins, Query{Sort: "sideways"}))
	if got[0] != "high" {
		t.Errorf("order = %v, want wow_desc fallback", got)
	}
}

func TestFilterAndSort_TextMatchesSearchIndex(t *testing.T) {
	wins := []models.Win{
		{ID: "a", SearchIndex: "refactor the billing pipeline · devops"},
		{ID: "b", SearchIndex: "write a press release"},
	}
	got := FilterAndSort(wins, Query{Text: "  BILLING "})
	if len(got) != 1 || got[0].ID != "a" {
		t.Errorf("got %v", ids(got))
	}
	// Blank text matches everything.
	if got := FilterAndSort(wins, Query{Text: "   "}); len(got) != 2 {
		t.Errorf("blank text filtered to %v", ids(got))
	}
}

func TestFilterAndSort_RequiredTagsConjunctive(t *testing.T) {
	wins := []models.Win{
		datedWin("both", 1, "", "a", "b"),
		datedWin("only-a", 1, "", "a"),
	}
	got := FilterAndSort(wins, Query{RequiredTags: []string{"a", "b"}})
	if len(got) != 1 || got[0].ID != "both" {
		t.Errorf("got %v, want [both]", ids(got))
	}
}

func TestFilterAndSort_EmptyResultIsValid(t *testing.T) {
	wins := []models.Win{datedWin("a", 1, "")}
	got := FilterAndSort(wins, Query{Text: "no such thing"})
	if len(got) != 0 {
		t.Errorf("got %v", ids(got))
	}
}

func TestFilterAndSort_DoesNotMutateInput(t *testing.T) {
	wins := []models.Win{
		datedWin("a", 1, "2024-01-01"),
		datedWin("b", 9, "2024-02-01"),
	}
	_ = FilterAndSort(wins, Query{Sort: SortWowDesc})
	if wins[0].ID != "a" || wins[1].ID != "b" {
		t.Fatalf("input mutated: %v", ids(wins))
	}
}
