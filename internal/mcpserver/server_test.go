package mcpserver

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/rr-ventures/website-aiusecases/internal/api"
	"github.com/rr-ventures/website-aiusecases/internal/dataset"
	"github.com/rr-ventures/website-aiusecases/internal/models"
	"github.com/rr-ventures/website-aiusecases/internal/testutil"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	winsPath, timelinePath := testutil.TempDataFiles(t)
	loader := dataset.NewLoader(dataset.NewSource(winsPath), dataset.NewSource(timelinePath))
	snap, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	store := dataset.NewStore()
	store.Replace(snap)
	return New(api.NewService(store))
}

func callTool(t *testing.T, srv *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Name = name
	req.Params.Arguments = args

	// mcp-go doesn't expose a direct "call tool" test helper, so we call the
	// handler functions directly.
	var result *mcp.CallToolResult
	var err error

	switch name {
	case "search_wins":
		result, err = srv.searchWins(ctx, req)
	case "get_win":
		result, err = srv.getWin(ctx, req)
	case "portfolio_stats":
		result, err = srv.portfolioStats(ctx, req)
	case "list_timeline":
		result, err = srv.listTimeline(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}

	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestSearchWinsAll(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "search_wins", map[string]interface{}{})
	if r.IsError {
		t.Fatalf("unexpected error: %s", resultText(r))
	}

	var wins []models.Win
	if err := json.Unmarshal([]byte(resultText(r)), &wins); err != nil {
		t.Fatal(err)
	}
	if len(wins) != 3 {
		t.Fatalf("wins = %d, want 3", len(wins))
	}
}

func TestSearchWinsFiltered(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "search_wins", map[string]interface{}{
		"query": "migration",
		"tags":  "backend, sql",
	})
	var wins []models.Win
	if err := json.Unmarshal([]byte(resultText(r)), &wins); err != nil {
		t.Fatal(err)
	}
	if len(wins) != 1 || wins[0].ID != "ship-migration" {
		t.Fatalf("wins = %+v, want single ship-migration", wins)
	}
}

func TestSearchWinsNoMatch(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "search_wins", map[string]interface{}{"query": "zzz-nope"})
	if got := strings.TrimSpace(resultText(r)); got != "[]" {
		t.Fatalf("result = %q, want empty array", got)
	}
}

func TestGetWin(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "get_win", map[string]interface{}{"id": "ship-migration"})
	if r.IsError {
		t.Fatalf("unexpected error: %s", resultText(r))
	}
	if !strings.Contains(resultText(r), "Shipped the migration") {
		t.Errorf("missing title in %q", resultText(r))
	}
	if !strings.Contains(resultText(r), "highlights") {
		t.Error("expected derived highlights in detail payload")
	}
}

func TestGetWinMissingID(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "get_win", map[string]interface{}{})
	if !r.IsError {
		t.Fatal("expected error for missing id argument")
	}
}

func TestGetWinNotFound(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "get_win", map[string]interface{}{"id": "nope"})
	if !r.IsError {
		t.Fatal("expected error for unknown id")
	}
	if !strings.Contains(resultText(r), "not found") {
		t.Errorf("error = %q", resultText(r))
	}
}

func TestPortfolioStats(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "portfolio_stats", map[string]interface{}{})
	if r.IsError {
		t.Fatalf("unexpected error: %s", resultText(r))
	}
	if !strings.Contains(resultText(r), `"total_wins": 3`) {
		t.Errorf("stats = %q", resultText(r))
	}
}

func TestListTimelineByMonth(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "list_timeline", map[string]interface{}{"month": "2024-01"})
	var days []models.Day
	if err := json.Unmarshal([]byte(resultText(r)), &days); err != nil {
		t.Fatal(err)
	}
	if len(days) != 1 || days[0].Date != "2024-01-15" {
		t.Fatalf("days = %+v, want single 2024-01-15", days)
	}

	r = callTool(t, srv, "list_timeline", map[string]interface{}{"month": "1999-01"})
	var none []models.Day
	_ = json.Unmarshal([]byte(resultText(r)), &none)
	if len(none) != 0 {
		t.Fatalf("days = %+v, want none", none)
	}
}

func TestToolsOnUnloadedStore(t *testing.T) {
	srv := New(api.NewService(dataset.NewStore()))

	for _, name := range []string{"search_wins", "portfolio_stats", "list_timeline"} {
		r := callTool(t, srv, name, map[string]interface{}{})
		if !r.IsError {
			t.Errorf("%s: expected not-loaded error", name)
		}
	}
}
