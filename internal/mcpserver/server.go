// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes portfolio tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rr-ventures/website-aiusecases/internal/api"
	"github.com/rr-ventures/website-aiusecases/internal/apperr"
	"github.com/rr-ventures/website-aiusecases/internal/derive"
	"github.com/rr-ventures/website-aiusecases/internal/models"
	"github.com/rr-ventures/website-aiusecases/internal/query"
)

// Server wraps the MCP server with portfolio tools.
type Server struct {
	mcp *server.MCPServer
	svc *api.Service
}

// New creates a new MCP server with all portfolio tools registered.
func New(svc *api.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"AI Use-Cases Portfolio",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("search_wins",
		mcp.WithDescription("Search documented AI wins by free text, tags and sort order."),
		mcp.WithString("query", mcp.Description("Free-text search over titles, problems and tags")),
		mcp.WithString("tags", mcp.Description("Comma-separated tags; a win must carry all of them")),
		mcp.WithString("sort", mcp.Description("Sort order: wow_desc (default), newest or oldest")),
	), s.searchWins)

	s.mcp.AddTool(mcp.NewTool("get_win",
		mcp.WithDescription("Read the full record of a single win, including derived highlights."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Win ID (e.g. ship-migration or win_3)")),
	), s.getWin)

	s.mcp.AddTool(mcp.NewTool("portfolio_stats",
		mcp.WithDescription("Aggregate portfolio stats: totals, top tags, date range, busiest day."),
	), s.portfolioStats)

	s.mcp.AddTool(mcp.NewTool("list_timeline",
		mcp.WithDescription("List daily timeline entries, newest first, optionally for one month."),
		mcp.WithString("month", mcp.Description("Optional month filter in YYYY-MM form")),
	), s.listTimeline)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func toolError(err error) *mcp.CallToolResult {
	if errors.Is(err, apperr.ErrNotLoaded) {
		return mcp.NewToolResultError("dataset not loaded yet, try again shortly")
	}
	return mcp.NewToolResultError(err.Error())
}

func (s *Server) searchWins(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	q := query.Query{
		Text: req.GetString("query", ""),
		Sort: req.GetString("sort", ""),
	}
	if raw := req.GetString("tags", ""); raw != "" {
		q.RequiredTags = splitTags(raw)
	}

	wins, _, err := s.svc.Wins(q)
	if err != nil {
		return toolError(err), nil
	}
	if wins == nil {
		wins = []models.Win{}
	}
	out, _ := json.MarshalIndent(wins, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getWin(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	win, err := s.svc.Win(id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("not found: %s", id)), nil
		}
		return toolError(err), nil
	}
	out, _ := json.MarshalIndent(win, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) portfolioStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := s.svc.Stats()
	if err != nil {
		return toolError(err), nil
	}
	out, _ := json.MarshalIndent(stats, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) listTimeline(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	days, err := s.svc.Timeline()
	if err != nil {
		return toolError(err), nil
	}

	if month := req.GetString("month", ""); month != "" {
		var filtered []models.Day
		for _, d := range days {
			if derive.MonthKey(d.Date) == month {
				filtered = append(filtered, d)
			}
		}
		days = filtered
	}
	if days == nil {
		days = []models.Day{}
	}

	out, _ := json.MarshalIndent(days, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func splitTags(raw string) []string {
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
