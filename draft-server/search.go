package main

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/informagico/fantavibe/internal/names"
	"github.com/informagico/fantavibe/internal/players"
	"github.com/informagico/fantavibe/internal/roster"
)

type SearchArgs struct {
	Query string `json:"query" jsonschema:"Player name or fragment, at least 2 characters"`
	Limit int    `json:"limit,omitempty" jsonschema:"Max results (default 50)"`
}

type PlayerLookupArgs struct {
	PlayerID string `json:"player_id" jsonschema:"Player id from a previous search (required)"`
}

// playerView is the tool-facing projection of a player plus its draft status.
type playerView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Team        string  `json:"team"`
	Role        string  `json:"role"`
	Convenience float64 `json:"convenience"`
	FantasyAvg  float64 `json:"fantasy_avg"`
	Appearances float64 `json:"appearances"`
	Score       float64 `json:"score"`
	HasStats    bool    `json:"has_stats"`
	Status      string  `json:"status"`
	AmountSpent float64 `json:"amount_spent,omitempty"`
}

// queryTooShort applies the minimum-length policy to the folded query, in
// runes. Byte length would let a single accented character through ("é" is
// two bytes) and match most of the dataset.
func queryTooShort(q string) bool {
	return utf8.RuneCountInString(names.Normalize(q)) < players.MinQueryLen
}

func viewOf(p *players.Player, m roster.Map) playerView {
	v := playerView{
		ID:          p.ID,
		Name:        p.Name,
		Team:        p.Team,
		Role:        string(p.Role),
		Convenience: p.Convenience,
		FantasyAvg:  p.FantasyAvg,
		Appearances: p.Appearances,
		Score:       p.Score,
		HasStats:    p.Secondary != nil,
		Status:      roster.StatusAvailable,
	}
	if e, ok := m[p.ID]; ok {
		v.Status = e.Status
		v.AmountSpent = e.AmountSpent
	}
	return v
}

func registerSearchTools(server *mcp.Server, registry *[]toolInfo, session *Session) {
	addTool(server, registry, &mcp.Tool{
		Name:        "search_players",
		Description: "Search players by name fragment, accent- and case-insensitive",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args SearchArgs) (*mcp.CallToolResult, any, error) {
		ds, err := session.RequireDataset()
		if err != nil {
			return toolError(err), nil, nil
		}
		// Caller-side policy: short queries match too much to be useful.
		if queryTooShort(args.Query) {
			return toolResult(map[string]any{"query": args.Query, "results": []playerView{}})
		}
		limit := args.Limit
		if limit <= 0 || limit > players.MaxSearchResults {
			limit = players.MaxSearchResults
		}

		matches := ds.Search(args.Query)
		total := len(matches)
		if len(matches) > limit {
			matches = matches[:limit]
		}
		m := session.Roster()
		views := make([]playerView, 0, len(matches))
		for _, p := range matches {
			views = append(views, viewOf(p, m))
		}
		return toolResult(map[string]any{
			"query":   args.Query,
			"total":   total,
			"results": views,
		})
	})

	addTool(server, registry, &mcp.Tool{
		Name:        "player_lookup",
		Description: "Lookup a player by id, with stats and draft status",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args PlayerLookupArgs) (*mcp.CallToolResult, any, error) {
		ds, err := session.RequireDataset()
		if err != nil {
			return toolError(err), nil, nil
		}
		if args.PlayerID == "" {
			return toolError(fmt.Errorf("player_id is required")), nil, nil
		}
		p := ds.ByID(args.PlayerID)
		if p == nil {
			return toolError(fmt.Errorf("player not found: %s", args.PlayerID)), nil, nil
		}
		out := map[string]any{"player": viewOf(p, session.Roster())}
		if p.Secondary != nil {
			out["stats"] = p.Secondary
		}
		if problems := players.Validate(p); len(problems) > 0 {
			out["data_problems"] = problems
		}
		return toolResult(out)
	})
}
