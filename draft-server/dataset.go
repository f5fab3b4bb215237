package main

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/informagico/fantavibe/internal/players"
)

type ImportDatasetArgs struct {
	PrimaryPath   string `json:"primary_path" jsonschema:"Path or URL of the primary dataset spreadsheet (required)"`
	SecondaryPath string `json:"secondary_path,omitempty" jsonschema:"Path or URL of the secondary stats spreadsheet (optional)"`
}

type RankingsArgs struct {
	Role  string `json:"role" jsonschema:"Role: goalkeeper|defender|midfielder|forward, or POR|DIF|CEN|ATT (required)"`
	Limit int    `json:"limit,omitempty" jsonschema:"Max players (default 20)"`
}

type RoleStatsArgs struct {
	Role string `json:"role" jsonschema:"Role: goalkeeper|defender|midfielder|forward, or POR|DIF|CEN|ATT (required)"`
}

type NoArgs struct{}

// parseRoleArg accepts both the canonical names and the source codes.
func parseRoleArg(raw string) (players.Role, error) {
	switch players.Role(raw) {
	case players.Goalkeeper, players.Defender, players.Midfielder, players.Forward:
		return players.Role(raw), nil
	}
	if r := players.ParseRole(raw); r != players.RoleNone {
		return r, nil
	}
	return players.RoleNone, fmt.Errorf("unknown role %q", raw)
}

func registerDatasetTools(server *mcp.Server, registry *[]toolInfo, session *Session) {
	addTool(server, registry, &mcp.Tool{
		Name:        "import_dataset",
		Description: "Import (or re-import) the player spreadsheets, replacing the current dataset",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args ImportDatasetArgs) (*mcp.CallToolResult, any, error) {
		if args.PrimaryPath == "" {
			return toolError(fmt.Errorf("primary_path is required")), nil, nil
		}
		if err := session.ImportFiles(ctx, args.PrimaryPath, args.SecondaryPath); err != nil {
			return toolError(err), nil, nil
		}
		ds := session.Dataset()
		return toolResult(map[string]any{
			"players":      len(ds.Players),
			"index_keys":   ds.Index.Len(),
			"matching_pct": players.MatchingPercentage(ds.Players),
		})
	})

	addTool(server, registry, &mcp.Tool{
		Name:        "dataset_info",
		Description: "Current dataset summary: sizes, secondary-stats match rate, per-role counts",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args NoArgs) (*mcp.CallToolResult, any, error) {
		ds, err := session.RequireDataset()
		if err != nil {
			return toolError(err), nil, nil
		}
		roles := make(map[string]int, len(players.Roles))
		for _, role := range players.Roles {
			roles[string(role)] = len(players.FilterByRole(ds.Players, role))
		}
		return toolResult(map[string]any{
			"players":      len(ds.Players),
			"index_keys":   ds.Index.Len(),
			"matching_pct": players.MatchingPercentage(ds.Players),
			"by_role":      roles,
		})
	})

	addTool(server, registry, &mcp.Tool{
		Name:        "player_rankings",
		Description: "Players of a role ranked by convenience score",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args RankingsArgs) (*mcp.CallToolResult, any, error) {
		ds, err := session.RequireDataset()
		if err != nil {
			return toolError(err), nil, nil
		}
		role, err := parseRoleArg(args.Role)
		if err != nil {
			return toolError(err), nil, nil
		}
		limit := args.Limit
		if limit <= 0 {
			limit = 20
		}
		ranked := players.SortByConvenience(players.FilterByRole(ds.Players, role))
		if len(ranked) > limit {
			ranked = ranked[:limit]
		}
		m := session.Roster()
		views := make([]playerView, 0, len(ranked))
		for _, p := range ranked {
			views = append(views, viewOf(p, m))
		}
		return toolResult(map[string]any{"role": role, "players": views})
	})

	addTool(server, registry, &mcp.Tool{
		Name:        "role_stats",
		Description: "Count and average convenience/fantasy-average for one role",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args RoleStatsArgs) (*mcp.CallToolResult, any, error) {
		ds, err := session.RequireDataset()
		if err != nil {
			return toolError(err), nil, nil
		}
		role, err := parseRoleArg(args.Role)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolResult(players.StatsForRole(ds.Players, role))
	})
}
