package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/informagico/fantavibe/internal/budget"
	"github.com/informagico/fantavibe/internal/draft"
	"github.com/informagico/fantavibe/internal/roster"
)

type AcquireArgs struct {
	PlayerID string  `json:"player_id" jsonschema:"Player id to acquire (required)"`
	Amount   float64 `json:"amount" jsonschema:"Bid in currency units, 1-999 (required)"`
}

type StatusArgs struct {
	PlayerID string `json:"player_id" jsonschema:"Player id (required)"`
	Status   string `json:"status" jsonschema:"New status: available|unavailable (available removes the entry)"`
}

func registerRosterTools(server *mcp.Server, registry *[]toolInfo, session *Session) {
	addTool(server, registry, &mcp.Tool{
		Name:        "acquire_player",
		Description: "Acquire a player for a bid amount, validated against the remaining budget",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args AcquireArgs) (*mcp.CallToolResult, any, error) {
		ds, err := session.RequireDataset()
		if err != nil {
			return toolError(err), nil, nil
		}
		p := ds.ByID(args.PlayerID)
		if p == nil {
			return toolError(fmt.Errorf("player not found: %s", args.PlayerID)), nil, nil
		}

		err = session.Mutate(func(m roster.Map, st budget.Stats) (roster.Map, error) {
			return draft.ConfirmAcquisition(p, args.Amount, st, m)
		})
		switch {
		case errors.Is(err, draft.ErrInvalidAmount):
			return toolRejection("InvalidAmount",
				fmt.Sprintf("bid must be a positive number up to %d, got %v", draft.MaxBid, args.Amount))
		case errors.Is(err, draft.ErrInsufficientBudget):
			st := session.BudgetStats()
			return toolRejection("InsufficientBudget",
				fmt.Sprintf("bid %v exceeds remaining budget %v", args.Amount, st.RemainingBudget))
		case err != nil:
			return toolError(err), nil, nil
		}

		st := session.BudgetStats()
		return toolResult(map[string]any{
			"ok":               true,
			"player":           viewOf(p, session.Roster()),
			"remaining_budget": st.RemainingBudget,
		})
	})

	addTool(server, registry, &mcp.Tool{
		Name:        "update_player_status",
		Description: "Mark a player unavailable (taken by another manager) or reset it to available",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args StatusArgs) (*mcp.CallToolResult, any, error) {
		if args.PlayerID == "" {
			return toolError(fmt.Errorf("player_id is required")), nil, nil
		}
		switch args.Status {
		case roster.StatusUnavailable, roster.StatusAvailable, roster.StatusNone:
		default:
			return toolError(fmt.Errorf("unknown status %q (acquisitions go through acquire_player)", args.Status)), nil, nil
		}

		err := session.Mutate(func(m roster.Map, st budget.Stats) (roster.Map, error) {
			return roster.Update(m, args.PlayerID, args.Status, 0), nil
		})
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolResult(map[string]any{"ok": true, "player_id": args.PlayerID, "status": args.Status})
	})

	addTool(server, registry, &mcp.Tool{
		Name:        "roster_summary",
		Description: "Acquired players grouped by role with per-role spend",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args NoArgs) (*mcp.CallToolResult, any, error) {
		ds, err := session.RequireDataset()
		if err != nil {
			return toolError(err), nil, nil
		}
		m := session.Roster()
		return toolResult(map[string]any{
			"budget": session.BudgetStats(),
			"roles":  budget.RoleBreakdown(ds, m),
			"counts": map[string]int{
				"acquired":    m.CountByStatus(roster.StatusAcquired),
				"unavailable": m.CountByStatus(roster.StatusUnavailable),
			},
		})
	})

	addTool(server, registry, &mcp.Tool{
		Name:        "reset_roster",
		Description: "Wipe every tracked player status and start the draft over",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args NoArgs) (*mcp.CallToolResult, any, error) {
		session.ResetRoster()
		return toolResult(map[string]any{"ok": true})
	})
}
