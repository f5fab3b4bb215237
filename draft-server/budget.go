package main

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type SetBudgetArgs struct {
	Total float64 `json:"total" jsonschema:"New total budget in currency units, must be positive (required)"`
}

func registerBudgetTools(server *mcp.Server, registry *[]toolInfo, session *Session) {
	addTool(server, registry, &mcp.Tool{
		Name:        "budget_stats",
		Description: "Total budget, spend, remaining (may be negative), utilization and per-player average",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args NoArgs) (*mcp.CallToolResult, any, error) {
		return toolResult(session.BudgetStats())
	})

	addTool(server, registry, &mcp.Tool{
		Name:        "set_budget",
		Description: "Change the total auction budget",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args SetBudgetArgs) (*mcp.CallToolResult, any, error) {
		if err := session.SetTotalBudget(args.Total); err != nil {
			return toolError(err), nil, nil
		}
		return toolResult(session.BudgetStats())
	})
}
