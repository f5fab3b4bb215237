package main

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/informagico/fantavibe/internal/store"
)

type ImportBackupArgs struct {
	Document string `json:"document" jsonschema:"A backup document previously produced by export_backup, as a JSON string (required)"`
}

func registerBackupTools(server *mcp.Server, registry *[]toolInfo, session *Session) {
	addTool(server, registry, &mcp.Tool{
		Name:        "export_backup",
		Description: "Export the roster state as a downloadable JSON backup document",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args NoArgs) (*mcp.CallToolResult, any, error) {
		b, err := store.Export(session.Roster(), session.TotalBudget())
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSONBytes(b), nil, nil
	})

	addTool(server, registry, &mcp.Tool{
		Name:        "import_backup",
		Description: "Restore roster state from a backup document (all-or-nothing validation)",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args ImportBackupArgs) (*mcp.CallToolResult, any, error) {
		m, err := store.Import([]byte(args.Document))
		if err != nil {
			if errors.Is(err, store.ErrMalformedImport) {
				// Existing state untouched on rejection.
				return toolRejection("MalformedImport", err.Error())
			}
			return toolError(err), nil, nil
		}
		session.CommitRoster(m)
		return toolResult(map[string]any{"ok": true, "players_tracked": len(m)})
	})
}
