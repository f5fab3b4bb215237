// Command draft-server exposes the fantavibe draft assistant as an MCP tool
// server over streamable HTTP: spreadsheet import, player search and
// rankings, and the roster/budget draft tracker.
package main

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/informagico/fantavibe/internal/fetch"
	"github.com/informagico/fantavibe/internal/store"
)

type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func main() {
	var (
		addr          = flag.String("addr", ":8080", "HTTP listen address")
		mcpPath       = flag.String("path", "/mcp", "HTTP path for MCP endpoint")
		stateRoot     = flag.String("state-root", "data/state", "root directory for persisted draft state")
		primaryPath   = flag.String("primary", "", "path or URL of the primary dataset spreadsheet (FPEDIA .xlsx)")
		secondaryPath = flag.String("secondary", "", "path or URL of the secondary dataset spreadsheet (FSTATS .xlsx, optional)")
		requireAuth   = flag.Bool("require-auth", false, "require API key auth via FANTAVIBE_API_KEY")
		authHeader    = flag.String("auth-header", "X-API-Key", "HTTP header to read API key from")
		devLog        = flag.Bool("dev-log", false, "human-readable logs instead of JSON")
	)
	flag.Parse()

	logger := newLogger(*devLog)
	defer logger.Sync()

	fetcher := fetch.NewClient(store.NewJSONStore(*stateRoot))
	session := NewSession(store.NewStateStore(*stateRoot, logger), fetcher, logger)
	if *primaryPath != "" {
		if err := session.ImportFiles(context.Background(), *primaryPath, *secondaryPath); err != nil {
			logger.Fatal("dataset import failed", zap.Error(err))
		}
	} else {
		logger.Warn("no dataset configured, waiting for import_dataset tool call")
	}

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fantavibe-draft",
			Version: "1.0.0",
		},
		nil,
	)

	registry := make([]toolInfo, 0, 16)
	registerDatasetTools(server, &registry, session)
	registerSearchTools(server, &registry, session)
	registerRosterTools(server, &registry, session)
	registerBudgetTools(server, &registry, session)
	registerBackupTools(server, &registry, session)

	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})

	apiKey := strings.TrimSpace(os.Getenv("FANTAVIBE_API_KEY"))
	if *requireAuth && apiKey == "" {
		logger.Fatal("FANTAVIBE_API_KEY is required (set env var or run with --require-auth=false)")
	}

	withAuth := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				next(w, r)
				return
			}
			key := strings.TrimSpace(r.Header.Get(*authHeader))
			if key == "" {
				if authz := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
					key = strings.TrimSpace(authz[7:])
				}
			}
			if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}
			next(w, r)
		}
	}

	http.HandleFunc("/health", withAuth(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}))

	http.HandleFunc("/tools", withAuth(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		b, _ := json.MarshalIndent(map[string]any{"tools": registry}, "", "  ")
		w.Write(b)
	}))

	http.HandleFunc(*mcpPath, withAuth(func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, r)
	}))

	logger.Info("MCP HTTP server listening", zap.String("addr", *addr), zap.String("path", *mcpPath))
	if err := http.ListenAndServe(*addr, nil); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(dev bool) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if dev {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return logger
}
