package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/informagico/fantavibe/internal/roster"
)

// BackupVersion is the schema version written into exported documents.
const BackupVersion = "1.0"

// ErrMalformedImport rejects a backup document that fails validation.
// The whole document is refused; existing state stays untouched.
var ErrMalformedImport = errors.New("malformed backup document")

// Backup is the human-downloadable export document.
type Backup struct {
	Version   string        `json:"version"`
	Timestamp string        `json:"timestamp"`
	Data      roster.Map    `json:"data"`
	Summary   BackupSummary `json:"summary"`
}

type BackupSummary struct {
	PlayersTracked int     `json:"players_tracked"`
	Acquired       int     `json:"acquired"`
	Unavailable    int     `json:"unavailable"`
	TotalSpent     float64 `json:"total_spent"`
	TotalBudget    float64 `json:"total_budget"`
}

// Export serializes the roster map into a backup document.
func Export(m roster.Map, totalBudget float64) ([]byte, error) {
	doc := Backup{
		Version:   BackupVersion,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Data:      m,
		Summary: BackupSummary{
			PlayersTracked: len(m),
			Acquired:       m.CountByStatus(roster.StatusAcquired),
			Unavailable:    m.CountByStatus(roster.StatusUnavailable),
			TotalSpent:     m.Spent(),
			TotalBudget:    totalBudget,
		},
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Import parses and validates a backup document. Validation is
// all-or-nothing: a single entry with an unrecognized status rejects the
// entire document.
func Import(b []byte) (roster.Map, error) {
	var doc Backup
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedImport, err)
	}
	if doc.Data == nil {
		return nil, fmt.Errorf("%w: missing data section", ErrMalformedImport)
	}
	for id, e := range doc.Data {
		if !roster.KnownStatus(e.Status) {
			return nil, fmt.Errorf("%w: entry %q has status %q", ErrMalformedImport, id, e.Status)
		}
	}
	return doc.Data, nil
}
