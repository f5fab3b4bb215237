// Package roster models the drafted-player status map: which players have
// been acquired (and for how much) or marked unavailable during the auction.
// "available" is the absence of an entry, never a stored state.
package roster

import (
	"encoding/json"
	"time"
)

// Player statuses. StatusAvailable and StatusNone are accepted by Update as
// "remove the entry"; only acquired and unavailable are ever persisted.
const (
	StatusAcquired    = "acquired"
	StatusUnavailable = "unavailable"
	StatusAvailable   = "available"
	StatusNone        = "none"
)

// Entry is the persisted state for one tracked player.
// AmountSpent is present only when Status is acquired.
type Entry struct {
	Status      string  `json:"status"`
	AmountSpent float64 `json:"amountSpent,omitempty"`
	Timestamp   string  `json:"timestamp"`
}

// Map is the full roster state keyed by player ID.
type Map map[string]Entry

// now is swappable in tests.
var now = func() string { return time.Now().UTC().Format(time.RFC3339) }

// Clone returns a shallow copy. Entries are values, so the copy is
// independent.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for id, e := range m {
		out[id] = e
	}
	return out
}

// Spent sums AmountSpent over the acquired entries.
func (m Map) Spent() float64 {
	var total float64
	for _, e := range m {
		if e.Status == StatusAcquired {
			total += e.AmountSpent
		}
	}
	return total
}

// CountByStatus reports how many entries carry the given status.
func (m Map) CountByStatus(status string) int {
	n := 0
	for _, e := range m {
		if e.Status == status {
			n++
		}
	}
	return n
}

// Update returns a new map with the player's status applied; the input map is
// never mutated. StatusAvailable (or the StatusNone sentinel) removes the
// entry entirely. Any other status creates or overwrites the entry with a
// fresh timestamp. AmountSpent is recorded only for an acquisition with a
// positive amount: a non-positive amount still applies the status change but
// records no spend (the acquisition workflow rejects those upstream; direct
// status calls keep the lenient behavior of the original app).
func Update(m Map, playerID, status string, amount float64) Map {
	out := m.Clone()

	if status == StatusAvailable || status == StatusNone {
		delete(out, playerID)
		return out
	}

	e := Entry{Status: status, Timestamp: now()}
	if status == StatusAcquired && amount > 0 {
		e.AmountSpent = amount
	}
	out[playerID] = e
	return out
}

// Migrate upgrades a raw persisted document to the current schema. Legacy
// entries were stored as a bare status string; they become object-shaped with
// a migration-time timestamp. Already-migrated entries pass through intact,
// so the function is idempotent. Entries that parse as neither shape are
// skipped: load fails open rather than rejecting the whole document.
func Migrate(raw map[string]json.RawMessage) Map {
	out := make(Map, len(raw))
	for id, msg := range raw {
		var e Entry
		if err := json.Unmarshal(msg, &e); err == nil && e.Status != "" {
			out[id] = e
			continue
		}
		var legacy string
		if err := json.Unmarshal(msg, &legacy); err == nil && legacy != "" {
			out[id] = Entry{Status: legacy, Timestamp: now()}
		}
	}
	return out
}

// KnownStatus reports whether a status string is one the schema recognizes.
// Used by backup import validation.
func KnownStatus(s string) bool {
	return s == StatusAcquired || s == StatusUnavailable
}
