package store

import (
	"encoding/json"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/informagico/fantavibe/internal/budget"
	"github.com/informagico/fantavibe/internal/roster"
)

// Persisted keys. The names carry over from the original localStorage keys so
// a migrated state directory stays recognizable.
const (
	RosterKey = "fantacalcio_player_status.json"
	BudgetKey = "fantacalcio_budget.json"
)

// StateStore persists the roster map and the total budget. Reads fail open
// (absent or corrupt state yields an empty roster / default budget) and
// writes log-and-swallow: a full disk must never block the draft.
//
// Known consistency gap, inherited from the original: two processes writing
// the same state root race last-write-wins. No versioning, no locking.
type StateStore struct {
	js  *JSONStore
	log *zap.Logger
}

func NewStateStore(root string, log *zap.Logger) *StateStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &StateStore{js: NewJSONStore(root), log: log}
}

// LoadRoster reads and migrates the persisted roster map. Absence or a parse
// failure returns an empty map, never an error.
func (s *StateStore) LoadRoster() roster.Map {
	b, err := s.js.ReadRaw(RosterKey)
	if err != nil {
		return roster.Map{}
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		s.log.Warn("roster state unreadable, starting empty", zap.Error(err))
		return roster.Map{}
	}
	return roster.Migrate(raw)
}

// SaveRoster serializes and writes the roster map. Failures are logged and
// swallowed.
func (s *StateStore) SaveRoster(m roster.Map) {
	b, err := json.Marshal(m)
	if err != nil {
		s.log.Error("roster state marshal failed", zap.Error(err))
		return
	}
	if err := s.js.WriteRaw(RosterKey, b, true); err != nil {
		s.log.Error("roster state write failed", zap.Error(err))
		return
	}
	s.log.Debug("roster state saved", zap.Int("players_tracked", len(m)))
}

// ClearRoster removes the persisted roster map.
func (s *StateStore) ClearRoster() {
	if err := s.js.Delete(RosterKey); err != nil {
		s.log.Error("roster state delete failed", zap.Error(err))
	}
}

// LoadBudget reads the persisted total budget. Accepts a plain number or a
// JSON-wrapped ("500") number; anything else falls back to the default.
func (s *StateStore) LoadBudget() float64 {
	b, err := s.js.ReadRaw(BudgetKey)
	if err != nil {
		return budget.DefaultTotal
	}

	var f float64
	if err := json.Unmarshal(b, &f); err == nil && f > 0 {
		return f
	}
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(str), 64); err == nil && f > 0 {
			return f
		}
	}
	s.log.Warn("budget state unreadable, using default",
		zap.Float64("default", budget.DefaultTotal))
	return budget.DefaultTotal
}

// SaveBudget persists the total budget. Failures are logged and swallowed.
func (s *StateStore) SaveBudget(total float64) {
	b, err := json.Marshal(total)
	if err != nil {
		s.log.Error("budget state marshal failed", zap.Error(err))
		return
	}
	if err := s.js.WriteRaw(BudgetKey, b, false); err != nil {
		s.log.Error("budget state write failed", zap.Error(err))
	}
}
