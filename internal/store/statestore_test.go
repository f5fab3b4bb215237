package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/informagico/fantavibe/internal/budget"
	"github.com/informagico/fantavibe/internal/roster"
)

func newTestStore(t *testing.T) *StateStore {
	t.Helper()
	return NewStateStore(t.TempDir(), nil)
}

func TestRoster_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	m := roster.Map{
		"lautaro_martínez": {Status: roster.StatusAcquired, AmountSpent: 45, Timestamp: "2025-08-01T10:00:00Z"},
		"mario_rui":        {Status: roster.StatusUnavailable, Timestamp: "2025-08-01T11:00:00Z"},
	}

	s.SaveRoster(m)
	got := s.LoadRoster()
	if !reflect.DeepEqual(got, m) {
		t.Errorf("round trip:\nsaved  %+v\nloaded %+v", m, got)
	}
}

func TestRoster_LoadAbsentIsEmpty(t *testing.T) {
	s := newTestStore(t)
	got := s.LoadRoster()
	if got == nil || len(got) != 0 {
		t.Errorf("LoadRoster on empty root = %+v, want empty map", got)
	}
}

func TestRoster_LoadCorruptFailsOpen(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, RosterKey), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewStateStore(dir, nil)
	if got := s.LoadRoster(); len(got) != 0 {
		t.Errorf("corrupt state loaded as %+v, want empty", got)
	}
}

func TestRoster_LoadMigratesLegacyStrings(t *testing.T) {
	dir := t.TempDir()
	legacy := []byte(`{"vecchio":"unavailable","nuovo":{"status":"acquired","amountSpent":12,"timestamp":"2025-08-01T10:00:00Z"}}`)
	if err := os.WriteFile(filepath.Join(dir, RosterKey), legacy, 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewStateStore(dir, nil)
	m := s.LoadRoster()
	if e := m["vecchio"]; e.Status != roster.StatusUnavailable || e.Timestamp == "" {
		t.Errorf("legacy entry not migrated: %+v", e)
	}
	if e := m["nuovo"]; e.AmountSpent != 12 {
		t.Errorf("object entry damaged: %+v", e)
	}
}

func TestRoster_SaveSwallowsWriteFailure(t *testing.T) {
	// Unwritable root: Save must log-and-continue, never panic or error out.
	s := NewStateStore(string([]byte{0}), nil)
	s.SaveRoster(roster.Map{"a": {Status: roster.StatusAcquired}})
}

func TestRoster_Clear(t *testing.T) {
	s := newTestStore(t)
	s.SaveRoster(roster.Map{"a": {Status: roster.StatusUnavailable, Timestamp: "t"}})
	s.ClearRoster()
	if got := s.LoadRoster(); len(got) != 0 {
		t.Errorf("roster after clear = %+v", got)
	}
	s.ClearRoster() // idempotent
}

func TestBudget_DefaultAndRoundTrip(t *testing.T) {
	s := newTestStore(t)
	if got := s.LoadBudget(); got != budget.DefaultTotal {
		t.Errorf("default budget = %v, want %v", got, budget.DefaultTotal)
	}
	s.SaveBudget(650)
	if got := s.LoadBudget(); got != 650 {
		t.Errorf("budget after save = %v, want 650", got)
	}
}

func TestBudget_AcceptsWrappedNumber(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, BudgetKey), []byte(`"425"`), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewStateStore(dir, nil)
	if got := s.LoadBudget(); got != 425 {
		t.Errorf("wrapped budget = %v, want 425", got)
	}
}

func TestBudget_GarbageFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, BudgetKey), []byte(`{"x":1}`), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewStateStore(dir, nil)
	if got := s.LoadBudget(); got != budget.DefaultTotal {
		t.Errorf("garbage budget = %v, want default", got)
	}
}
