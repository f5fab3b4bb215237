package roster

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestUpdate_AcquireRecordsSpend(t *testing.T) {
	m := Update(Map{}, "lautaro_martínez", StatusAcquired, 45)
	e, ok := m["lautaro_martínez"]
	if !ok {
		t.Fatal("entry missing after acquire")
	}
	if e.Status != StatusAcquired || e.AmountSpent != 45 {
		t.Errorf("entry = %+v, want acquired/45", e)
	}
	if e.Timestamp == "" {
		t.Error("timestamp not set")
	}
}

func TestUpdate_DoesNotMutateInput(t *testing.T) {
	orig := Map{"a": {Status: StatusUnavailable, Timestamp: "t"}}
	_ = Update(orig, "b", StatusAcquired, 10)
	_ = Update(orig, "a", StatusAvailable, 0)
	if len(orig) != 1 {
		t.Errorf("input map mutated: %+v", orig)
	}
	if _, ok := orig["a"]; !ok {
		t.Error("input map lost its entry")
	}
}

func TestUpdate_AvailableRemovesEntry(t *testing.T) {
	for _, prior := range []string{StatusAcquired, StatusUnavailable} {
		m := Update(Map{}, "id", prior, 30)
		m = Update(m, "id", StatusAvailable, 0)
		if _, ok := m["id"]; ok {
			t.Errorf("entry survived reset from %s", prior)
		}
	}
	// The "none" sentinel behaves the same.
	m := Update(Map{"id": {Status: StatusAcquired, AmountSpent: 5}}, "id", StatusNone, 0)
	if len(m) != 0 {
		t.Error("none sentinel did not remove entry")
	}
}

func TestUpdate_UnavailableCarriesNoSpend(t *testing.T) {
	m := Update(Map{}, "id", StatusUnavailable, 99) // amount ignored
	if e := m["id"]; e.AmountSpent != 0 {
		t.Errorf("unavailable entry has AmountSpent = %v", e.AmountSpent)
	}
}

func TestUpdate_AcquireNonPositiveAmountRecordsNoSpend(t *testing.T) {
	// Lenient path: the status change is applied, the spend is not.
	for _, amt := range []float64{0, -5} {
		m := Update(Map{}, "id", StatusAcquired, amt)
		e := m["id"]
		if e.Status != StatusAcquired {
			t.Errorf("amt=%v: status = %q", amt, e.Status)
		}
		if e.AmountSpent != 0 {
			t.Errorf("amt=%v: AmountSpent = %v, want 0", amt, e.AmountSpent)
		}
	}
}

func TestUpdate_ReacquireOverwrites(t *testing.T) {
	m := Update(Map{}, "id", StatusAcquired, 20)
	m = Update(m, "id", StatusAcquired, 35)
	if got := m["id"].AmountSpent; got != 35 {
		t.Errorf("AmountSpent = %v, want 35 after reacquire", got)
	}
	if got := m.Spent(); got != 35 {
		t.Errorf("Spent = %v, want 35 (no double count)", got)
	}
}

func TestSpentAndCount(t *testing.T) {
	m := Map{
		"a": {Status: StatusAcquired, AmountSpent: 40},
		"b": {Status: StatusAcquired, AmountSpent: 12},
		"c": {Status: StatusUnavailable},
	}
	if got := m.Spent(); got != 52 {
		t.Errorf("Spent = %v, want 52", got)
	}
	if got := m.CountByStatus(StatusAcquired); got != 2 {
		t.Errorf("acquired count = %d, want 2", got)
	}
	if got := m.CountByStatus(StatusUnavailable); got != 1 {
		t.Errorf("unavailable count = %d, want 1", got)
	}
}

func rawDoc(t *testing.T, v any) map[string]json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return raw
}

func TestMigrate_LegacyStrings(t *testing.T) {
	raw := rawDoc(t, map[string]any{
		"old_player": "unavailable",
		"new_player": map[string]any{
			"status": "acquired", "amountSpent": 33.0, "timestamp": "2025-08-01T10:00:00Z",
		},
	})

	m := Migrate(raw)
	if e := m["old_player"]; e.Status != StatusUnavailable || e.Timestamp == "" {
		t.Errorf("legacy entry = %+v", e)
	}
	if e := m["new_player"]; e.AmountSpent != 33 || e.Timestamp != "2025-08-01T10:00:00Z" {
		t.Errorf("object entry changed by migration: %+v", e)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	raw := rawDoc(t, map[string]any{
		"a": "acquired",
		"b": map[string]any{"status": "unavailable", "timestamp": "2025-08-01T10:00:00Z"},
	})
	once := Migrate(raw)
	twice := Migrate(rawDoc(t, once))
	// Timestamps assigned during the first pass must survive the second.
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Migrate not idempotent:\nonce  %+v\ntwice %+v", once, twice)
	}
}

func TestMigrate_SkipsGarbage(t *testing.T) {
	raw := rawDoc(t, map[string]any{
		"num":  42,
		"nope": []int{1, 2},
		"ok":   "acquired",
	})
	m := Migrate(raw)
	if len(m) != 1 {
		t.Errorf("migrated %d entries, want 1 (garbage skipped): %+v", len(m), m)
	}
}

func TestKnownStatus(t *testing.T) {
	for s, want := range map[string]bool{
		StatusAcquired: true, StatusUnavailable: true,
		StatusAvailable: false, StatusNone: false, "weird": false, "": false,
	} {
		if got := KnownStatus(s); got != want {
			t.Errorf("KnownStatus(%q) = %v, want %v", s, got, want)
		}
	}
}
