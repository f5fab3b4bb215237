package main

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/informagico/fantavibe/internal/budget"
	"github.com/informagico/fantavibe/internal/fetch"
	"github.com/informagico/fantavibe/internal/importer"
	"github.com/informagico/fantavibe/internal/players"
	"github.com/informagico/fantavibe/internal/roster"
	"github.com/informagico/fantavibe/internal/store"
)

// Session holds the live draft state: the imported dataset, the roster map,
// and the total budget. The original app ran single-threaded in a browser
// tab; tool calls arrive concurrently here, so every access serializes on mu.
// Roster and budget mutations persist through the state store on commit.
type Session struct {
	mu sync.Mutex

	dataset *players.Dataset
	rosterM roster.Map
	total   float64

	state   *store.StateStore
	fetcher *fetch.Client
	log     *zap.Logger
}

// NewSession loads persisted state and wires the dataset fetcher; fetcher and
// log may be nil (no URL imports, silent logging).
func NewSession(state *store.StateStore, fetcher *fetch.Client, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		rosterM: state.LoadRoster(),
		total:   state.LoadBudget(),
		state:   state,
		fetcher: fetcher,
		log:     log,
	}
}

// ImportRows replaces the dataset with a freshly normalized one. The previous
// player set and index are discarded wholesale; roster entries pointing at
// players that no longer exist stay persisted but drop out of joins.
func (s *Session) ImportRows(primary, secondary []players.Row) *players.Dataset {
	ds := players.Normalize(primary, secondary)
	s.mu.Lock()
	s.dataset = ds
	s.mu.Unlock()
	s.log.Info("dataset imported",
		zap.Int("players", len(ds.Players)),
		zap.Int("index_keys", ds.Index.Len()),
		zap.Int("matching_pct", players.MatchingPercentage(ds.Players)))
	return ds
}

// ImportFiles loads the primary (and optional secondary) spreadsheets and
// imports them. Each source may be a local path or an http(s) URL; URLs go
// through the caching fetch client, like the original app pulling its
// published analysis file.
func (s *Session) ImportFiles(ctx context.Context, primarySrc, secondarySrc string) error {
	primary, err := s.loadRows(ctx, primarySrc)
	if err != nil {
		return err
	}
	var secondary []players.Row
	if secondarySrc != "" {
		if secondary, err = s.loadRows(ctx, secondarySrc); err != nil {
			return err
		}
	}
	s.ImportRows(primary, secondary)
	return nil
}

func (s *Session) loadRows(ctx context.Context, src string) ([]players.Row, error) {
	if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
		return importer.LoadFile(src)
	}
	if s.fetcher == nil {
		return nil, fmt.Errorf("no fetch client configured for %s", src)
	}
	u, err := url.Parse(src)
	if err != nil {
		return nil, err
	}
	name := path.Base(u.Path)
	if name == "" || name == "/" || name == "." {
		name = "dataset.xlsx"
	}
	b, err := s.fetcher.FetchDataset(ctx, src, path.Join("datasets", name), false)
	if err != nil {
		return nil, err
	}
	return importer.Load(bytes.NewReader(b))
}

// Dataset returns the current dataset, nil before the first import.
func (s *Session) Dataset() *players.Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dataset
}

// RequireDataset is Dataset for tools that cannot run without an import.
func (s *Session) RequireDataset() (*players.Dataset, error) {
	if ds := s.Dataset(); ds != nil {
		return ds, nil
	}
	return nil, fmt.Errorf("no dataset loaded: import a spreadsheet first")
}

// Roster returns a snapshot of the roster map.
func (s *Session) Roster() roster.Map {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rosterM.Clone()
}

// BudgetStats computes the current aggregate figures.
func (s *Session) BudgetStats() budget.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return budget.Compute(s.total, s.rosterM)
}

// TotalBudget returns the configured budget.
func (s *Session) TotalBudget() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// SetTotalBudget updates and persists the total budget.
func (s *Session) SetTotalBudget(total float64) error {
	if total <= 0 {
		return fmt.Errorf("budget must be positive, got %v", total)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.total = total
	s.state.SaveBudget(total)
	return nil
}

// CommitRoster installs a new roster map and persists it. The save happens
// under the lock so disk writes land in commit order.
func (s *Session) CommitRoster(m roster.Map) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rosterM = m
	s.state.SaveRoster(m)
}

// Mutate runs fn against a snapshot of the roster under the lock and, when fn
// succeeds, commits and persists the returned map. Keeps the
// read-validate-commit-save sequence atomic with respect to other tool calls:
// saving under the lock means a later commit can never be overwritten on disk
// by an earlier one's write.
func (s *Session) Mutate(fn func(m roster.Map, st budget.Stats) (roster.Map, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := fn(s.rosterM.Clone(), budget.Compute(s.total, s.rosterM))
	if err != nil {
		return err
	}
	s.rosterM = next
	s.state.SaveRoster(next)
	return nil
}

// ResetRoster wipes every tracked status, in memory and on disk.
func (s *Session) ResetRoster() {
	s.mu.Lock()
	s.rosterM = roster.Map{}
	s.state.ClearRoster()
	s.mu.Unlock()
	s.log.Info("roster reset")
}
