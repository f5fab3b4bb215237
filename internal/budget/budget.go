// Package budget derives aggregate spend figures from the roster map and the
// current player set. Everything here is recomputed on demand; nothing is
// stored, so the figures can never drift from the roster.
package budget

import (
	"math"
	"sort"

	"github.com/informagico/fantavibe/internal/players"
	"github.com/informagico/fantavibe/internal/roster"
)

// DefaultTotal is the starting auction budget.
const DefaultTotal = 500

// Stats is the aggregate budget picture.
type Stats struct {
	TotalBudget       float64 `json:"total_budget"`
	TotalSpent        float64 `json:"total_spent"`
	RemainingBudget   float64 `json:"remaining_budget"`
	PlayersCount      int     `json:"players_count"`
	BudgetUtilization int     `json:"budget_utilization"`     // rounded percent, 0 when budget is 0
	AvgSpentPerPlayer float64 `json:"avg_spent_per_player"`   // 0 when no players acquired
}

// Compute derives Stats from the roster map. RemainingBudget may go negative;
// over-budget is representable and rendered by callers, never clamped here.
func Compute(totalBudget float64, m roster.Map) Stats {
	st := Stats{
		TotalBudget:  totalBudget,
		TotalSpent:   m.Spent(),
		PlayersCount: m.CountByStatus(roster.StatusAcquired),
	}
	st.RemainingBudget = st.TotalBudget - st.TotalSpent
	if totalBudget != 0 {
		st.BudgetUtilization = int(math.Round(st.TotalSpent / totalBudget * 100))
	}
	if st.PlayersCount > 0 {
		st.AvgSpentPerPlayer = st.TotalSpent / float64(st.PlayersCount)
	}
	return st
}

// AcquiredPlayer is one acquired entry joined against the current player set.
type AcquiredPlayer struct {
	Player    *players.Player `json:"player"`
	Spent     float64         `json:"spent"`
	Timestamp string          `json:"timestamp"`
}

// RoleGroup is the acquisitions of one role.
type RoleGroup struct {
	Role    players.Role     `json:"role"`
	Count   int              `json:"count"`
	Spent   float64          `json:"spent"`
	Players []AcquiredPlayer `json:"players"`
}

// RoleBreakdown joins the acquired entries against the current dataset and
// groups them by role, players sorted by spend descending within each group.
// Entries whose player ID is not in the dataset (e.g. after switching
// spreadsheets) are silently excluded, not an error.
func RoleBreakdown(ds *players.Dataset, m roster.Map) []RoleGroup {
	groups := make(map[players.Role]*RoleGroup)
	for _, role := range players.Roles {
		groups[role] = &RoleGroup{Role: role}
	}

	for id, e := range m {
		if e.Status != roster.StatusAcquired {
			continue
		}
		p := ds.ByID(id)
		if p == nil {
			continue
		}
		g, ok := groups[p.Role]
		if !ok {
			// Unknown role rows still count somewhere visible.
			g = &RoleGroup{Role: p.Role}
			groups[p.Role] = g
		}
		g.Count++
		g.Spent += e.AmountSpent
		g.Players = append(g.Players, AcquiredPlayer{Player: p, Spent: e.AmountSpent, Timestamp: e.Timestamp})
	}

	out := make([]RoleGroup, 0, len(groups))
	for _, role := range players.Roles {
		g := groups[role]
		sortBySpend(g.Players)
		out = append(out, *g)
		delete(groups, role)
	}
	// Any leftover group (unknown role) goes last.
	for _, g := range groups {
		sortBySpend(g.Players)
		out = append(out, *g)
	}
	return out
}

func sortBySpend(ps []AcquiredPlayer) {
	sort.SliceStable(ps, func(i, j int) bool { return ps[i].Spent > ps[j].Spent })
}
