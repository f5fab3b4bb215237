package players

import (
	"fmt"
	"math"
	"sort"
)

// FilterByRole returns the players with the given role, in dataset order.
func FilterByRole(ps []*Player, role Role) []*Player {
	var out []*Player
	for _, p := range ps {
		if p.Role == role {
			out = append(out, p)
		}
	}
	return out
}

// SortByConvenience returns a new slice sorted by convenience score
// descending. Ties keep dataset order.
func SortByConvenience(ps []*Player) []*Player {
	out := make([]*Player, len(ps))
	copy(out, ps)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Convenience > out[j].Convenience
	})
	return out
}

// RoleStats summarizes one role of the dataset.
type RoleStats struct {
	Role           Role    `json:"role"`
	Count          int     `json:"count"`
	AvgConvenience float64 `json:"avg_convenience"`
	AvgFantasyAvg  float64 `json:"avg_fantasy_avg"`
}

// StatsForRole computes count and averages for a role. Averages are rounded
// to two decimals like the source app displayed them; an empty role reads as
// all zeros.
func StatsForRole(ps []*Player, role Role) RoleStats {
	rolePlayers := FilterByRole(ps, role)
	st := RoleStats{Role: role, Count: len(rolePlayers)}
	if st.Count == 0 {
		return st
	}
	var conv, favg float64
	for _, p := range rolePlayers {
		conv += p.Convenience
		favg += p.FantasyAvg
	}
	st.AvgConvenience = round2(conv / float64(st.Count))
	st.AvgFantasyAvg = round2(favg / float64(st.Count))
	return st
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// MatchingPercentage reports the share of players with a matched secondary
// row, 0–100.
func MatchingPercentage(ps []*Player) int {
	if len(ps) == 0 {
		return 0
	}
	matched := 0
	for _, p := range ps {
		if p.Secondary != nil {
			matched++
		}
	}
	return int(math.Round(float64(matched) / float64(len(ps)) * 100))
}

// Validate checks the fields a row must carry to be a meaningful player.
// Players with problems are still imported; this only reports them.
func Validate(p *Player) []string {
	var errs []string
	if p.Name == "" {
		errs = append(errs, "missing name")
	}
	if p.Role == RoleNone {
		errs = append(errs, fmt.Sprintf("unknown role %q", p.RoleRaw))
	}
	if p.Team == "" {
		errs = append(errs, "missing team")
	}
	return errs
}
