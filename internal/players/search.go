package players

import (
	"strings"

	"github.com/informagico/fantavibe/internal/names"
)

// MinQueryLen is the policy minimum for a search term; shorter queries match
// far too broadly to be useful. Enforced by callers, not by Search itself.
const MinQueryLen = 2

// MaxSearchResults is the display cap applied by callers.
const MaxSearchResults = 50

// Search returns every player whose normalized name contains the normalized
// query as a substring. With an index the candidate buckets are unioned in
// index order; without one it falls back to a linear scan in dataset order.
// Both paths return the same set. The full match set is returned; capping
// is the caller's concern.
func (ds *Dataset) Search(query string) []*Player {
	q := names.Normalize(query)
	if q == "" || ds == nil {
		return nil
	}

	if ds.Index != nil {
		ids := ds.Index.Lookup(q)
		out := make([]*Player, 0, len(ids))
		for _, id := range ids {
			if p := ds.byID[id]; p != nil {
				out = append(out, p)
			}
		}
		return out
	}

	var out []*Player
	for _, p := range ds.Players {
		if strings.Contains(names.Normalize(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}
