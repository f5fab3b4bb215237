// Package players converts raw spreadsheet rows into a canonical player set
// and builds the inverted name index used for search. Both live here because
// they are two outputs of the same pass over the normalized names.
package players

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/informagico/fantavibe/internal/names"
)

// idNamespace seeds the deterministic fallback IDs for nameless rows.
// Content-derived IDs keep re-imports reproducible; a random token here would
// make the roster map drift across sessions.
var idNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8") // uuid.NameSpaceDNS

// Player is one normalized player. Immutable once built for a given import;
// re-importing replaces the whole set.
type Player struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Team        string  `json:"team"`
	RoleRaw     string  `json:"role_raw"`
	Role        Role    `json:"role"`
	Convenience float64 `json:"convenience"`
	FantasyAvg  float64 `json:"fantasy_avg"`
	Appearances float64 `json:"appearances"`
	Score       float64 `json:"score"`
	// Secondary is the matched row from the second dataset (FSTATS),
	// nil when no row matched by normalized name.
	Secondary Row `json:"secondary,omitempty"`
}

// Dataset is the output of one import: the player set plus its search index.
// Discarded and rebuilt wholesale on re-import.
type Dataset struct {
	Players []*Player
	Index   *SearchIndex

	byID map[string]*Player
}

// Normalize converts raw rows into the canonical player set and builds the
// search index in the same pass. Rows are never dropped: missing fields
// degrade to ""/0. Secondary rows are matched by normalized-name equality,
// first match wins; unmatched secondary rows are silently unused.
func Normalize(primary, secondary []Row) *Dataset {
	ds := &Dataset{
		Players: make([]*Player, 0, len(primary)),
		Index:   NewSearchIndex(),
		byID:    make(map[string]*Player, len(primary)),
	}

	secondaryByName := make(map[string]Row, len(secondary))
	for _, row := range secondary {
		key := names.Normalize(row.Str(ColName))
		if key == "" {
			continue
		}
		if _, ok := secondaryByName[key]; !ok {
			secondaryByName[key] = row
		}
	}

	for i, row := range primary {
		name := row.Str(ColName)
		normalized := names.Normalize(name)

		p := &Player{
			ID:          playerID(name, i, row),
			Name:        name,
			Team:        row.Str(ColTeam),
			RoleRaw:     row.Str(ColRole),
			Role:        ParseRole(row.Str(ColRole)),
			Convenience: row.Num(ColConvenience),
			FantasyAvg:  row.Num(ColFantasyAvg),
			Appearances: row.Num(ColAppearances),
			Score:       row.Num(ColScore),
		}
		if normalized != "" {
			p.Secondary = secondaryByName[normalized]
		}

		ds.Players = append(ds.Players, p)
		ds.byID[p.ID] = p
		ds.Index.Add(p.ID, normalized)
	}

	return ds
}

// ByID resolves a player ID from the current import, nil when unknown
// (e.g. a roster entry left over from a previous dataset).
func (ds *Dataset) ByID(id string) *Player {
	if ds == nil {
		return nil
	}
	return ds.byID[id]
}

// playerID derives the stable ID for a player: the slugified display name, or
// a content-derived token when the name is empty. Uniqueness is best-effort;
// duplicate names collide on the same ID.
func playerID(name string, rowIndex int, row Row) string {
	if name != "" {
		return strings.ToLower(strings.Join(strings.Fields(name), "_"))
	}
	seed := fmt.Sprintf("row:%d|%s|%s", rowIndex, row.Str(ColTeam), row.Str(ColRole))
	return "player_" + uuid.NewSHA1(idNamespace, []byte(seed)).String()[:9]
}
