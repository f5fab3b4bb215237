package players

import (
	"strings"

	"github.com/informagico/fantavibe/internal/names"
)

// SearchIndex is an inverted index from normalized name token to the IDs of
// the players whose name contains that token. Buckets keep insertion order
// (first-inserted player ranks first on a tie) and the key list keeps the
// order keys were first seen, so query results are deterministic; Go maps
// alone would not preserve either.
//
// The index is built once per import and treated as immutable; a new import
// rebuilds it wholesale.
type SearchIndex struct {
	keys    []string
	buckets map[string]map[string]bool // key -> set of IDs
	order   map[string][]string        // key -> IDs in insertion order
}

func NewSearchIndex() *SearchIndex {
	return &SearchIndex{
		buckets: make(map[string]map[string]bool),
		order:   make(map[string][]string),
	}
}

// Add registers a player under every token of its normalized name and under
// the full normalized string. Empty names index nothing.
func (ix *SearchIndex) Add(id, normalizedName string) {
	if normalizedName == "" {
		return
	}
	keys := names.Tokens(normalizedName)
	if len(keys) != 1 || keys[0] != normalizedName {
		keys = append(keys, normalizedName)
	}
	for _, key := range keys {
		ix.add(id, key)
	}
}

func (ix *SearchIndex) add(id, key string) {
	set, ok := ix.buckets[key]
	if !ok {
		set = make(map[string]bool)
		ix.buckets[key] = set
		ix.keys = append(ix.keys, key)
	}
	if !set[id] {
		set[id] = true
		ix.order[key] = append(ix.order[key], id)
	}
}

// Len reports the number of distinct keys.
func (ix *SearchIndex) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.keys)
}

// Lookup returns the IDs of every player registered under a key that
// contains query as a substring. The query must already be normalized.
// IDs keep first-seen order across keys; a player matched through several
// keys appears once.
func (ix *SearchIndex) Lookup(query string) []string {
	if ix == nil || query == "" {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, key := range ix.keys {
		if !strings.Contains(key, query) {
			continue
		}
		for _, id := range ix.order[key] {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	return out
}
