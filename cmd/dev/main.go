// Command dev is a local smoke harness: import a spreadsheet, run a search,
// print budget stats. Useful for eyeballing a new dataset before pointing the
// MCP server at it.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/informagico/fantavibe/internal/budget"
	"github.com/informagico/fantavibe/internal/importer"
	"github.com/informagico/fantavibe/internal/players"
	"github.com/informagico/fantavibe/internal/store"
)

func main() {
	var (
		primaryPath   = flag.String("primary", "fpedia_analysis.xlsx", "primary dataset spreadsheet")
		secondaryPath = flag.String("secondary", "", "secondary stats spreadsheet (optional)")
		stateRoot     = flag.String("state-root", "data/state", "persisted draft state root")
		query         = flag.String("q", "", "search query to run")
	)
	flag.Parse()

	primary, err := importer.LoadFile(*primaryPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "import:", err)
		os.Exit(1)
	}
	var secondary []players.Row
	if *secondaryPath != "" {
		if secondary, err = importer.LoadFile(*secondaryPath); err != nil {
			fmt.Fprintln(os.Stderr, "import secondary:", err)
			os.Exit(1)
		}
	}

	ds := players.Normalize(primary, secondary)
	fmt.Printf("players: %d  index keys: %d  stats matched: %d%%\n",
		len(ds.Players), ds.Index.Len(), players.MatchingPercentage(ds.Players))

	for _, role := range players.Roles {
		st := players.StatsForRole(ds.Players, role)
		fmt.Printf("  %-4s %4d players  avg conv %.2f  avg fm %.2f\n",
			role.Label(), st.Count, st.AvgConvenience, st.AvgFantasyAvg)
	}

	state := store.NewStateStore(*stateRoot, nil)
	m := state.LoadRoster()
	st := budget.Compute(state.LoadBudget(), m)
	fmt.Printf("budget: %.0f  spent: %.0f  remaining: %.0f  acquired: %d\n",
		st.TotalBudget, st.TotalSpent, st.RemainingBudget, st.PlayersCount)

	if *query != "" {
		matches := ds.Search(*query)
		if len(matches) > players.MaxSearchResults {
			matches = matches[:players.MaxSearchResults]
		}
		fmt.Printf("search %q: %d match(es)\n", *query, len(matches))
		for _, p := range matches {
			fmt.Printf("  %-30s %-4s %-12s conv %.1f\n", p.Name, p.Role.Label(), p.Team, p.Convenience)
		}
	}
}
