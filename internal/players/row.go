package players

import (
	"strconv"
	"strings"
)

// Row is one already-parsed spreadsheet row: column header -> cell value.
// Values arrive as strings or numbers depending on the parser; the accessors
// below absorb both. Unknown or missing columns read as zero values.
type Row map[string]any

// Column headers of the primary dataset (FPEDIA export, Italian locale).
const (
	ColName        = "Nome"
	ColRole        = "Ruolo"
	ColTeam        = "Squadra"
	ColConvenience = "Convenienza Potenziale"
	ColFantasyAvg  = "Fantamedia anno 2024-2025"
	ColAppearances = "Presenze campionato corrente"
	ColScore       = "Punteggio"
)

// Str returns the cell as a trimmed string, "" when absent.
func (r Row) Str(col string) string {
	switch v := r[col].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

// Num returns the cell as a float64. Missing or non-numeric values read as 0;
// downstream consumers treat 0 as "unknown", not as a measurement.
func (r Row) Num(col string) float64 {
	switch v := r[col].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
