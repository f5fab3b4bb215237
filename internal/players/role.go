package players

import "strings"

// Role is the classic fantacalcio position classification.
type Role string

const (
	Goalkeeper Role = "goalkeeper"
	Defender   Role = "defender"
	Midfielder Role = "midfielder"
	Forward    Role = "forward"
	RoleNone   Role = ""
)

// Roles lists the known roles in pitch order.
var Roles = []Role{Goalkeeper, Defender, Midfielder, Forward}

// ParseRole maps the source spreadsheet's role codes (P/POR, D/DIF, C/CEN,
// A/ATT) onto a Role. Unknown codes parse to RoleNone rather than failing:
// a row with a bad role still produces a player.
func ParseRole(raw string) Role {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "P", "POR":
		return Goalkeeper
	case "D", "DIF":
		return Defender
	case "C", "CEN":
		return Midfielder
	case "A", "ATT":
		return Forward
	default:
		return RoleNone
	}
}

// Label is the short source-locale code used in summaries.
func (r Role) Label() string {
	switch r {
	case Goalkeeper:
		return "POR"
	case Defender:
		return "DIF"
	case Midfielder:
		return "CEN"
	case Forward:
		return "ATT"
	default:
		return "?"
	}
}
