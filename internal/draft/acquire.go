// Package draft orchestrates the acquire action: validate the bid, check
// affordability, and commit the status change. It never touches storage;
// callers persist the returned map, which keeps the workflow testable in
// isolation.
package draft

import (
	"errors"
	"math"

	"github.com/informagico/fantavibe/internal/budget"
	"github.com/informagico/fantavibe/internal/players"
	"github.com/informagico/fantavibe/internal/roster"
)

// MaxBid is the hard ceiling on a single bid.
const MaxBid = 999

var (
	// ErrInvalidAmount rejects a bid that is not a finite number in (0, MaxBid].
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientBudget rejects a bid larger than the remaining budget.
	ErrInsufficientBudget = errors.New("insufficient budget")
)

// ConfirmAcquisition validates the bid against the budget and returns the
// roster map with the player acquired. The affordability check runs against
// the remaining budget as it stands before this bid: an exact-fit bid
// (remaining == bid) is accepted and leaves zero remaining. On error the
// input map is returned unchanged.
func ConfirmAcquisition(p *players.Player, bid float64, st budget.Stats, m roster.Map) (roster.Map, error) {
	if math.IsNaN(bid) || math.IsInf(bid, 0) || bid <= 0 || bid > MaxBid {
		return m, ErrInvalidAmount
	}
	if st.RemainingBudget-bid < 0 {
		return m, ErrInsufficientBudget
	}
	return roster.Update(m, p.ID, roster.StatusAcquired, bid), nil
}
