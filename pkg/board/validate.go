package board

// ValidationResult classifies a candidate move against the current
// position, distinguishing why a move is rejected so a caller (e.g. a CECP
// "usermove" handler) can report a precise reason.
type ValidationResult int

const (
	// Valid means m is legal in the current position.
	Valid ValidationResult = iota
	// Invalid means m does not correspond to any pseudolegal move: there is
	// no piece of the side to move on From, or To is not a geometrically
	// reachable destination for it.
	Invalid
	// LeavingInCheck means the side to move is already in check before m,
	// and m does not address the check (capture the checker, block it, or
	// move the king to safety).
	LeavingInCheck
	// PlacingInCheck means the side to move is not in check before m, but
	// would be after playing it (m exposes or fails to resolve a pin).
	PlacingInCheck
)

func (r ValidationResult) String() string {
	switch r {
	case Valid:
		return "VALID"
	case Invalid:
		return "INVALID"
	case LeavingInCheck:
		return "LEAVING_IN_CHECK"
	case PlacingInCheck:
		return "PLACING_IN_CHECK"
	default:
		return "INVALID"
	}
}

// ValidateMove classifies a candidate move (typically parsed from long
// algebraic notation via ParseMove) against b. It does not mutate b.
func (b *BoardState) ValidateMove(m Move) ValidationResult {
	wasInCheck := b.InCheck(b.side)

	found := false
	for _, p := range b.PseudoLegalMoves() {
		if p.Equals(m) {
			found = true
			break
		}
	}
	if !found {
		return Invalid
	}

	if b.AtkExp(m) {
		if wasInCheck {
			return LeavingInCheck
		}
		return PlacingInCheck
	}
	return Valid
}
