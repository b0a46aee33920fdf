package board

// Result classifies the outcome of a position, if any.
type Result int

const (
	InProgress Result = iota
	WhiteWins
	BlackWins
	DrawStalemate
	DrawFiftyMove
	DrawRepetition
	DrawInsufficientMaterial
)

func (r Result) String() string {
	switch r {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case DrawStalemate, DrawFiftyMove, DrawRepetition, DrawInsufficientMaterial:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// Outcome evaluates the current position for a terminal result, consulting
// h for repetition. Returns InProgress if the game continues.
func (b *BoardState) Outcome(h *History) Result {
	inCheck, noMoves := b.CheckOrStalemate()
	if noMoves {
		if inCheck {
			if b.side == White {
				return BlackWins
			}
			return WhiteWins
		}
		return DrawStalemate
	}
	if b.halfmove >= 100 {
		return DrawFiftyMove
	}
	if h != nil && h.IsThreefoldRepetition() {
		return DrawRepetition
	}
	if b.InsufficientMaterial() {
		return DrawInsufficientMaterial
	}
	return InProgress
}

// InsufficientMaterial reports whether neither side has enough material to
// deliver checkmate: king vs king, king+minor vs king, or king+bishop vs
// king+bishop with same-colored bishops.
func (b *BoardState) InsufficientMaterial() bool {
	var minors [2]int
	var bishopSquares [2][]Square
	for sq := Square(0); int(sq) < NumSquares; sq++ {
		p := b.sq[sq]
		if p.IsEmpty() || p.Kind() == King {
			continue
		}
		switch p.Kind() {
		case Bishop:
			minors[p.Color()]++
			bishopSquares[p.Color()] = append(bishopSquares[p.Color()], sq)
		case Knight:
			minors[p.Color()]++
		default:
			return false // pawn, rook, or queen on board: sufficient
		}
	}
	total := minors[White] + minors[Black]
	if total == 0 {
		return true
	}
	if total == 1 {
		return true
	}
	if total == 2 && len(bishopSquares[White]) == 1 && len(bishopSquares[Black]) == 1 {
		return squareColor(bishopSquares[White][0]) == squareColor(bishopSquares[Black][0])
	}
	return false
}

func squareColor(sq Square) int {
	return (sq.File() + sq.Rank()) % 2
}
