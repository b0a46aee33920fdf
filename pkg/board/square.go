package board

import "fmt"

// Square is a board square index: a1=0, h1=7, a8=56, h8=63. Rank = index/8,
// file = index mod 8.
type Square uint8

const (
	NumSquares = 64
	NumFiles   = 8
	NumRanks   = 8
)

// Named squares used by castling and en passant logic.
const (
	A1 Square = 0
	E1 Square = 4
	H1 Square = 7
	A8 Square = 56
	E8 Square = 60
	H8 Square = 63
)

// NewSquare builds a Square from zero-based file and rank.
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// File returns the zero-based file (0=a .. 7=h).
func (s Square) File() int {
	return int(s) % 8
}

// Rank returns the zero-based rank (0=1st rank .. 7=8th rank).
func (s Square) Rank() int {
	return int(s) / 8
}

// ParseSquare parses algebraic coordinates such as "e4".
func ParseSquare(str string) (Square, bool) {
	if len(str) != 2 {
		return 0, false
	}
	f := str[0]
	r := str[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return 0, false
	}
	return NewSquare(int(f-'a'), int(r-'1')), true
}

func (s Square) String() string {
	return fmt.Sprintf("%c%c", 'a'+byte(s.File()), '1'+byte(s.Rank()))
}
