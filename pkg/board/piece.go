package board

import "fmt"

// Piece is a small integer whose low 3 bits identify the kind and whose bit 3
// identifies color (0=white, 1=black). This packing mirrors the board's own
// wire format, so a Piece can be stored directly in a square array without a
// separate color field.
type Piece uint8

// Kinds. NoPiece is the empty-square sentinel.
const (
	NoPiece Piece = 0
	Pawn    Piece = 1
	Bishop  Piece = 2
	Knight  Piece = 3
	Rook    Piece = 4
	Queen   Piece = 5
	King    Piece = 6
)

const colorBit Piece = 8
const kindMask Piece = 7

// MakePiece combines a color and kind into a single Piece value.
func MakePiece(c Color, kind Piece) Piece {
	if c == Black {
		return kind.ToBlack()
	}
	return kind
}

// ToWhite masks off the color bit, returning the bare kind.
func (p Piece) ToWhite() Piece {
	return p & kindMask
}

// ToBlack sets the color bit.
func (p Piece) ToBlack() Piece {
	return p | colorBit
}

// FlipColor toggles the color bit, leaving the kind unchanged.
func (p Piece) FlipColor() Piece {
	return p ^ colorBit
}

// Kind returns the piece kind, irrespective of color.
func (p Piece) Kind() Piece {
	return p & kindMask
}

// IsEmpty reports whether the value represents an empty square.
func (p Piece) IsEmpty() bool {
	return p == NoPiece
}

// IsWhite reports whether p is a (non-empty) white piece.
func (p Piece) IsWhite() bool {
	return p != NoPiece && p&colorBit == 0
}

// IsBlack reports whether p is a black piece.
func (p Piece) IsBlack() bool {
	return p&colorBit != 0
}

// Color returns the piece's color. Meaningless for NoPiece.
func (p Piece) Color() Color {
	if p.IsBlack() {
		return Black
	}
	return White
}

// IsColor reports whether p is a non-empty piece of color c.
func (p Piece) IsColor(c Color) bool {
	return p != NoPiece && p.Color() == c
}

// Friendly reports whether p and o are pieces of the same color. Both
// arguments must be non-empty.
func Friendly(p, o Piece) bool {
	return p&colorBit == o&colorBit
}

// ParsePieceLetter parses a SAN piece letter (upper=white, lower=black).
func ParsePieceLetter(r rune) (Piece, bool) {
	switch r {
	case 'P':
		return MakePiece(White, Pawn), true
	case 'B':
		return MakePiece(White, Bishop), true
	case 'N':
		return MakePiece(White, Knight), true
	case 'R':
		return MakePiece(White, Rook), true
	case 'Q':
		return MakePiece(White, Queen), true
	case 'K':
		return MakePiece(White, King), true
	case 'p':
		return MakePiece(Black, Pawn), true
	case 'b':
		return MakePiece(Black, Bishop), true
	case 'n':
		return MakePiece(Black, Knight), true
	case 'r':
		return MakePiece(Black, Rook), true
	case 'q':
		return MakePiece(Black, Queen), true
	case 'k':
		return MakePiece(Black, King), true
	default:
		return NoPiece, false
	}
}

// ParseKindLetter parses a bare kind letter, such as the promotion suffix of
// a long-algebraic move ("q", "r", "b", "n"). Case-insensitive.
func ParseKindLetter(r rune) (Piece, bool) {
	switch r {
	case 'q', 'Q':
		return Queen, true
	case 'r', 'R':
		return Rook, true
	case 'b', 'B':
		return Bishop, true
	case 'n', 'N':
		return Knight, true
	default:
		return NoPiece, false
	}
}

// Letter returns the SAN letter for p (uppercase white, lowercase black).
// Returns ' ' for NoPiece.
func (p Piece) Letter() rune {
	var r rune
	switch p.Kind() {
	case Pawn:
		r = 'P'
	case Bishop:
		r = 'B'
	case Knight:
		r = 'N'
	case Rook:
		r = 'R'
	case Queen:
		r = 'Q'
	case King:
		r = 'K'
	default:
		return ' '
	}
	if p.IsBlack() {
		r += 'a' - 'A'
	}
	return r
}

func (p Piece) String() string {
	if p == NoPiece {
		return "."
	}
	return fmt.Sprintf("%c", p.Letter())
}
