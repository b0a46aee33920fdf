// Package fen encodes and decodes Forsyth-Edwards Notation, the standard
// text format for a chess position.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hollowrook/zugzwang/pkg/board"
)

// Starting is the FEN of the standard chess starting position.
const Starting = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a FEN string into a BoardState. Beyond field count and
// character well-formedness, it validates the structural invariants a
// position must hold to enter move generation or evaluation: exactly one
// king per side, no pawn on rank 1 or 8, and an en passant target (if any)
// confined to rank 3 or 6. On any violation it returns an error and leaves
// no partial state behind.
func Decode(s string) (*board.BoardState, error) {
	if len(s) < 28 || len(s) > 83 {
		return nil, fmt.Errorf("fen: illegal position: length %d out of range in %q", len(s), s)
	}

	fields := strings.Fields(s)
	if len(fields) != 6 {
		return nil, fmt.Errorf("fen: illegal position: expected 6 fields, got %d in %q", len(fields), s)
	}

	b := &board.BoardState{}
	if err := decodePlacement(b, fields[0]); err != nil {
		return nil, err
	}
	if err := validatePlacement(b); err != nil {
		return nil, err
	}

	color, ok := board.ParseColor(fields[1])
	if !ok {
		return nil, fmt.Errorf("fen: illegal position: invalid side to move %q", fields[1])
	}
	b.SetSideToMove(color)

	castling, ok := board.ParseCastling(fields[2])
	if !ok {
		return nil, fmt.Errorf("fen: illegal position: invalid castling rights %q", fields[2])
	}
	b.SetCastling(castling)

	if fields[3] == "-" {
		b.SetEnPassant(0, false)
	} else {
		sq, ok := board.ParseSquare(fields[3])
		if !ok {
			return nil, fmt.Errorf("fen: illegal position: invalid en passant target %q", fields[3])
		}
		if sq.Rank() != 2 && sq.Rank() != 5 {
			return nil, fmt.Errorf("fen: illegal position: en passant target %q not on rank 3 or 6", fields[3])
		}
		b.SetEnPassant(sq, true)
	}

	half, err := strconv.Atoi(fields[4])
	if err != nil || half < 0 {
		return nil, fmt.Errorf("fen: illegal position: invalid halfmove clock %q", fields[4])
	}
	b.SetHalfmove(half)

	full, err := strconv.Atoi(fields[5])
	if err != nil || full < 0 {
		return nil, fmt.Errorf("fen: illegal position: invalid fullmove number %q", fields[5])
	}
	b.SetFullmove(full)

	return b, nil
}

// validatePlacement checks the structural invariants a decoded piece
// placement must hold before it can enter move generation: exactly one king
// per side, and no pawn on the first or last rank.
func validatePlacement(b *board.BoardState) error {
	var kings [2]int
	for sq := board.Square(0); int(sq) < board.NumSquares; sq++ {
		p := b.Piece(sq)
		if p.IsEmpty() {
			continue
		}
		switch p.Kind() {
		case board.King:
			kings[p.Color()]++
		case board.Pawn:
			if sq.Rank() == 0 || sq.Rank() == 7 {
				return fmt.Errorf("fen: illegal position: pawn on back rank at %v", sq)
			}
		}
	}
	if kings[board.White] != 1 || kings[board.Black] != 1 {
		return fmt.Errorf("fen: illegal position: expected one king per side, got white=%d black=%d", kings[board.White], kings[board.Black])
	}
	return nil
}

func decodePlacement(b *board.BoardState, field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("fen: expected 8 ranks, got %d in %q", len(ranks), field)
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, r := range rankStr {
			if r >= '1' && r <= '8' {
				n := int(r - '0')
				for k := 0; k < n; k++ {
					if file >= 8 {
						return fmt.Errorf("fen: rank %q overflows the board", rankStr)
					}
					b.SetPiece(board.NewSquare(file, rank), board.NoPiece)
					file++
				}
				continue
			}
			p, ok := board.ParsePieceLetter(r)
			if !ok {
				return fmt.Errorf("fen: invalid piece letter %q in rank %q", r, rankStr)
			}
			if file >= 8 {
				return fmt.Errorf("fen: rank %q overflows the board", rankStr)
			}
			b.SetPiece(board.NewSquare(file, rank), p)
			file++
		}
		if file != 8 {
			return fmt.Errorf("fen: rank %q does not cover 8 files", rankStr)
		}
	}
	return nil
}

// Encode renders b as a FEN string.
func Encode(b *board.BoardState) string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			p := b.Piece(board.NewSquare(f, r))
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteRune(p.Letter())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}

	ep := "-"
	if sq, ok := b.EnPassant(); ok {
		ep = sq.String()
	}

	return fmt.Sprintf("%s %s %s %s %d %d",
		sb.String(), b.SideToMove(), b.Castling(), ep, b.Halfmove(), b.Fullmove())
}
