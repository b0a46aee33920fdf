// Package pgn renders a played game as Portable Game Notation: a seven-tag
// header followed by full Standard Algebraic Notation move text, replaying
// the move list against the starting position to compute disambiguation,
// check, and mate suffixes.
package pgn

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hollowrook/zugzwang/pkg/board"
	"github.com/hollowrook/zugzwang/pkg/board/fen"
)

// Header carries the standard seven PGN tags. Empty fields render as "?",
// per the PGN spec's convention for unknown tag values.
type Header struct {
	Event, Site, Date, Round, White, Black string
}

func (h Header) field(s string) string {
	if s == "" {
		return "?"
	}
	return s
}

// Write renders a complete PGN game: the seven-tag header (plus [Setup] and
// [FEN] tags when startFEN is not the standard initial position), followed
// by SAN move text and the game result. moves must all be legal in
// sequence starting from startFEN.
func Write(header Header, startFEN string, moves []board.Move, result board.Result) (string, error) {
	b, err := fen.Decode(startFEN)
	if err != nil {
		return "", fmt.Errorf("pgn: invalid starting position: %w", err)
	}

	var sb strings.Builder
	writeTag(&sb, "Event", header.field(header.Event))
	writeTag(&sb, "Site", header.field(header.Site))
	writeTag(&sb, "Date", header.field(header.Date))
	writeTag(&sb, "Round", header.field(header.Round))
	writeTag(&sb, "White", header.field(header.White))
	writeTag(&sb, "Black", header.field(header.Black))
	writeTag(&sb, "Result", result.String())
	if startFEN != fen.Starting {
		writeTag(&sb, "Setup", "1")
		writeTag(&sb, "FEN", startFEN)
	}
	sb.WriteByte('\n')

	startFullmove := b.Fullmove()
	startSide := b.SideToMove()

	var movetext []string
	for i, m := range moves {
		ply := i
		fullmove := startFullmove + ply/2
		if startSide == board.Black {
			fullmove = startFullmove + (ply+1)/2
		}

		san := formatSAN(b, m)
		b.Move(m)

		inCheck, noMoves := b.CheckOrStalemate()
		switch {
		case inCheck && noMoves:
			san += "#"
		case inCheck:
			san += "+"
		}

		isWhiteMove := (startSide == board.White) == (ply%2 == 0)
		if isWhiteMove {
			movetext = append(movetext, fmt.Sprintf("%d.", fullmove), san)
		} else if ply == 0 {
			movetext = append(movetext, fmt.Sprintf("%d...", fullmove), san)
		} else {
			movetext = append(movetext, san)
		}
	}
	movetext = append(movetext, result.String())

	sb.WriteString(wrapMovetext(movetext))
	sb.WriteByte('\n')
	return sb.String(), nil
}

func writeTag(sb *strings.Builder, name, value string) {
	fmt.Fprintf(sb, "[%s \"%s\"]\n", name, value)
}

// wrapMovetext joins move-text tokens with spaces; real PGN writers wrap at
// 80 columns, but a single long line is equally valid and this module has
// no terminal-width constraint to honor.
func wrapMovetext(tokens []string) string {
	return strings.Join(tokens, " ")
}

// formatSAN renders m as SAN in b, which must not yet have m applied. It
// consults b.LegalMoves() to disambiguate among same-kind pieces that could
// reach the same destination.
func formatSAN(b *board.BoardState, m board.Move) string {
	if b.Piece(m.From).Kind() == board.King && m.IsCastling() {
		if m.To.File() == 6 {
			return "O-O"
		}
		return "O-O-O"
	}

	mover := b.Piece(m.From)
	kind := mover.Kind()
	isCapture := !b.Piece(m.To).IsEmpty()
	if !isCapture && kind == board.Pawn {
		if ep, ok := b.EnPassant(); ok && m.To == ep && m.From.File() != m.To.File() {
			isCapture = true
		}
	}

	var sb strings.Builder
	if kind == board.Pawn {
		if isCapture {
			sb.WriteByte(fileLetter(m.From))
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.Promotion != board.NoPiece {
			sb.WriteByte('=')
			sb.WriteRune(m.Promotion.ToWhite().Letter())
		}
		return sb.String()
	}

	sb.WriteRune(mover.ToWhite().Letter())
	sb.WriteString(disambiguation(b, m, kind))
	if isCapture {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())
	return sb.String()
}

// disambiguation returns the SAN disambiguation prefix needed when another
// legal move by a same-kind, same-color piece could reach m.To: the origin
// file if that alone distinguishes it, else the rank, else the full square.
func disambiguation(b *board.BoardState, m board.Move, kind board.Piece) string {
	var sameFile, sameRank, others bool
	for _, o := range b.LegalMoves() {
		if o.To != m.To || o.From == m.From {
			continue
		}
		if b.Piece(o.From).Kind() != kind {
			continue
		}
		others = true
		if o.From.File() == m.From.File() {
			sameFile = true
		}
		if o.From.Rank() == m.From.Rank() {
			sameRank = true
		}
	}
	if !others {
		return ""
	}
	if !sameFile {
		return string(fileLetter(m.From))
	}
	if !sameRank {
		return strconv.Itoa(m.From.Rank() + 1)
	}
	return m.From.String()
}

func fileLetter(sq board.Square) byte {
	return 'a' + byte(sq.File())
}
