package pgn_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowrook/zugzwang/pkg/board"
	"github.com/hollowrook/zugzwang/pkg/board/fen"
	"github.com/hollowrook/zugzwang/pkg/board/pgn"
)

func parseAll(t *testing.T, ss ...string) []board.Move {
	t.Helper()
	var moves []board.Move
	for _, s := range ss {
		m, err := board.ParseMove(s)
		require.NoError(t, err)
		moves = append(moves, m)
	}
	return moves
}

func TestWriteFoolsMate(t *testing.T) {
	moves := parseAll(t, "f2f3", "e7e5", "g2g4", "d8h4")
	out, err := pgn.Write(pgn.Header{White: "A", Black: "B"}, fen.Starting, moves, board.BlackWins)
	require.NoError(t, err)

	assert.Contains(t, out, `[White "A"]`)
	assert.Contains(t, out, `[Result "0-1"]`)
	assert.Contains(t, out, "1. f3 e5 2. g4 Qh4#")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "0-1"))
}

func TestWriteNonStandardStartIncludesSetupAndFEN(t *testing.T) {
	start := "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1"
	moves := parseAll(t, "e1g1")
	out, err := pgn.Write(pgn.Header{}, start, moves, board.InProgress)
	require.NoError(t, err)

	assert.Contains(t, out, `[Setup "1"]`)
	assert.Contains(t, out, `[FEN "`+start+`"]`)
	assert.Contains(t, out, "O-O")
}

func TestDisambiguationByFile(t *testing.T) {
	// Two white knights on b3 and f3 can both reach d4; they stand on
	// different files, so the file letter alone disambiguates.
	start := "4k3/8/8/8/8/1N3N2/8/4K3 w - - 0 1"
	moves := parseAll(t, "b3d4")
	out, err := pgn.Write(pgn.Header{}, start, moves, board.InProgress)
	require.NoError(t, err)
	assert.Contains(t, out, "Nbd4")
}
