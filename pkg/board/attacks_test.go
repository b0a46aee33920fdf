package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowrook/zugzwang/pkg/board"
	"github.com/hollowrook/zugzwang/pkg/board/fen"
)

func sq(t *testing.T, s string) board.Square {
	t.Helper()
	r, ok := board.ParseSquare(s)
	require.True(t, ok, s)
	return r
}

func TestAttackedBy(t *testing.T) {
	b, err := fen.Decode("k3q3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	require.NoError(t, err)

	assert.True(t, b.AttackedBy(sq(t, "e8"), board.White), "rook attacks the queen on the e-file")
	assert.True(t, b.AttackedBy(sq(t, "e2"), board.Black))
	assert.False(t, b.AttackedBy(sq(t, "a1"), board.Black))
	assert.True(t, b.AttackedBy(sq(t, "d1"), board.White), "king defends adjacent squares")
}

func TestAttackedByPawnDirection(t *testing.T) {
	b, err := fen.Decode("4k3/8/8/3p4/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	// Black pawns attack toward rank 1 only.
	assert.True(t, b.AttackedBy(sq(t, "c4"), board.Black))
	assert.True(t, b.AttackedBy(sq(t, "e4"), board.Black))
	assert.False(t, b.AttackedBy(sq(t, "c6"), board.Black))
	assert.False(t, b.AttackedBy(sq(t, "d4"), board.Black))
}

func TestExposesDetectsPin(t *testing.T) {
	b, err := fen.Decode("k3q3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	require.NoError(t, err)

	king := sq(t, "e1")
	assert.True(t, b.Exposes(sq(t, "e2"), king, board.Black), "rook shields the king from the queen")

	// A square off the pin line exposes nothing.
	assert.False(t, b.Exposes(sq(t, "d2"), king, board.Black))
}

func TestAttackQueriesDoNotMutate(t *testing.T) {
	b, err := fen.Decode("r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	before := b.Clone()
	b.AttackedBy(sq(t, "e4"), board.Black)
	b.Exposes(sq(t, "e2"), sq(t, "e1"), board.Black)
	for _, m := range b.PseudoLegalMoves() {
		b.AtkExp(m)
	}
	after := b

	for s := board.Square(0); int(s) < board.NumSquares; s++ {
		assert.Equal(t, before.Piece(s), after.Piece(s), s)
	}
	assert.Equal(t, before.Castling(), after.Castling())
	assert.Equal(t, before.SideToMove(), after.SideToMove())
	assert.Equal(t, before.Halfmove(), after.Halfmove())
	assert.Equal(t, before.Fullmove(), after.Fullmove())
}

func TestPinnedPieceCannotMoveOffLine(t *testing.T) {
	// The e2 rook is pinned against the king; it may slide along the e-file
	// but never leave it.
	b, err := fen.Decode("k3q3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	require.NoError(t, err)

	for _, m := range b.LegalMoves() {
		if m.From == sq(t, "e2") {
			assert.Equal(t, 4, m.To.File(), "pinned rook escaped the e-file with %v", m)
		}
	}
}
