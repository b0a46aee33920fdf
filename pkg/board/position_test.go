package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowrook/zugzwang/pkg/board"
	"github.com/hollowrook/zugzwang/pkg/board/fen"
)

func TestStartingPositionLegalMoves(t *testing.T) {
	b := board.NewBoardState()
	moves := b.LegalMoves()
	assert.Len(t, moves, 20)
	assert.Equal(t, board.White, b.SideToMove())
	assert.Equal(t, board.WhiteKingSide|board.WhiteQueenSide|board.BlackKingSide|board.BlackQueenSide, b.Castling())
}

func TestMoveUndoRoundTrip(t *testing.T) {
	cases := []string{
		fen.Starting,
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",        // castling both ways
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq - 0 1",        // black castling
		"rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 2", // en passant capture
		"8/P7/8/8/8/8/p7/k6K w - - 0 1",                             // promotions
		"8/8/8/8/8/5k2/8/5K1R w - - 40 70",                          // deep halfmove clock
	}
	for _, c := range cases {
		b, err := fen.Decode(c)
		require.NoError(t, err, c)

		before := *b
		for _, m := range b.LegalMoves() {
			info := b.Move(m)
			b.UndoMove(info)
			assert.Equal(t, before, *b, "undo of %v did not restore %v", m, c)
		}
	}
}

func TestCastlingAvailable(t *testing.T) {
	b, err := fen.Decode("r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	var found []string
	for _, m := range b.LegalMoves() {
		if m.IsCastling() {
			found = append(found, m.String())
		}
	}
	assert.ElementsMatch(t, []string{"e1g1", "e1c1"}, found)
}

func TestEnPassant(t *testing.T) {
	b := board.NewBoardState()
	play := func(s string) {
		m, err := board.ParseMove(s)
		require.NoError(t, err)
		require.Equal(t, board.Valid, b.ValidateMove(m), s)
		b.Move(m)
	}
	play("e2e4")
	play("a7a6")
	play("e4e5")
	play("d7d5")

	ep, ok := b.EnPassant()
	require.True(t, ok)
	assert.Equal(t, "d6", ep.String())

	capture, err := board.ParseMove("e5d6")
	require.NoError(t, err)
	assert.Equal(t, board.Valid, b.ValidateMove(capture))

	d5 := board.NewSquare(3, 4)
	assert.NotEqual(t, board.NoPiece, b.Piece(d5))
	b.Move(capture)
	assert.Equal(t, board.NoPiece, b.Piece(d5))
}

func TestPromotion(t *testing.T) {
	b, err := fen.Decode("8/P7/8/8/8/8/8/k6K w - - 0 1")
	require.NoError(t, err)

	a8 := board.NewSquare(0, 7)
	var promos []board.Piece
	for _, m := range b.LegalMoves() {
		if m.From == board.NewSquare(0, 6) && m.To == a8 {
			promos = append(promos, m.Promotion)
		}
	}
	assert.ElementsMatch(t, []board.Piece{board.Queen, board.Rook, board.Knight, board.Bishop}, promos)
}

func TestFoolsMate(t *testing.T) {
	b, err := fen.Decode("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)

	inCheck, noMoves := b.CheckOrStalemate()
	assert.True(t, inCheck)
	assert.True(t, noMoves)
}

func TestThreefoldRepetition(t *testing.T) {
	b := board.NewBoardState()
	h := &board.History{}
	h.Push(b)

	play := func(s string) {
		m, err := board.ParseMove(s)
		require.NoError(t, err)
		b.Move(m)
		h.PushMove(b, m)
	}
	for i := 0; i < 2; i++ {
		play("b1c3")
		play("b8c6")
		play("c3b1")
		play("c6b8")
	}
	assert.True(t, h.IsThreefoldRepetition())
	assert.GreaterOrEqual(t, h.RepetitionCount(), 3)
	assert.True(t, h.Repeatable())
}

func TestAllowsRepetitionFlagsDrawableBranch(t *testing.T) {
	b := board.NewBoardState()
	h := &board.History{}
	h.Push(b)

	play := func(s string) {
		m, err := board.ParseMove(s)
		require.NoError(t, err)
		b.Move(m)
		h.PushMove(b, m)
	}
	for _, s := range []string{"b1c3", "b8c6", "c3b1", "c6b8", "b1c3", "b8c6", "c3b1"} {
		play(s)
	}
	require.True(t, h.Repeatable())

	// Retreating the knight reaches the starting position for a third time:
	// a draw the opponent can claim.
	m, err := board.ParseMove("c6b8")
	require.NoError(t, err)
	b.Move(m)
	assert.True(t, h.AllowsRepetition(b))
}

func TestRepetitionChainBrokenByPawnMove(t *testing.T) {
	b := board.NewBoardState()
	h := &board.History{}
	h.Push(b)

	play := func(s string) {
		m, err := board.ParseMove(s)
		require.NoError(t, err)
		b.Move(m)
		h.PushMove(b, m)
	}
	play("b1c3")
	play("b8c6")
	play("c3b1")
	play("c6b8")
	play("e2e4") // resets the halfmove clock

	assert.False(t, h.Repeatable())
	assert.Zero(t, h.RepetitionCount())
}

func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	// Rook on e8 and bishop on b4 both check the white king; interposing or
	// capturing can answer at most one checker, so only king moves remain.
	b, err := fen.Decode("4r2k/8/8/8/1b6/8/8/3QK3 w - - 0 1")
	require.NoError(t, err)

	moves := b.LegalMoves()
	require.NotEmpty(t, moves)
	for _, m := range moves {
		assert.Equal(t, board.King, b.Piece(m.From).Kind(), "non-king move %v in double check", m)
	}
}

func TestInsufficientMaterial(t *testing.T) {
	b, err := fen.Decode("8/8/8/4k3/8/4K3/4B3/8 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, b.InsufficientMaterial())
}
