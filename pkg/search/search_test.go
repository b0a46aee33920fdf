package search_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowrook/zugzwang/pkg/board"
	"github.com/hollowrook/zugzwang/pkg/board/fen"
	"github.com/hollowrook/zugzwang/pkg/eval"
	"github.com/hollowrook/zugzwang/pkg/search"
)

func TestMateInOne(t *testing.T) {
	// White to move: Ra1-a8 is a back-rank mate, the black king boxed in by
	// its own pawns with no blocker available.
	b, err := fen.Decode("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	require.NoError(t, err)

	s := search.NewSearcher(eval.NewEvaluator())
	h := &board.History{}
	h.Push(b)

	v, ok := s.Search(b, h, 1)
	require.True(t, ok)
	assert.Equal(t, "a1a8", v.Move.String())
	assert.True(t, v.Score.IsMate())
	assert.Positive(t, v.Score)
}

func TestStalemateHasNoMove(t *testing.T) {
	b, err := fen.Decode("k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	require.NoError(t, err)

	inCheck, noMoves := b.CheckOrStalemate()
	require.False(t, inCheck)
	require.True(t, noMoves)

	s := search.NewSearcher(eval.NewEvaluator())
	h := &board.History{}
	h.Push(b)
	_, ok := s.Search(b, h, 2)
	assert.False(t, ok)
}

func TestSelectMoveFromStartingPosition(t *testing.T) {
	b := board.NewBoardState()
	s := search.NewSearcher(eval.NewEvaluator())
	h := &board.History{}
	h.Push(b)
	nps := search.NewNPSEstimator()

	v, _, ok := search.SelectMove(s, b, h, 2, time.Minute, nps)
	require.True(t, ok)
	assert.NotEmpty(t, v.Move.String())
}

func TestThinkingLineFormat(t *testing.T) {
	b := board.NewBoardState()
	s := search.NewSearcher(eval.NewEvaluator())
	h := &board.History{}
	h.Push(b)
	nps := search.NewNPSEstimator()

	_, thinking, ok := search.SelectMove(s, b, h, 1, time.Minute, nps)
	require.True(t, ok)

	// depth, score, centiseconds, nodes, seldepth, knps, tablebase hits,
	// then the PV after a tab.
	parts := strings.SplitN(thinking, "\t", 2)
	require.Len(t, parts, 2)
	fields := strings.Fields(parts[0])
	require.Len(t, fields, 7)
	assert.Equal(t, "1", fields[0])
	assert.Equal(t, "1", fields[4])
	assert.Equal(t, "0", fields[6])
	assert.NotEmpty(t, parts[1])
}

func TestMateScoreReportedInMoves(t *testing.T) {
	b, err := fen.Decode("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	require.NoError(t, err)

	s := search.NewSearcher(eval.NewEvaluator())
	h := &board.History{}
	h.Push(b)
	nps := search.NewNPSEstimator()

	_, thinking, ok := search.SelectMove(s, b, h, 2, time.Minute, nps)
	require.True(t, ok)

	// Mate in one ply is reported as "mate in 1 move": 100000 + 1.
	fields := strings.Fields(strings.SplitN(thinking, "\t", 2)[0])
	require.Len(t, fields, 7)
	assert.Equal(t, "100001", fields[1])
}

func TestRootThreefoldRepetitionScoresZero(t *testing.T) {
	b := board.NewBoardState()
	h := &board.History{}
	h.Push(b)
	play := func(s string) {
		m, err := board.ParseMove(s)
		require.NoError(t, err)
		b.Move(m)
		h.PushMove(b, m)
	}
	for _, mv := range []string{"b1c3", "b8c6", "c3b1", "c6b8", "b1c3", "b8c6", "c3b1"} {
		play(mv)
	}

	s := search.NewSearcher(eval.NewEvaluator())
	v, ok := s.Search(b, h, 1)
	require.True(t, ok)
	if v.Move.String() == "c6b8" {
		assert.Equal(t, board.Score(0), v.Score)
	}
}
