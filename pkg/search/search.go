// Package search implements fixed-depth minimax over the position model in
// pkg/board, scored by pkg/eval when a line bottoms out before checkmate.
package search

import (
	"github.com/hollowrook/zugzwang/pkg/board"
	"github.com/hollowrook/zugzwang/pkg/eval"
)

// Searcher walks the game tree to a fixed depth and returns the best move
// and its score from the perspective of the side to move. It does no
// alpha-beta pruning: apart from the repetition and fifty-move cutoffs,
// which score a branch 0 without exploring it, every legal move at every
// node is explored, matching the single-pass depth contract this package
// is built around rather than an iterative or alpha-beta-pruned one.
type Searcher struct {
	Eval *eval.Evaluator

	// Nodes counts positions visited by the most recent Search call, used
	// by the caller to refresh its nodes-per-second estimate.
	Nodes int
}

// NewSearcher returns a Searcher using e for leaf evaluation.
func NewSearcher(e *eval.Evaluator) *Searcher {
	return &Searcher{Eval: e}
}

// Variation is a scored candidate move: the move itself, the score from the
// root's perspective, and the principal line the search expects to follow.
type Variation struct {
	Move  board.Move
	Score board.Score
	Line  []board.Move
}

// Search explores every legal move from b to depth plies and returns the
// best Variation. h is the game played so far: branches that would let the
// opponent claim a draw by repetition score 0 instead of being explored,
// and a root move completing a threefold repetition scores 0 outright.
// Returns ok=false if the side to move has no legal moves.
func (s *Searcher) Search(b *board.BoardState, h *board.History, depth int) (Variation, bool) {
	s.Nodes = 0
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return Variation{}, false
	}

	// Repetition pruning only pays off when a repetition is already live in
	// the game; otherwise no searched position can complete one.
	var rep *board.History
	if h != nil && h.Repeatable() {
		rep = h
	}

	best := Variation{Score: board.NegInf}
	for i, m := range moves {
		info := b.Move(m)

		var score board.Score
		var line []board.Move
		if b.Halfmove() < 100 {
			child, sub := s.negamax(b, rep, depth-1)
			score = -child.Deepen()
			line = sub
		}

		// A root move that completes a threefold repetition is a draw the
		// opponent will claim, whatever the tree beneath it says.
		if h != nil {
			h.PushMove(b, m)
			if h.IsThreefoldRepetition() {
				score = 0
				line = nil
			}
			h.Pop()
		}

		b.UndoMove(info)

		v := Variation{Move: m, Score: score, Line: append([]board.Move{m}, line...)}
		if i == 0 || v.Score > best.Score {
			best = v
		}
	}
	return best, true
}

// negamax returns the score of the position from the perspective of the
// side to move, along with the principal variation below it. h is non-nil
// only near the root: a child position matching an already-repeated game
// position scores 0 without recursing, and deeper nodes search with no
// history at all.
func (s *Searcher) negamax(b *board.BoardState, h *board.History, depth int) (board.Score, []board.Move) {
	s.Nodes++

	if b.Halfmove() >= 100 && !b.InCheck(b.SideToMove()) {
		return 0, nil
	}

	moves := b.LegalMoves()
	if len(moves) == 0 {
		if b.InCheck(b.SideToMove()) {
			return board.MateLoss(0), nil
		}
		return 0, nil
	}
	if depth <= 0 {
		return s.Eval.Score(b), nil
	}
	best := board.NegInf
	var bestLine []board.Move
	for i, m := range moves {
		info := b.Move(m)

		var score board.Score
		var line []board.Move
		if h != nil && b.Halfmove() != 0 && h.AllowsRepetition(b) {
			score = 0
		} else {
			child, sub := s.negamax(b, nil, depth-1)
			score = -child.Deepen()
			line = sub
		}

		b.UndoMove(info)

		if i == 0 || score > best {
			best = score
			bestLine = append([]board.Move{m}, line...)
		}
	}
	return best, bestLine
}
