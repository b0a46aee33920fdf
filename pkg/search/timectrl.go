package search

import (
	"fmt"
	"strings"
	"time"

	"github.com/hollowrook/zugzwang/pkg/board"
	"github.com/hollowrook/zugzwang/pkg/eval"
)

// estimateNodes approximates how many nodes a search of the given depth
// will visit, from the branching factor observed at the root. The formula
// is the cheap calibration the engine uses in place of iterative deepening:
// it only needs to be in the right order of magnitude, not exact.
func estimateNodes(moveCount, depth int) int64 {
	if moveCount <= 0 {
		moveCount = 1
	}
	branch := int64(moveCount)
	total := int64(1)
	for i := 0; i <= depth; i++ {
		total *= branch
	}
	return (total / 5) * 31
}

// NPSEstimator tracks a rolling nodes-per-second figure across searches, so
// TrimDepth can convert a node-count estimate into a time estimate without
// needing a fresh calibration run.
type NPSEstimator struct {
	nps float64
}

// NewNPSEstimator seeds the estimator with a conservative starting guess.
func NewNPSEstimator() *NPSEstimator {
	return &NPSEstimator{nps: 50_000}
}

// Update folds a completed search's node count and wall time into the
// rolling estimate, weighting the fresh sample three to one over the old
// figure.
func (e *NPSEstimator) Update(nodes int, elapsed time.Duration) {
	if elapsed <= 0 {
		return
	}
	sample := float64(nodes) / elapsed.Seconds()
	if e.nps <= 0 {
		e.nps = sample
		return
	}
	e.nps = (e.nps + 3*sample) / 4
}

// NPS returns the current nodes-per-second estimate.
func (e *NPSEstimator) NPS() float64 {
	if e.nps <= 0 {
		return 1
	}
	return e.nps
}

// TrimDepth reduces depth, clamped at 0, until the estimated search time
// (moveCount legal moves at the root, e's current nodes-per-second figure)
// fits within remaining. A zero or negative remaining means no time
// control: the requested depth is kept as-is. It never returns a negative
// depth; at depth 0 the search degrades to a single-ply evaluation rather
// than failing to move.
func TrimDepth(depth, moveCount int, remaining time.Duration, e *NPSEstimator) int {
	if remaining <= 0 {
		return depth
	}
	for depth > 0 {
		nodes := estimateNodes(moveCount, depth)
		estimate := time.Duration(float64(nodes) / e.NPS() * float64(time.Second))
		if estimate <= remaining {
			break
		}
		depth--
	}
	return depth
}

// SelectMove runs time-aware depth trimming, then searches and reports both
// the chosen Variation and a CECP thinking line suitable for "post" output.
func SelectMove(s *Searcher, b *board.BoardState, h *board.History, baseDepth int, remaining time.Duration, e *NPSEstimator) (Variation, string, bool) {
	moves := b.LegalMoves()
	depth := TrimDepth(baseDepth, len(moves), remaining, e)

	start := time.Now()
	v, ok := s.Search(b, h, depth)
	elapsed := time.Since(start)
	e.Update(s.Nodes, elapsed)

	if !ok {
		return v, "", false
	}
	return v, formatThinking(depth, v, elapsed, s.Nodes), true
}

// cecpScore converts an internal score to the CECP thinking-line
// convention: centipawns for ordinary scores, 100000+N for "mate in N
// moves" and -100000-N for "mated in N moves", where internal mate depth
// counts plies.
func cecpScore(s board.Score) int {
	if !s.IsMate() {
		return int(s) * 100 / eval.PawnValue
	}
	plies := s.MatePlies()
	if plies < 0 {
		plies = -plies
	}
	moves := (plies + 1) / 2
	if s < 0 {
		return -100000 - moves
	}
	return 100000 + moves
}

// formatThinking renders a CECP post line: depth, score, centiseconds,
// nodes, selective depth, kilonodes per second, a zeroed tablebase field,
// then the principal variation in coordinate notation.
func formatThinking(depth int, v Variation, elapsed time.Duration, nodes int) string {
	var pv []string
	for _, m := range v.Line {
		pv = append(pv, m.String())
	}
	centis := elapsed.Milliseconds() / 10
	knps := int64(0)
	if secs := elapsed.Seconds(); secs > 0 {
		knps = int64(float64(nodes) / secs / 1000)
	}
	return fmt.Sprintf("%d %d %d %d %d %d %d\t%s",
		depth, cecpScore(v.Score), centis, nodes, depth, knps, 0, strings.Join(pv, " "))
}
