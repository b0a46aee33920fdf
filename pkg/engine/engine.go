// Package engine wires the board, eval, and search packages into the
// single stateful object a protocol driver talks to: one game in progress,
// one move at a time.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"

	"github.com/hollowrook/zugzwang/pkg/board"
	"github.com/hollowrook/zugzwang/pkg/board/fen"
	"github.com/hollowrook/zugzwang/pkg/board/pgn"
	"github.com/hollowrook/zugzwang/pkg/eval"
	"github.com/hollowrook/zugzwang/pkg/search"
)

var version = build.NewVersion(0, 1, 0)

// Options are engine-wide defaults, overridable per call.
type Options struct {
	// Depth is the search depth before time-aware trimming.
	Depth uint
	// Random enables deterministic score jitter at evaluation leaves, as
	// requested by the controlling protocol (CECP "random" toggle).
	Random bool
}

func (o Options) String() string {
	return fmt.Sprintf("{depth=%v, random=%v}", o.Depth, o.Random)
}

// Engine encapsulates one game in progress: position, move history, and
// the searcher used to pick replies. Safe for concurrent use; all public
// methods serialize through a single mutex, matching the one-search-at-a-
// time model this package is built around.
type Engine struct {
	name, author string
	opts         Options
	seed         uint32

	mu sync.Mutex

	b       *board.BoardState
	hist    *board.History
	undo    []board.MoveInfo
	rootFEN string
	header  pgn.Header

	searcher *search.Searcher
	nps      *search.NPSEstimator
}

// Option is an engine construction option.
type Option func(*Engine)

// WithOptions sets the default search options.
func WithOptions(opts Options) Option {
	return func(e *Engine) { e.opts = opts }
}

// WithSeed fixes the PRNG seed used for evaluation jitter, for
// reproducible testing. Defaults to the wall clock in milliseconds.
func WithSeed(seed uint32) Option {
	return func(e *Engine) { e.seed = seed }
}

// WithHeader sets the PGN tag-pair values (event, site, players) used by
// PGN. Unset fields render as "?".
func WithHeader(h pgn.Header) Option {
	return func(e *Engine) { e.header = h }
}

// New constructs an Engine at the standard starting position.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{
		name:   name,
		author: author,
		seed:   uint32(time.Now().UnixMilli()),
		nps:    search.NewNPSEstimator(),
	}
	for _, fn := range opts {
		fn(e)
	}

	_ = e.Reset(ctx, fen.Starting)

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version, as reported to a CECP peer.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the configured author string.
func (e *Engine) Author() string {
	return e.author
}

// SetDepth overrides the default search depth.
func (e *Engine) SetDepth(depth uint) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.opts.Depth = depth
}

// SetRandom toggles deterministic evaluation jitter on or off, mirroring
// the CECP "random" command. Takes effect on the evaluator used by the
// current and future searches.
func (e *Engine) SetRandom(on bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.opts.Random = on

	ev := eval.NewEvaluator()
	if on {
		ev.WithJitter(e.seed)
	}
	e.searcher.Eval = ev
}

// Position returns the current position as a FEN string.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fen.Encode(e.b)
}

// Board returns a clone of the current position, safe for the caller to
// mutate.
func (e *Engine) Board() *board.BoardState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.b.Clone()
}

// Reset starts a new game from the given FEN position.
func (e *Engine) Reset(ctx context.Context, position string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	b, err := fen.Decode(position)
	if err != nil {
		return err
	}

	e.b = b
	e.hist = &board.History{}
	e.hist.Push(e.b)
	e.undo = nil
	e.rootFEN = position

	ev := eval.NewEvaluator()
	if e.opts.Random {
		ev.WithJitter(e.seed)
	}
	e.searcher = search.NewSearcher(ev)

	logw.Infof(ctx, "New board: %v", position)
	return nil
}

// Move plays move, usually the opponent's, on the current position. The
// move must be at least pseudolegal and must not leave the mover's own
// king in check.
func (e *Engine) Move(ctx context.Context, move string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	candidate, err := board.ParseMove(move)
	if err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	if r := e.b.ValidateMove(candidate); r != board.Valid {
		return fmt.Errorf("illegal move %v: %v", candidate, r)
	}

	info := e.b.Move(candidate)
	e.undo = append(e.undo, info)
	e.hist.PushMove(e.b, candidate)

	logw.Infof(ctx, "Move %v: %v", candidate, fen.Encode(e.b))
	return nil
}

// TakeBack undoes the most recent move.
func (e *Engine) TakeBack(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.undo) == 0 {
		return fmt.Errorf("no move to take back")
	}
	info := e.undo[len(e.undo)-1]
	e.undo = e.undo[:len(e.undo)-1]

	e.hist.Pop()
	e.b.UndoMove(info)

	logw.Infof(ctx, "Takeback %v", info.Move)
	return nil
}

// Result is the outcome of a completed Search: the move chosen, its score,
// and a CECP-style thinking line suitable for display.
type Result struct {
	Move     board.Move
	Score    board.Score
	Thinking string
}

// Search picks a reply to the current position, respecting remaining as a
// soft budget: the configured depth is trimmed down (never below 0) until
// the estimated search time fits within it. Returns ok=false if the side to
// move has no legal moves (checkmate or stalemate).
func (e *Engine) Search(ctx context.Context, remaining time.Duration) (Result, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Search %v, depth=%v, remaining=%v", fen.Encode(e.b), e.opts.Depth, remaining)

	v, thinking, ok := search.SelectMove(e.searcher, e.b, e.hist, int(e.opts.Depth), remaining, e.nps)
	if !ok {
		logw.Infof(ctx, "Search found no legal move")
		return Result{}, false
	}

	logw.Infof(ctx, "Search chose %v (score=%v, nodes=%v)", v.Move, v.Score, e.searcher.Nodes)
	return Result{Move: v.Move, Score: v.Score, Thinking: thinking}, true
}

// Outcome classifies the current position (checkmate, stalemate, draw by
// repetition or insufficient material), or InProgress.
func (e *Engine) Outcome() board.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.b.Outcome(e.hist)
}

// PGN renders the game played so far as a complete PGN game, re-running the
// move generator against the starting position to compute SAN
// disambiguation, check, and mate suffixes.
func (e *Engine) PGN() (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return pgn.Write(e.header, e.rootFEN, e.hist.Moves(), e.b.Outcome(e.hist))
}
