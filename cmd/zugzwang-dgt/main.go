// zugzwang-dgt plays a game between a human on a DGT EBoard (via LiveChess)
// and the engine. The human plays White on the physical board; engine
// replies are printed for the operator to reproduce on the board, and play
// continues once the board matches.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/herohde/livechess-go/pkg/livechess"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"

	"github.com/hollowrook/zugzwang/pkg/board"
	"github.com/hollowrook/zugzwang/pkg/board/fen"
	"github.com/hollowrook/zugzwang/pkg/engine"
)

var (
	serial = flag.String("serial", "auto", "Board selection by serial number (default: auto)")
	flip   = flag.Bool("flip", false, "Flip board")
	depth  = flag.Uint("depth", 4, "Fixed search depth")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: zugzwang-dgt [options]

ZUGZWANG-DGT plays the engine against a human on a DGT EBoard.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	id := livechess.EBoardSerial(*serial)
	if id == "auto" {
		auto, err := livechess.AutoDetect(ctx, livechess.DefaultClient)
		if err != nil {
			logw.Exitf(ctx, "Failed to autodetect board: %v", err)
		}
		id = auto
	}

	client, events, err := livechess.NewFeed(ctx, id)
	if err != nil {
		logw.Exitf(ctx, "Feed for %v failed: %v", id, err)
	}
	if *flip {
		if err := client.Flip(ctx, true); err != nil {
			logw.Exitf(ctx, "Flip board %v failed: %v", id, err)
		}
	}
	if err := client.Setup(ctx, fen.Starting); err != nil {
		logw.Exitf(ctx, "Setup board %v failed: %v", id, err)
	}

	e := engine.New(ctx, "zugzwang-dgt", "hollowrook", engine.WithOptions(engine.Options{Depth: *depth}))
	w := newWatcher(ctx, events)

	fmt.Println("Board ready. Play White; engine replies will be printed.")

	for {
		m, ok := w.awaitMove(ctx, e.Board())
		if !ok {
			return
		}
		if err := e.Move(ctx, m.String()); err != nil {
			logw.Errorf(ctx, "Board move %v rejected: %v", m, err)
			continue
		}
		if done := report(e); done {
			return
		}

		res, ok := e.Search(ctx, 0)
		if !ok {
			report(e)
			return
		}
		if err := e.Move(ctx, res.Move.String()); err != nil {
			logw.Exitf(ctx, "Engine reply %v rejected: %v", res.Move, err)
		}
		fmt.Printf("engine plays %v\n", res.Move)
		if done := report(e); done {
			return
		}

		if !w.awaitPosition(ctx, placement(e.Board())) {
			return
		}
	}
}

// report prints a finished game's result and returns whether the game is
// over.
func report(e *engine.Engine) bool {
	outcome := e.Outcome()
	if outcome == board.InProgress {
		return false
	}
	fmt.Printf("game over: %v\n", outcome)
	if out, err := e.PGN(); err == nil {
		fmt.Println(out)
	}
	return true
}

// placement is the piece-placement field of a position's FEN, the part a
// DGT board can observe.
func placement(b *board.BoardState) string {
	return strings.SplitN(fen.Encode(b), " ", 2)[0]
}

// watcher tracks the most recent board snapshot reported by LiveChess.
type watcher struct {
	last  atomic.Pointer[livechess.EBoardEventResponse]
	pulse *iox.Pulse
}

func newWatcher(ctx context.Context, events <-chan livechess.EBoardEventResponse) *watcher {
	w := &watcher{pulse: iox.NewPulse()}
	go w.process(ctx, events)
	return w
}

func (w *watcher) process(ctx context.Context, events <-chan livechess.EBoardEventResponse) {
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			w.last.Store(&event)
			w.pulse.Emit()

		case <-ctx.Done():
			return
		}
	}
}

// awaitMove blocks until the physical board matches a position reachable by
// exactly one legal move from b, and returns that move.
func (w *watcher) awaitMove(ctx context.Context, b *board.BoardState) (board.Move, bool) {
	candidates := map[string]board.Move{}
	for _, m := range b.LegalMoves() {
		info := b.Move(m)
		candidates[placement(b)] = m
		b.UndoMove(info)
	}

	for {
		if last := w.last.Load(); last != nil {
			if m, ok := candidates[last.Board]; ok {
				return m, true
			}
		}
		select {
		case <-w.pulse.Chan():
			// ok: try again
		case <-ctx.Done():
			return board.Move{}, false
		}
	}
}

// awaitPosition blocks until the physical board shows the given placement,
// i.e. the operator has reproduced the engine's reply.
func (w *watcher) awaitPosition(ctx context.Context, want string) bool {
	for {
		if last := w.last.Load(); last != nil && last.Board == want {
			return true
		}
		select {
		case <-w.pulse.Chan():
			// ok: try again
		case <-ctx.Done():
			return false
		}
	}
}
