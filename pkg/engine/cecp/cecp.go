// Package cecp is the boundary between an Engine and a CECP/XBoard peer.
// It recognizes enough of the protocol to hold a game (xboard handshake,
// new, setboard, force/go, moves, undo, time keeping, thinking output) and
// logs everything else unrecognized; it is deliberately not a complete
// implementation of the verb set XBoard defines.
package cecp

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"

	"github.com/hollowrook/zugzwang/pkg/board"
	"github.com/hollowrook/zugzwang/pkg/board/fen"
	"github.com/hollowrook/zugzwang/pkg/engine"
)

const ProtocolName = "xboard"

// Driver reads CECP command lines and drives an Engine in response, writing
// replies (moves, results, and thinking lines) to out.
type Driver struct {
	iox.AsyncCloser

	e   *engine.Engine
	out chan<- string

	forceMode bool
	random    bool
	post      bool
	remaining time.Duration
}

// NewDriver starts processing in in a background goroutine and returns
// immediately; Closed() reports when processing has stopped.
func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		AsyncCloser: iox.NewAsyncCloser(),
		e:           e,
		out:         out,
	}
	go d.process(ctx, in)
	return d, out
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "CECP protocol initialized")

	for {
		line, ok := <-in
		if !ok {
			logw.Infof(ctx, "Input stream broken. Exiting")
			return
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "xboard":
			// handshake only; no reply required.
		case "protover":
			d.out <- fmt.Sprintf("feature myname=\"%v\" name=1 setboard=1 ping=1 usermove=1 "+
				"edit=0 analyze=0 colors=0 sigint=0 sigterm=0 done=1", d.e.Name())
		case "ping":
			d.out <- strings.Join(append([]string{"pong"}, args...), " ")
		case "new":
			if err := d.e.Reset(ctx, fen.Starting); err != nil {
				logw.Errorf(ctx, "new: %v", err)
			}
			d.forceMode = false
		case "setboard":
			if len(args) == 0 {
				d.out <- "tellusererror Illegal position"
				continue
			}
			if err := d.e.Reset(ctx, strings.Join(args, " ")); err != nil {
				logw.Errorf(ctx, "setboard: %v", err)
				d.out <- "tellusererror Illegal position"
			}
		case "force":
			d.forceMode = true
		case "go":
			d.forceMode = false
			d.moveNow(ctx)
		case "usermove", "move":
			if len(args) != 1 {
				logw.Errorf(ctx, "%v: missing move argument", cmd)
				continue
			}
			if err := d.e.Move(ctx, args[0]); err != nil {
				d.out <- "Illegal move: " + args[0]
				continue
			}
			if !d.forceMode {
				d.moveNow(ctx)
			}
		case "undo":
			if err := d.e.TakeBack(ctx); err != nil {
				logw.Errorf(ctx, "undo: %v", err)
			}
		case "remove":
			// Retract a full move: the engine's reply and the user's move.
			for i := 0; i < 2; i++ {
				if err := d.e.TakeBack(ctx); err != nil {
					logw.Errorf(ctx, "remove: %v", err)
					break
				}
			}
		case "random":
			d.random = !d.random
			d.e.SetRandom(d.random)
		case "post":
			d.post = true
		case "nopost":
			d.post = false
		case "time":
			// Remaining time on the engine's clock, in centiseconds.
			if len(args) == 1 {
				if cs, err := strconv.Atoi(args[0]); err == nil {
					d.remaining = time.Duration(cs) * 10 * time.Millisecond
				}
			}
		case "otim":
			// Opponent clock; nothing to keep.
		case "sd":
			if len(args) == 1 {
				if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
					d.e.SetDepth(uint(n))
				}
			}
		case "level", "st", "hard", "easy", "computer", "accepted", "rejected", "name", "draw":
			// Recognized but nothing to do: no pondering, no draw offers,
			// and level-based clocks arrive through "time" updates instead.
		case "result":
			// The game is over from the peer's point of view; stop replying.
			d.forceMode = true
			logw.Infof(ctx, "Result: %v", strings.Join(args, " "))
		case "quit":
			return
		default:
			logw.Warningf(ctx, "Unrecognized command: %v", line)
		}
	}
}

func (d *Driver) moveNow(ctx context.Context) {
	res, ok := d.e.Search(ctx, d.remaining)
	if !ok {
		d.out <- resultReply(d.e)
		return
	}
	if d.post && res.Thinking != "" {
		d.out <- res.Thinking
	}
	d.out <- fmt.Sprintf("move %v", res.Move)

	if reply := resultReply(d.e); reply != "" {
		d.out <- reply
	}
}

func resultReply(e *engine.Engine) string {
	switch e.Outcome() {
	case board.WhiteWins:
		return "1-0 {White mates}"
	case board.BlackWins:
		return "0-1 {Black mates}"
	case board.DrawStalemate:
		return "1/2-1/2 {Stalemate}"
	case board.DrawFiftyMove:
		return "1/2-1/2 {Fifty move rule}"
	case board.DrawRepetition:
		return "1/2-1/2 {Threefold repetition}"
	case board.DrawInsufficientMaterial:
		return "1/2-1/2 {Insufficient material}"
	default:
		return ""
	}
}
