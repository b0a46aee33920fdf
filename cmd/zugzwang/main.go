package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/seekerror/logw"

	"github.com/hollowrook/zugzwang/pkg/engine"
	"github.com/hollowrook/zugzwang/pkg/engine/cecp"
)

var (
	depth = flag.Uint("depth", 4, "Fixed search depth before time-aware trimming")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: zugzwang [options]

ZUGZWANG is a fixed-depth minimax chess engine speaking CECP/XBoard.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, "zugzwang", "hollowrook", engine.WithOptions(engine.Options{Depth: *depth}))

	in := engine.ReadLines(ctx, os.Stdin)
	driver, out := cecp.NewDriver(ctx, e, in)
	go engine.WriteLines(ctx, os.Stdout, out)

	<-driver.Closed()
	logw.Infof(ctx, "Engine exiting")
}
