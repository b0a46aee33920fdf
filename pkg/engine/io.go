package engine

import (
	"bufio"
	"context"
	"io"

	"github.com/seekerror/logw"
)

// ReadLines streams lines from r on a channel, closing it when r returns
// EOF or an error. Each line has its trailing newline stripped.
func ReadLines(ctx context.Context, r io.Reader) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := scanner.Text()
			logw.Debugf(ctx, "<< %v", line)
			out <- line
		}
	}()
	return out
}

// WriteLines drains lines from in, writing each to w followed by a
// newline, until in is closed.
func WriteLines(ctx context.Context, w io.Writer, in <-chan string) {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	for line := range in {
		logw.Debugf(ctx, ">> %v", line)
		bw.WriteString(line)
		bw.WriteByte('\n')
		bw.Flush()
	}
}
