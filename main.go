package main

import (
	"fmt"
	"io"
	"os"
	"time"
)

type benchmark struct {
	header string
	param  int64
	fn     func(int64) int64
}

var benchmarks = []benchmark{
	{header: "Arithmetic loop (%d iterations):", param: 10_000_000, fn: benchmarkArithmetic},
	{header: "Fibonacci (n=%d):", param: 35, fn: fib},
}

func run(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "=== Go Benchmarks ==="); err != nil {
		return err
	}

	for _, bm := range benchmarks {
		// time.Now carries a monotonic reading; Since uses it.
		start := time.Now()
		result := bm.fn(bm.param)
		elapsed := time.Since(start)

		if _, err := fmt.Fprintf(w, bm.header+"\n", bm.param); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  Time: %d ms\n  Result: %d\n", elapsed.Milliseconds(), result); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
