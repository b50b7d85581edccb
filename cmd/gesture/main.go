package main

import (
	"fmt"
	"os"

	"github.com/go-sod/gesture/internal/logging"
	"github.com/go-sod/gesture/internal/shutdown"
)

func main() {
	ctx, done := shutdown.New()
	defer done()
	ctx = logging.WithLogger(ctx, logging.NewLogger(os.Getenv("GESTURE_LOG_LEVEL"), true))

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		done()
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
