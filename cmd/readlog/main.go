package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/crimson-sun/readlog/internal/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// cobra has already printed the error to stderr.
	if err := cmd.NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
