package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/jsvensson/xcolor/internal/cli"
)

var version = "dev" // Injected at build time via ldflags

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewRootCommand(version).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(cli.ExitCode(err))
	}
}
