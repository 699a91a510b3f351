package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/ardnew/lamb/cli"
	"github.com/ardnew/lamb/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cli.Run(ctx, os.Exit, os.Args[1:]...)

	stop()

	if err != nil {
		log.Error("lamb failed", slog.Any("error", err))
		os.Exit(exitCode(err))
	}
}

// exitCode honors errors that carry their own status, such as kong's usage
// errors, and is 1 otherwise.
func exitCode(err error) int {
	var coder kong.ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}

	return 1
}
