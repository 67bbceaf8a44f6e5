package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/awshell/internal/app"
	"github.com/five82/awshell/internal/cli"
	"github.com/five82/awshell/internal/logging"
)

// Runtime is the application runtime started after the command line is parsed.
type Runtime interface {
	Publish(args app.CLIArgs) error
	Run(ctx context.Context) error
}

// run parses the command line, publishes the startup args and hands control to
// the runtime. It returns the process exit code.
//
// newRuntime is only called once parsing succeeded, so help, version and usage
// errors never construct a runtime.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, newRuntime func() Runtime) int {
	parsed, err := cli.Parse(args, stdout, stderr)
	if err != nil {
		return cli.ExitCode(err)
	}

	logger := slog.New(logging.NewTerminalHandler(stderr, logging.Level(parsed.Verbose)))

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := dispatch(ctx, parsed, newRuntime(), logger); err != nil {
		logger.Error("aw-shell failed to start", "error", err)
		return 1
	}
	return 0
}

// dispatch publishes the startup args exactly once, then runs the runtime.
func dispatch(ctx context.Context, parsed cli.Args, rt Runtime, logger *slog.Logger) error {
	args := app.CLIArgs{
		Testing: parsed.Testing,
		Verbose: parsed.Verbose,
		Port:    parsed.Port,
		HasPort: parsed.HasPort,
	}
	if err := rt.Publish(args); err != nil {
		return &app.StartupFault{Stage: "publish", Err: err}
	}
	logger.Debug("startup args published",
		"testing", args.Testing,
		"verbose", args.Verbose,
		"port", args.Port,
		"port_set", args.HasPort)

	if err := rt.Run(ctx); err != nil {
		return &app.StartupFault{Stage: "run", Err: err}
	}
	return nil
}
