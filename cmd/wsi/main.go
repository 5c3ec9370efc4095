package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"

	"github.com/indaco/wsi/internal/cli"
	"github.com/indaco/wsi/internal/dispatch"
	"github.com/indaco/wsi/internal/printer"
	urfavecli "github.com/urfave/cli/v3"
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	err := runCLI(ctx, args, stdin, stdout, stderr)
	return exitCode(stderr, err)
}

func runCLI(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	app := cli.New()
	app.Reader = stdin
	app.Writer = stdout
	app.ErrWriter = stderr
	return app.Run(ctx, args)
}

// exitCode reports err on stderr and maps it to an exit code. A child that
// exited non-zero has already written its own diagnostics.
func exitCode(stderr io.Writer, err error) int {
	if err == nil {
		return 0
	}

	var exitErr *dispatch.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			printer.PrintError(stderr, exitErr.Err.Error())
		}
		return exitErr.Code
	}

	printer.PrintError(stderr, err.Error())

	var coder urfavecli.ExitCoder
	if errors.As(err, &coder) && coder.ExitCode() != 0 {
		return coder.ExitCode()
	}
	// Anything else comes from argument parsing.
	return 2
}
