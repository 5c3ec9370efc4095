package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/indaco/wsi/internal/printer"
	"go.uber.org/zap"
)

// DefaultShell interprets the dispatched command line.
const DefaultShell = "sh"

// interruptGrace is how long an interrupted child may take to exit before
// it is killed.
const interruptGrace = 10 * time.Second

// Runner executes command lines through a shell with inherited streams.
type Runner struct {
	shell       string
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	dryRun      bool
	logger      *zap.Logger
	execCommand func(ctx context.Context, name string, arg ...string) *exec.Cmd
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithShell sets the shell used to interpret the command line.
func WithShell(shell string) RunnerOption {
	return func(r *Runner) {
		if shell != "" {
			r.shell = shell
		}
	}
}

// WithStreams sets the streams handed to the child process.
func WithStreams(stdin io.Reader, stdout, stderr io.Writer) RunnerOption {
	return func(r *Runner) {
		r.stdin = stdin
		r.stdout = stdout
		r.stderr = stderr
	}
}

// WithDryRun makes Run print the command without executing it.
func WithDryRun(dryRun bool) RunnerOption {
	return func(r *Runner) {
		r.dryRun = dryRun
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *zap.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRunner creates a Runner wired to the process streams.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		shell:       DefaultShell,
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		logger:      zap.NewNop(),
		execCommand: exec.CommandContext,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run prints command, runs it with "<shell> -c" in dir and waits for it.
// It returns the child's exit code, or 1 when the child did not exit
// normally (for example when killed by a signal). A non-nil error means
// the child could not be started or waited on.
func (r *Runner) Run(ctx context.Context, dir, command string) (int, error) {
	fmt.Fprintf(r.stdout, "%s %s\n", printer.Faint("Running command:"), command)

	if r.dryRun {
		printer.PrintInfo(r.stdout, "Dry run, command not executed.")
		r.logger.Debug("dry run, command not executed", zap.String("command", command))
		return 0, nil
	}

	cmd := r.execCommand(ctx, r.shell, "-c", command)
	cmd.Dir = dir
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	if cmd.Cancel != nil {
		// Forward cancellation as an interrupt so the package manager can
		// clean up and report its own exit status.
		cmd.Cancel = func() error {
			return cmd.Process.Signal(os.Interrupt)
		}
		cmd.WaitDelay = interruptGrace
	}

	r.logger.Debug("spawning command",
		zap.String("shell", r.shell),
		zap.String("dir", dir),
		zap.String("command", command))

	if err := cmd.Start(); err != nil {
		return 1, fmt.Errorf("failed to execute command: %w", err)
	}

	err := cmd.Wait()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			code = 1
		}
		r.logger.Debug("command exited", zap.Int("code", code))
		return code, nil
	}
	return 1, fmt.Errorf("failed to wait on child: %w", err)
}
