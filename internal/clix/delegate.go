package clix

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/indaco/wsi/internal/dispatch"
	"github.com/indaco/wsi/internal/printer"
	"github.com/indaco/wsi/internal/tui"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

var (
	// NewPickerFn builds the picker used by --pick. Tests replace it.
	NewPickerFn = tui.NewPicker
	// IsInteractiveFn reports whether --pick may prompt. Tests replace it.
	IsInteractiveFn = tui.IsInteractive
)

// errNothingSelected is returned when --pick ends with an empty selection.
var errNothingSelected = errors.New("no workspaces selected")

// RunDelegated resolves the dependant workspaces of the <package> argument
// and runs the package manager's action scoped to them.
func RunDelegated(ctx context.Context, cmd *cli.Command, action dispatch.Action) error {
	execCtx, err := GetExecutionContext(ctx, cmd)
	if err != nil {
		return err
	}

	res, err := execCtx.Resolve(ctx)
	if err != nil {
		return err
	}

	targets := res.Dependants
	if cmd.Bool("pick") {
		targets, err = pick(execCtx, res.Name, targets)
		if err != nil {
			return err
		}
	}

	command := execCtx.PackageManager.Command(action, targets, res.Package)
	execCtx.Logger.Debug("dispatching",
		zap.String("action", string(action)),
		zap.Strings("workspaces", targets))

	dryRun := cmd.Bool("dry-run")
	runner := dispatch.NewRunner(
		dispatch.WithShell(execCtx.Config.Shell),
		dispatch.WithStreams(execCtx.Stdin, execCtx.Stdout, execCtx.Stderr),
		dispatch.WithDryRun(dryRun),
		dispatch.WithLogger(execCtx.Logger),
	)

	code, err := runner.Run(ctx, execCtx.Root, command)
	if err != nil {
		return dispatch.NewExitError(ExitFailure, err)
	}
	if code != 0 {
		return dispatch.NewExitError(code, nil)
	}
	if !dryRun {
		printer.PrintSuccess(execCtx.Stdout, fmt.Sprintf("%s %s in %s",
			doneVerb(action), res.Package, strings.Join(targets, ", ")))
	}
	return nil
}

func doneVerb(action dispatch.Action) string {
	if action == dispatch.Uninstall {
		return "Removed"
	}
	return "Installed"
}

func pick(execCtx *ExecutionContext, name string, names []string) ([]string, error) {
	if !IsInteractiveFn() {
		printer.PrintWarning(execCtx.Stderr, "--pick ignored: not an interactive terminal, using every dependant workspace")
		return names, nil
	}

	selected, err := NewPickerFn().Pick(fmt.Sprintf("Workspaces depending on %s", name), names)
	if err != nil {
		return nil, dispatch.NewExitError(ExitFailure, fmt.Errorf("selection aborted: %w", err))
	}
	if len(selected) == 0 {
		return nil, dispatch.NewExitError(ExitFailure, errNothingSelected)
	}
	return selected, nil
}
