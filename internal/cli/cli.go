package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/indaco/wsi/internal/cliflags"
	"github.com/indaco/wsi/internal/commands/install"
	"github.com/indaco/wsi/internal/commands/list"
	"github.com/indaco/wsi/internal/commands/uninstall"
	"github.com/indaco/wsi/internal/dispatch"
	"github.com/indaco/wsi/internal/printer"
	urfavecli "github.com/urfave/cli/v3"
)

// Version is set at build time.
var Version = "dev"

// New builds and returns the root CLI command,
// configuring all subcommands and flags for the wsi cli.
func New() *urfavecli.Command {
	return &urfavecli.Command{
		Name:                  "wsi",
		Version:               Version,
		Usage:                 "Install or remove a package only in the workspaces that depend on it",
		UsageText:             "wsi <command> <package> [--cwd path] [flags]",
		EnableShellCompletion: true,
		Flags:                 cliflags.GlobalFlags(),
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(cmd.Bool("no-color"))
			return ctx, nil
		},
		Action:                rootAction,
		// Exit codes are mapped by the caller.
		ExitErrHandler: func(context.Context, *urfavecli.Command, error) {},
		Commands: []*urfavecli.Command{
			install.Run(),
			uninstall.Run(),
			list.Run(),
		},
	}
}

// rootAction runs when no known command was given.
func rootAction(ctx context.Context, cmd *urfavecli.Command) error {
	if cmd.Args().Len() == 0 {
		_ = urfavecli.ShowRootCommandHelp(cmd)
		return dispatch.NewExitError(2, errors.New("missing <command>"))
	}
	return dispatch.NewExitError(2, fmt.Errorf("unknown command %q", cmd.Args().First()))
}
