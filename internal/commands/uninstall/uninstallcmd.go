package uninstall

import (
	"context"

	"github.com/indaco/wsi/internal/cliflags"
	"github.com/indaco/wsi/internal/clix"
	"github.com/indaco/wsi/internal/dispatch"
	"github.com/urfave/cli/v3"
)

// Run returns the "uninstall" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:      "uninstall",
		Aliases:   []string{"remove", "rm"},
		Usage:     "Remove a package from every workspace that depends on it",
		UsageText: "wsi uninstall <package> [--cwd path] [--pm npm|pnpm] [--dry-run] [--pick]",
		Flags:     cliflags.DispatchFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return clix.RunDelegated(ctx, cmd, dispatch.Uninstall)
		},
	}
}
