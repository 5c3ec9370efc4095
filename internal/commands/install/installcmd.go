package install

import (
	"context"

	"github.com/indaco/wsi/internal/cliflags"
	"github.com/indaco/wsi/internal/clix"
	"github.com/indaco/wsi/internal/dispatch"
	"github.com/urfave/cli/v3"
)

// Run returns the "install" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:      "install",
		Aliases:   []string{"i", "add"},
		Usage:     "Install a package in every workspace that depends on it",
		UsageText: "wsi install <package>[@version] [--cwd path] [--pm npm|pnpm] [--dry-run] [--pick]",
		Flags:     cliflags.DispatchFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return clix.RunDelegated(ctx, cmd, dispatch.Install)
		},
	}
}
