package list

import (
	"context"
	"fmt"

	"github.com/indaco/wsi/internal/clix"
	"github.com/urfave/cli/v3"
)

// Run returns the "list" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "Print the workspaces that depend on a package",
		UsageText: "wsi list <package> [--cwd path] [--pm npm|pnpm]",
		Action:    runListCmd,
	}
}

// runListCmd prints one dependant workspace name per line.
func runListCmd(ctx context.Context, cmd *cli.Command) error {
	execCtx, err := clix.GetExecutionContext(ctx, cmd)
	if err != nil {
		return err
	}

	res, err := execCtx.Resolve(ctx)
	if err != nil {
		return err
	}

	for _, name := range res.Dependants {
		fmt.Fprintln(execCtx.Stdout, name)
	}
	return nil
}
