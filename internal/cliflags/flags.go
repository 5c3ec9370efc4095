// Package cliflags defines the flags shared by wsi commands.
package cliflags

import "github.com/urfave/cli/v3"

// GlobalFlags are accepted by every command.
func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "cwd",
			Usage:       "Monorepo root containing the root package.json",
			DefaultText: "current directory",
		},
		&cli.StringFlag{
			Name:  "pm",
			Usage: "Package manager to delegate to: npm, pnpm (overrides .wsi.yaml)",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "Disable colored output",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Print debug logs to stderr",
		},
	}
}

// DispatchFlags are accepted by commands that run the package manager.
func DispatchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "dry-run",
			Aliases: []string{"n"},
			Usage:   "Print the package manager command without running it",
		},
		&cli.BoolFlag{
			Name:  "pick",
			Usage: "Interactively choose among the dependant workspaces",
		},
	}
}

