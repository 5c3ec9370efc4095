// Package clix bridges urfave/cli commands and the workspace pipeline.
package clix

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/indaco/wsi/internal/config"
	"github.com/indaco/wsi/internal/core"
	"github.com/indaco/wsi/internal/dispatch"
	"github.com/indaco/wsi/internal/logging"
	"github.com/indaco/wsi/internal/operations"
	"github.com/indaco/wsi/internal/tui"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// Exit codes.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// ExecutionContext holds everything a command needs once flags and the
// configuration file have been resolved.
type ExecutionContext struct {
	Root           string
	Package        string
	Config         *config.Config
	PackageManager dispatch.PackageManager
	Logger         *zap.Logger

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// GetExecutionContext resolves the working directory, the configuration and
// the <package> argument of cmd.
func GetExecutionContext(ctx context.Context, cmd *cli.Command) (*ExecutionContext, error) {
	root := cmd.Root()

	pkg, err := packageArg(cmd)
	if err != nil {
		return nil, dispatch.NewExitError(ExitUsage, err)
	}

	dir, err := workingDir(cmd.String("cwd"))
	if err != nil {
		return nil, dispatch.NewExitError(ExitFailure, err)
	}

	cfg, err := config.LoadConfigFn(dir)
	if err != nil {
		return nil, dispatch.NewExitError(ExitFailure, err)
	}
	if pm := cmd.String("pm"); pm != "" {
		cfg.PackageManager = pm
	}
	if err := cfg.Validate(); err != nil {
		return nil, dispatch.NewExitError(ExitUsage, err)
	}

	pm, err := dispatch.ParsePackageManager(cfg.PackageManager)
	if err != nil {
		return nil, dispatch.NewExitError(ExitUsage, err)
	}
	tui.SetTheme(cfg.Theme)

	logger := logging.New(root.ErrWriter, cmd.Bool("verbose"))
	logger.Debug("execution context",
		zap.String("root", dir),
		zap.String("package", pkg),
		zap.String("package-manager", pm.String()))

	return &ExecutionContext{
		Root:           dir,
		Package:        pkg,
		Config:         cfg,
		PackageManager: pm,
		Logger:         logger,
		Stdin:          root.Reader,
		Stdout:         root.Writer,
		Stderr:         root.ErrWriter,
	}, nil
}

// Resolve finds the workspaces of the monorepo that depend on the package.
func (e *ExecutionContext) Resolve(ctx context.Context) (*operations.Resolution, error) {
	op := operations.NewResolveOperation(core.NewOSFileSystem(), operations.ResolveOptions{
		PackageManager: e.PackageManager,
		Exclude:        e.Config.Exclude,
		Concurrency:    e.Config.Concurrency,
		Logger:         e.Logger,
	})

	res, err := op.Execute(ctx, e.Root, e.Package)
	if err != nil {
		return nil, dispatch.NewExitError(ExitFailure, err)
	}
	if len(res.Patterns) == 0 {
		return res, dispatch.NewExitError(ExitFailure,
			fmt.Errorf("%w for package: %s (no workspaces declared in %s)",
				dispatch.ErrNoDependants, res.Name, e.patternSource()))
	}
	if len(res.Dependants) == 0 {
		return res, dispatch.NewExitError(ExitFailure,
			fmt.Errorf("%w for package: %s", dispatch.ErrNoDependants, res.Name))
	}
	return res, nil
}

// patternSource names the file workspace patterns are read from.
func (e *ExecutionContext) patternSource() string {
	if e.PackageManager == dispatch.PNPM {
		return core.PnpmWorkspaceFile + " or " + core.ManifestFile
	}
	return core.ManifestFile
}

func packageArg(cmd *cli.Command) (string, error) {
	args := cmd.Args()
	switch {
	case args.Len() == 0:
		return "", errors.New("missing <package> argument")
	case args.Len() > 1:
		return "", fmt.Errorf("expected a single <package> argument, got %d", args.Len())
	default:
		return args.First(), nil
	}
}

func workingDir(flag string) (string, error) {
	if flag == "" {
		dir, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to determine current directory: %w", err)
		}
		return dir, nil
	}

	dir, err := filepath.Abs(flag)
	if err != nil {
		return "", fmt.Errorf("invalid --cwd %q: %w", flag, err)
	}
	return dir, nil
}
