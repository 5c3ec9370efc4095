// Package operations provides the workspace resolution shared by commands.
package operations

import (
	"context"
	"errors"
	"fmt"

	"github.com/indaco/wsi/internal/core"
	"github.com/indaco/wsi/internal/dispatch"
	"github.com/indaco/wsi/internal/manifest"
	"github.com/indaco/wsi/internal/pkgname"
	"github.com/indaco/wsi/internal/workspace"
	"go.uber.org/zap"
)

// ResolveOptions configures a ResolveOperation.
type ResolveOptions struct {
	PackageManager dispatch.PackageManager
	Exclude        []string
	Concurrency    int
	Logger         *zap.Logger
}

// Resolution is the outcome of resolving a package against a monorepo.
type Resolution struct {
	// Root is the monorepo root directory.
	Root string

	// Package is the identifier as given on the command line.
	Package string

	// Name is the package name extracted from Package.
	Name string

	// Patterns are the workspace globs that were expanded.
	Patterns []string

	// Workspaces are the workspaces whose manifest could be read.
	Workspaces []workspace.Workspace

	// Dependants are the names of the workspaces depending on Name.
	Dependants []string
}

// ResolveOperation finds the workspaces that depend on a package.
type ResolveOperation struct {
	fs     core.FileSystem
	reader *manifest.Reader
	opts   ResolveOptions
}

// NewResolveOperation creates a new resolve operation.
func NewResolveOperation(fs core.FileSystem, opts ResolveOptions) *ResolveOperation {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.PackageManager == "" {
		opts.PackageManager = dispatch.NPM
	}
	return &ResolveOperation{
		fs:     fs,
		reader: manifest.NewReader(fs),
		opts:   opts,
	}
}

// Execute resolves identifier against the monorepo rooted at root.
func (op *ResolveOperation) Execute(ctx context.Context, root, identifier string) (*Resolution, error) {
	log := op.opts.Logger

	name, err := pkgname.Extract(identifier)
	if err != nil {
		return nil, err
	}

	rootManifest, err := op.reader.Read(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("failed to load root manifest: %w", err)
	}

	patterns, err := op.patterns(ctx, root, rootManifest)
	if err != nil {
		return nil, err
	}
	log.Debug("workspace patterns", zap.Strings("patterns", patterns))

	dirs, err := workspace.Enumerate(ctx, op.fs, root, patterns)
	if err != nil {
		return nil, err
	}
	log.Debug("workspace directories", zap.Int("count", len(dirs)))

	loader := workspace.NewLoader(op.fs,
		workspace.WithConcurrency(op.opts.Concurrency),
		workspace.WithLogger(log),
	)
	workspaces, err := loader.Load(ctx, dirs)
	if err != nil {
		return nil, err
	}

	dependants := workspace.Exclude(workspace.Dependants(workspaces, name), op.opts.Exclude)
	log.Debug("dependant workspaces", zap.String("package", name), zap.Strings("workspaces", dependants))

	return &Resolution{
		Root:       root,
		Package:    identifier,
		Name:       name,
		Patterns:   patterns,
		Workspaces: workspaces,
		Dependants: dependants,
	}, nil
}

// patterns returns the workspace globs of the monorepo. pnpm repositories
// declare them in pnpm-workspace.yaml; the root manifest is used otherwise.
func (op *ResolveOperation) patterns(ctx context.Context, root string, m *manifest.Manifest) ([]string, error) {
	if op.opts.PackageManager != dispatch.PNPM {
		return m.Workspaces, nil
	}

	patterns, err := op.reader.ReadPnpmWorkspace(ctx, root)
	if errors.Is(err, manifest.ErrNoPnpmWorkspace) {
		return m.Workspaces, nil
	}
	if err != nil {
		return nil, err
	}
	return patterns, nil
}
