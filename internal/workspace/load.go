package workspace

import (
	"context"
	"runtime"

	"github.com/indaco/wsi/internal/core"
	"github.com/indaco/wsi/internal/manifest"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Workspace pairs a workspace directory with its parsed manifest.
type Workspace struct {
	Dir      string
	Manifest *manifest.Manifest
}

// Loader reads workspace manifests on a bounded pool of goroutines.
type Loader struct {
	reader      *manifest.Reader
	concurrency int
	logger      *zap.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithConcurrency sets how many manifests are read at once.
// Values below 1 fall back to runtime.NumCPU().
func WithConcurrency(n int) LoaderOption {
	return func(l *Loader) {
		if n > 0 {
			l.concurrency = n
		}
	}
}

// WithLogger sets the logger used to report skipped workspaces.
func WithLogger(logger *zap.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader creates a Loader reading through fs.
func NewLoader(fs core.FileSystem, opts ...LoaderOption) *Loader {
	l := &Loader{
		reader:      manifest.NewReader(fs),
		concurrency: runtime.NumCPU(),
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the manifest of every directory and returns the workspaces whose
// manifest could be read, in the order of dirs. Unreadable or malformed
// manifests are skipped. The only error returned is context cancellation.
func (l *Loader) Load(ctx context.Context, dirs []string) ([]Workspace, error) {
	manifests := make([]*manifest.Manifest, len(dirs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)

	for i, dir := range dirs {
		g.Go(func() error {
			m, err := l.reader.Read(gctx, dir)
			if err != nil {
				l.logger.Debug("skipping workspace", zap.String("dir", dir), zap.Error(err))
				return nil
			}
			if ce := l.logger.Check(zap.DebugLevel, "loaded workspace"); ce != nil {
				ce.Write(zap.String("dir", dir),
					zap.String("name", m.Name),
					zap.Strings("dependencies", m.DependencyNames()))
			}
			manifests[i] = m
			return nil
		})
	}

	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	workspaces := make([]Workspace, 0, len(dirs))
	for i, m := range manifests {
		if m == nil {
			continue
		}
		workspaces = append(workspaces, Workspace{Dir: dirs[i], Manifest: m})
	}
	return workspaces, nil
}
