package manifest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/indaco/wsi/internal/core"
)

// ErrNoPnpmWorkspace is returned when a directory has no pnpm-workspace.yaml.
var ErrNoPnpmWorkspace = errors.New("no " + core.PnpmWorkspaceFile + " found")

// Reader loads manifests through a core.FileSystem.
type Reader struct {
	fs core.FileSystem
}

// NewReader creates a new Reader with the given filesystem.
func NewReader(fs core.FileSystem) *Reader {
	return &Reader{fs: fs}
}

// Read loads and parses the package.json found in dir.
func (r *Reader) Read(ctx context.Context, dir string) (*Manifest, error) {
	path := filepath.Join(dir, core.ManifestFile)

	data, err := r.fs.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON in %q: %w", path, err)
	}
	return m, nil
}

// Parse decodes package.json content.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

type pnpmWorkspace struct {
	Packages []string `yaml:"packages"`
}

// ReadPnpmWorkspace returns the package globs declared in dir/pnpm-workspace.yaml.
func (r *Reader) ReadPnpmWorkspace(ctx context.Context, dir string) ([]string, error) {
	path := filepath.Join(dir, core.PnpmWorkspaceFile)

	data, err := r.fs.ReadFile(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoPnpmWorkspace
		}
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}

	var ws pnpmWorkspace
	if err := yaml.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("failed to parse YAML in %q: %w", path, err)
	}
	if ws.Packages == nil {
		return []string{}, nil
	}
	return ws.Packages, nil
}
