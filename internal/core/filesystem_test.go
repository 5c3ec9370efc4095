package core

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
)

func TestOSFileSystem(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ManifestFile)
	if err := os.WriteFile(path, []byte(`{"name":"x"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	fsys := NewOSFileSystem()
	ctx := context.Background()

	data, err := fsys.ReadFile(ctx, path)
	if err != nil || string(data) != `{"name":"x"}` {
		t.Errorf("ReadFile = %q, %v", data, err)
	}

	info, err := fsys.Stat(ctx, dir)
	if err != nil || !info.IsDir() {
		t.Errorf("Stat(dir) = %v, %v; want a directory", info, err)
	}

	if _, err := fsys.ReadFile(ctx, filepath.Join(dir, "missing")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestOSFileSystem_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fsys := NewOSFileSystem()
	if _, err := fsys.ReadFile(ctx, "anything"); !errors.Is(err, context.Canceled) {
		t.Errorf("ReadFile: expected context.Canceled, got %v", err)
	}
	if _, err := fsys.Stat(ctx, "anything"); !errors.Is(err, context.Canceled) {
		t.Errorf("Stat: expected context.Canceled, got %v", err)
	}
}

func TestMockFileSystem(t *testing.T) {
	m := NewMockFileSystem()
	m.SetFile(filepath.Join("repo", "packages", "a", ManifestFile), []byte("{}"))
	m.SetError(filepath.Join("repo", "broken"), errors.New("boom"))
	ctx := context.Background()

	tests := []struct {
		name    string
		path    string
		wantDir bool
		wantErr bool
	}{
		{"file", filepath.Join("repo", "packages", "a", ManifestFile), false, false},
		{"implied directory", filepath.Join("repo", "packages"), true, false},
		{"unclean path", filepath.Join("repo", "packages", "a") + string(filepath.Separator), true, false},
		{"prefix is not a directory", filepath.Join("repo", "pack"), false, true},
		{"injected error", filepath.Join("repo", "broken"), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := m.Stat(ctx, tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Stat error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && info.IsDir() != tt.wantDir {
				t.Errorf("IsDir = %v, want %v", info.IsDir(), tt.wantDir)
			}
		})
	}

	if _, err := m.ReadFile(ctx, filepath.Join("repo", "packages")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile on a directory: expected ErrNotExist, got %v", err)
	}
}

func TestGlob(t *testing.T) {
	dir := t.TempDir()
	for _, p := range []string{"packages/a/package.json", "packages/b/package.json", "apps/web/package.json"} {
		full := filepath.Join(dir, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	mock := NewMockFileSystem()
	mock.SetFile(filepath.Join(dir, "packages", "a", ManifestFile), []byte("{}"))
	mock.SetFile(filepath.Join(dir, "packages", "b", ManifestFile), []byte("{}"))
	mock.SetFile(filepath.Join(dir, "apps", "web", ManifestFile), []byte("{}"))

	ctx := context.Background()
	want := []string{filepath.Join(dir, "packages", "a"), filepath.Join(dir, "packages", "b")}

	for name, fsys := range map[string]FileSystem{"os": NewOSFileSystem(), "mock": mock} {
		t.Run(name, func(t *testing.T) {
			got, err := fsys.Glob(ctx, filepath.Join(dir, "packages", "*"))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(got, want) {
				t.Errorf("Glob = %v, want %v", got, want)
			}

			nested, err := fsys.Glob(ctx, filepath.Join(dir, "**", ManifestFile))
			if err != nil || len(nested) != 3 {
				t.Errorf("Glob(**) = %v, %v; want 3 manifests", nested, err)
			}

			if _, err := fsys.Glob(ctx, filepath.Join(dir, "[")); !errors.Is(err, doublestar.ErrBadPattern) {
				t.Errorf("expected ErrBadPattern, got %v", err)
			}
		})
	}
}
