package core

import (
	"context"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// MockFileSystem is an in-memory FileSystem for tests.
// Directories are implied by the files stored beneath them.
type MockFileSystem struct {
	mu    sync.RWMutex
	files map[string][]byte
	errs  map[string]error
}

// NewMockFileSystem creates an empty MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files: make(map[string][]byte),
		errs:  make(map[string]error),
	}
}

// SetFile stores data at path.
func (m *MockFileSystem) SetFile(p string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[filepath.Clean(p)] = data
}

// SetError makes every operation on path fail with err.
func (m *MockFileSystem) SetError(p string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[filepath.Clean(p)] = err
}

func (m *MockFileSystem) ReadFile(ctx context.Context, p string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	p = filepath.Clean(p)
	if err, ok := m.errs[p]; ok {
		return nil, err
	}
	data, ok := m.files[p]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}
	return data, nil
}

func (m *MockFileSystem) Stat(ctx context.Context, p string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	p = filepath.Clean(p)
	if err, ok := m.errs[p]; ok {
		return nil, err
	}
	if data, ok := m.files[p]; ok {
		return mockFileInfo{name: path.Base(filepath.ToSlash(p)), size: int64(len(data))}, nil
	}

	prefix := p + string(filepath.Separator)
	for name := range m.files {
		if strings.HasPrefix(name, prefix) {
			return mockFileInfo{name: path.Base(filepath.ToSlash(p)), dir: true}, nil
		}
	}
	return nil, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
}

// Glob matches pattern against the stored files and their implied
// directories. Results are sorted.
func (m *MockFileSystem) Glob(ctx context.Context, pattern string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	slashPattern := filepath.ToSlash(pattern)
	if !doublestar.ValidatePattern(slashPattern) {
		return nil, doublestar.ErrBadPattern
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := make(map[string]bool)
	var matches []string
	for name := range m.files {
		for p := name; ; p = filepath.Dir(p) {
			if !seen[p] {
				seen[p] = true
				if doublestar.MatchUnvalidated(slashPattern, filepath.ToSlash(p)) {
					matches = append(matches, p)
				}
			}
			if parent := filepath.Dir(p); parent == p {
				break
			}
		}
	}
	sort.Strings(matches)
	return matches, nil
}

var _ FileSystem = (*MockFileSystem)(nil)

type mockFileInfo struct {
	name string
	size int64
	dir  bool
}

func (i mockFileInfo) Name() string { return i.name }
func (i mockFileInfo) Size() int64  { return i.size }
func (i mockFileInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}
func (i mockFileInfo) ModTime() time.Time { return time.Time{} }
func (i mockFileInfo) IsDir() bool        { return i.dir }
func (i mockFileInfo) Sys() any           { return nil }
