package workspace

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/indaco/wsi/internal/core"
)

// Enumerate expands each pattern relative to root and returns the matches
// that are directories, in pattern order then match order. Duplicates across
// patterns are kept. A pattern starting with "!" removes the directories
// matched so far that it matches.
func Enumerate(ctx context.Context, fs core.FileSystem, root string, patterns []string) ([]string, error) {
	var dirs []string

	for _, pattern := range patterns {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if negated, ok := strings.CutPrefix(pattern, "!"); ok {
			kept, err := exclude(root, dirs, negated)
			if err != nil {
				return nil, err
			}
			dirs = kept
			continue
		}

		matches, err := fs.Glob(ctx, filepath.Join(root, pattern))
		if errors.Is(err, doublestar.ErrBadPattern) {
			return nil, fmt.Errorf("invalid workspace pattern %q: %w", pattern, err)
		}
		if err != nil {
			return nil, err
		}

		for _, match := range matches {
			info, err := fs.Stat(ctx, match)
			if err != nil || !info.IsDir() {
				continue
			}
			dirs = append(dirs, match)
		}
	}

	return dirs, nil
}

// exclude drops the directories whose root-relative path matches pattern.
func exclude(root string, dirs []string, pattern string) ([]string, error) {
	pattern = filepath.ToSlash(filepath.Clean(pattern))
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid workspace pattern %q: %w", "!"+pattern, doublestar.ErrBadPattern)
	}

	kept := dirs[:0:0]
	for _, dir := range dirs {
		rel, err := filepath.Rel(root, dir)
		if err != nil {
			kept = append(kept, dir)
			continue
		}
		if doublestar.MatchUnvalidated(pattern, filepath.ToSlash(rel)) {
			continue
		}
		kept = append(kept, dir)
	}
	return kept, nil
}
