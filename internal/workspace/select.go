package workspace

import (
	"github.com/bmatcuk/doublestar/v4"
)

// Dependants returns the manifest names of the workspaces that list pkg under
// dependencies or devDependencies. Workspaces without a name are skipped.
func Dependants(workspaces []Workspace, pkg string) []string {
	var names []string
	for _, ws := range workspaces {
		if ws.Manifest == nil || !ws.Manifest.DependsOn(pkg) {
			continue
		}
		if !ws.Manifest.HasName {
			continue
		}
		names = append(names, ws.Manifest.Name)
	}
	return names
}

// Exclude removes the names matching any of the glob patterns.
// Invalid patterns never match.
func Exclude(names, patterns []string) []string {
	if len(patterns) == 0 {
		return names
	}

	kept := make([]string, 0, len(names))
	for _, name := range names {
		if matchesAny(name, patterns) {
			continue
		}
		kept = append(kept, name)
	}
	return kept
}

func matchesAny(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}
