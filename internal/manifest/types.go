package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// Manifest holds the package.json fields wsi cares about.
type Manifest struct {
	// Name is the package name. HasName reports whether the field was present.
	Name    string
	HasName bool

	// Workspaces lists workspace glob patterns declared by a monorepo root.
	Workspaces Workspaces

	// Dependencies and DevDependencies map package names to version ranges.
	Dependencies    DependencyMap
	DevDependencies DependencyMap
}

type rawManifest struct {
	Name            *string       `json:"name"`
	Workspaces      Workspaces    `json:"workspaces"`
	Dependencies    DependencyMap `json:"dependencies"`
	DevDependencies DependencyMap `json:"devDependencies"`
}

// UnmarshalJSON decodes a manifest and fills in empty defaults.
func (m *Manifest) UnmarshalJSON(data []byte) error {
	var raw rawManifest
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*m = Manifest{
		Workspaces:      raw.Workspaces,
		Dependencies:    raw.Dependencies,
		DevDependencies: raw.DevDependencies,
	}
	if raw.Name != nil {
		m.Name = *raw.Name
		m.HasName = true
	}
	if m.Workspaces == nil {
		m.Workspaces = Workspaces{}
	}
	if m.Dependencies == nil {
		m.Dependencies = DependencyMap{}
	}
	if m.DevDependencies == nil {
		m.DevDependencies = DependencyMap{}
	}
	return nil
}

// DependencyNames returns the keys of dependencies followed by the keys of
// devDependencies, each group sorted. Names present in both appear twice.
func (m *Manifest) DependencyNames() []string {
	names := make([]string, 0, len(m.Dependencies)+len(m.DevDependencies))
	names = append(names, m.Dependencies.Names()...)
	names = append(names, m.DevDependencies.Names()...)
	return names
}

// DependsOn reports whether name is a direct or dev dependency.
func (m *Manifest) DependsOn(name string) bool {
	if _, ok := m.Dependencies[name]; ok {
		return true
	}
	_, ok := m.DevDependencies[name]
	return ok
}

// Workspaces is the list of workspace glob patterns of a root manifest.
// It accepts the npm array form and the yarn object form
// {"packages": [...], "nohoist": [...]}.
type Workspaces []string

func (w *Workspaces) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*w = nil
		return nil
	}

	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			Packages []string `json:"packages"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return fmt.Errorf("workspaces: %w", err)
		}
		*w = obj.Packages
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("workspaces must be an array of strings or an object with packages: %w", err)
	}
	*w = list
	return nil
}

// DependencyMap maps package names to the version specifier declared for them.
// Only the keys are significant; non-string values are kept as raw JSON text.
type DependencyMap map[string]string

func (d *DependencyMap) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*d = nil
		return nil
	}
	if len(data) == 0 || data[0] != '{' {
		return fmt.Errorf("dependencies must be an object, got %s", describeJSON(data))
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(DependencyMap, len(raw))
	for name, value := range raw {
		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			out[name] = s
			continue
		}
		out[name] = string(value)
	}
	*d = out
	return nil
}

// Names returns the dependency names in sorted order.
func (d DependencyMap) Names() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// describeJSON names the JSON kind of a raw value for error messages.
func describeJSON(data []byte) string {
	if len(data) == 0 {
		return "empty value"
	}
	switch data[0] {
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	default:
		return "number"
	}
}
