// Package pkgname extracts package names from install identifiers such as
// "lodash@4.0.0", "react@next" or "@scope/pkg@1.2.3".
package pkgname

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyName is returned when no package name can be extracted.
var ErrEmptyName = errors.New("could not extract package name")

// Extract returns the name portion of a package identifier: everything before
// the first "@" that is not the leading "@" of a scoped name.
func Extract(identifier string) (string, error) {
	name := identifier
	start := min(1, len(identifier))
	if i := strings.Index(identifier[start:], "@"); i >= 0 {
		name = identifier[:start+i]
	}

	if name == "" || name == "@" {
		return "", fmt.Errorf("%w from: %q", ErrEmptyName, identifier)
	}
	return name, nil
}
