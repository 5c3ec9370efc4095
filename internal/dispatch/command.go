package dispatch

import (
	"fmt"
	"slices"
	"strings"
)

// PackageManager identifies the package manager commands are built for.
type PackageManager string

const (
	// NPM builds "npm install -w <name> ... <pkg>" commands.
	NPM PackageManager = "npm"

	// PNPM builds "pnpm add --filter <name> ... <pkg>" commands.
	PNPM PackageManager = "pnpm"
)

// ValidPackageManagers lists the supported package managers.
var ValidPackageManagers = []string{string(NPM), string(PNPM)}

// String returns the string representation of the package manager.
func (pm PackageManager) String() string {
	return string(pm)
}

// IsValid returns true if pm is a supported package manager.
func (pm PackageManager) IsValid() bool {
	return slices.Contains(ValidPackageManagers, string(pm))
}

// ParsePackageManager converts s to a PackageManager. An empty string means npm.
func ParsePackageManager(s string) (PackageManager, error) {
	if s == "" {
		return NPM, nil
	}
	pm := PackageManager(strings.ToLower(strings.TrimSpace(s)))
	if !pm.IsValid() {
		return "", fmt.Errorf("unsupported package manager %q (expected one of: %s)", s, strings.Join(ValidPackageManagers, ", "))
	}
	return pm, nil
}

// Action is the operation delegated to the package manager.
type Action string

const (
	// Install (re)installs the package in the selected workspaces.
	Install Action = "install"

	// Uninstall removes the package from the selected workspaces.
	Uninstall Action = "uninstall"
)

// Command formats the shell command running action for pkg in the named
// workspaces.
func (pm PackageManager) Command(action Action, workspaces []string, pkg string) string {
	var verb, flag string
	switch pm {
	case PNPM:
		flag = "--filter"
		verb = "add"
		if action == Uninstall {
			verb = "remove"
		}
	default:
		flag = "-w"
		verb = string(action)
	}

	parts := make([]string, 0, 2+2*len(workspaces)+1)
	parts = append(parts, pm.binary(), verb)
	for _, ws := range workspaces {
		parts = append(parts, flag, quote(ws))
	}
	parts = append(parts, quote(pkg))
	return strings.Join(parts, " ")
}

func (pm PackageManager) binary() string {
	if pm == "" {
		return string(NPM)
	}
	return string(pm)
}

// quote returns s unchanged when it only holds characters that are safe in a
// POSIX shell word, and single-quotes it otherwise.
func quote(s string) string {
	if s == "" {
		return "''"
	}
	if strings.IndexFunc(s, unsafeShellRune) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func unsafeShellRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	case strings.ContainsRune("@%+=:,./_-^~", r):
		return false
	default:
		return true
	}
}
