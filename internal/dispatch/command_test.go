package dispatch

import (
	"errors"
	"testing"
)

func TestPackageManager_Command(t *testing.T) {
	tests := []struct {
		name       string
		pm         PackageManager
		action     Action
		workspaces []string
		pkg        string
		want       string
	}{
		{
			name:       "npm single workspace",
			pm:         NPM,
			action:     Install,
			workspaces: []string{"pkgA"},
			pkg:        "lodash@4.0.0",
			want:       "npm install -w pkgA lodash@4.0.0",
		},
		{
			name:       "npm many workspaces",
			pm:         NPM,
			action:     Install,
			workspaces: []string{"web", "@acme/ui", "api"},
			pkg:        "@types/node@^20",
			want:       "npm install -w web -w @acme/ui -w api @types/node@^20",
		},
		{
			name:       "npm uninstall",
			pm:         NPM,
			action:     Uninstall,
			workspaces: []string{"web"},
			pkg:        "left-pad",
			want:       "npm uninstall -w web left-pad",
		},
		{
			name:       "pnpm install",
			pm:         PNPM,
			action:     Install,
			workspaces: []string{"web", "api"},
			pkg:        "zod@3",
			want:       "pnpm add --filter web --filter api zod@3",
		},
		{
			name:       "pnpm uninstall",
			pm:         PNPM,
			action:     Uninstall,
			workspaces: []string{"web"},
			pkg:        "zod",
			want:       "pnpm remove --filter web zod",
		},
		{
			name:       "zero value is npm",
			pm:         "",
			action:     Install,
			workspaces: []string{"a"},
			pkg:        "b",
			want:       "npm install -w a b",
		},
		{
			name:       "unsafe names are quoted",
			pm:         NPM,
			action:     Install,
			workspaces: []string{"my app", "it's"},
			pkg:        "pkg@>=1 <2",
			want:       `npm install -w 'my app' -w 'it'\''s' 'pkg@>=1 <2'`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.pm.Command(tt.action, tt.workspaces, tt.pkg)
			if got != tt.want {
				t.Errorf("Command() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParsePackageManager(t *testing.T) {
	tests := []struct {
		input   string
		want    PackageManager
		wantErr bool
	}{
		{"", NPM, false},
		{"npm", NPM, false},
		{"pnpm", PNPM, false},
		{" PNPM ", PNPM, false},
		{"yarn", "", true},
		{"bun", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePackageManager(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePackageManager(%q) err = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePackageManager(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExitError(t *testing.T) {
	inner := errors.New("boom")
	err := NewExitError(3, inner)

	if err.ExitCode() != 3 {
		t.Errorf("ExitCode() = %d, want 3", err.ExitCode())
	}
	if !errors.Is(err, inner) {
		t.Error("expected ExitError to unwrap to the inner error")
	}
	if err.Error() != "boom" {
		t.Errorf("Error() = %q, want %q", err.Error(), "boom")
	}
	if got := NewExitError(7, nil).Error(); got != "exit status 7" {
		t.Errorf("Error() = %q, want %q", got, "exit status 7")
	}
}
