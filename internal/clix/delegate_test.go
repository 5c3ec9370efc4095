package clix

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/indaco/wsi/internal/cliflags"
	"github.com/indaco/wsi/internal/config"
	"github.com/indaco/wsi/internal/dispatch"
	"github.com/indaco/wsi/internal/tui"
	"github.com/urfave/cli/v3"
)

type fakePicker struct {
	gotTitle string
	gotNames []string
	selected []string
	err      error
}

func (p *fakePicker) Pick(title string, names []string) ([]string, error) {
	p.gotTitle = title
	p.gotNames = names
	return p.selected, p.err
}

func stubPicker(t *testing.T, interactive bool, p *fakePicker) {
	t.Helper()
	origPicker, origInteractive := NewPickerFn, IsInteractiveFn
	NewPickerFn = func() tui.Picker { return p }
	IsInteractiveFn = func() bool { return interactive }
	t.Cleanup(func() {
		NewPickerFn, IsInteractiveFn = origPicker, origInteractive
	})
}

func testRepo(t *testing.T) string {
	t.Helper()
	t.Setenv(config.EnvPackageManager, "")
	t.Setenv(config.EnvShell, "")

	root := t.TempDir()
	files := map[string]string{
		"package.json":            `{"name": "root", "workspaces": ["packages/*"]}`,
		"packages/a/package.json": `{"name": "pkg-a", "dependencies": {"zod": "^3.0.0"}}`,
		"packages/b/package.json": `{"name": "pkg-b", "devDependencies": {"zod": "^3.0.0"}}`,
		"packages/c/package.json": `{"name": "pkg-c", "dependencies": {"zod": "^3.0.0"}}`,
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func runInstall(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := &cli.Command{
		Name:  "wsi",
		Flags: cliflags.GlobalFlags(),
		Commands: []*cli.Command{{
			Name:  "install",
			Flags: cliflags.DispatchFlags(),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return RunDelegated(ctx, cmd, dispatch.Install)
			},
		}},
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Reader:         strings.NewReader(""),
		Writer:         &out,
		ErrWriter:      &errOut,
	}
	err = app.Run(context.Background(), append([]string{"wsi", "install"}, args...))
	return out.String(), errOut.String(), err
}

func TestRunDelegated_PickNarrowsTargets(t *testing.T) {
	root := testRepo(t)
	p := &fakePicker{selected: []string{"pkg-a", "pkg-c"}}
	stubPicker(t, true, p)

	out, _, err := runInstall(t, "zod@3.23.0", "--cwd", root, "--dry-run", "--pick")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "npm install -w pkg-a -w pkg-c zod@3.23.0") {
		t.Errorf("output = %q", out)
	}
	if want := []string{"pkg-a", "pkg-b", "pkg-c"}; strings.Join(p.gotNames, ",") != strings.Join(want, ",") {
		t.Errorf("picker offered %v, want %v", p.gotNames, want)
	}
	if !strings.Contains(p.gotTitle, "zod") {
		t.Errorf("picker title %q should name the package", p.gotTitle)
	}
}

func TestRunDelegated_PickSkippedWhenNotInteractive(t *testing.T) {
	root := testRepo(t)
	p := &fakePicker{selected: []string{"pkg-a"}}
	stubPicker(t, false, p)

	out, errOut, err := runInstall(t, "zod", "--cwd", root, "--dry-run", "--pick")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(errOut, "--pick ignored") {
		t.Errorf("expected a warning on stderr, got %q", errOut)
	}
	if p.gotNames != nil {
		t.Error("picker should not be shown outside a terminal")
	}
	if !strings.Contains(out, "npm install -w pkg-a -w pkg-b -w pkg-c zod") {
		t.Errorf("output = %q", out)
	}
}

func TestRunDelegated_PickErrors(t *testing.T) {
	tests := []struct {
		name   string
		picker *fakePicker
		want   string
	}{
		{"empty selection", &fakePicker{selected: []string{}}, "no workspaces selected"},
		{"aborted", &fakePicker{err: errors.New("user aborted")}, "selection aborted: user aborted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := testRepo(t)
			stubPicker(t, true, tt.picker)

			out, _, err := runInstall(t, "zod", "--cwd", root, "--dry-run", "--pick")
			var exitErr *dispatch.ExitError
			if !errors.As(err, &exitErr) {
				t.Fatalf("expected *dispatch.ExitError, got %v", err)
			}
			if exitErr.Code != ExitFailure {
				t.Errorf("code = %d, want %d", exitErr.Code, ExitFailure)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want %q", err, tt.want)
			}
			if strings.Contains(out, "Running command:") {
				t.Errorf("nothing should run, output = %q", out)
			}
		})
	}
}

func TestRunDelegated_NoDependants(t *testing.T) {
	root := testRepo(t)

	_, _, err := runInstall(t, "react", "--cwd", root, "--dry-run")
	if !errors.Is(err, dispatch.ErrNoDependants) {
		t.Fatalf("expected ErrNoDependants, got %v", err)
	}
	var exitErr *dispatch.ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != ExitFailure {
		t.Errorf("expected exit code %d, got %v", ExitFailure, err)
	}
}

func TestRunDelegated_ShellFromConfig(t *testing.T) {
	root := testRepo(t)
	if err := os.WriteFile(filepath.Join(root, ".wsi.yaml"), []byte("shell: /nonexistent/shell\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := runInstall(t, "zod", "--cwd", root)
	var exitErr *dispatch.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *dispatch.ExitError, got %v", err)
	}
	if exitErr.Code != ExitFailure || !strings.Contains(err.Error(), "failed to execute command") {
		t.Errorf("unexpected error: %v (code %d)", err, exitErr.Code)
	}
}

func TestWorkingDir(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	got, err := workingDir("")
	if err != nil || got != cwd {
		t.Errorf("workingDir(\"\") = %q, %v; want %q", got, err, cwd)
	}

	got, err = workingDir("sub")
	if err != nil || got != filepath.Join(cwd, "sub") {
		t.Errorf("workingDir(sub) = %q, %v", got, err)
	}
}
