package commands

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/thorrdu/cutc/internal/clients"
	"github.com/thorrdu/cutc/internal/templates"
	"github.com/thorrdu/cutc/internal/ui"
)

// TestEnv provides an isolated project directory and captured output.
type TestEnv struct {
	t       *testing.T
	Root    string // Project root
	Stdout  *bytes.Buffer
	Stderr  *bytes.Buffer
	Out     *ui.Output
	Install string // Fake installer file inside the project
}

// NewTestEnv creates a new isolated test environment with an installer file present.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	root := t.TempDir()
	installPath := filepath.Join(root, "install_cutc")
	if err := os.WriteFile(installPath, []byte("installer"), 0755); err != nil {
		t.Fatalf("Failed to create installer file: %v", err)
	}

	var stdout, stderr bytes.Buffer
	return &TestEnv{
		t:       t,
		Root:    root,
		Stdout:  &stdout,
		Stderr:  &stderr,
		Out:     ui.NewOutput(&stdout, &stderr),
		Install: installPath,
	}
}

// Mkdir creates a directory relative to the project root.
func (e *TestEnv) Mkdir(rel string) {
	e.t.Helper()
	if err := os.MkdirAll(filepath.Join(e.Root, rel), 0755); err != nil {
		e.t.Fatalf("Failed to create %s: %v", rel, err)
	}
}

// Path joins rel onto the project root.
func (e *TestEnv) Path(rel ...string) string {
	return filepath.Join(append([]string{e.Root}, rel...)...)
}

// AssertFileContent checks rel holds exactly the template content.
func (e *TestEnv) AssertFileContent(rel string, key templates.Key) {
	e.t.Helper()
	got, err := os.ReadFile(e.Path(rel))
	if err != nil {
		e.t.Fatalf("Failed to read %s: %v", rel, err)
	}
	want, err := templates.Get(key)
	if err != nil {
		e.t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		e.t.Errorf("%s content mismatch:\n got: %q\nwant: %q", rel, got, want)
	}
}

// AssertNotExists checks rel does not exist. A regular file in place of a
// parent directory (ENOTDIR) also counts as absent.
func (e *TestEnv) AssertNotExists(rel string) {
	e.t.Helper()
	_, err := os.Stat(e.Path(rel))
	if !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, syscall.ENOTDIR) {
		e.t.Errorf("expected %s to not exist (err=%v)", rel, err)
	}
}

// AssertExists checks rel exists.
func (e *TestEnv) AssertExists(rel string) {
	e.t.Helper()
	if _, err := os.Stat(e.Path(rel)); err != nil {
		e.t.Errorf("expected %s to exist: %v", rel, err)
	}
}

// Lifecycle creates a lifecycle rooted at this environment.
func (e *TestEnv) Lifecycle(opts LifecycleOptions) *Lifecycle {
	opts.Root = e.Root
	opts.Out = e.Out
	if opts.Registry == nil {
		opts.Registry = clients.Global()
	}
	if opts.Prompter == nil {
		opts.Prompter = NewMockPrompter()
	}
	return NewLifecycle(opts)
}
