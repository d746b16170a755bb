package commands

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/thorrdu/cutc/internal/clients"
	"github.com/thorrdu/cutc/internal/installer"
	"github.com/thorrdu/cutc/internal/requirements"
	"github.com/thorrdu/cutc/internal/templates"
)

func TestLifecycle_CursorCleanDirectory(t *testing.T) {
	env := NewTestEnv(t)
	lc := env.Lifecycle(LifecycleOptions{
		Directive:     clients.TargetCursor,
		InstallerPath: env.Install,
	})

	result, err := lc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v\nstderr: %s", err, env.Stderr.String())
	}

	wantHistory := []State{StateStart, StatePrereqCheck, StateIDEResolution, StateStructureAndFiles, StateSuccess}
	if !reflect.DeepEqual(lc.History(), wantHistory) {
		t.Errorf("history = %v, want %v", lc.History(), wantHistory)
	}

	env.AssertFileContent("userinput.py", templates.KeySharedScript)
	env.AssertFileContent(filepath.Join(".cursor", "rules", "cutc_rules.mdc"), templates.KeyCursorRules)
	env.AssertNotExists(".windsurf")
	env.AssertNotExists("install_cutc")

	if !result.InstallerRemoved {
		t.Error("expected installer to be removed")
	}
	if result.Target != clients.TargetCursor || result.Source != SourceFlag {
		t.Errorf("result target = %q from %s", result.Target, result.Source)
	}

	stdout := env.Stdout.String()
	for _, want := range []string{
		"Installing Cursor Unlimited Tool Calls",
		"userinput.py installed at root",
		"CUTC rules installed in .cursor/rules/cutc_rules.mdc",
		"Installation completed successfully",
		"Restart Cursor IDE",
		"Type 'stop'",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
}

func TestLifecycle_BothWritesEachFileOnce(t *testing.T) {
	env := NewTestEnv(t)
	lc := env.Lifecycle(LifecycleOptions{Directive: clients.TargetBoth, Keep: true, InstallerPath: env.Install})

	result, err := lc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	env.AssertFileContent("userinput.py", templates.KeySharedScript)
	env.AssertFileContent(filepath.Join(".cursor", "rules", "cutc_rules.mdc"), templates.KeyCursorRules)
	env.AssertFileContent(filepath.Join(".windsurf", "rules", "cutc_rules.md"), templates.KeyWindsurfRules)

	shared := 0
	for _, o := range result.Outcomes {
		if strings.Contains(o.Message, "userinput.py") {
			shared++
		}
	}
	if shared != 1 {
		t.Errorf("expected one shared script write, got %d", shared)
	}
}

func TestLifecycle_KeepInstaller(t *testing.T) {
	env := NewTestEnv(t)
	lc := env.Lifecycle(LifecycleOptions{
		Directive:     clients.TargetWindsurf,
		Keep:          true,
		InstallerPath: env.Install,
	})

	result, err := lc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.InstallerRemoved {
		t.Error("installer should be kept")
	}
	env.AssertExists("install_cutc")
}

func TestLifecycle_RemovalFailureIsWarning(t *testing.T) {
	env := NewTestEnv(t)
	lc := env.Lifecycle(LifecycleOptions{
		Directive:     clients.TargetCursor,
		InstallerPath: env.Path("already-gone"),
	})

	result, err := lc.Run(context.Background())
	if err != nil {
		t.Fatalf("removal failure must not fail the run: %v", err)
	}
	if lc.State() != StateSuccess {
		t.Errorf("state = %s, want success", lc.State())
	}
	if result.InstallerRemoved {
		t.Error("InstallerRemoved should be false")
	}
	if !strings.Contains(env.Stderr.String(), "Could not remove installer") {
		t.Errorf("expected a warning, got stderr %q", env.Stderr.String())
	}
}

func TestLifecycle_PrereqFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "unsupported runtime", err: requirements.ErrUnsupportedRuntime},
		{name: "no write permission", err: requirements.ErrNoWritePermission},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := NewTestEnv(t)
			lc := env.Lifecycle(LifecycleOptions{
				Directive:     clients.TargetCursor,
				InstallerPath: env.Install,
				CheckPrereqs:  func(string) error { return tt.err },
			})

			_, err := lc.Run(context.Background())
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
			if !IsReported(err) {
				t.Error("lifecycle errors should be marked as reported")
			}

			wantHistory := []State{StateStart, StatePrereqCheck, StateFailure}
			if !reflect.DeepEqual(lc.History(), wantHistory) {
				t.Errorf("history = %v, want %v", lc.History(), wantHistory)
			}
			env.AssertNotExists("userinput.py")
			env.AssertNotExists(".cursor")
			env.AssertExists("install_cutc")
			if !strings.Contains(env.Stderr.String(), "Error during installation") {
				t.Errorf("missing diagnostic: %q", env.Stderr.String())
			}
		})
	}
}

func TestLifecycle_InterruptWritesNothing(t *testing.T) {
	env := NewTestEnv(t)
	prompter := NewMockPrompter().ExpectCancel("Which IDE")
	lc := env.Lifecycle(LifecycleOptions{Prompter: prompter, InstallerPath: env.Install})

	_, err := lc.Run(context.Background())
	if !errors.Is(err, ErrUserInterrupted) {
		t.Fatalf("expected ErrUserInterrupted, got %v", err)
	}
	if lc.State() != StateFailure {
		t.Errorf("state = %s, want failure", lc.State())
	}

	entries, err := os.ReadDir(env.Root)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "install_cutc" {
		t.Errorf("expected only the installer in the project, found %v", entries)
	}
	if !strings.Contains(env.Stderr.String(), "cancelled by user") {
		t.Errorf("missing cancel message: %q", env.Stderr.String())
	}
}

func TestLifecycle_DirectoryCreationFailure(t *testing.T) {
	env := NewTestEnv(t)
	// A file named like the marker directory blocks its creation
	if err := os.WriteFile(env.Path(".cursor"), []byte("file"), 0644); err != nil {
		t.Fatal(err)
	}
	lc := env.Lifecycle(LifecycleOptions{Directive: clients.TargetCursor, InstallerPath: env.Install})

	_, err := lc.Run(context.Background())
	if !errors.Is(err, installer.ErrDirectoryCreation) {
		t.Fatalf("expected ErrDirectoryCreation, got %v", err)
	}
	if lc.State() != StateFailure {
		t.Errorf("state = %s, want failure", lc.State())
	}
	env.AssertNotExists(filepath.Join(".cursor", "rules", "cutc_rules.mdc"))
	if info, err := os.Stat(env.Path(".cursor")); err != nil || info.IsDir() {
		t.Errorf(".cursor should still be the original regular file (err=%v)", err)
	}
	env.AssertNotExists("userinput.py")
	env.AssertExists("install_cutc")
}

func TestLifecycle_Idempotent(t *testing.T) {
	env := NewTestEnv(t)
	rules := filepath.Join(".windsurf", "rules", "cutc_rules.md")

	for i := 0; i < 2; i++ {
		lc := env.Lifecycle(LifecycleOptions{Directive: clients.TargetWindsurf, Keep: true})
		if _, err := lc.Run(context.Background()); err != nil {
			t.Fatalf("run %d failed: %v", i+1, err)
		}
		env.AssertFileContent("userinput.py", templates.KeySharedScript)
		env.AssertFileContent(rules, templates.KeyWindsurfRules)
	}
}

func TestLifecycle_RunOnlyOnce(t *testing.T) {
	env := NewTestEnv(t)
	lc := env.Lifecycle(LifecycleOptions{Directive: clients.TargetCursor, Keep: true})

	if _, err := lc.Run(context.Background()); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if _, err := lc.Run(context.Background()); err == nil {
		t.Error("expected error when running a finished lifecycle")
	}
}
