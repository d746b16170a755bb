package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/thorrdu/cutc/internal/clients"
	"github.com/thorrdu/cutc/internal/constants"
	"github.com/thorrdu/cutc/internal/installer"
	"github.com/thorrdu/cutc/internal/logger"
	"github.com/thorrdu/cutc/internal/requirements"
	"github.com/thorrdu/cutc/internal/templates"
	"github.com/thorrdu/cutc/internal/ui"
)

// State is a step of the installer lifecycle
type State string

const (
	StateStart             State = "start"
	StatePrereqCheck       State = "prereq_check"
	StateIDEResolution     State = "ide_resolution"
	StateStructureAndFiles State = "structure_and_files"
	StateSuccess           State = "success"
	StateFailure           State = "failure"
)

// LifecycleOptions configures one installer run
type LifecycleOptions struct {
	Root          string
	Directive     clients.Target
	ConfigDefault clients.Target
	// Keep disables removal of InstallerPath after success
	Keep bool
	// InstallerPath is the installer's own file; empty skips removal
	InstallerPath string

	Registry *clients.Registry
	Prompter Prompter
	Out      *ui.Output

	// CheckPrereqs defaults to requirements.Check
	CheckPrereqs func(root string) error
}

// Result is what a finished run produced
type Result struct {
	Target           clients.Target
	Source           TargetSource
	Outcomes         []installer.Outcome
	InstallerRemoved bool
}

// Lifecycle drives START → PREREQ_CHECK → IDE_RESOLUTION → STRUCTURE_AND_FILES → SUCCESS | FAILURE
type Lifecycle struct {
	opts    LifecycleOptions
	state   State
	history []State
}

// NewLifecycle creates a lifecycle in the start state
func NewLifecycle(opts LifecycleOptions) *Lifecycle {
	if opts.CheckPrereqs == nil {
		opts.CheckPrereqs = requirements.Check
	}
	return &Lifecycle{
		opts:    opts,
		state:   StateStart,
		history: []State{StateStart},
	}
}

// State returns the current state
func (l *Lifecycle) State() State {
	return l.state
}

// History returns every state visited, in order
func (l *Lifecycle) History() []State {
	return append([]State(nil), l.history...)
}

func (l *Lifecycle) transition(next State) {
	logger.Get().Debug("lifecycle transition", "from", l.state, "to", next)
	l.state = next
	l.history = append(l.history, next)
}

// fail moves to FAILURE, prints the diagnostic and returns err marked as reported
func (l *Lifecycle) fail(err error) error {
	l.transition(StateFailure)
	logger.Get().Error("installation failed", "error", err)

	out := l.opts.Out
	if errors.Is(err, ErrUserInterrupted) {
		out.Newline()
		out.Error("Installation cancelled by user")
		return markReported(err)
	}
	out.Error(fmt.Sprintf("Error during installation: %v", err))
	out.Muted(fmt.Sprintf("Contact us at %s for help", constants.SupportURL))
	return markReported(err)
}

// Run executes the whole lifecycle. SUCCESS and FAILURE are terminal.
func (l *Lifecycle) Run(ctx context.Context) (*Result, error) {
	if l.state != StateStart {
		return nil, fmt.Errorf("lifecycle already ran (state %s)", l.state)
	}

	log := logger.Get()
	out := l.opts.Out

	out.Header("🚀 Installing Cursor Unlimited Tool Calls (CUTC)")
	out.Separator()

	l.transition(StatePrereqCheck)
	if err := l.opts.CheckPrereqs(l.opts.Root); err != nil {
		return nil, l.fail(err)
	}

	l.transition(StateIDEResolution)
	target, source, err := resolveTarget(ctx, selectorInput{
		Directive:     l.opts.Directive,
		ConfigDefault: l.opts.ConfigDefault,
		Root:          l.opts.Root,
		Registry:      l.opts.Registry,
		Prompter:      l.opts.Prompter,
	})
	if err != nil {
		return nil, l.fail(err)
	}
	log.Info("target resolved", "target", target, "source", source)

	l.transition(StateStructureAndFiles)
	plan, err := installer.BuildPlan(l.opts.Registry, target)
	if err != nil {
		return nil, l.fail(err)
	}

	result := &Result{Target: target, Source: source}
	outcomes, err := installer.New(l.opts.Root).Execute(ctx, plan)
	result.Outcomes = outcomes
	for _, o := range outcomes {
		if o.Success {
			out.Success(o.Message)
		}
	}
	if err != nil {
		return result, l.fail(err)
	}

	l.transition(StateSuccess)
	l.printSummary(plan)

	if l.opts.Keep || l.opts.InstallerPath == "" {
		return result, nil
	}
	if err := os.Remove(l.opts.InstallerPath); err != nil {
		log.Warn("self-removal failed", "path", l.opts.InstallerPath, "error", err)
		out.Warning(fmt.Sprintf("Could not remove installer %s: %v", l.opts.InstallerPath, err))
		return result, nil
	}
	log.Info("installer removed", "path", l.opts.InstallerPath)
	out.Muted("🗑  Installer removed")
	result.InstallerRemoved = true

	return result, nil
}

func (l *Lifecycle) printSummary(plan *installer.Plan) {
	out := l.opts.Out

	out.Separator()
	out.Header("🎉 Installation completed successfully!")

	for _, client := range plan.Clients {
		if fm, err := templates.ParseFrontmatter(client.RulesTemplate()); err == nil && fm.Description != "" {
			out.Info(client.DisplayName() + ": " + fm.Description)
		}
	}

	out.Newline()
	out.SubHeader("📋 Next steps:")
	for _, client := range plan.Clients {
		if len(plan.Clients) > 1 {
			out.Println(client.DisplayName())
		}
		out.NumberedList(client.NextSteps())
	}
	out.Newline()
	out.Println("💡 Type 'stop' in the prompt to end the loop")
}
