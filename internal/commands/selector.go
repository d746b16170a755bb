package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/thorrdu/cutc/internal/clients"
	"github.com/thorrdu/cutc/internal/ui/components"
)

// TargetSource records how the target for a run was chosen
type TargetSource string

const (
	SourceFlag     TargetSource = "flag"
	SourceConfig   TargetSource = "config"
	SourceDetected TargetSource = "detected"
	SourcePrompt   TargetSource = "prompt"
)

// selectorInput is everything resolveTarget looks at
type selectorInput struct {
	// Directive is an explicit target from the caller; it wins over everything
	Directive clients.Target
	// ConfigDefault is used when no directive was given
	ConfigDefault clients.Target
	Root          string
	Registry      *clients.Registry
	Prompter      Prompter
}

// resolveTarget produces exactly one target:
// explicit directive, else config default, else an unambiguous probe, else the menu.
func resolveTarget(ctx context.Context, in selectorInput) (clients.Target, TargetSource, error) {
	if in.Directive != "" {
		return in.Directive, SourceFlag, nil
	}
	if in.ConfigDefault != "" {
		return in.ConfigDefault, SourceConfig, nil
	}

	detection := in.Registry.Detect(in.Root)
	if detection.Kind == clients.DetectionSingle {
		return clients.TargetFor(detection.Client), SourceDetected, nil
	}

	options, err := targetOptions(in.Registry)
	if err != nil {
		return "", "", err
	}

	opt, err := in.Prompter.Select(ctx, menuTitle(detection), options)
	if err != nil {
		if errors.Is(err, components.ErrCancelled) || errors.Is(err, context.Canceled) {
			return "", "", ErrUserInterrupted
		}
		return "", "", fmt.Errorf("failed to read IDE selection: %w", err)
	}

	target, err := clients.ParseTarget(opt.Value)
	if err != nil {
		return "", "", err
	}
	return target, SourcePrompt, nil
}

// targetOptions builds the closed menu: each IDE, then both
func targetOptions(registry *clients.Registry) ([]components.Option, error) {
	options := make([]components.Option, 0, len(clients.AllTargets()))
	var names []string

	for _, target := range clients.AllTargets() {
		if target == clients.TargetBoth {
			continue
		}
		client, err := registry.Get(string(target))
		if err != nil {
			return nil, err
		}
		names = append(names, client.DisplayName())
		options = append(options, components.Option{
			Label:       client.DisplayName(),
			Value:       string(target),
			Description: client.RulesDir(),
		})
	}

	options = append(options, components.Option{
		Label:       "Both",
		Value:       string(clients.TargetBoth),
		Description: strings.Join(names, " + "),
	})
	return options, nil
}

func menuTitle(d clients.Detection) string {
	if d.Kind == clients.DetectionAmbiguous {
		names := make([]string, len(d.Found))
		for i, c := range d.Found {
			names[i] = c.DisplayName()
		}
		return fmt.Sprintf("Found configuration for %s. Which IDE should CUTC be installed for?", strings.Join(names, " and "))
	}
	return "No IDE configuration found. Which IDE should CUTC be installed for?"
}
