// Package installer builds and executes the file plan for a resolved target.
package installer

import (
	"fmt"

	"github.com/thorrdu/cutc/internal/clients"
	"github.com/thorrdu/cutc/internal/constants"
	"github.com/thorrdu/cutc/internal/templates"
)

// DirStep is one directory structure to ensure before any file is written
type DirStep struct {
	ClientID string
	// MarkerDir and RulesDir are relative to the project root
	MarkerDir string
	RulesDir  string
}

// WriteStep is one file write, relative to the project root
type WriteStep struct {
	// ClientID is empty for the shared script
	ClientID string
	Dir      string
	Name     string
	Content  []byte
}

// Shared reports whether the step writes the shared root-level script
func (w WriteStep) Shared() bool {
	return w.ClientID == ""
}

// Plan is everything one run writes. It is consumed once and never persisted.
type Plan struct {
	Target  clients.Target
	Clients []clients.Client
	Dirs    []DirStep
	Writes  []WriteStep
}

// BuildPlan derives the plan for target from the registry.
// The shared script appears exactly once; each IDE contributes one rules write.
func BuildPlan(registry *clients.Registry, target clients.Target) (*Plan, error) {
	targetClients, err := registry.Clients(target)
	if err != nil {
		return nil, err
	}

	shared, err := templates.Get(templates.KeySharedScript)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		Target:  target,
		Clients: targetClients,
		Writes: []WriteStep{{
			Dir:     ".",
			Name:    constants.SharedScriptFile,
			Content: shared,
		}},
	}

	for _, client := range targetClients {
		content, err := templates.Get(client.RulesTemplate())
		if err != nil {
			return nil, fmt.Errorf("rules for %s: %w", client.DisplayName(), err)
		}
		plan.Dirs = append(plan.Dirs, DirStep{
			ClientID:  client.ID(),
			MarkerDir: client.MarkerDir(),
			RulesDir:  client.RulesDir(),
		})
		plan.Writes = append(plan.Writes, WriteStep{
			ClientID: client.ID(),
			Dir:      client.RulesDir(),
			Name:     client.RulesFileName(),
			Content:  content,
		})
	}

	return plan, nil
}
