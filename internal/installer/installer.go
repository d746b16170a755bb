package installer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thorrdu/cutc/internal/logger"
	"github.com/thorrdu/cutc/internal/utils"
)

// ErrFileWrite wraps any failure to write a planned file
var ErrFileWrite = errors.New("file write failed")

// Outcome is the result of a single plan step
type Outcome struct {
	Success bool
	Message string
	Path    string
}

// Installer executes plans against a project root
type Installer struct {
	root string
}

// New creates an installer rooted at root
func New(root string) *Installer {
	return &Installer{root: root}
}

// Execute ensures every directory in the plan, then writes every file.
// Files are overwritten unconditionally. On error the outcomes gathered so
// far are returned with it; files already written are left in place.
func (i *Installer) Execute(ctx context.Context, plan *Plan) ([]Outcome, error) {
	log := logger.Get()
	outcomes := make([]Outcome, 0, len(plan.Dirs)+len(plan.Writes))

	for _, step := range plan.Dirs {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}
		rulesDir, err := EnsureStructure(i.root, step)
		if err != nil {
			log.Error("structure failed", "client", step.ClientID, "error", err)
			outcomes = append(outcomes, Outcome{Message: err.Error(), Path: filepath.Join(i.root, step.RulesDir)})
			return outcomes, err
		}
		log.Info("structure ready", "client", step.ClientID, "dir", rulesDir)
		outcomes = append(outcomes, Outcome{
			Success: true,
			Message: filepath.ToSlash(step.RulesDir) + "/ structure created",
			Path:    rulesDir,
		})
	}

	for _, step := range plan.Writes {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}
		outcome, err := i.write(step)
		outcomes = append(outcomes, outcome)
		if err != nil {
			log.Error("write failed", "path", outcome.Path, "error", err)
			return outcomes, err
		}
		log.Info("file written", "path", outcome.Path, "bytes", len(step.Content))
	}

	return outcomes, nil
}

func (i *Installer) write(step WriteStep) (Outcome, error) {
	rel := filepath.Join(step.Dir, step.Name)
	path := filepath.Join(i.root, rel)
	if utils.FileExists(path) {
		logger.Get().Debug("overwriting existing file", "path", path)
	}

	if err := os.WriteFile(path, step.Content, 0644); err != nil {
		err = fmt.Errorf("%w: %s: %w", ErrFileWrite, rel, err)
		return Outcome{Message: err.Error(), Path: path}, err
	}

	msg := "CUTC rules installed in " + filepath.ToSlash(rel)
	if step.Shared() {
		msg = step.Name + " installed at root"
	}
	return Outcome{Success: true, Message: msg, Path: path}, nil
}
