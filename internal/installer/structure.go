package installer

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/thorrdu/cutc/internal/utils"
)

// ErrDirectoryCreation wraps any failure to create an IDE directory
var ErrDirectoryCreation = errors.New("directory creation failed")

// EnsureStructure creates the marker directory then its rules directory under root.
// Existing directories are fine. Returns the rules directory joined onto root.
func EnsureStructure(root string, step DirStep) (string, error) {
	markerDir := filepath.Join(root, step.MarkerDir)
	if err := utils.EnsureDir(markerDir); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrDirectoryCreation, step.MarkerDir, err)
	}

	rulesDir := filepath.Join(root, step.RulesDir)
	if err := utils.EnsureDir(rulesDir); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrDirectoryCreation, step.RulesDir, err)
	}

	return rulesDir, nil
}
