package clients

import (
	"path/filepath"

	"github.com/thorrdu/cutc/internal/constants"
	"github.com/thorrdu/cutc/internal/templates"
)

// Client represents an IDE whose agent runtime reads the installed rules
type Client interface {
	// Identity
	ID() string          // Machine name: "cursor", "windsurf"
	DisplayName() string // Human name: "Cursor", "Windsurf"

	// Layout, relative to the project root
	MarkerDir() string     // Presence means the IDE is already in use: ".cursor"
	RulesDir() string      // Where the rules document goes: ".cursor/rules"
	RulesFileName() string // File name inside RulesDir: "cutc_rules.mdc"

	// RulesTemplate selects the rules document written for this IDE
	RulesTemplate() templates.Key

	// NextSteps are shown after a successful installation
	NextSteps() []string
}

// ClientID constants for supported IDEs
const (
	ClientIDCursor   = "cursor"
	ClientIDWindsurf = "windsurf"
)

// AllClientIDs returns all known client IDs
func AllClientIDs() []string {
	return []string{ClientIDCursor, ClientIDWindsurf}
}

// IsValidClientID checks if the given ID is a known client ID
func IsValidClientID(id string) bool {
	for _, valid := range AllClientIDs() {
		if id == valid {
			return true
		}
	}
	return false
}

// BaseClient provides default implementations for common functionality
type BaseClient struct {
	id          string
	displayName string
	markerDir   string
	rulesFile   string
	template    templates.Key
}

func (b *BaseClient) ID() string                   { return b.id }
func (b *BaseClient) DisplayName() string          { return b.displayName }
func (b *BaseClient) MarkerDir() string            { return b.markerDir }
func (b *BaseClient) RulesFileName() string        { return b.rulesFile }
func (b *BaseClient) RulesTemplate() templates.Key { return b.template }

// RulesDir returns the rules subdirectory of the marker directory
func (b *BaseClient) RulesDir() string {
	return filepath.Join(b.markerDir, constants.RulesSubdir)
}

// NextSteps returns generic post-install hints
func (b *BaseClient) NextSteps() []string {
	return []string{
		"Restart " + b.displayName,
		"Verify that CUTC rules are active in settings",
		"Start using Agent mode with your tasks",
	}
}

// NewBaseClient creates a new base client.
// rulesExt includes the leading dot.
func NewBaseClient(id, displayName, markerDir, rulesExt string, template templates.Key) BaseClient {
	return BaseClient{
		id:          id,
		displayName: displayName,
		markerDir:   markerDir,
		rulesFile:   constants.RulesFileBase + rulesExt,
		template:    template,
	}
}
