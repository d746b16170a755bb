package windsurf

import (
	"github.com/thorrdu/cutc/internal/clients"
	"github.com/thorrdu/cutc/internal/templates"
)

// ConfigDir is the Windsurf project configuration directory name
const ConfigDir = ".windsurf"

// Client implements the clients.Client interface for Windsurf
// Rules are written to .windsurf/rules/cutc_rules.md
type Client struct {
	clients.BaseClient
}

// NewClient creates a new Windsurf client
func NewClient() *Client {
	return &Client{
		BaseClient: clients.NewBaseClient(
			clients.ClientIDWindsurf,
			"Windsurf",
			ConfigDir,
			".md",
			templates.KeyWindsurfRules,
		),
	}
}

// NextSteps returns the Windsurf-specific post-install hints
func (c *Client) NextSteps() []string {
	return []string{
		"Restart Windsurf",
		"Check that cutc_rules is listed under workspace rules in Cascade",
		"Start using Cascade in Write mode with your tasks",
	}
}
