package cursor

import (
	"github.com/thorrdu/cutc/internal/clients"
	"github.com/thorrdu/cutc/internal/templates"
)

// ConfigDir is the Cursor project configuration directory name
const ConfigDir = ".cursor"

// Client implements the clients.Client interface for Cursor
// Rules are written to .cursor/rules/cutc_rules.mdc
type Client struct {
	clients.BaseClient
}

// NewClient creates a new Cursor client
func NewClient() *Client {
	return &Client{
		BaseClient: clients.NewBaseClient(
			clients.ClientIDCursor,
			"Cursor",
			ConfigDir,
			".mdc",
			templates.KeyCursorRules,
		),
	}
}

// NextSteps returns the Cursor-specific post-install hints
func (c *Client) NextSteps() []string {
	return []string{
		"Restart Cursor IDE",
		"Verify that CUTC rules are active in settings",
		"Start using Agent mode with your tasks",
	}
}
