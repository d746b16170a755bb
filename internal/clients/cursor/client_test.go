package cursor

import (
	"path/filepath"
	"testing"

	"github.com/thorrdu/cutc/internal/clients"
	"github.com/thorrdu/cutc/internal/templates"
)

func TestNewClient_Layout(t *testing.T) {
	c := NewClient()

	if c.ID() != clients.ClientIDCursor {
		t.Errorf("ID() = %q, want %q", c.ID(), clients.ClientIDCursor)
	}
	if c.MarkerDir() != ".cursor" {
		t.Errorf("MarkerDir() = %q", c.MarkerDir())
	}
	if want := filepath.Join(".cursor", "rules"); c.RulesDir() != want {
		t.Errorf("RulesDir() = %q, want %q", c.RulesDir(), want)
	}
	if c.RulesFileName() != "cutc_rules.mdc" {
		t.Errorf("RulesFileName() = %q", c.RulesFileName())
	}
	if c.RulesTemplate() != templates.KeyCursorRules {
		t.Errorf("RulesTemplate() = %q", c.RulesTemplate())
	}
	if len(c.NextSteps()) == 0 {
		t.Error("expected next steps")
	}
}

func TestClient_ImplementsInterface(t *testing.T) {
	var _ clients.Client = NewClient()
}
