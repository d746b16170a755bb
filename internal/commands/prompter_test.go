package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thorrdu/cutc/internal/ui/components"
)

// MockPrompter implements Prompter for testing with expect-style responses
type MockPrompter struct {
	// responses is a queue of expected prompts and their responses
	responses []mockResponse
	index     int
}

type mockResponse struct {
	expectContains string // Expected substring in the menu title
	value          string // Option value to pick
	cancel         bool   // Whether the user aborts instead
}

// NewMockPrompter creates a new mock prompter with no expectations
func NewMockPrompter() *MockPrompter {
	return &MockPrompter{
		responses: []mockResponse{},
	}
}

// ExpectSelect adds an expectation for a menu whose title contains the given text
func (m *MockPrompter) ExpectSelect(contains, value string) *MockPrompter {
	m.responses = append(m.responses, mockResponse{
		expectContains: contains,
		value:          value,
	})
	return m
}

// ExpectCancel adds an expectation for a menu the user aborts
func (m *MockPrompter) ExpectCancel(contains string) *MockPrompter {
	m.responses = append(m.responses, mockResponse{
		expectContains: contains,
		cancel:         true,
	})
	return m
}

// Select implements Prompter
func (m *MockPrompter) Select(_ context.Context, title string, options []components.Option) (*components.Option, error) {
	if m.index >= len(m.responses) {
		return nil, fmt.Errorf("unexpected prompt: %s (no more responses configured)", title)
	}

	expected := m.responses[m.index]
	if !strings.Contains(title, expected.expectContains) {
		return nil, fmt.Errorf("prompt mismatch: expected title containing %q, got %q", expected.expectContains, title)
	}
	m.index++

	if expected.cancel {
		return nil, components.ErrCancelled
	}
	for i := range options {
		if options[i].Value == expected.value {
			return &options[i], nil
		}
	}
	return nil, fmt.Errorf("no option with value %q", expected.value)
}

// AssertAllUsed verifies that all expected prompts were called
func (m *MockPrompter) AssertAllUsed() error {
	if m.index < len(m.responses) {
		return fmt.Errorf("not all expected prompts were used: %d/%d used", m.index, len(m.responses))
	}
	return nil
}

// ExecuteWithPrompter executes a cobra command with a mock prompter injected
// Returns any error from command execution or prompt assertion
func ExecuteWithPrompter(cmd *cobra.Command, prompter *MockPrompter) error {
	ctx := WithPrompter(context.Background(), prompter)
	cmd.SetContext(ctx)

	if err := cmd.Execute(); err != nil {
		return err
	}

	return prompter.AssertAllUsed()
}
