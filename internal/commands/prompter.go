package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/thorrdu/cutc/internal/ui/components"
)

// Prompter provides an interface for interactive prompts
// This abstraction allows for:
// 1. Easy testing via mocking
// 2. Swapping the menu implementation without changing the selector
type Prompter interface {
	Select(ctx context.Context, title string, options []components.Option) (*components.Option, error)
}

// StdPrompter implements Prompter using the components menu on the given IO
type StdPrompter struct {
	in  io.Reader
	out io.Writer
}

// NewStdPrompter creates a new standard I/O prompter
func NewStdPrompter(in io.Reader, out io.Writer) *StdPrompter {
	return &StdPrompter{
		in:  in,
		out: out,
	}
}

// Select displays the menu and blocks until a choice is made or cancelled
func (p *StdPrompter) Select(ctx context.Context, title string, options []components.Option) (*components.Option, error) {
	return components.SelectWithIO(ctx, title, options, p.in, p.out)
}

type prompterKey struct{}

// WithPrompter returns a context carrying p, used instead of the standard prompter
func WithPrompter(ctx context.Context, p Prompter) context.Context {
	return context.WithValue(ctx, prompterKey{}, p)
}

// getPrompter returns the prompter injected into the command context,
// or a standard prompter on the command's IO
func getPrompter(cmd *cobra.Command) Prompter {
	if ctx := cmd.Context(); ctx != nil {
		if p, ok := ctx.Value(prompterKey{}).(Prompter); ok {
			return p
		}
	}
	return NewStdPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
}
