// Package components provides interactive UI components for the cutc CLI.
package components

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thorrdu/cutc/internal/ui"
	"github.com/thorrdu/cutc/internal/ui/theme"
)

// ErrCancelled is returned when the user aborts a selection
var ErrCancelled = errors.New("selection cancelled")

// Option represents a selectable option.
type Option struct {
	Label       string
	Value       string
	Description string
}

// selectModel is the bubbletea model for the select component.
type selectModel struct {
	title    string
	options  []Option
	cursor   int
	selected int
	done     bool
	theme    theme.Theme
}

// selectKeyMap defines the keybindings for the select component.
type selectKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

var selectKeys = selectKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "select"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
}

func newSelectModel(title string, options []Option) selectModel {
	return selectModel{
		title:    title,
		options:  options,
		selected: -1,
		theme:    theme.Current(),
	}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, selectKeys.Quit):
			m.selected = -1
			m.done = true
			return m, tea.Quit

		case key.Matches(msg, selectKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, selectKeys.Down):
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}

		case key.Matches(msg, selectKeys.Select):
			m.selected = m.cursor
			m.done = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m selectModel) View() string {
	if m.done {
		return ""
	}

	styles := m.theme.Styles()
	sym := m.theme.Symbols()

	var b strings.Builder

	b.WriteString(styles.Header.Render(m.title))
	b.WriteString("\n\n")

	maxLabelWidth := 0
	for _, opt := range m.options {
		if len(opt.Label) > maxLabelWidth {
			maxLabelWidth = len(opt.Label)
		}
	}

	for i, opt := range m.options {
		paddedLabel := opt.Label + strings.Repeat(" ", maxLabelWidth-len(opt.Label))
		if i == m.cursor {
			b.WriteString(styles.Cursor.Render(sym.Arrow + " "))
			b.WriteString(styles.Selected.Render(paddedLabel))
		} else {
			b.WriteString("  ")
			b.WriteString(paddedLabel)
		}
		if opt.Description != "" {
			b.WriteString(styles.Faint.Render("  │  "))
			b.WriteString(styles.Muted.Render(opt.Description))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Faint.Render("↑/↓ navigate • enter select • esc cancel"))

	return b.String()
}

// SelectWithIO displays an interactive selection menu using custom IO.
// Falls back to a numbered menu when in or out is not a terminal.
// Returns ErrCancelled if the user quits or ctx is cancelled.
func SelectWithIO(ctx context.Context, title string, options []Option, in io.Reader, out io.Writer) (*Option, error) {
	if len(options) == 0 {
		return nil, errors.New("no options provided")
	}

	if !ui.IsTTY(out) || !ui.IsInputTTY(in) {
		return selectNumbered(ctx, title, options, in, out)
	}

	m := newSelectModel(title, options)
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out))

	result, err := p.Run()
	if ctx.Err() != nil {
		return nil, ErrCancelled
	}
	if err != nil {
		return nil, fmt.Errorf("select failed: %w", err)
	}

	final := result.(selectModel)
	if final.selected < 0 {
		return nil, ErrCancelled
	}

	return &options[final.selected], nil
}

type lineResult struct {
	line string
	err  error
}

// selectNumbered provides a numbered menu for non-TTY environments.
// It re-prompts until the input is one of the option numbers.
// EOF or ctx cancellation returns ErrCancelled.
func selectNumbered(ctx context.Context, title string, options []Option, in io.Reader, out io.Writer) (*Option, error) {
	fmt.Fprintln(out, title)
	fmt.Fprintln(out)

	for i, opt := range options {
		if opt.Description != "" {
			fmt.Fprintf(out, "  %d) %s - %s\n", i+1, opt.Label, opt.Description)
		} else {
			fmt.Fprintf(out, "  %d) %s\n", i+1, opt.Label)
		}
	}
	fmt.Fprintln(out)

	// Reuse existing bufio.Reader if provided, otherwise create new one
	reader, ok := in.(*bufio.Reader)
	if !ok {
		reader = bufio.NewReader(in)
	}

	// On ctx cancellation the reader stays blocked in ReadString until the process exits
	done := make(chan struct{})
	defer close(done)
	lines := make(chan lineResult)
	go func() {
		for {
			line, err := reader.ReadString('\n')
			select {
			case lines <- lineResult{line: line, err: err}:
			case <-done:
				return
			}
			if err != nil {
				return
			}
		}
	}()

	for {
		fmt.Fprintf(out, "Enter choice [1-%d]: ", len(options))

		var res lineResult
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return nil, ErrCancelled
		case res = <-lines:
		}

		input := strings.TrimSpace(res.line)
		if opt := matchOption(options, input); opt != nil {
			return opt, nil
		}

		if res.err != nil {
			fmt.Fprintln(out)
			if errors.Is(res.err, io.EOF) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("failed to read input: %w", res.err)
		}

		fmt.Fprintf(out, "Invalid choice %q, please enter a number between 1 and %d.\n", input, len(options))
	}
}

// matchOption returns the option whose 1-based number is exactly input, or nil.
// "+1", "01" and similar spellings do not match.
func matchOption(options []Option, input string) *Option {
	for i := range options {
		if input == strconv.Itoa(i+1) {
			return &options[i]
		}
	}
	return nil
}
