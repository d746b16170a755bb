package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"

	"github.com/thorrdu/cutc/internal/ui/theme"
)

// separatorWidth matches the banner rule printed around an installation
const separatorWidth = 50

// Output provides styled terminal output.
type Output struct {
	out   io.Writer
	err   io.Writer
	theme theme.Theme
	noTTY bool
	width int
}

// NewOutput creates a new styled output instance.
func NewOutput(out, err io.Writer) *Output {
	width := 80 // default
	if w, _, e := term.GetSize(int(os.Stdout.Fd())); e == nil && w > 0 {
		width = w
	}
	return &Output{
		out:   out,
		err:   err,
		theme: theme.Current(),
		noTTY: !IsTTY(out) || NoColor(),
		width: width,
	}
}

// Wrap wraps text to fit the terminal width.
func (o *Output) Wrap(text string) string {
	if o.width <= 0 {
		return text
	}
	return wordwrap.String(text, o.width)
}

func (o *Output) line(w io.Writer, style func(theme.Styles) string, text string) {
	if o.noTTY {
		fmt.Fprintln(w, text)
		return
	}
	fmt.Fprintln(w, style(o.theme.Styles()))
}

// Success prints a success message with checkmark.
func (o *Output) Success(msg string) {
	text := o.theme.Symbols().Success + " " + msg
	o.line(o.out, func(s theme.Styles) string { return s.Success.Render(text) }, text)
}

// Error prints an error message with X mark to stderr.
func (o *Output) Error(msg string) {
	text := o.theme.Symbols().Error + " " + msg
	o.line(o.err, func(s theme.Styles) string { return s.Error.Render(text) }, text)
}

// Warning prints a warning message to stderr.
func (o *Output) Warning(msg string) {
	text := o.theme.Symbols().Warning + " " + msg
	o.line(o.err, func(s theme.Styles) string { return s.Warning.Render(text) }, text)
}

// Info prints an info message with arrow.
func (o *Output) Info(msg string) {
	text := o.theme.Symbols().Info + " " + msg
	o.line(o.out, func(s theme.Styles) string { return s.Info.Render(text) }, text)
}

// Header prints a bold header.
func (o *Output) Header(text string) {
	o.line(o.out, func(s theme.Styles) string { return s.Header.Render(text) }, text)
}

// SubHeader prints a styled sub-header.
func (o *Output) SubHeader(text string) {
	o.line(o.out, func(s theme.Styles) string { return s.SubHeader.Render(text) }, text)
}

// Muted prints muted/dim text.
func (o *Output) Muted(msg string) {
	o.line(o.out, func(s theme.Styles) string { return s.Muted.Render(msg) }, msg)
}

// Separator prints a horizontal rule.
func (o *Output) Separator() {
	rule := strings.Repeat("-", separatorWidth)
	o.line(o.out, func(s theme.Styles) string { return s.Faint.Render(rule) }, rule)
}

// Println prints a line to stdout.
func (o *Output) Println(args ...any) {
	fmt.Fprintln(o.out, args...)
}

// NumberedList prints items as "1. item", wrapped to the terminal width.
func (o *Output) NumberedList(items []string) {
	for i, item := range items {
		prefix := fmt.Sprintf("%d.", i+1)
		if !o.noTTY {
			prefix = o.theme.Styles().ListBullet.Render(prefix)
		}
		fmt.Fprintln(o.out, o.Wrap(prefix+" "+item))
	}
}

// Newline prints an empty line.
func (o *Output) Newline() {
	fmt.Fprintln(o.out)
}
