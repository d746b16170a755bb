package ui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsStdoutTTY reports whether stdout is a terminal.
func IsStdoutTTY() bool {
	return IsTTY(os.Stdout)
}

// IsInputTTY reports whether r is a terminal.
func IsInputTTY(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsStdinTTY reports whether stdin is a terminal.
func IsStdinTTY() bool {
	return IsInputTTY(os.Stdin)
}

// NoColor reports whether the user asked for plain output via NO_COLOR.
func NoColor() bool {
	_, set := os.LookupEnv("NO_COLOR")
	return set
}
