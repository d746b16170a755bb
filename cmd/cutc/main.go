package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/thorrdu/cutc/internal/buildinfo"
	"github.com/thorrdu/cutc/internal/clients"
	"github.com/thorrdu/cutc/internal/clients/cursor"
	"github.com/thorrdu/cutc/internal/clients/windsurf"
	"github.com/thorrdu/cutc/internal/commands"
	"github.com/thorrdu/cutc/internal/logger"
	"github.com/thorrdu/cutc/internal/ui"
)

func init() {
	// Register all clients, in menu order
	clients.Register(cursor.NewClient())
	clients.Register(windsurf.NewClient())
}

func main() {
	// Log command invocation with context
	log := logger.Get()
	cwd, _ := os.Getwd()
	log.Info("command invoked", "version", buildinfo.Version, "command", strings.Join(os.Args[1:], " "), "cwd", cwd,
		"stdin_tty", ui.IsStdinTTY(), "stdout_tty", ui.IsStdoutTTY())

	// Interrupts cancel the run; exit status stays 1 and nothing is written
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := commands.NewRootCommand()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error("command failed", "error", err)
		if !commands.IsReported(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		stop()
		os.Exit(1)
	}
}
