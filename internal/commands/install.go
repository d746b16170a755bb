package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thorrdu/cutc/internal/buildinfo"
	"github.com/thorrdu/cutc/internal/clients"
	"github.com/thorrdu/cutc/internal/config"
	"github.com/thorrdu/cutc/internal/constants"
	"github.com/thorrdu/cutc/internal/logger"
	"github.com/thorrdu/cutc/internal/ui"
)

// executablePath resolves the installer's own file; replaced in tests
var executablePath = func() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(exe)
}

// installOptions are the parsed command line flags
type installOptions struct {
	ide     string
	keep    bool
	verbose bool
}

// NewRootCommand creates the cutc command, which runs the installer
func NewRootCommand() *cobra.Command {
	var opts installOptions

	cmd := &cobra.Command{
		Use:   "cutc",
		Short: "Install Cursor Unlimited Tool Calls (CUTC) into this project",
		Long: fmt.Sprintf(`cutc writes %s to the project root and the CUTC rules document
into the rules directory of Cursor (.cursor/rules) and/or Windsurf (.windsurf/rules).

Without --ide the IDE is taken from config.toml, then from an existing .cursor
or .windsurf directory, and otherwise chosen from a menu.
After a successful run the installer deletes itself unless --keep is given.`, constants.SharedScriptFile),
		Version: buildinfo.String(),
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.ide == "" {
				return nil
			}
			_, err := clients.ParseTarget(opts.ide)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	cmd.Flags().StringVar(&opts.ide, "ide", "",
		"IDE to install for: "+strings.Join(clients.TargetValues(), ", "))
	cmd.Flags().BoolVar(&opts.keep, "keep", false, "Keep the installer after a successful installation")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Also print log records to stderr")

	_ = cmd.RegisterFlagCompletionFunc("ide", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return clients.TargetValues(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// runInstall executes the installer lifecycle
func runInstall(cmd *cobra.Command, opts installOptions) error {
	log := logger.Get()
	if opts.verbose {
		logger.SetVerbose(true)
		log = logger.Get()
	}

	out := ui.NewOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())

	cfg, err := config.Load()
	if err != nil {
		out.Error(err.Error())
		return markReported(err)
	}

	root, err := os.Getwd()
	if err != nil {
		out.Error("Run this installer at the root of your project")
		return markReported(fmt.Errorf("failed to determine working directory: %w", err))
	}

	var directive clients.Target
	if opts.ide != "" {
		// Already validated in PreRunE
		directive, _ = clients.ParseTarget(opts.ide)
	}
	configDefault, _ := cfg.DefaultTarget()

	installerPath := ""
	keep := opts.keep || cfg.KeepInstaller
	if !keep {
		installerPath, err = executablePath()
		if err != nil {
			log.Warn("cannot locate installer for self-removal", "error", err)
			installerPath = ""
		}
	}

	lifecycle := NewLifecycle(LifecycleOptions{
		Root:          root,
		Directive:     directive,
		ConfigDefault: configDefault,
		Keep:          keep,
		InstallerPath: installerPath,
		Registry:      clients.Global(),
		Prompter:      getPrompter(cmd),
		Out:           out,
	})

	_, err = lifecycle.Run(cmd.Context())
	return err
}
