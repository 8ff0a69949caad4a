// Package cli implements the command-line interface for browsermgr.
package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"browsermgr/internal/config"
	"browsermgr/internal/executor"
	"browsermgr/internal/log"
	"browsermgr/internal/ui"
	"browsermgr/pkg/engine"
	"browsermgr/pkg/inventory"
)

var (
	// Global flags
	cfgFile string
	dryRun  bool
	yes     bool
	verbose bool
	noColor bool

	// Global state
	cfg *config.Config
	eng *engine.Engine
)

// Build metadata - set at build time via ldflags
var (
	Version   = "1.0.0-dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "browsermgr",
	Short: "Install and remove web browsers on any Linux distribution",
	Long: `browsermgr installs and removes web browsers using whatever your
distribution provides: apt, dnf, yum, pacman or zypper, with Snap and
Flatpak as fallbacks. Chrome and Brave are set up from their vendor
repositories.

Run without a command to open the interactive menu.

Examples:
  browsermgr                          # Interactive menu
  browsermgr install firefox          # Native package, falling back to Snap/Flatpak
  browsermgr install brave -b flatpak # Flatpak only
  browsermgr uninstall chromium       # Remove the way it was installed
  browsermgr list                     # Show installed browsers

Exit status is 1 only when browsermgr cannot start (not Linux, unreadable
config, another instance running). A failed install or removal is
reported and still exits 0.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initializeApp(cmd.Context()); err != nil {
			return fmt.Errorf("%w: %w", ErrBootstrap, err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isInteractive() {
			return cmd.Help()
		}
		return runMenu(cmd.Context())
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "show what would happen without executing")
	rootCmd.PersistentFlags().BoolVarP(&yes, "yes", "y", false, "assume yes to all prompts")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(browsersCmd)
	rootCmd.AddCommand(systemCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(menuCmd)
}

// Execute runs the root command with ctx, which is cancelled on interrupt.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// initializeApp loads configuration and builds the engine.
func initializeApp(ctx context.Context) error {
	if runtime.GOOS != "linux" {
		return fmt.Errorf("%w (running on %s)", ErrUnsupportedOS, runtime.GOOS)
	}

	// Load configuration
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	// Apply global flag overrides
	if yes {
		cfg.General.AutoConfirm = true
	}
	if dryRun {
		cfg.General.DryRun = true
	}
	if verbose {
		cfg.Output.Verbose = true
	}
	if noColor {
		cfg.Output.Color = false
	}

	// Initialize UI
	ui.Init(cfg.ShouldUseColor(), cfg.Output.Unicode)
	if cfg.Output.Verbose {
		log.SetLevel(log.LevelDebug)
	}

	if ctx == nil {
		ctx = context.Background()
	}

	host := executor.New(cfg.General.DryRun, cfg.Output.Verbose)
	eng = engine.New(ctx, engine.Options{
		Host:     host,
		Config:   cfg,
		Reporter: ui.Reporter,
	})

	return nil
}

// isInteractive reports whether prompts and the menu can be shown.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// refreshInventory re-detects installed browsers behind a spinner.
func refreshInventory(ctx context.Context) inventory.Snapshot {
	return ui.While("Detecting installed browsers...", func() inventory.Snapshot {
		return eng.Refresh(ctx)
	})
}

// confirm asks a yes/no question unless auto-confirm or dry-run is active.
func confirm(prompt string, defaultYes bool) (bool, error) {
	if cfg.General.AutoConfirm || cfg.General.DryRun {
		return true, nil
	}
	if !isInteractive() {
		return defaultYes, nil
	}
	return ui.Confirm(prompt, defaultYes)
}

// Version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print browsermgr version",
	// Version needs neither configuration nor host detection.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		ui.InfoMsg("browsermgr version %s", Version)
		if Commit != "unknown" {
			ui.MutedMsg("  Commit: %s", Commit)
		}
		if BuildTime != "unknown" {
			ui.MutedMsg("  Built:  %s", BuildTime)
		}
	},
}
