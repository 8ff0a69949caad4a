package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"browsermgr/internal/history"
	"browsermgr/internal/ui"
	"browsermgr/pkg/browser"
	"browsermgr/pkg/installer"
)

var installBackend string

var installCmd = &cobra.Command{
	Use:   "install [browser]",
	Short: "Install a browser",
	Long: `Install a browser from the catalog.

With the system backend (the default) the distribution's package manager is
tried first, then Snap, then Flatpak. Chrome and Brave are installed from
their vendor repositories or packages.

Without an argument you are asked to pick a browser and a backend.

Examples:
  browsermgr install firefox            # Native package with fallbacks
  browsermgr install chrome             # Vendor repository or package
  browsermgr install brave -b snap      # Snap only
  browsermgr install google-chrome -n   # Alias, dry run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVarP(&installBackend, "backend", "b", "", "installation backend (system, snap, flatpak)")
}

func runInstall(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	backendName := installBackend
	if backendName == "" {
		backendName = cfg.General.DefaultBackend
	}

	var desc browser.Descriptor
	if len(args) == 1 {
		d, err := eng.Resolve(args[0])
		if err != nil {
			return err
		}
		desc = d
	} else {
		if !isInteractive() {
			return ErrNotInteractive
		}
		d, err := ui.SelectBrowser(eng.NotInstalled(ctx), "Browser to install")
		if err != nil {
			return err
		}
		desc = d
		if installBackend == "" {
			b, err := ui.SelectBackend(eng.AvailableBackends(), "Install with")
			if err != nil {
				return err
			}
			backendName = string(b)
		}
	}

	backend, err := installer.ParseBackend(backendName)
	if err != nil {
		return err
	}

	if rec, ok := eng.Snapshot(ctx)[desc.ID]; ok {
		ui.WarningMsg("%s is already installed (%s)", desc.Name, rec.Provenance)
		ok, err := confirm("Install it again?", false)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAborted
		}
	}

	return installBrowser(ctx, desc, backend)
}

// installBrowser runs the install and records it in the history.
func installBrowser(ctx context.Context, desc browser.Descriptor, backend installer.Backend) error {
	err := eng.Install(ctx, desc.ID, backend)
	recordHistory(history.OpInstall, desc.ID, string(backend), err)
	if err != nil {
		return fmt.Errorf("install %s: %w", desc.ID, err)
	}
	return nil
}
