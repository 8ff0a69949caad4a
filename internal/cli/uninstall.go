package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"browsermgr/internal/history"
	"browsermgr/internal/ui"
	"browsermgr/pkg/browser"
)

var uninstallCmd = &cobra.Command{
	Use:     "uninstall [browser]",
	Aliases: []string{"remove", "rm"},
	Short:   "Remove an installed browser",
	Long: `Remove a browser the same way it was installed: with the package
manager, Snap or Flatpak. Browsers found only on disk (for example a tarball
in /opt) are reported but not removed.

Examples:
  browsermgr uninstall firefox      # Ask, then remove
  browsermgr uninstall -y brave     # Remove without confirmation`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUninstall,
}

func runUninstall(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// Removal always works from a fresh view.
	snap := refreshInventory(ctx)

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
		var installed []browser.Descriptor
		for _, rec := range eng.Installed(ctx) {
			if d, ok := eng.Registry().Get(rec.Browser); ok {
				installed = append(installed, d)
			}
		}
		if len(installed) == 0 {
			return ErrNothingInstalled
		}
		d, err := ui.SelectBrowser(installed, "Browser to uninstall")
		if err != nil {
			return err
		}
		desc = d
	}

	if rec, ok := snap[desc.ID]; ok {
		ok, err := confirm(fmt.Sprintf("Uninstall %s (%s)?", desc.Name, rec.Provenance), false)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAborted
		}
	}

	return uninstallBrowser(ctx, desc)
}

// uninstallBrowser runs the removal and records it in the history.
func uninstallBrowser(ctx context.Context, desc browser.Descriptor) error {
	method := ""
	if rec, ok := eng.Snapshot(ctx)[desc.ID]; ok {
		method = string(rec.Provenance)
	}

	err := eng.Uninstall(ctx, desc.ID)
	if method != "" {
		recordHistory(history.OpUninstall, desc.ID, method, err)
	}
	if err != nil {
		return fmt.Errorf("uninstall %s: %w", desc.ID, err)
	}
	return nil
}
