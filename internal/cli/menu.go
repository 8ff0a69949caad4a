package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"browsermgr/internal/tui"
	"browsermgr/internal/ui"
	"browsermgr/pkg/installer"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the interactive menu",
	Long: `Open the interactive menu. This is also what running browsermgr
without a command does when attached to a terminal.

Navigation:
  - Use arrow keys or j/k to move
  - Press 1-4 to switch tabs
  - Press i or Enter to install, r to remove
  - Press R to refresh, ? for help, q to quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isInteractive() {
			return ErrNotInteractive
		}
		return runMenu(cmd.Context())
	},
}

// runMenu alternates between the full-screen menu and running the chosen
// action in the normal terminal, until the user quits or ctx is cancelled.
func runMenu(ctx context.Context) error {
	var notice string
	var noticeErr bool

	for {
		if ctx.Err() != nil {
			return nil
		}

		snap := refreshInventory(ctx)

		action, err := tui.Run(tui.Data{
			System:      eng.SystemInfo(),
			Browsers:    eng.Registry().All(),
			Installed:   snap,
			History:     recentHistory(20),
			DryRun:      cfg.General.DryRun,
			Notice:      notice,
			NoticeError: noticeErr,
		})
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		notice, noticeErr = "", false

		switch action.Kind {
		case tui.ActionQuit:
			ui.InfoMsg("Goodbye!")
			return nil
		case tui.ActionRefresh:
			continue
		case tui.ActionInstall:
			desc, err := eng.Resolve(action.Browser)
			if err != nil {
				return err
			}
			ui.Banner()
			err = installBrowser(ctx, desc, action.Backend)
			notice, noticeErr = outcome(desc.Name, "installed", err)
		case tui.ActionUninstall:
			desc, err := eng.Resolve(action.Browser)
			if err != nil {
				return err
			}
			ui.Banner()
			err = uninstallBrowser(ctx, desc)
			notice, noticeErr = outcome(desc.Name, "uninstalled", err)
			if errors.Is(err, installer.ErrManualInstall) {
				ui.WarningMsg("%s was installed manually; remove its files by hand", desc.Name)
			}
		}

		if ctx.Err() != nil {
			return nil
		}
		pause()
	}
}

// outcome turns an action result into the notice shown when the menu returns.
func outcome(name, verb string, err error) (string, bool) {
	if err == nil {
		return name + " " + verb, false
	}
	if errors.Is(err, context.Canceled) {
		return "", false
	}
	return fmt.Sprintf("%s was not %s", name, verb), true
}

// pause waits for Enter so the action's output can be read before the menu redraws.
func pause() {
	if cfg.General.AutoConfirm {
		return
	}
	_, _ = ui.Input("Press Enter to return to the menu", "") //nolint:errcheck
}
