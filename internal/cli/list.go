package cli

import (
	"os"

	"github.com/spf13/cobra"

	"browsermgr/internal/ui"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "installed"},
	Short:   "List installed browsers",
	Long: `Show catalog browsers that are installed, with how they were
installed: system package, Snap, Flatpak or a manual install on disk.

Examples:
  browsermgr list`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var browsersCmd = &cobra.Command{
	Use:     "browsers",
	Aliases: []string{"catalog", "available"},
	Short:   "List every browser browsermgr knows",
	Args:    cobra.NoArgs,
	RunE:    runBrowsers,
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	refreshInventory(ctx)

	ui.HeaderMsg("Installed Browsers")
	ui.PrintInstalled(os.Stdout, eng.Registry(), eng.Installed(ctx))
	return nil
}

func runBrowsers(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	snap := refreshInventory(ctx)

	ui.HeaderMsg("Available Browsers")
	ui.PrintCatalog(os.Stdout, eng.Registry(), snap)
	ui.MutedMsg("\n%d browsers, %d installed", eng.Registry().Len(), len(snap))
	return nil
}
