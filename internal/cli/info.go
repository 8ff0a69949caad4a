package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"browsermgr/internal/history"
	"browsermgr/internal/log"
	"browsermgr/internal/ui"
	"browsermgr/pkg/inventory"
)

var infoCmd = &cobra.Command{
	Use:   "info <browser>",
	Short: "Show browser details",
	Long: `Display what browsermgr knows about a browser: the package names it
tries on this distribution, its Snap and Flatpak identifiers, whether it
is installed and the last operations recorded for it.

Examples:
  browsermgr info firefox
  browsermgr info google-chrome   # aliases work too`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	desc, err := eng.Resolve(args[0])
	if err != nil {
		return err
	}

	family := eng.Distro().Family()
	source := "native packages"
	if desc.Vendor {
		source = "vendor repository"
	}

	ui.PrintFields(os.Stdout, desc.Name, []ui.Field{
		{Label: "ID", Value: desc.ID},
		{Label: "Description", Value: desc.Description},
		{Label: "Packages (" + string(family) + ")", Value: strings.Join(desc.Candidates(family), ", ")},
		{Label: "System source", Value: source},
		{Label: "Snap", Value: desc.Snap},
		{Label: "Flatpak", Value: desc.Flatpak},
	})

	rec, ok := eng.Snapshot(ctx)[desc.ID]
	switch {
	case !ok:
		ui.MutedMsg("Not installed")
	case rec.Provenance == inventory.ProvenanceManual:
		ui.SuccessMsg("Installed manually at %s", rec.Path)
	default:
		ui.SuccessMsg("Installed via %s (%s)", rec.Provenance, rec.Package)
	}

	entries := browserHistory(desc.ID, 5)
	if len(entries) == 0 {
		return nil
	}
	ui.HeaderMsg("Recent Operations")
	for _, e := range entries {
		ui.Println("  %s", e.Summary())
	}
	return nil
}

func browserHistory(id string, limit int) []history.Entry {
	store, err := history.Open()
	if err != nil {
		log.Debug("history unavailable: %v", err)
		return nil
	}
	defer store.Close()

	entries, err := store.ForBrowser(id, limit)
	if err != nil {
		log.Debug("history read failed: %v", err)
	}
	return entries
}
