package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"browsermgr/internal/ui"
)

var systemCmd = &cobra.Command{
	Use:   "system",
	Short: "Show system information",
	Long: `Display the detected distribution, the package manager browsermgr
will use, and which installation backends are available.

Examples:
  browsermgr system`,
	Args: cobra.NoArgs,
	RunE: runSystem,
}

func runSystem(cmd *cobra.Command, args []string) error {
	printSystemInfo()
	return nil
}

func printSystemInfo() {
	info := eng.SystemInfo()

	backends := make([]string, len(info.Backends))
	for i, b := range info.Backends {
		backends[i] = string(b)
	}

	manager := info.Manager
	if m := eng.SelectedManager(); m != nil {
		manager = m.DisplayName()
	}

	ui.PrintFields(os.Stdout, "System Information", []ui.Field{
		{Label: "Distribution", Value: info.PrettyName},
		{Label: "ID", Value: info.ID},
		{Label: "Version", Value: info.Version},
		{Label: "Codename", Value: info.Codename},
		{Label: "Family", Value: string(info.Family)},
		{Label: "Package Manager", Value: manager},
		{Label: "Install with", Value: info.Verbs.Install},
		{Label: "Remove with", Value: info.Verbs.Remove},
		{Label: "Refresh with", Value: info.Verbs.Update},
		{Label: "Backends", Value: strings.Join(backends, ", ")},
		{Label: "Date", Value: info.Date.Format("Monday, January 2, 2006 15:04")},
		{Label: "Last operation", Value: lastOperation()},
	})
}
