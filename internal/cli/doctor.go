package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"browsermgr/internal/config"
	"browsermgr/internal/executor"
	"browsermgr/internal/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose system issues",
	Long: `Check that the tools browsermgr relies on are present: a package
manager, sudo, Snap, Flatpak, wget or curl, and on Arch an AUR helper or
git and makepkg.

Examples:
  browsermgr doctor`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	issues := 0

	ui.HeaderMsg("Running diagnostics...")

	info := eng.SystemInfo()
	ui.SuccessMsg("System detected: %s (%s family)", info.PrettyName, info.Family)

	selected := eng.SelectedManager()
	if selected != nil {
		ui.SuccessMsg("Package manager: %s", selected.DisplayName())
		switch err := executor.CheckPrivileges(selected.NeedsSudo()); {
		case err != nil:
			ui.ErrorMsg("%v", err)
			issues++
		case executor.IsRoot():
			ui.SuccessMsg("Running as root")
		case selected.NeedsSudo():
			ui.SuccessMsg("sudo available for %s", selected.Verbs().Install)
		}
	}

	var others []string
	for _, m := range eng.AvailableManagers() {
		if selected == nil || m.Name() != selected.Name() {
			others = append(others, m.Name())
		}
	}
	if len(others) > 0 {
		ui.InfoMsg("Also present: %s", strings.Join(others, ", "))
	}

	ui.HeaderMsg("Tools")
	for _, c := range eng.Diagnose() {
		label := c.Name
		if c.Detail != "" {
			label += ": " + c.Detail
		}
		switch {
		case c.OK:
			ui.SuccessMsg("%s", label)
		case c.Name == "package manager" || c.Name == "native packages":
			ui.ErrorMsg("%s", label)
			issues++
		default:
			ui.MutedMsg("  %s not available", label)
		}
	}

	ui.HeaderMsg("Configuration")
	ui.InfoMsg("Config file: %s", configPath())
	ui.InfoMsg("History: %s", config.HistoryPath())
	ui.InfoMsg("Downloads: %s", cfg.DownloadDir())

	ui.HeaderMsg("Summary")
	if issues == 0 {
		ui.SuccessMsg("No issues found! browsermgr is ready to use.")
	} else {
		ui.WarningMsg("Found %d issue(s). Some install methods may not work.", issues)
	}

	return nil
}

func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.ConfigPath()
}
