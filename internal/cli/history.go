package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"browsermgr/internal/history"
	"browsermgr/internal/log"
	"browsermgr/internal/ui"
)

var (
	historyLimit   int
	historyBrowser string
	historyClear   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show operation history",
	Long: `Display the browsers browsermgr installed and removed.

Examples:
  browsermgr history              # Show recent history
  browsermgr history -l 20        # Show last 20 operations
  browsermgr history --browser brave
  browsermgr history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 10, "number of entries to show")
	historyCmd.Flags().StringVar(&historyBrowser, "browser", "", "only show entries for this browser")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "delete all history entries")
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := history.Open()
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	if historyClear {
		ok, err := confirm("Delete all history entries?", false)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAborted
		}
		if err := store.Clear(); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		ui.SuccessMsg("History cleared")
		return nil
	}

	var entries []history.Entry
	if historyBrowser != "" {
		entries, err = store.ForBrowser(cfg.ResolveAlias(historyBrowser), historyLimit)
	} else {
		entries, err = store.List(historyLimit)
	}
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	if len(entries) == 0 {
		ui.MutedMsg("No history entries found")
		return nil
	}

	ui.HeaderMsg("Operation History")

	for i, entry := range entries {
		fmt.Printf("%2d. %s %s %s [%s] (%s)\n",
			i+1,
			ui.Muted.Sprint(entry.FormatTime()),
			ui.Bold(string(entry.Operation)),
			entry.Browser,
			ui.Cyan(entry.Method),
			ui.Status(entry.Status()),
		)

		if entry.Error != "" {
			ui.MutedMsg("    Error: %s", entry.Error)
		}
	}

	total, _ := store.Count()
	ui.MutedMsg("\nShowing %d of %d total entries", len(entries), total)

	return nil
}

// recordHistory appends an operation to the history. Failures are logged, never returned.
func recordHistory(op history.Operation, browser, method string, opErr error) {
	if !cfg.General.History {
		return
	}

	entry := history.NewEntry(op, browser, method).Finish(opErr)
	entry.DryRun = cfg.General.DryRun

	store, err := history.Open()
	if err != nil {
		log.Debug("history unavailable: %v", err)
		return
	}
	defer store.Close()

	if err := store.Record(entry); err != nil {
		log.Debug("history record failed: %v", err)
	}

	if days := cfg.General.HistoryDays; days > 0 {
		if n, err := store.Prune(time.Duration(days) * 24 * time.Hour); err != nil {
			log.Debug("history prune failed: %v", err)
		} else if n > 0 {
			log.Debug("pruned %d history entries", n)
		}
	}
}

// lastOperation summarises the most recent history entry, or "" if there is none.
func lastOperation() string {
	store, err := history.Open()
	if err != nil {
		log.Debug("history unavailable: %v", err)
		return ""
	}
	defer store.Close()

	last, err := store.Last()
	if err != nil || last == nil {
		return ""
	}
	return last.Summary()
}

// recentHistory returns the latest entries for the menu, or nil if the store is unavailable.
func recentHistory(limit int) []history.Entry {
	store, err := history.Open()
	if err != nil {
		log.Debug("history unavailable: %v", err)
		return nil
	}
	defer store.Close()

	entries, err := store.List(limit)
	if err != nil {
		log.Debug("history read failed: %v", err)
	}
	return entries
}
