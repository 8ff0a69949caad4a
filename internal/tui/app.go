package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"browsermgr/pkg/browser"
	"browsermgr/pkg/inventory"
)

// App wraps the Model with bubbletea components
type App struct {
	*Model
	help help.Model
}

// NewApp creates a new menu application
func NewApp(data Data) *App {
	h := help.New()
	h.ShortSeparator = "  "
	return &App{
		Model: NewModel(data),
		help:  h,
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetSize(msg.Width, msg.Height)
		a.help.Width = msg.Width
		a.ready = true

	case tea.KeyMsg:
		if a.showConfirm {
			switch msg.String() {
			case "y", "Y", "enter":
				a.ConfirmYes()
			case "n", "N", "esc", "q":
				a.ConfirmNo()
			}
			if a.quitting {
				return a, tea.Quit
			}
			return a, nil
		}
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a.quit()

	case key.Matches(msg, a.keys.Help):
		if a.activeView == ViewHelp {
			a.GoBack()
		} else {
			a.prevView = a.activeView
			a.activeView = ViewHelp
		}

	case key.Matches(msg, a.keys.Back):
		a.GoBack()
		a.ClearMessages()

	case key.Matches(msg, a.keys.Refresh):
		a.action = Action{Kind: ActionRefresh}
		return a.quit()

	case key.Matches(msg, a.keys.Tab1):
		a.SetTab(0)
	case key.Matches(msg, a.keys.Tab2):
		a.SetTab(1)
	case key.Matches(msg, a.keys.Tab3):
		a.SetTab(2)
	case key.Matches(msg, a.keys.Tab4):
		a.SetTab(3)
	case key.Matches(msg, a.keys.Left):
		a.PrevTab()
	case key.Matches(msg, a.keys.Right):
		a.NextTab()

	case key.Matches(msg, a.keys.Up):
		a.MoveCursor(-1)
	case key.Matches(msg, a.keys.Down):
		a.MoveCursor(1)
	case key.Matches(msg, a.keys.Home):
		a.GoToTop()
	case key.Matches(msg, a.keys.End):
		a.GoToBottom()

	case key.Matches(msg, a.keys.Enter):
		return a.handleEnter()

	case key.Matches(msg, a.keys.Install):
		if desc, ok := a.SelectedBrowser(); ok && a.activeView == ViewBrowsers {
			if a.requestInstall(desc) {
				return a.quit()
			}
		}

	case key.Matches(msg, a.keys.Uninstall):
		if desc, ok := a.SelectedBrowser(); ok {
			a.requestUninstall(desc, a.markQuitting)
		}
	}

	return a, nil
}

func (a *App) handleEnter() (tea.Model, tea.Cmd) {
	switch a.activeView {
	case ViewBackend:
		if a.chooseBackend() {
			return a.quit()
		}
	case ViewBrowsers:
		desc, ok := a.SelectedBrowser()
		if !ok {
			break
		}
		if a.data.Installed.Has(desc.ID) {
			a.requestUninstall(desc, a.markQuitting)
		} else if a.requestInstall(desc) {
			return a.quit()
		}
	case ViewInstalled:
		if desc, ok := a.SelectedBrowser(); ok {
			a.requestUninstall(desc, a.markQuitting)
		}
	}
	return a, nil
}

func (a *App) markQuitting() {
	a.quitting = true
}

func (a *App) quit() (tea.Model, tea.Cmd) {
	a.quitting = true
	return a, tea.Quit
}

// View implements tea.Model
func (a *App) View() string {
	if !a.ready {
		return "Loading..."
	}

	if a.quitting {
		return ""
	}

	if a.showConfirm {
		return a.renderWithDialog()
	}

	var b strings.Builder
	b.WriteString(a.renderHeader())
	b.WriteString("\n")
	b.WriteString(a.renderTabs())
	b.WriteString("\n")
	b.WriteString(a.renderContent())
	b.WriteString(a.renderFooter())
	return b.String()
}

// renderHeader renders the header bar
func (a *App) renderHeader() string {
	title := " browsermgr"
	if a.data.System.PrettyName != "" {
		title += " - " + a.data.System.PrettyName
	}
	if a.data.DryRun {
		title += " [dry-run]"
	}
	left := a.styles.Header.Render(title + " ")

	var right string
	if a.errorMsg != "" {
		right = a.styles.Error.Render(a.errorMsg)
	} else if a.successMsg != "" {
		right = a.styles.Success.Render(a.successMsg)
	}

	padding := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 0 {
		padding = 0
	}

	return left + strings.Repeat(" ", padding) + right
}

// renderTabs renders the tab bar
func (a *App) renderTabs() string {
	var tabs []string
	for i, tab := range a.tabs {
		style := a.styles.TabInactive
		if i == a.activeTab {
			style = a.styles.TabActive
		}
		tabs = append(tabs, style.Render(fmt.Sprintf("[%d] %s", i+1, tab.Name)))
	}

	return lipgloss.NewStyle().
		Width(a.width).
		Background(ColorPanel).
		Padding(0, 1).
		Render(strings.Join(tabs, " "))
}

// renderContent renders the main content area
func (a *App) renderContent() string {
	var content string
	switch a.activeView {
	case ViewBrowsers:
		content = a.renderBrowsers()
	case ViewInstalled:
		content = a.renderInstalled()
	case ViewHistory:
		content = a.renderHistory()
	case ViewSystem:
		content = a.renderSystem()
	case ViewBackend:
		content = a.renderBackend()
	case ViewHelp:
		content = a.help.FullHelpView(a.keys.FullHelp())
	}

	return lipgloss.NewStyle().
		Width(a.width).
		Height(a.height - 4).
		Padding(1, 2).
		Render(content)
}

// window returns the slice bounds that keep the cursor visible.
func (a *App) window(n int) (int, int) {
	h := a.VisibleHeight()
	start := 0
	if c := a.Cursor(); c >= h {
		start = c - h + 1
	}
	end := start + h
	if end > n {
		end = n
	}
	return start, end
}

func (a *App) renderLine(i int, text string) string {
	if i == a.Cursor() {
		return a.styles.ListItemSelected.Render("> "+text) + "\n"
	}
	return a.styles.ListItem.Render(text) + "\n"
}

func (a *App) renderBrowsers() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render(fmt.Sprintf("Browsers (%d)", len(a.data.Browsers))))
	b.WriteString("\n")

	start, end := a.window(len(a.data.Browsers))
	for i := start; i < end; i++ {
		desc := a.data.Browsers[i]
		status := a.styles.Description.Render("not installed")
		if rec, ok := a.data.Installed[desc.ID]; ok {
			status = ProvenanceBadge(string(rec.Provenance))
		}
		line := fmt.Sprintf("%-22s %s  %s", a.styles.BrowserName.Render(desc.Name), status,
			a.styles.Description.Render(desc.Description))
		b.WriteString(a.renderLine(i, line))
	}
	return b.String()
}

func (a *App) renderInstalled() string {
	recs := a.installedRecords()

	var b strings.Builder
	b.WriteString(a.styles.Title.Render(fmt.Sprintf("Installed Browsers (%d)", len(recs))))
	b.WriteString("\n")

	if len(recs) == 0 {
		b.WriteString(a.styles.Description.Render("No catalog browsers are installed. Press 1 to pick one."))
		return b.String()
	}

	start, end := a.window(len(recs))
	for i := start; i < end; i++ {
		b.WriteString(a.renderLine(i, a.recordLine(recs[i])))
	}
	return b.String()
}

func (a *App) recordLine(rec inventory.Record) string {
	name := rec.Browser
	if desc, ok := a.descriptor(rec.Browser); ok {
		name = desc.Name
	}
	detail := rec.Package
	if rec.Provenance == inventory.ProvenanceManual {
		detail = rec.Path
	}
	return fmt.Sprintf("%s %s %s", a.styles.BrowserName.Render(name),
		ProvenanceBadge(string(rec.Provenance)), a.styles.Description.Render(detail))
}

func (a *App) renderHistory() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Recent Operations"))
	b.WriteString("\n")

	if len(a.data.History) == 0 {
		b.WriteString(a.styles.Description.Render("No history entries yet."))
		return b.String()
	}

	start, end := a.window(len(a.data.History))
	for i := start; i < end; i++ {
		e := a.data.History[i]
		line := e.Summary()
		if !e.Success {
			line = a.styles.Error.Render(line)
		}
		b.WriteString(a.renderLine(i, line))
	}
	return b.String()
}

func (a *App) renderSystem() string {
	sys := a.data.System

	var backends []string
	for _, be := range sys.Backends {
		backends = append(backends, string(be))
	}

	fields := []struct{ label, value string }{
		{"Distribution", sys.PrettyName},
		{"Version", sys.Version},
		{"Codename", sys.Codename},
		{"Family", string(sys.Family)},
		{"Package manager", sys.Manager},
		{"Install with", sys.Verbs.Install},
		{"Remove with", sys.Verbs.Remove},
		{"Backends", strings.Join(backends, ", ")},
		{"Date", sys.Date.Format("2006-01-02 15:04")},
	}

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("System Information"))
	b.WriteString("\n")
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		b.WriteString(a.styles.Label.Render(f.label) + f.value + "\n")
	}
	return b.String()
}

func (a *App) renderBackend() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Install " + a.pending.Name + " with:"))
	b.WriteString("\n")

	for i, be := range a.data.System.Backends {
		text := string(be)
		if hint := backendHint(a.pending, string(be)); hint != "" {
			text += "  " + a.styles.Description.Render(hint)
		}
		if i == a.cursors[ViewBackend] {
			b.WriteString(a.styles.ListItemSelected.Render("> "+text) + "\n")
		} else {
			b.WriteString(a.styles.ListItem.Render(text) + "\n")
		}
	}
	return b.String()
}

func backendHint(desc browser.Descriptor, backend string) string {
	switch backend {
	case "system":
		return "native packages, then Snap and Flatpak"
	case "snap":
		return desc.Snap
	case "flatpak":
		return desc.Flatpak
	}
	return ""
}

// renderFooter renders the footer bar
func (a *App) renderFooter() string {
	return lipgloss.NewStyle().
		Width(a.width).
		Background(ColorPanel).
		Foreground(ColorMuted).
		Padding(0, 1).
		Render(a.help.ShortHelpView(a.keys.ShortHelp()))
}

// renderWithDialog renders the confirmation dialog
func (a *App) renderWithDialog() string {
	dialog := a.styles.Dialog.Render(
		a.styles.DialogTitle.Render(a.confirmTitle) + "\n\n" +
			a.styles.DialogButton.Render("[Y]es") + " " +
			lipgloss.NewStyle().Foreground(ColorMuted).Render("[N]o"),
	)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, dialog,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(ColorBg))
}

// Run shows the menu and returns the chosen action.
func Run(data Data) (Action, error) {
	app := NewApp(data)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return Action{Kind: ActionQuit}, err
	}
	return app.Action(), nil
}
