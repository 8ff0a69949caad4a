package tui

import (
	"browsermgr/internal/history"
	"browsermgr/pkg/browser"
	"browsermgr/pkg/engine"
	"browsermgr/pkg/installer"
	"browsermgr/pkg/inventory"
)

// View represents different views in the menu
type View int

const (
	ViewBrowsers View = iota
	ViewInstalled
	ViewHistory
	ViewSystem
	ViewBackend
	ViewHelp
)

// Tab represents a navigable tab
type Tab struct {
	Name string
	View View
}

// DefaultTabs returns the default tab configuration
func DefaultTabs() []Tab {
	return []Tab{
		{Name: "Browsers", View: ViewBrowsers},
		{Name: "Installed", View: ViewInstalled},
		{Name: "History", View: ViewHistory},
		{Name: "System", View: ViewSystem},
	}
}

// ActionKind is what the user chose to do when the menu closed.
type ActionKind int

const (
	ActionQuit ActionKind = iota
	ActionInstall
	ActionUninstall
	ActionRefresh
)

// Action is the menu's result. The caller runs it outside the alternate screen
// so package manager output and sudo prompts reach the terminal.
type Action struct {
	Kind    ActionKind
	Browser string
	Backend installer.Backend
}

// Data is everything the menu displays. The menu itself runs no commands.
type Data struct {
	System    engine.SystemInfo
	Browsers  []browser.Descriptor
	Installed inventory.Snapshot
	History   []history.Entry
	DryRun    bool

	// Notice is shown in the header, typically the outcome of the last action.
	Notice      string
	NoticeError bool
}

// Model holds the menu state
type Model struct {
	ready    bool
	quitting bool

	width  int
	height int

	tabs       []Tab
	activeTab  int
	activeView View
	prevView   View

	data Data

	// pending is the browser waiting for a backend choice.
	pending browser.Descriptor

	errorMsg   string
	successMsg string

	cursors map[View]int

	styles *Styles
	keys   KeyMap

	showConfirm   bool
	confirmTitle  string
	confirmAction func()

	action Action
}

// NewModel creates a new menu model
func NewModel(data Data) *Model {
	m := &Model{
		tabs:       DefaultTabs(),
		activeView: ViewBrowsers,
		data:       data,
		cursors:    make(map[View]int),
		styles:     DefaultStyles(),
		keys:       DefaultKeyMap(),
		action:     Action{Kind: ActionQuit},
	}
	if data.Notice != "" {
		if data.NoticeError {
			m.SetError(data.Notice)
		} else {
			m.SetSuccess(data.Notice)
		}
	}
	return m
}

// Action returns the action chosen by the user. It is ActionQuit until one is chosen.
func (m *Model) Action() Action {
	return m.action
}

// SetSize sets the terminal size
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Cursor returns the cursor position for the current view
func (m *Model) Cursor() int {
	return m.cursors[m.activeView]
}

// SetCursor sets the cursor position for the current view
func (m *Model) SetCursor(pos int) {
	m.cursors[m.activeView] = pos
}

// VisibleHeight returns the height available for list content
func (m *Model) VisibleHeight() int {
	// Account for header (1), tabs (1), title (2), footer (1), padding (2)
	if h := m.height - 7; h > 0 {
		return h
	}
	return 10
}

// installedRecords returns installed browsers in catalog order.
func (m *Model) installedRecords() []inventory.Record {
	var out []inventory.Record
	for _, desc := range m.data.Browsers {
		if rec, ok := m.data.Installed[desc.ID]; ok {
			out = append(out, rec)
		}
	}
	return out
}

// itemCount returns the number of selectable rows in the current view.
func (m *Model) itemCount() int {
	switch m.activeView {
	case ViewBrowsers:
		return len(m.data.Browsers)
	case ViewInstalled:
		return len(m.installedRecords())
	case ViewHistory:
		return len(m.data.History)
	case ViewBackend:
		return len(m.data.System.Backends)
	}
	return 0
}

// SelectedBrowser returns the browser under the cursor in the browsers and installed views.
func (m *Model) SelectedBrowser() (browser.Descriptor, bool) {
	cursor := m.Cursor()
	switch m.activeView {
	case ViewBrowsers:
		if cursor >= 0 && cursor < len(m.data.Browsers) {
			return m.data.Browsers[cursor], true
		}
	case ViewInstalled:
		recs := m.installedRecords()
		if cursor >= 0 && cursor < len(recs) {
			return m.descriptor(recs[cursor].Browser)
		}
	}
	return browser.Descriptor{}, false
}

func (m *Model) descriptor(id string) (browser.Descriptor, bool) {
	for _, d := range m.data.Browsers {
		if d.ID == id {
			return d, true
		}
	}
	return browser.Descriptor{}, false
}

// MoveCursor moves the cursor by delta, clamping to valid range
func (m *Model) MoveCursor(delta int) {
	n := m.itemCount()
	if n == 0 {
		return
	}

	pos := m.Cursor() + delta
	if pos < 0 {
		pos = 0
	}
	if pos >= n {
		pos = n - 1
	}
	m.SetCursor(pos)
}

// GoToTop moves cursor to the top
func (m *Model) GoToTop() {
	m.SetCursor(0)
}

// GoToBottom moves cursor to the bottom
func (m *Model) GoToBottom() {
	if n := m.itemCount(); n > 0 {
		m.SetCursor(n - 1)
	}
}

// NextTab switches to the next tab
func (m *Model) NextTab() {
	m.SetTab((m.activeTab + 1) % len(m.tabs))
}

// PrevTab switches to the previous tab
func (m *Model) PrevTab() {
	m.SetTab((m.activeTab - 1 + len(m.tabs)) % len(m.tabs))
}

// SetTab switches to a specific tab by index
func (m *Model) SetTab(index int) {
	if index >= 0 && index < len(m.tabs) {
		m.activeTab = index
		m.activeView = m.tabs[m.activeTab].View
	}
}

// GoBack leaves the backend picker or help view.
func (m *Model) GoBack() {
	if m.activeView == ViewBackend || m.activeView == ViewHelp {
		m.activeView = m.prevView
	}
}

// SetError sets an error message
func (m *Model) SetError(msg string) {
	m.errorMsg = msg
	m.successMsg = ""
}

// SetSuccess sets a success message
func (m *Model) SetSuccess(msg string) {
	m.successMsg = msg
	m.errorMsg = ""
}

// ClearMessages clears all messages
func (m *Model) ClearMessages() {
	m.errorMsg = ""
	m.successMsg = ""
}

// ShowConfirm shows a confirmation dialog
func (m *Model) ShowConfirm(title string, action func()) {
	m.showConfirm = true
	m.confirmTitle = title
	m.confirmAction = action
}

// ConfirmYes executes the confirmation action
func (m *Model) ConfirmYes() {
	if m.confirmAction != nil {
		m.confirmAction()
	}
	m.ConfirmNo()
}

// ConfirmNo cancels the confirmation
func (m *Model) ConfirmNo() {
	m.showConfirm = false
	m.confirmTitle = ""
	m.confirmAction = nil
}

// requestInstall starts the install flow for desc. It returns true when an
// action was chosen and the menu should close.
func (m *Model) requestInstall(desc browser.Descriptor) bool {
	if rec, ok := m.data.Installed[desc.ID]; ok {
		m.SetError(desc.Name + " is already installed (" + string(rec.Provenance) + ")")
		return false
	}

	backends := m.data.System.Backends
	if len(backends) <= 1 {
		m.action = Action{Kind: ActionInstall, Browser: desc.ID, Backend: installer.BackendSystem}
		return true
	}

	m.pending = desc
	m.prevView = m.activeView
	m.activeView = ViewBackend
	m.cursors[ViewBackend] = 0
	return false
}

// chooseBackend completes the install flow with the backend under the cursor.
func (m *Model) chooseBackend() bool {
	backends := m.data.System.Backends
	cursor := m.cursors[ViewBackend]
	if cursor < 0 || cursor >= len(backends) {
		return false
	}
	m.action = Action{Kind: ActionInstall, Browser: m.pending.ID, Backend: backends[cursor]}
	return true
}

// requestUninstall asks for confirmation before removing desc.
func (m *Model) requestUninstall(desc browser.Descriptor, quit func()) {
	rec, ok := m.data.Installed[desc.ID]
	if !ok {
		m.SetError(desc.Name + " is not installed")
		return
	}
	if rec.Provenance == inventory.ProvenanceManual {
		m.SetError(desc.Name + " was installed manually (" + rec.Path + "); remove it by hand")
		return
	}

	m.ShowConfirm("Uninstall "+desc.Name+" ("+string(rec.Provenance)+")?", func() {
		m.action = Action{Kind: ActionUninstall, Browser: desc.ID}
		quit()
	})
}
