package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"browsermgr/internal/history"
	"browsermgr/pkg/browser"
	"browsermgr/pkg/engine"
	"browsermgr/pkg/installer"
	"browsermgr/pkg/inventory"
)

func testData(backends ...installer.Backend) Data {
	if len(backends) == 0 {
		backends = []installer.Backend{installer.BackendSystem}
	}
	return Data{
		System: engine.SystemInfo{
			PrettyName: "Ubuntu 24.04 LTS",
			Manager:    "apt",
			Backends:   backends,
		},
		Browsers:  browser.Default().All(),
		Installed: inventory.Snapshot{},
	}
}

func newTestApp(data Data) *App {
	a := NewApp(data)
	a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return a
}

func press(a *App, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd = a.Update(msg)
	}
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestInstallWithSingleBackend(t *testing.T) {
	a := newTestApp(testData())

	cmd := press(a, "i")

	require.True(t, isQuit(cmd))
	assert.Equal(t, Action{Kind: ActionInstall, Browser: "firefox", Backend: installer.BackendSystem}, a.Action())
}

func TestInstallPicksBackend(t *testing.T) {
	a := newTestApp(testData(installer.BackendSystem, installer.BackendSnap, installer.BackendFlatpak))

	cmd := press(a, "down", "enter")
	assert.Nil(t, cmd)
	assert.Equal(t, ViewBackend, a.activeView)
	assert.Contains(t, a.View(), "Install Chromium with:")

	cmd = press(a, "down", "down", "enter")
	require.True(t, isQuit(cmd))
	assert.Equal(t, Action{Kind: ActionInstall, Browser: "chromium", Backend: installer.BackendFlatpak}, a.Action())
}

func TestBackendPickerCanBeCancelled(t *testing.T) {
	a := newTestApp(testData(installer.BackendSystem, installer.BackendSnap))

	press(a, "i", "esc")

	assert.Equal(t, ViewBrowsers, a.activeView)
	assert.Equal(t, ActionQuit, a.Action().Kind)
}

func TestInstallAlreadyInstalled(t *testing.T) {
	data := testData()
	data.Installed = inventory.Snapshot{
		"firefox": {Browser: "firefox", Provenance: inventory.ProvenanceSystem, Package: "firefox"},
	}
	a := newTestApp(data)

	cmd := press(a, "i")

	assert.Nil(t, cmd)
	assert.Contains(t, a.errorMsg, "already installed")
	assert.Equal(t, ActionQuit, a.Action().Kind)
}

func TestUninstallAsksForConfirmation(t *testing.T) {
	data := testData()
	data.Installed = inventory.Snapshot{
		"brave": {Browser: "brave", Provenance: inventory.ProvenanceSnap, Package: "brave"},
	}
	a := newTestApp(data)

	press(a, "2", "r")
	require.True(t, a.showConfirm)
	assert.Contains(t, a.View(), "Uninstall Brave Browser (snap)?")

	cmd := press(a, "y")
	require.True(t, isQuit(cmd))
	assert.Equal(t, Action{Kind: ActionUninstall, Browser: "brave"}, a.Action())
}

func TestUninstallDeclined(t *testing.T) {
	data := testData()
	data.Installed = inventory.Snapshot{
		"firefox": {Browser: "firefox", Provenance: inventory.ProvenanceFlatpak, Package: "org.mozilla.firefox"},
	}
	a := newTestApp(data)

	press(a, "enter")
	require.True(t, a.showConfirm)

	cmd := press(a, "n")
	assert.Nil(t, cmd)
	assert.False(t, a.showConfirm)
	assert.Equal(t, ActionQuit, a.Action().Kind)
}

func TestUninstallManualIsRefused(t *testing.T) {
	data := testData()
	data.Installed = inventory.Snapshot{
		"chrome": {Browser: "chrome", Provenance: inventory.ProvenanceManual, Path: "/usr/bin/google-chrome"},
	}
	a := newTestApp(data)

	press(a, "2", "r")

	assert.False(t, a.showConfirm)
	assert.Contains(t, a.errorMsg, "installed manually")
}

func TestRefreshAndQuit(t *testing.T) {
	a := newTestApp(testData())
	require.True(t, isQuit(press(a, "R")))
	assert.Equal(t, ActionRefresh, a.Action().Kind)

	a = newTestApp(testData())
	require.True(t, isQuit(press(a, "q")))
	assert.Equal(t, ActionQuit, a.Action().Kind)
}

func TestCursorClamps(t *testing.T) {
	a := newTestApp(testData())
	n := len(a.data.Browsers)

	press(a, "up")
	assert.Equal(t, 0, a.Cursor())

	for i := 0; i < n+5; i++ {
		press(a, "down")
	}
	assert.Equal(t, n-1, a.Cursor())

	press(a, "g")
	assert.Equal(t, 0, a.Cursor())
	press(a, "G")
	assert.Equal(t, n-1, a.Cursor())
}

func TestTabs(t *testing.T) {
	a := newTestApp(testData())

	press(a, "4")
	assert.Equal(t, ViewSystem, a.activeView)
	assert.Contains(t, a.View(), "Ubuntu 24.04 LTS")

	a.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, ViewBrowsers, a.activeView)

	a.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, ViewSystem, a.activeView)
}

func TestViews(t *testing.T) {
	data := testData()
	data.Installed = inventory.Snapshot{
		"vivaldi": {Browser: "vivaldi", Provenance: inventory.ProvenanceSystem, Package: "vivaldi-stable"},
	}
	data.History = []history.Entry{
		{Operation: history.OpInstall, Browser: "vivaldi", Method: "system", Success: true},
	}
	data.Notice = "Vivaldi installed"
	a := newTestApp(data)

	view := a.View()
	assert.Contains(t, view, "Mozilla Firefox")
	assert.Contains(t, view, "Vivaldi installed")

	press(a, "2")
	assert.Contains(t, a.View(), "vivaldi-stable")

	press(a, "3")
	assert.True(t, strings.Contains(a.View(), "install vivaldi [system]"))
}

func TestNoticeError(t *testing.T) {
	data := testData()
	data.Notice = "All installation methods failed"
	data.NoticeError = true

	m := NewModel(data)
	assert.Equal(t, "All installation methods failed", m.errorMsg)
	assert.Empty(t, m.successMsg)
}
