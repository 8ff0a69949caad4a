package installer

import (
	"errors"

	"browsermgr/pkg/browser"
)

var (
	// ErrUnknownBrowser is returned for IDs that are not in the catalog.
	ErrUnknownBrowser = browser.ErrUnknownBrowser

	// ErrUnknownBackend is returned for backends other than system, snap and flatpak.
	ErrUnknownBackend = errors.New("unknown backend")

	// ErrBackendUnavailable is returned when an explicitly requested backend is not installed.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrNotInstalled is returned when uninstalling a browser that was not detected.
	ErrNotInstalled = errors.New("browser is not installed")

	// ErrManualInstall is returned when a browser was installed outside any package manager.
	ErrManualInstall = errors.New("browser was installed manually and must be removed by hand")

	// ErrInstallFailed is returned when every install method has been tried.
	ErrInstallFailed = errors.New("all installation methods failed")

	// ErrUninstallFailed is returned when the removal command fails.
	ErrUninstallFailed = errors.New("uninstall failed")
)
