// Package installer installs and removes catalog browsers, falling back across backends.
package installer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"browsermgr/internal/executor"
	"browsermgr/internal/log"
	"browsermgr/pkg/browser"
	"browsermgr/pkg/distro"
	"browsermgr/pkg/inventory"
	"browsermgr/pkg/manager"
	"browsermgr/pkg/manager/universal"
)

// Backend is the installation method a user asks for.
type Backend string

const (
	BackendSystem  Backend = "system"
	BackendSnap    Backend = "snap"
	BackendFlatpak Backend = "flatpak"
)

// Backends lists the accepted backends in menu order.
var Backends = []Backend{BackendSystem, BackendSnap, BackendFlatpak}

// ParseBackend validates a backend name. An empty string means system.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case "":
		return BackendSystem, nil
	case BackendSystem, BackendSnap, BackendFlatpak:
		return b, nil
	}
	return "", fmt.Errorf("%w: %q (expected system, snap or flatpak)", ErrUnknownBackend, s)
}

// Config wires an Installer to its collaborators.
type Config struct {
	Host      executor.Host
	Registry  *browser.Registry
	Family    distro.Family
	Selector  *manager.Selector
	Snap      *universal.Snap
	Flatpak   *universal.Flatpak
	AUR       *universal.AUR
	Inventory *inventory.Inventory
	Reporter  Reporter

	// DownloadDir receives vendor packages; defaults to a directory under the system temp dir.
	DownloadDir string

	// DryRun treats a command that ran as proof of installation, since nothing really changes.
	DryRun bool
}

// Installer runs install and uninstall operations.
type Installer struct {
	host        executor.Host
	registry    *browser.Registry
	family      distro.Family
	selector    *manager.Selector
	snap        *universal.Snap
	flatpak     *universal.Flatpak
	aur         *universal.AUR
	inventory   *inventory.Inventory
	reporter    Reporter
	downloadDir string
	dryRun      bool
}

// New creates an Installer.
func New(cfg Config) *Installer {
	reporter := cfg.Reporter
	if reporter == nil {
		reporter = Discard
	}
	dir := cfg.DownloadDir
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "browsermgr")
	}

	return &Installer{
		host:        cfg.Host,
		registry:    cfg.Registry,
		family:      cfg.Family,
		selector:    cfg.Selector,
		snap:        cfg.Snap,
		flatpak:     cfg.Flatpak,
		aur:         cfg.AUR,
		inventory:   cfg.Inventory,
		reporter:    reporter,
		downloadDir: dir,
		dryRun:      cfg.DryRun,
	}
}

// SetReporter replaces the progress reporter.
func (i *Installer) SetReporter(r Reporter) {
	if r == nil {
		r = Discard
	}
	i.reporter = r
}

// Install installs a browser with the requested backend. With BackendSystem the
// native manager is tried first and Snap, then Flatpak, are used as fallbacks.
func (i *Installer) Install(ctx context.Context, id string, backend Backend) error {
	desc, ok := i.registry.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownBrowser, id)
	}

	switch backend {
	case BackendSystem:
	case BackendSnap:
		if i.snap == nil || !i.snap.IsAvailable() {
			return fmt.Errorf("%w: snap is not installed", ErrBackendUnavailable)
		}
	case BackendFlatpak:
		if i.flatpak == nil || !i.flatpak.IsAvailable() {
			return fmt.Errorf("%w: flatpak is not installed", ErrBackendUnavailable)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}

	i.infof("Installing %s...", desc.Name)

	var attempts []Attempt
	switch backend {
	case BackendSystem:
		attempts = append(i.systemAttempts(ctx, desc), i.snapAttempt(desc), i.flatpakAttempt(desc))
	case BackendSnap:
		attempts = []Attempt{i.snapAttempt(desc)}
	case BackendFlatpak:
		attempts = []Attempt{i.flatpakAttempt(desc)}
	}

	method, ok := i.runChain(ctx, attempts)
	if !ok {
		if err := ctx.Err(); err != nil {
			return err
		}
		i.errorf("All installation methods failed. Please install %s manually.", desc.Name)
		return fmt.Errorf("%w: %s", ErrInstallFailed, desc.ID)
	}

	i.successf("%s installed successfully via %s!", desc.Name, method)
	i.inventory.Refresh(ctx)
	return nil
}

// systemAttempts returns the native-manager part of the chain. It is empty when
// the selected manager is not a native one.
func (i *Installer) systemAttempts(ctx context.Context, desc browser.Descriptor) []Attempt {
	nm, ok := manager.AsNative(i.selector.Select())
	if !ok {
		i.infof("No native package manager available, skipping system packages")
		return nil
	}

	if recipe, ok := vendors[desc.ID]; ok {
		return i.vendorAttempts(desc.ID, recipe, nm)
	}

	i.infof("Refreshing package index...")
	if err := nm.Update(ctx); err != nil {
		i.warnf("Index refresh failed: %v; continuing", err)
	}

	var attempts []Attempt
	for _, pkg := range desc.Candidates(i.family) {
		attempts = append(attempts, Attempt{
			Name: nm.Name() + " (" + pkg + ")",
			Run: func(ctx context.Context) bool {
				return i.installNative(ctx, nm, desc.ID, pkg)
			},
		})
		if nm.Packaging() == manager.PackagingArch && i.aur != nil {
			attempts = append(attempts, Attempt{
				Name: "AUR helper (" + pkg + ")",
				When: func() bool { return i.aur.Helper() != "" },
				Run: func(ctx context.Context) bool {
					if err := i.aur.Install(ctx, pkg); err != nil {
						return false
					}
					return i.verify(ctx, desc.ID)
				},
			})
		}
	}
	return attempts
}

func (i *Installer) snapAttempt(desc browser.Descriptor) Attempt {
	return Attempt{
		Name: "Snap",
		When: func() bool { return i.snap != nil && desc.Snap != "" && i.snap.IsAvailable() },
		Run: func(ctx context.Context) bool {
			if err := i.snap.Install(ctx, desc.Snap); err != nil {
				i.warnf("snap install %s: %v", desc.Snap, err)
				return false
			}
			return true
		},
	}
}

func (i *Installer) flatpakAttempt(desc browser.Descriptor) Attempt {
	return Attempt{
		Name: "Flatpak",
		When: func() bool { return i.flatpak != nil && desc.Flatpak != "" && i.flatpak.IsAvailable() },
		Run: func(ctx context.Context) bool {
			if err := i.flatpak.EnsureRemote(ctx); err != nil {
				i.warnf("Adding remote %s failed: %v", i.flatpak.Remote(), err)
			}
			if err := i.flatpak.Install(ctx, desc.Flatpak); err != nil {
				i.warnf("flatpak install %s: %v", desc.Flatpak, err)
				return false
			}
			return true
		},
	}
}

// installNative installs pkg and confirms that browser id is now present.
func (i *Installer) installNative(ctx context.Context, nm manager.NativeManager, id, pkg string) bool {
	if err := nm.Install(ctx, pkg); err != nil {
		i.warnf("%s install %s: %v", nm.Name(), pkg, err)
		return false
	}
	return i.verify(ctx, id)
}

// verify runs the native presence detection for one browser.
func (i *Installer) verify(ctx context.Context, id string) bool {
	if i.dryRun {
		return true
	}
	rec, ok := i.inventory.Detector().DetectOne(ctx, id)
	log.Debug("verify %s: found=%v package=%q", id, ok, rec.Package)
	return ok
}

// Uninstall removes a browser the way it was installed. The record must be in
// the latest snapshot; nothing is run otherwise. Once a removal is dispatched
// the inventory is refreshed whatever the outcome.
func (i *Installer) Uninstall(ctx context.Context, id string) error {
	desc, ok := i.registry.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownBrowser, id)
	}

	rec, ok := i.inventory.Latest()[desc.ID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotInstalled, desc.ID)
	}
	if rec.Provenance == inventory.ProvenanceManual {
		return fmt.Errorf("%w: %s (%s)", ErrManualInstall, desc.Name, rec.Path)
	}

	defer i.inventory.Refresh(ctx)

	var run func() error
	switch rec.Provenance {
	case inventory.ProvenanceSystem:
		mgr := i.selector.Select()
		if _, ok := manager.AsNative(mgr); !ok {
			return fmt.Errorf("%w: no native package manager", ErrBackendUnavailable)
		}
		run = func() error { return mgr.Uninstall(ctx, rec.Package) }
	case inventory.ProvenanceSnap:
		if i.snap == nil {
			return fmt.Errorf("%w: snap", ErrBackendUnavailable)
		}
		run = func() error { return i.snap.Uninstall(ctx, desc.Snap) }
	case inventory.ProvenanceFlatpak:
		if i.flatpak == nil {
			return fmt.Errorf("%w: flatpak", ErrBackendUnavailable)
		}
		run = func() error { return i.flatpak.Uninstall(ctx, desc.Flatpak) }
	default:
		return fmt.Errorf("%w: unknown provenance %q", ErrUninstallFailed, rec.Provenance)
	}

	i.infof("Uninstalling %s (%s)...", desc.Name, rec.Provenance)
	if err := run(); err != nil {
		i.errorf("Failed to uninstall %s", desc.Name)
		return fmt.Errorf("%w: %s: %v", ErrUninstallFailed, desc.ID, err)
	}

	i.successf("%s uninstalled successfully!", desc.Name)
	return nil
}
