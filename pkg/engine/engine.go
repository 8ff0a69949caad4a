// Package engine wires the browser catalog, package managers, inventory and
// installer into the single object the command line and menu talk to.
package engine

import (
	"context"
	"path/filepath"
	"time"

	"browsermgr/internal/config"
	"browsermgr/internal/executor"
	"browsermgr/internal/log"
	"browsermgr/pkg/aur"
	"browsermgr/pkg/browser"
	"browsermgr/pkg/distro"
	"browsermgr/pkg/installer"
	"browsermgr/pkg/inventory"
	"browsermgr/pkg/manager"
	"browsermgr/pkg/manager/native"
	"browsermgr/pkg/manager/universal"
)

// fallbackManager is reported when no package manager could be detected.
const fallbackManager = "apt"

// Options configures a new Engine.
type Options struct {
	Host   executor.Host
	Config *config.Config

	// Distro skips OS detection when set.
	Distro *distro.Info

	// AUR is the RPC client used before manual builds. Nil uses the public AUR.
	AUR *aur.Client

	Reporter installer.Reporter
}

// Engine is the browser manager facade.
type Engine struct {
	host      executor.Host
	cfg       *config.Config
	info      *distro.Info
	registry  *browser.Registry
	selector  *manager.Selector
	snap      *universal.Snap
	flatpak   *universal.Flatpak
	aur       *universal.AUR
	inventory *inventory.Inventory
	installer *installer.Installer
}

// SystemInfo is what the system panel shows.
type SystemInfo struct {
	PrettyName string
	ID         string
	Version    string
	Codename   string
	Family     distro.Family
	Manager    string
	Verbs      manager.Verbs
	Backends   []installer.Backend
	Date       time.Time
}

// New builds an engine. Distribution detection runs here unless opts.Distro is set.
func New(ctx context.Context, opts Options) *Engine {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	info := opts.Distro
	if info == nil {
		info = distro.Detect(ctx, opts.Host)
	}
	log.Debug("distribution %s (%s) classified as %s", info.PrettyName, info.ID, info.Family())

	h := opts.Host
	aptCfg := cfg.GetManagerConfig("apt")
	snapCfg := cfg.GetManagerConfig("snap")
	flatpakCfg := cfg.GetManagerConfig("flatpak")
	pacmanCfg := cfg.GetManagerConfig("pacman")

	snap := universal.NewSnap(h, snapCfg.AllowClassic)
	flatpak := universal.NewFlatpak(h, flatpakCfg.DefaultRemote, flatpakCfg.RemoteURL)

	client := opts.AUR
	if client == nil {
		client = aur.NewClient()
	}
	downloadDir := cfg.DownloadDir()
	aurMgr := universal.NewAUR(h, pacmanCfg.AURHelper, client, filepath.Join(downloadDir, "aur"))

	selector := manager.NewSelector(fallbackManager,
		native.NewAPT(h, aptCfg.UseNala),
		native.NewDNF(h),
		native.NewYUM(h),
		native.NewPacman(h),
		native.NewZypper(h),
		snap,
		flatpak,
	)

	registry := browser.Default()
	family := info.Family()
	inv := inventory.New(inventory.NewDetector(h, registry, family, selector, snap, flatpak))

	inst := installer.New(installer.Config{
		Host:        h,
		Registry:    registry,
		Family:      family,
		Selector:    selector,
		Snap:        snap,
		Flatpak:     flatpak,
		AUR:         aurMgr,
		Inventory:   inv,
		Reporter:    opts.Reporter,
		DownloadDir: downloadDir,
		DryRun:      cfg.General.DryRun,
	})

	return &Engine{
		host:      h,
		cfg:       cfg,
		info:      info,
		registry:  registry,
		selector:  selector,
		snap:      snap,
		flatpak:   flatpak,
		aur:       aurMgr,
		inventory: inv,
		installer: inst,
	}
}

// SetReporter replaces the progress reporter used by Install and Uninstall.
func (e *Engine) SetReporter(r installer.Reporter) {
	e.installer.SetReporter(r)
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() *config.Config {
	return e.cfg
}

// Distro returns the detected distribution.
func (e *Engine) Distro() *distro.Info {
	return e.info
}

// Registry returns the browser catalog.
func (e *Engine) Registry() *browser.Registry {
	return e.registry
}

// Resolve turns a user-typed name or alias into a catalog descriptor.
func (e *Engine) Resolve(name string) (browser.Descriptor, error) {
	id := e.cfg.ResolveAlias(name)
	desc, ok := e.registry.Get(id)
	if !ok {
		return browser.Descriptor{}, &UnknownBrowserError{Name: name}
	}
	return desc, nil
}

// SelectedManager returns the package manager chosen for this host.
func (e *Engine) SelectedManager() manager.Manager {
	return e.selector.Select()
}

// AvailableManagers returns the package managers present on this host, in detection order.
func (e *Engine) AvailableManagers() []manager.Manager {
	return e.selector.Available()
}

// AUR returns the AUR installer, which only matters on Arch hosts.
func (e *Engine) AUR() *universal.AUR {
	return e.aur
}

// AvailableBackends lists the backends an install could use right now.
// system is always offered since it falls back to Snap and Flatpak.
func (e *Engine) AvailableBackends() []installer.Backend {
	backends := []installer.Backend{installer.BackendSystem}
	if e.snap.IsAvailable() {
		backends = append(backends, installer.BackendSnap)
	}
	if e.flatpak.IsAvailable() {
		backends = append(backends, installer.BackendFlatpak)
	}
	return backends
}

// SystemInfo collects the host summary.
func (e *Engine) SystemInfo() SystemInfo {
	sel := e.selector.Select()
	return SystemInfo{
		PrettyName: e.info.PrettyName,
		ID:         e.info.ID,
		Version:    e.info.VersionID,
		Codename:   e.info.Codename,
		Family:     e.info.Family(),
		Manager:    sel.Name(),
		Verbs:      sel.Verbs(),
		Backends:   e.AvailableBackends(),
		Date:       time.Now(),
	}
}

// Refresh re-detects installed browsers.
func (e *Engine) Refresh(ctx context.Context) inventory.Snapshot {
	return e.inventory.Refresh(ctx)
}

// Snapshot returns the installed view, detecting on first use.
func (e *Engine) Snapshot(ctx context.Context) inventory.Snapshot {
	return e.inventory.Current(ctx)
}

// Installed returns the records of installed browsers in catalog order.
func (e *Engine) Installed(ctx context.Context) []inventory.Record {
	snap := e.Snapshot(ctx)
	var out []inventory.Record
	for _, id := range e.registry.IDs() {
		if rec, ok := snap[id]; ok {
			out = append(out, rec)
		}
	}
	return out
}

// NotInstalled returns catalog browsers that are not installed, in catalog order.
func (e *Engine) NotInstalled(ctx context.Context) []browser.Descriptor {
	snap := e.Snapshot(ctx)
	var out []browser.Descriptor
	for _, desc := range e.registry.All() {
		if !snap.Has(desc.ID) {
			out = append(out, desc)
		}
	}
	return out
}

// Install installs a browser by name or alias.
func (e *Engine) Install(ctx context.Context, name string, backend installer.Backend) error {
	return e.installer.Install(ctx, e.cfg.ResolveAlias(name), backend)
}

// Uninstall removes a browser by name or alias.
func (e *Engine) Uninstall(ctx context.Context, name string) error {
	return e.installer.Uninstall(ctx, e.cfg.ResolveAlias(name))
}

// Check is one doctor finding.
type Check struct {
	Name   string
	OK     bool
	Detail string
}

// Diagnose reports which tools the install chains depend on are present.
func (e *Engine) Diagnose() []Check {
	var checks []Check

	sel := e.selector.Select()
	_, isNative := manager.AsNative(sel)
	checks = append(checks, Check{
		Name:   "package manager",
		OK:     sel.IsAvailable(),
		Detail: sel.DisplayName(),
	})
	checks = append(checks, Check{
		Name:   "native packages",
		OK:     isNative,
		Detail: string(e.info.Family()),
	})

	for _, tool := range []string{"sudo", "snap", "flatpak", "wget", "curl"} {
		checks = append(checks, Check{Name: tool, OK: e.host.CommandExists(tool)})
	}

	if e.info.Family() == distro.FamilyArch {
		helper := e.aur.Helper()
		checks = append(checks, Check{Name: "AUR helper", OK: helper != "", Detail: helper})
		checks = append(checks, Check{Name: "git + makepkg", OK: e.aur.CanBuild()})
	}
	return checks
}
