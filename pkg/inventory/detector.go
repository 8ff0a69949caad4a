package inventory

import (
	"context"
	"sync"

	"browsermgr/internal/executor"
	"browsermgr/internal/log"
	"browsermgr/pkg/browser"
	"browsermgr/pkg/distro"
	"browsermgr/pkg/manager"
	"browsermgr/pkg/manager/universal"
)

// ManualPath is a filesystem location that indicates a browser installed outside any package manager.
type ManualPath struct {
	Path    string
	Browser string
}

// DefaultManualPaths lists vendor tarball and leftover install locations.
var DefaultManualPaths = []ManualPath{
	{"/opt/firefox/firefox", "firefox"},
	{"/usr/bin/google-chrome", "chrome"},
	{"/usr/bin/chromium", "chromium"},
	{"/usr/bin/chromium-browser", "chromium"},
	{"/snap/bin/chromium", "chromium"},
	{"/var/lib/flatpak/app/org.chromium.Chromium", "chromium"},
}

// Detector queries every backend for catalog browsers.
type Detector struct {
	host     executor.Host
	registry *browser.Registry
	family   distro.Family
	selector *manager.Selector
	snap     *universal.Snap
	flatpak  *universal.Flatpak
	manual   []ManualPath
}

// NewDetector creates a detector. The native query uses whatever the selector picks.
func NewDetector(host executor.Host, registry *browser.Registry, family distro.Family,
	selector *manager.Selector, snap *universal.Snap, flatpak *universal.Flatpak) *Detector {
	return &Detector{
		host:     host,
		registry: registry,
		family:   family,
		selector: selector,
		snap:     snap,
		flatpak:  flatpak,
		manual:   DefaultManualPaths,
	}
}

// Detect builds a fresh snapshot. Backends are queried one after another;
// a failing query means nothing was found there.
func (d *Detector) Detect(ctx context.Context) Snapshot {
	return Merge(
		d.detectSystem(ctx),
		d.detectSnap(ctx),
		d.detectFlatpak(ctx),
		d.detectManual(),
	)
}

// DetectOne reports whether a single browser is installed through the native manager.
func (d *Detector) DetectOne(ctx context.Context, id string) (Record, bool) {
	desc, ok := d.registry.Get(id)
	if !ok {
		return Record{}, false
	}
	native, ok := manager.AsNative(d.selector.Select())
	if !ok {
		return Record{}, false
	}
	return d.querySystem(ctx, native, desc)
}

func (d *Detector) detectSystem(ctx context.Context) Snapshot {
	out := make(Snapshot)
	native, ok := manager.AsNative(d.selector.Select())
	if !ok {
		return out
	}

	for _, desc := range d.registry.All() {
		if rec, found := d.querySystem(ctx, native, desc); found {
			out[desc.ID] = rec
		}
	}
	return out
}

func (d *Detector) querySystem(ctx context.Context, native manager.NativeManager, desc browser.Descriptor) (Record, bool) {
	for _, pkg := range desc.Candidates(d.family) {
		if native.IsInstalled(ctx, pkg) {
			log.Debug("%s: found %s via %s", desc.ID, pkg, native.Name())
			return Record{Browser: desc.ID, Provenance: ProvenanceSystem, Package: pkg}, true
		}
	}
	return Record{}, false
}

func (d *Detector) detectSnap(ctx context.Context) Snapshot {
	out := make(Snapshot)
	if d.snap == nil || !d.snap.IsAvailable() {
		return out
	}

	names, err := d.snap.List(ctx)
	if err != nil {
		log.Debug("snap list: %v", err)
		return out
	}
	installed := toSet(names)

	for _, desc := range d.registry.All() {
		if desc.Snap != "" && installed[desc.Snap] {
			out[desc.ID] = Record{Browser: desc.ID, Provenance: ProvenanceSnap, Package: desc.Snap}
		}
	}
	return out
}

func (d *Detector) detectFlatpak(ctx context.Context) Snapshot {
	out := make(Snapshot)
	if d.flatpak == nil || !d.flatpak.IsAvailable() {
		return out
	}

	ids, err := d.flatpak.List(ctx)
	if err != nil {
		log.Debug("flatpak list: %v", err)
		return out
	}
	installed := toSet(ids)

	for _, desc := range d.registry.All() {
		if desc.Flatpak != "" && installed[desc.Flatpak] {
			out[desc.ID] = Record{Browser: desc.ID, Provenance: ProvenanceFlatpak, Package: desc.Flatpak}
		}
	}
	return out
}

func (d *Detector) detectManual() Snapshot {
	out := make(Snapshot)
	for _, mp := range d.manual {
		if out.Has(mp.Browser) {
			continue
		}
		if d.host.PathExists(mp.Path) {
			out[mp.Browser] = Record{Browser: mp.Browser, Provenance: ProvenanceManual, Path: mp.Path}
		}
	}
	return out
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, i := range items {
		set[i] = true
	}
	return set
}

// Inventory holds the latest snapshot. Readers never see a partially built one.
type Inventory struct {
	detector *Detector

	mu       sync.RWMutex
	snapshot Snapshot
	detected bool
}

// New creates an inventory backed by detector.
func New(detector *Detector) *Inventory {
	return &Inventory{detector: detector, snapshot: make(Snapshot)}
}

// Refresh rebuilds the snapshot and swaps it in.
func (inv *Inventory) Refresh(ctx context.Context) Snapshot {
	fresh := inv.detector.Detect(ctx)

	inv.mu.Lock()
	inv.snapshot = fresh
	inv.detected = true
	inv.mu.Unlock()

	return fresh.Clone()
}

// Current returns a copy of the latest snapshot, detecting first if nothing has run yet.
func (inv *Inventory) Current(ctx context.Context) Snapshot {
	inv.mu.RLock()
	detected := inv.detected
	snap := inv.snapshot.Clone()
	inv.mu.RUnlock()

	if !detected {
		return inv.Refresh(ctx)
	}
	return snap
}

// Latest returns a copy of the latest snapshot without ever detecting.
func (inv *Inventory) Latest() Snapshot {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.snapshot.Clone()
}

// Get returns the record for id from the latest snapshot.
func (inv *Inventory) Get(ctx context.Context, id string) (Record, bool) {
	rec, ok := inv.Current(ctx)[id]
	return rec, ok
}

// Detector returns the underlying detector.
func (inv *Inventory) Detector() *Detector {
	return inv.detector
}
