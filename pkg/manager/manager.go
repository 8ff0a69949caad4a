package manager

import "context"

// Manager defines the interface that every backend must implement.
// Failures are returned as errors; callers treat them as ordinary negative outcomes.
type Manager interface {
	// Name returns the short identifier for this manager (e.g., "apt", "snap").
	Name() string

	// DisplayName returns a human-readable name (e.g., "APT (Debian/Ubuntu)").
	DisplayName() string

	// Type returns the category of this manager.
	Type() ManagerType

	// Binary returns the executable checked for availability.
	Binary() string

	// IsAvailable reports whether the manager's executable is present. It never fails.
	IsAvailable() bool

	// NeedsSudo returns true if installs and removals require root privileges.
	NeedsSudo() bool

	// Verbs returns the command templates for display.
	Verbs() Verbs

	// Install installs one or more packages non-interactively.
	Install(ctx context.Context, packages ...string) error

	// Uninstall removes one or more packages non-interactively.
	Uninstall(ctx context.Context, packages ...string) error

	// Update refreshes the package index.
	Update(ctx context.Context) error

	// IsInstalled runs the manager's presence query for a single package.
	IsInstalled(ctx context.Context, pkg string) bool
}

// NativeManager is a distribution package manager that can also install
// a downloaded package file.
type NativeManager interface {
	Manager

	// Packaging returns the package format this manager installs.
	Packaging() Packaging

	// InstallLocal installs a package file from disk and resolves its dependencies.
	InstallLocal(ctx context.Context, path string) error
}

// AsNative returns m as a NativeManager when it is one.
func AsNative(m Manager) (NativeManager, bool) {
	if m == nil || m.Type() != TypeNative {
		return nil, false
	}
	n, ok := m.(NativeManager)
	return n, ok
}
