package native

import (
	"context"
	"strings"

	"browsermgr/internal/executor"
	"browsermgr/pkg/manager"
)

// APT implements the Manager interface for Debian/Ubuntu's APT package manager.
type APT struct {
	*BaseManager
	useNala bool
}

// NewAPT creates a new APT manager instance.
func NewAPT(host executor.Host, useNala bool) *APT {
	binary := "apt"
	displayName := "APT (Debian/Ubuntu)"

	// Check if nala is available and preferred
	if useNala && host.CommandExists("nala") {
		binary = "nala"
		displayName = "Nala (APT Frontend)"
	}

	return &APT{
		BaseManager: NewBaseManager(host, "apt", displayName, binary, manager.PackagingDeb),
		useNala:     binary == "nala",
	}
}

// IsAvailable reports whether apt itself is installed; nala is only a frontend.
func (a *APT) IsAvailable() bool {
	return a.host.CommandExists("apt")
}

// Install installs one or more packages.
func (a *APT) Install(ctx context.Context, packages ...string) error {
	args := append([]string{"install", "-y"}, packages...)
	return a.sudo(ctx, args...)
}

// Uninstall removes one or more packages.
func (a *APT) Uninstall(ctx context.Context, packages ...string) error {
	args := append([]string{"remove", "-y"}, packages...)
	return a.sudo(ctx, args...)
}

// Update refreshes the package database.
func (a *APT) Update(ctx context.Context) error {
	return a.sudo(ctx, "update")
}

// IsInstalled checks the dpkg status database for the package.
func (a *APT) IsInstalled(ctx context.Context, pkg string) bool {
	out, err := a.host.Output(ctx, executor.Query("dpkg-query", "-W", "-f=${Status}", pkg))
	if err != nil {
		return false
	}
	return strings.Contains(out, "ok installed")
}

// InstallLocal installs a .deb with dpkg and lets apt-get pull in missing dependencies.
// dpkg fails when dependencies are missing, so its error is not final.
func (a *APT) InstallLocal(ctx context.Context, path string) error {
	_ = a.host.Run(ctx, executor.Sudo("dpkg", "-i", path))
	return a.host.Run(ctx, executor.Sudo("apt-get", "install", "-f", "-y"))
}

// Verbs returns the command templates.
func (a *APT) Verbs() manager.Verbs {
	return manager.Verbs{
		Install: joinVerb(a.binary, "install", "-y"),
		Remove:  joinVerb(a.binary, "remove", "-y"),
		Update:  joinVerb(a.binary, "update"),
		Query:   "dpkg-query -W -f=${Status}",
	}
}
