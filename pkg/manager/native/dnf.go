package native

import (
	"context"

	"browsermgr/internal/executor"
	"browsermgr/pkg/manager"
)

// DNF implements the Manager interface for Fedora/RHEL's DNF package manager.
// The same type serves yum, whose command surface is identical for our purposes.
type DNF struct {
	*BaseManager
	configManager []string
}

// NewDNF creates a new DNF manager instance.
func NewDNF(host executor.Host) *DNF {
	return &DNF{
		BaseManager:   NewBaseManager(host, "dnf", "DNF (Fedora/RHEL)", "dnf", manager.PackagingRPM),
		configManager: []string{"dnf", "config-manager"},
	}
}

// NewYUM creates a manager for hosts that still ship yum.
func NewYUM(host executor.Host) *DNF {
	return &DNF{
		BaseManager:   NewBaseManager(host, "yum", "YUM (RHEL/CentOS)", "yum", manager.PackagingRPM),
		configManager: []string{"yum-config-manager"},
	}
}

// Install installs one or more packages.
func (d *DNF) Install(ctx context.Context, packages ...string) error {
	args := append([]string{"install", "-y"}, packages...)
	return d.sudo(ctx, args...)
}

// Uninstall removes one or more packages.
func (d *DNF) Uninstall(ctx context.Context, packages ...string) error {
	args := append([]string{"remove", "-y"}, packages...)
	return d.sudo(ctx, args...)
}

// Update refreshes the package metadata. check-update exits 100 when updates
// are pending, which callers already treat as a non-fatal failure.
func (d *DNF) Update(ctx context.Context) error {
	return d.sudo(ctx, "check-update")
}

// IsInstalled checks the rpm database for the package.
func (d *DNF) IsInstalled(ctx context.Context, pkg string) bool {
	return d.query(ctx, "rpm", "-q", pkg)
}

// InstallLocal installs an .rpm file; dnf resolves its dependencies itself.
func (d *DNF) InstallLocal(ctx context.Context, path string) error {
	return d.sudo(ctx, "install", "-y", path)
}

// AddRepoCommand returns the config-manager invocation that adds a repository.
func (d *DNF) AddRepoCommand(url string) executor.Command {
	args := append(append([]string{}, d.configManager[1:]...), "--add-repo", url)
	return executor.Sudo(d.configManager[0], args...)
}

// Verbs returns the command templates.
func (d *DNF) Verbs() manager.Verbs {
	return manager.Verbs{
		Install: joinVerb(d.binary, "install", "-y"),
		Remove:  joinVerb(d.binary, "remove", "-y"),
		Update:  joinVerb(d.binary, "check-update"),
		Query:   "rpm -q",
	}
}
