package native

import (
	"context"

	"browsermgr/internal/executor"
	"browsermgr/pkg/manager"
)

// Zypper implements the Manager interface for openSUSE's zypper package manager.
type Zypper struct {
	*BaseManager
}

// NewZypper creates a new Zypper manager instance.
func NewZypper(host executor.Host) *Zypper {
	return &Zypper{
		BaseManager: NewBaseManager(host, "zypper", "Zypper (openSUSE)", "zypper", manager.PackagingZypper),
	}
}

// Install installs one or more packages.
func (z *Zypper) Install(ctx context.Context, packages ...string) error {
	args := append([]string{"install", "-y"}, packages...)
	return z.sudo(ctx, args...)
}

// Uninstall removes one or more packages.
func (z *Zypper) Uninstall(ctx context.Context, packages ...string) error {
	args := append([]string{"remove", "-y"}, packages...)
	return z.sudo(ctx, args...)
}

// Update refreshes all repositories.
func (z *Zypper) Update(ctx context.Context) error {
	return z.sudo(ctx, "refresh")
}

// IsInstalled checks the rpm database for the package.
func (z *Zypper) IsInstalled(ctx context.Context, pkg string) bool {
	return z.query(ctx, "rpm", "-q", pkg)
}

// InstallLocal installs an .rpm file; zypper resolves its dependencies itself.
func (z *Zypper) InstallLocal(ctx context.Context, path string) error {
	return z.sudo(ctx, "install", "-y", "--allow-unsigned-rpm", path)
}

// AddRepoCommand returns the addrepo invocation for a repository URL and alias.
func (z *Zypper) AddRepoCommand(url, alias string) executor.Command {
	return executor.Sudo(z.binary, "addrepo", url, alias)
}

// Verbs returns the command templates.
func (z *Zypper) Verbs() manager.Verbs {
	return manager.Verbs{
		Install: joinVerb(z.binary, "install", "-y"),
		Remove:  joinVerb(z.binary, "remove", "-y"),
		Update:  joinVerb(z.binary, "refresh"),
		Query:   "rpm -q",
	}
}
