package native

import (
	"context"

	"browsermgr/internal/executor"
	"browsermgr/pkg/manager"
)

// Pacman implements the Manager interface for Arch Linux's pacman package manager.
type Pacman struct {
	*BaseManager
}

// NewPacman creates a new Pacman manager instance.
func NewPacman(host executor.Host) *Pacman {
	return &Pacman{
		BaseManager: NewBaseManager(host, "pacman", "Pacman (Arch Linux)", "pacman", manager.PackagingArch),
	}
}

// Install installs one or more packages.
func (p *Pacman) Install(ctx context.Context, packages ...string) error {
	args := append([]string{"-S", "--noconfirm"}, packages...)
	return p.sudo(ctx, args...)
}

// Uninstall removes one or more packages.
func (p *Pacman) Uninstall(ctx context.Context, packages ...string) error {
	args := append([]string{"-R", "--noconfirm"}, packages...)
	return p.sudo(ctx, args...)
}

// Update refreshes the package database.
func (p *Pacman) Update(ctx context.Context) error {
	return p.sudo(ctx, "-Sy")
}

// IsInstalled checks the local database for the package.
func (p *Pacman) IsInstalled(ctx context.Context, pkg string) bool {
	return p.query(ctx, "pacman", "-Q", pkg)
}

// InstallLocal installs a built package archive.
func (p *Pacman) InstallLocal(ctx context.Context, path string) error {
	return p.sudo(ctx, "-U", "--noconfirm", path)
}

// Verbs returns the command templates.
func (p *Pacman) Verbs() manager.Verbs {
	return manager.Verbs{
		Install: joinVerb(p.binary, "-S", "--noconfirm"),
		Remove:  joinVerb(p.binary, "-R", "--noconfirm"),
		Update:  joinVerb(p.binary, "-Sy"),
		Query:   "pacman -Q",
	}
}
