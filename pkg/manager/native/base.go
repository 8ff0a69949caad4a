// Package native implements distribution package managers.
package native

import (
	"context"
	"strings"

	"browsermgr/internal/executor"
	"browsermgr/pkg/manager"
)

// BaseManager provides common functionality for all native package managers.
type BaseManager struct {
	name        string
	displayName string
	binary      string
	packaging   manager.Packaging
	needsSudo   bool
	host        executor.Host
}

// NewBaseManager creates a new BaseManager with the given parameters.
func NewBaseManager(host executor.Host, name, displayName, binary string, packaging manager.Packaging) *BaseManager {
	return &BaseManager{
		name:        name,
		displayName: displayName,
		binary:      binary,
		packaging:   packaging,
		needsSudo:   true,
		host:        host,
	}
}

// Name returns the short identifier for this manager.
func (b *BaseManager) Name() string {
	return b.name
}

// DisplayName returns the human-readable name.
func (b *BaseManager) DisplayName() string {
	return b.displayName
}

// Type returns the manager type.
func (b *BaseManager) Type() manager.ManagerType {
	return manager.TypeNative
}

// Packaging returns the package format this manager installs.
func (b *BaseManager) Packaging() manager.Packaging {
	return b.packaging
}

// IsAvailable returns true if this package manager is installed.
func (b *BaseManager) IsAvailable() bool {
	return b.host.CommandExists(b.binary)
}

// NeedsSudo returns true if this manager requires root privileges.
func (b *BaseManager) NeedsSudo() bool {
	return b.needsSudo
}

// Binary returns the primary binary name for this manager.
func (b *BaseManager) Binary() string {
	return b.binary
}

// sudo runs the manager binary with elevation.
func (b *BaseManager) sudo(ctx context.Context, args ...string) error {
	return b.host.Run(ctx, executor.Sudo(b.binary, args...))
}

// query runs a read-only command and reports whether it exited zero.
func (b *BaseManager) query(ctx context.Context, name string, args ...string) bool {
	return b.host.Run(ctx, executor.Query(name, args...)) == nil
}

func joinVerb(binary string, args ...string) string {
	return "sudo " + binary + " " + strings.Join(args, " ")
}
