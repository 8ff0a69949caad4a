package universal

import (
	"bufio"
	"context"
	"strings"

	"browsermgr/internal/executor"
	"browsermgr/pkg/manager"
)

// Snap implements the Manager interface for Snap.
type Snap struct {
	host         executor.Host
	allowClassic bool
}

// NewSnap creates a new Snap manager instance.
func NewSnap(host executor.Host, allowClassic bool) *Snap {
	return &Snap{host: host, allowClassic: allowClassic}
}

// Name returns the short identifier.
func (s *Snap) Name() string {
	return "snap"
}

// DisplayName returns the human-readable name.
func (s *Snap) DisplayName() string {
	return "Snap"
}

// Type returns the manager type.
func (s *Snap) Type() manager.ManagerType {
	return manager.TypeUniversal
}

// Binary returns the snap executable name.
func (s *Snap) Binary() string {
	return "snap"
}

// IsAvailable returns true if Snap is installed.
func (s *Snap) IsAvailable() bool {
	return s.host.CommandExists("snap")
}

// NeedsSudo returns true if this manager needs root privileges.
func (s *Snap) NeedsSudo() bool {
	return true
}

// Install installs snaps one at a time, stopping at the first failure.
func (s *Snap) Install(ctx context.Context, packages ...string) error {
	for _, pkg := range packages {
		args := []string{"install", pkg}
		if s.allowClassic {
			args = append(args, "--classic")
		}
		if err := s.host.Run(ctx, executor.Sudo("snap", args...)); err != nil {
			return err
		}
	}
	return nil
}

// Uninstall removes one or more snaps.
func (s *Snap) Uninstall(ctx context.Context, packages ...string) error {
	args := append([]string{"remove"}, packages...)
	return s.host.Run(ctx, executor.Sudo("snap", args...))
}

// Update for Snap is a no-op (snapd refreshes automatically).
func (s *Snap) Update(ctx context.Context) error {
	return nil
}

// List returns the names of installed snaps.
func (s *Snap) List(ctx context.Context) ([]string, error) {
	out, err := s.host.Output(ctx, executor.Query("snap", "list"))
	if err != nil {
		return nil, err
	}
	return parseSnapList(out), nil
}

// IsInstalled reports whether a snap is in the installed list.
func (s *Snap) IsInstalled(ctx context.Context, pkg string) bool {
	names, err := s.List(ctx)
	if err != nil {
		return false
	}
	for _, n := range names {
		if n == pkg {
			return true
		}
	}
	return false
}

// Verbs returns the command templates.
func (s *Snap) Verbs() manager.Verbs {
	return manager.Verbs{
		Install: "sudo snap install",
		Remove:  "sudo snap remove",
		Update:  "(automatic)",
		Query:   "snap list",
	}
}

// parseSnapList extracts the name column from `snap list` output.
func parseSnapList(output string) []string {
	var names []string
	scanner := bufio.NewScanner(strings.NewReader(output))
	headerSkipped := false

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		// Skip header
		if !headerSkipped {
			headerSkipped = true
			if fields[0] == "Name" {
				continue
			}
		}

		names = append(names, fields[0])
	}

	return names
}
