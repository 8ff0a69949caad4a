// Package universal implements cross-distribution package managers.
package universal

import (
	"bufio"
	"context"
	"strings"

	"browsermgr/internal/executor"
	"browsermgr/pkg/manager"
)

const (
	// DefaultRemote is the remote applications are installed from.
	DefaultRemote = "flathub"
	// DefaultRemoteURL is the repository file for DefaultRemote.
	DefaultRemoteURL = "https://flathub.org/repo/flathub.flatpakrepo"
)

// Flatpak implements the Manager interface for Flatpak.
type Flatpak struct {
	host      executor.Host
	remote    string
	remoteURL string
}

// NewFlatpak creates a new Flatpak manager instance.
func NewFlatpak(host executor.Host, remote, remoteURL string) *Flatpak {
	if remote == "" {
		remote = DefaultRemote
	}
	if remoteURL == "" {
		remoteURL = DefaultRemoteURL
	}
	return &Flatpak{host: host, remote: remote, remoteURL: remoteURL}
}

// Name returns the short identifier.
func (f *Flatpak) Name() string {
	return "flatpak"
}

// DisplayName returns the human-readable name.
func (f *Flatpak) DisplayName() string {
	return "Flatpak"
}

// Type returns the manager type.
func (f *Flatpak) Type() manager.ManagerType {
	return manager.TypeUniversal
}

// Binary returns the flatpak executable name.
func (f *Flatpak) Binary() string {
	return "flatpak"
}

// IsAvailable returns true if Flatpak is installed.
func (f *Flatpak) IsAvailable() bool {
	return f.host.CommandExists("flatpak")
}

// NeedsSudo returns false; flatpak escalates through polkit itself.
func (f *Flatpak) NeedsSudo() bool {
	return false
}

// Remote returns the configured remote name.
func (f *Flatpak) Remote() string {
	return f.remote
}

// EnsureRemote adds the configured remote unless it already exists.
func (f *Flatpak) EnsureRemote(ctx context.Context) error {
	return f.host.Run(ctx, executor.Cmd("flatpak", "remote-add", "--if-not-exists", f.remote, f.remoteURL))
}

// Install installs one or more applications from the configured remote.
func (f *Flatpak) Install(ctx context.Context, packages ...string) error {
	for _, pkg := range packages {
		args := []string{"install", "-y"}

		// Add remote if the ref doesn't name one
		if !strings.Contains(pkg, "/") {
			args = append(args, f.remote)
		}
		args = append(args, pkg)

		if err := f.host.Run(ctx, executor.Cmd("flatpak", args...)); err != nil {
			return err
		}
	}
	return nil
}

// Uninstall removes one or more applications.
func (f *Flatpak) Uninstall(ctx context.Context, packages ...string) error {
	args := append([]string{"uninstall", "-y"}, packages...)
	return f.host.Run(ctx, executor.Cmd("flatpak", args...))
}

// Update refreshes appstream metadata for the configured remote.
func (f *Flatpak) Update(ctx context.Context) error {
	return f.host.Run(ctx, executor.Cmd("flatpak", "update", "--appstream", f.remote))
}

// List returns the application IDs of installed flatpaks.
func (f *Flatpak) List(ctx context.Context) ([]string, error) {
	out, err := f.host.Output(ctx, executor.Query("flatpak", "list", "--columns=application"))
	if err != nil {
		return nil, err
	}
	return parseFlatpakList(out), nil
}

// IsInstalled reports whether an application ID is installed.
func (f *Flatpak) IsInstalled(ctx context.Context, pkg string) bool {
	ids, err := f.List(ctx)
	if err != nil {
		return false
	}
	for _, id := range ids {
		if id == pkg {
			return true
		}
	}
	return false
}

// Verbs returns the command templates.
func (f *Flatpak) Verbs() manager.Verbs {
	return manager.Verbs{
		Install: "flatpak install -y " + f.remote,
		Remove:  "flatpak uninstall -y",
		Update:  "flatpak update --appstream " + f.remote,
		Query:   "flatpak list --columns=application",
	}
}

func parseFlatpakList(output string) []string {
	var ids []string
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || fields[0] == "Application" || fields[0] == "Application ID" {
			continue
		}
		ids = append(ids, fields[0])
	}
	return ids
}
