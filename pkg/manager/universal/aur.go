package universal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"browsermgr/internal/executor"
	"browsermgr/internal/log"
	"browsermgr/pkg/aur"
	"browsermgr/pkg/manager"
)

// ErrNoHelper is returned when no AUR helper is installed.
var ErrNoHelper = errors.New("no AUR helper available")

// ErrBuildToolsMissing is returned when git or makepkg is missing for a manual build.
var ErrBuildToolsMissing = errors.New("git and makepkg are required to build from the AUR")

// helpers lists supported AUR helpers in preference order.
var helpers = []string{"yay", "paru", "pamac"}

// AUR installs packages from the Arch User Repository, through a helper when one
// is present or by cloning and running makepkg.
type AUR struct {
	host      executor.Host
	preferred string
	client    *aur.Client
	buildDir  string
}

// NewAUR creates an AUR manager. client may be nil, in which case clone URLs
// are derived from the package name. buildDir defaults to the system temp dir.
func NewAUR(host executor.Host, preferredHelper string, client *aur.Client, buildDir string) *AUR {
	if buildDir == "" {
		buildDir = filepath.Join(os.TempDir(), "browsermgr-aur")
	}
	return &AUR{
		host:      host,
		preferred: preferredHelper,
		client:    client,
		buildDir:  buildDir,
	}
}

// Helper returns the AUR helper to use, or "" if none is installed.
func (a *AUR) Helper() string {
	if a.preferred != "" && a.host.CommandExists(a.preferred) {
		return a.preferred
	}
	for _, h := range helpers {
		if a.host.CommandExists(h) {
			return h
		}
	}
	return ""
}

// Name returns the short identifier.
func (a *AUR) Name() string {
	return "aur"
}

// DisplayName returns the human-readable name.
func (a *AUR) DisplayName() string {
	switch a.Helper() {
	case "yay":
		return "Yay (AUR)"
	case "paru":
		return "Paru (AUR)"
	case "pamac":
		return "Pamac (AUR)"
	}
	return "AUR (makepkg)"
}

// Type returns the manager type.
func (a *AUR) Type() manager.ManagerType {
	return manager.TypeAUR
}

// Binary returns the helper in use, or makepkg.
func (a *AUR) Binary() string {
	if h := a.Helper(); h != "" {
		return h
	}
	return "makepkg"
}

// IsAvailable reports whether packages can be installed from the AUR at all.
func (a *AUR) IsAvailable() bool {
	return a.Helper() != "" || a.CanBuild()
}

// CanBuild reports whether the manual clone-and-build path has its tools.
func (a *AUR) CanBuild() bool {
	return a.host.CommandExists("git") && a.host.CommandExists("makepkg")
}

// NeedsSudo returns false (helpers and makepkg -si escalate themselves).
func (a *AUR) NeedsSudo() bool {
	return false
}

// Install installs packages through the detected helper.
func (a *AUR) Install(ctx context.Context, packages ...string) error {
	helper := a.Helper()
	if helper == "" {
		return ErrNoHelper
	}

	for _, pkg := range packages {
		if err := a.host.Run(ctx, helperInstall(helper, pkg)); err != nil {
			return fmt.Errorf("%s: %w", helper, err)
		}
	}
	return nil
}

func helperInstall(helper, pkg string) executor.Command {
	if helper == "pamac" {
		return executor.Cmd("pamac", "build", "--no-confirm", pkg)
	}
	return executor.Cmd(helper, "-S", "--noconfirm", pkg)
}

// Build clones the package's AUR repository and runs makepkg -si in it.
func (a *AUR) Build(ctx context.Context, pkg string) error {
	if !a.CanBuild() {
		return ErrBuildToolsMissing
	}

	cloneURL, err := a.cloneURL(ctx, pkg)
	if err != nil {
		return err
	}

	dir := filepath.Join(a.buildDir, pkg)
	_ = a.host.Run(ctx, executor.Cmd("rm", "-rf", dir))

	if err := a.host.Run(ctx, executor.Cmd("git", "clone", cloneURL, dir)); err != nil {
		return fmt.Errorf("clone %s: %w", cloneURL, err)
	}

	if err := a.host.Run(ctx, executor.Cmd("makepkg", "-si", "--noconfirm").In(dir)); err != nil {
		return fmt.Errorf("makepkg %s: %w", pkg, err)
	}
	return nil
}

// cloneURL asks the AUR for the package base. A package the AUR does not know
// is an error; an unreachable AUR falls back to the conventional URL.
func (a *AUR) cloneURL(ctx context.Context, pkg string) (string, error) {
	if a.client == nil {
		return aur.CloneURLFor(pkg), nil
	}

	info, err := a.client.GetPackage(ctx, pkg)
	switch {
	case errors.Is(err, aur.ErrNotFound):
		return "", err
	case err != nil:
		log.Warn("AUR lookup for %s failed: %v", pkg, err)
		return aur.CloneURLFor(pkg), nil
	}
	return a.client.CloneURL(info), nil
}

// Uninstall removes packages with pacman; AUR packages are ordinary local packages once built.
func (a *AUR) Uninstall(ctx context.Context, packages ...string) error {
	args := append([]string{"-R", "--noconfirm"}, packages...)
	return a.host.Run(ctx, executor.Sudo("pacman", args...))
}

// Update refreshes the helper's databases. pamac and makepkg have nothing to refresh.
func (a *AUR) Update(ctx context.Context) error {
	switch h := a.Helper(); h {
	case "yay", "paru":
		return a.host.Run(ctx, executor.Cmd(h, "-Sy"))
	}
	return nil
}

// IsInstalled checks the local pacman database.
func (a *AUR) IsInstalled(ctx context.Context, pkg string) bool {
	return a.host.Run(ctx, executor.Query("pacman", "-Q", pkg)) == nil
}

// Verbs returns the command templates.
func (a *AUR) Verbs() manager.Verbs {
	v := manager.Verbs{
		Install: "git clone + makepkg -si --noconfirm",
		Remove:  "sudo pacman -R --noconfirm",
		Update:  "-",
		Query:   "pacman -Q",
	}
	switch h := a.Helper(); h {
	case "yay", "paru":
		v.Install = h + " -S --noconfirm"
		v.Update = h + " -Sy"
	case "pamac":
		v.Install = "pamac build --no-confirm"
	}
	return v
}
