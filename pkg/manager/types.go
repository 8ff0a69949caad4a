// Package manager provides the abstraction over the package managers a browser can be installed with.
package manager

// ManagerType represents the category of package manager.
type ManagerType string

const (
	// TypeNative represents distribution package managers (apt, dnf, pacman, etc.)
	TypeNative ManagerType = "native"
	// TypeUniversal represents cross-distribution package managers (flatpak, snap)
	TypeUniversal ManagerType = "universal"
	// TypeAUR represents Arch User Repository helpers (yay, paru, pamac)
	TypeAUR ManagerType = "aur"
)

// Packaging is the on-disk package format a native manager consumes.
type Packaging string

const (
	PackagingDeb    Packaging = "deb"
	PackagingRPM    Packaging = "rpm"
	PackagingZypper Packaging = "zypper" // rpm, but with zypper's own repository tooling
	PackagingArch   Packaging = "arch"
)

// Verbs are the command templates a manager uses, for display and diagnostics.
type Verbs struct {
	Install string
	Remove  string
	Update  string
	Query   string
}
