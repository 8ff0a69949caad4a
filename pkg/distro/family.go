// Package distro identifies the host Linux distribution and groups it into a family
// that shares package naming conventions.
package distro

import "strings"

// Family is a coarse grouping of distributions.
type Family string

const (
	FamilyDebian   Family = "debian"
	FamilyUbuntu   Family = "ubuntu"
	FamilyFedora   Family = "fedora"
	FamilyArch     Family = "arch"
	FamilyOpenSUSE Family = "opensuse"
	FamilyDefault  Family = "default"
)

// Families lists every family in a stable order.
var Families = []Family{
	FamilyDebian,
	FamilyUbuntu,
	FamilyFedora,
	FamilyArch,
	FamilyOpenSUSE,
	FamilyDefault,
}

// familyMap maps distribution IDs to their family.
var familyMap = map[string]Family{
	// Debian
	"debian":   FamilyDebian,
	"raspbian": FamilyDebian,

	// Ubuntu and derivatives
	"ubuntu":     FamilyUbuntu,
	"linuxmint":  FamilyUbuntu,
	"pop":        FamilyUbuntu,
	"elementary": FamilyUbuntu,

	// Red Hat
	"fedora":    FamilyFedora,
	"rhel":      FamilyFedora,
	"centos":    FamilyFedora,
	"rocky":     FamilyFedora,
	"almalinux": FamilyFedora,

	// Arch
	"arch":        FamilyArch,
	"manjaro":     FamilyArch,
	"endeavouros": FamilyArch,

	// SUSE
	"opensuse-leap":       FamilyOpenSUSE,
	"opensuse-tumbleweed": FamilyOpenSUSE,
	"suse":                FamilyOpenSUSE,
}

// Classify maps a raw distribution ID to its family.
// Unknown IDs resolve to FamilyDefault.
func Classify(rawID string) Family {
	if f, ok := familyMap[strings.ToLower(strings.TrimSpace(rawID))]; ok {
		return f
	}
	return FamilyDefault
}

// String implements fmt.Stringer.
func (f Family) String() string {
	return string(f)
}
