// Package browser holds the static catalog of browsers the tool knows how to manage.
package browser

import (
	"errors"
	"strings"

	"browsermgr/pkg/distro"
)

// ErrUnknownBrowser is returned when a browser ID is not in the registry.
var ErrUnknownBrowser = errors.New("unknown browser")

// Descriptor describes one browser and how each backend names it.
type Descriptor struct {
	ID          string
	Name        string
	Description string

	// Packages maps a family to candidate native package names, tried in order.
	// Every descriptor has a FamilyDefault entry.
	Packages map[distro.Family][]string

	Snap    string
	Flatpak string

	// Vendor marks browsers whose native install needs repository or key setup first.
	Vendor bool
}

// Candidates returns the package names to try for the given family,
// falling back to the default list.
func (d Descriptor) Candidates(family distro.Family) []string {
	if names, ok := d.Packages[family]; ok && len(names) > 0 {
		return names
	}
	return d.Packages[distro.FamilyDefault]
}

// Registry is a read-only catalog of browser descriptors.
type Registry struct {
	browsers map[string]Descriptor
	order    []string
}

// NewRegistry builds a registry from descriptors. Descriptors without a default
// package list are rejected.
func NewRegistry(descriptors ...Descriptor) (*Registry, error) {
	r := &Registry{browsers: make(map[string]Descriptor, len(descriptors))}
	for _, d := range descriptors {
		if len(d.Packages[distro.FamilyDefault]) == 0 {
			return nil, errors.New("browser " + d.ID + " has no default package list")
		}
		id := strings.ToLower(d.ID)
		if _, dup := r.browsers[id]; dup {
			return nil, errors.New("duplicate browser " + id)
		}
		d.ID = id
		r.browsers[id] = d
		r.order = append(r.order, id)
	}
	return r, nil
}

// Get returns the descriptor for id.
func (r *Registry) Get(id string) (Descriptor, bool) {
	d, ok := r.browsers[strings.ToLower(id)]
	return d, ok
}

// IDs returns browser IDs in catalog order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// All returns every descriptor in catalog order.
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.browsers[id])
	}
	return out
}

// Len returns the number of browsers.
func (r *Registry) Len() int {
	return len(r.order)
}
