// Package inventory works out which catalog browsers are present on the host and how they got there.
package inventory

import "sort"

// Provenance records which backend a browser was found through.
type Provenance string

const (
	ProvenanceSystem  Provenance = "system"
	ProvenanceSnap    Provenance = "snap"
	ProvenanceFlatpak Provenance = "flatpak"
	ProvenanceManual  Provenance = "manual"
)

// rank orders provenances; higher wins a merge.
func (p Provenance) rank() int {
	switch p {
	case ProvenanceSystem:
		return 4
	case ProvenanceSnap:
		return 3
	case ProvenanceFlatpak:
		return 2
	case ProvenanceManual:
		return 1
	}
	return 0
}

// Record is one detected browser.
type Record struct {
	Browser    string
	Provenance Provenance

	// Package is the native package that matched (system), the snap name or the flatpak app ID.
	Package string

	// Path is the filesystem path that matched (manual only).
	Path string
}

// Snapshot maps browser ID to its single record.
type Snapshot map[string]Record

// Merge combines snapshots. When a browser appears more than once, the record
// with the highest-ranked provenance wins regardless of argument order.
func Merge(snapshots ...Snapshot) Snapshot {
	out := make(Snapshot)
	for _, s := range snapshots {
		for id, rec := range s {
			if cur, ok := out[id]; ok && cur.Provenance.rank() >= rec.Provenance.rank() {
				continue
			}
			out[id] = rec
		}
	}
	return out
}

// Clone returns an independent copy.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// IDs returns the browser IDs in the snapshot, sorted.
func (s Snapshot) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Has reports whether id is present.
func (s Snapshot) Has(id string) bool {
	_, ok := s[id]
	return ok
}
