package manager

import (
	"sync"

	"browsermgr/internal/log"
)

// Selector picks the package manager used for the run. Managers are checked in
// registration order; native managers are always preferred over universal ones.
type Selector struct {
	mu       sync.Mutex
	managers []Manager
	byName   map[string]Manager
	fallback string
	selected Manager
}

// NewSelector creates a selector. fallback names the manager returned when
// nothing is available.
func NewSelector(fallback string, managers ...Manager) *Selector {
	s := &Selector{
		byName:   make(map[string]Manager),
		fallback: fallback,
	}
	for _, m := range managers {
		s.Register(m)
	}
	return s
}

// Register adds a manager at the end of the detection order.
func (s *Selector) Register(m Manager) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[m.Name()]; !exists {
		s.managers = append(s.managers, m)
	}
	s.byName[m.Name()] = m
	s.selected = nil
}

// Get returns a specific manager by name.
func (s *Selector) Get(name string) (Manager, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.byName[name]
	return m, ok
}

// All returns every registered manager in detection order.
func (s *Selector) All() []Manager {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Manager, len(s.managers))
	copy(out, s.managers)
	return out
}

// Available returns the managers whose executable is present, in detection order.
func (s *Selector) Available() []Manager {
	var available []Manager
	for _, m := range s.All() {
		if m.IsAvailable() {
			available = append(available, m)
		}
	}
	return available
}

// Select returns the manager for this run, detecting on first use and caching
// the result until Reset.
func (s *Selector) Select() Manager {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected != nil {
		return s.selected
	}

	s.selected = s.detect()
	if s.selected != nil {
		log.Debug("selected package manager: %s", s.selected.Name())
	}
	return s.selected
}

// Reset forgets the cached selection.
func (s *Selector) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

func (s *Selector) detect() Manager {
	for _, t := range []ManagerType{TypeNative, TypeUniversal} {
		for _, m := range s.managers {
			if m.Type() == t && m.IsAvailable() {
				return m
			}
		}
	}

	if m, ok := s.byName[s.fallback]; ok {
		log.Debug("no package manager found, falling back to %s", s.fallback)
		return m
	}
	return nil
}
