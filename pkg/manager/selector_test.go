package manager

import (
	"context"
	"testing"
)

// MockManager for testing
type MockManager struct {
	name      string
	mgrType   ManagerType
	available bool
	lookups   int
}

func (m *MockManager) Name() string        { return m.name }
func (m *MockManager) DisplayName() string { return m.name }
func (m *MockManager) Type() ManagerType   { return m.mgrType }
func (m *MockManager) Binary() string      { return m.name }
func (m *MockManager) NeedsSudo() bool     { return true }
func (m *MockManager) Verbs() Verbs        { return Verbs{} }
func (m *MockManager) IsAvailable() bool {
	m.lookups++
	return m.available
}

func (m *MockManager) Install(_ context.Context, _ ...string) error   { return nil }
func (m *MockManager) Uninstall(_ context.Context, _ ...string) error { return nil }
func (m *MockManager) Update(_ context.Context) error                 { return nil }
func (m *MockManager) IsInstalled(_ context.Context, _ string) bool   { return false }

func newMocks(available ...string) []Manager {
	set := make(map[string]bool)
	for _, a := range available {
		set[a] = true
	}
	var out []Manager
	for _, n := range []string{"apt", "dnf", "yum", "pacman", "zypper"} {
		out = append(out, &MockManager{name: n, mgrType: TypeNative, available: set[n]})
	}
	for _, n := range []string{"snap", "flatpak"} {
		out = append(out, &MockManager{name: n, mgrType: TypeUniversal, available: set[n]})
	}
	return out
}

func TestSelectPriority(t *testing.T) {
	tests := []struct {
		name      string
		available []string
		expected  string
	}{
		{"apt wins", []string{"apt", "dnf", "snap"}, "apt"},
		{"dnf before yum", []string{"yum", "dnf"}, "dnf"},
		{"zypper", []string{"zypper", "flatpak"}, "zypper"},
		{"native beats snap", []string{"snap", "pacman"}, "pacman"},
		{"snap only", []string{"snap"}, "snap"},
		{"snap before flatpak", []string{"flatpak", "snap"}, "snap"},
		{"flatpak only", []string{"flatpak"}, "flatpak"},
		{"nothing falls back to apt", nil, "apt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelector("apt", newMocks(tt.available...)...)
			got := s.Select()
			if got == nil || got.Name() != tt.expected {
				t.Errorf("Select() = %v, want %s", got, tt.expected)
			}
		})
	}
}

func TestSelectIsCached(t *testing.T) {
	mocks := newMocks("pacman")
	s := NewSelector("apt", mocks...)

	first := s.Select()
	lookups := mocks[0].(*MockManager).lookups

	for i := 0; i < 3; i++ {
		if got := s.Select(); got != first {
			t.Fatalf("Select() returned %s after %s", got.Name(), first.Name())
		}
	}
	if mocks[0].(*MockManager).lookups != lookups {
		t.Error("Select() should not look again once cached")
	}
}

func TestResetDetectsAgain(t *testing.T) {
	mocks := newMocks("snap")
	s := NewSelector("apt", mocks...)

	if got := s.Select(); got.Name() != "snap" {
		t.Fatalf("Select() = %s, want snap", got.Name())
	}

	mocks[0].(*MockManager).available = true
	if got := s.Select(); got.Name() != "snap" {
		t.Errorf("cached Select() = %s, want snap", got.Name())
	}

	s.Reset()
	if got := s.Select(); got.Name() != "apt" {
		t.Errorf("Select() after Reset = %s, want apt", got.Name())
	}
}

func TestSelectWithoutFallback(t *testing.T) {
	s := NewSelector("apt")
	if got := s.Select(); got != nil {
		t.Errorf("Select() = %v, want nil", got)
	}
}

func TestSelectorGetAndAvailable(t *testing.T) {
	s := NewSelector("apt", newMocks("dnf", "flatpak")...)

	if _, ok := s.Get("nonexistent"); ok {
		t.Error("Get() should return false for non-existent manager")
	}
	if m, ok := s.Get("zypper"); !ok || m.Name() != "zypper" {
		t.Error("Get(zypper) should find registered manager")
	}

	available := s.Available()
	if len(available) != 2 || available[0].Name() != "dnf" || available[1].Name() != "flatpak" {
		t.Errorf("Available() = %v", available)
	}

	if len(s.All()) != 7 {
		t.Errorf("All() returned %d managers, want 7", len(s.All()))
	}
}

func TestAsNative(t *testing.T) {
	if _, ok := AsNative(nil); ok {
		t.Error("AsNative(nil) should be false")
	}
	if _, ok := AsNative(&MockManager{name: "snap", mgrType: TypeUniversal}); ok {
		t.Error("snap is not native")
	}
	// MockManager lacks Packaging/InstallLocal.
	if _, ok := AsNative(&MockManager{name: "apt", mgrType: TypeNative}); ok {
		t.Error("mock without local install support should not be native")
	}
}
