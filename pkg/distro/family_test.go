package distro

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		id       string
		expected Family
	}{
		{"debian", FamilyDebian},
		{"raspbian", FamilyDebian},
		{"ubuntu", FamilyUbuntu},
		{"linuxmint", FamilyUbuntu},
		{"pop", FamilyUbuntu},
		{"elementary", FamilyUbuntu},
		{"fedora", FamilyFedora},
		{"rhel", FamilyFedora},
		{"centos", FamilyFedora},
		{"rocky", FamilyFedora},
		{"almalinux", FamilyFedora},
		{"arch", FamilyArch},
		{"manjaro", FamilyArch},
		{"endeavouros", FamilyArch},
		{"opensuse-leap", FamilyOpenSUSE},
		{"opensuse-tumbleweed", FamilyOpenSUSE},
		{"suse", FamilyOpenSUSE},
		{"Ubuntu", FamilyUbuntu},
		{"  FEDORA ", FamilyFedora},
		{"gentoo", FamilyDefault},
		{"void", FamilyDefault},
		{"", FamilyDefault},
		{"unknown", FamilyDefault},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := Classify(tt.id); got != tt.expected {
				t.Errorf("Classify(%q) = %s, want %s", tt.id, got, tt.expected)
			}
		})
	}
}
