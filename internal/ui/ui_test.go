package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"browsermgr/pkg/browser"
	"browsermgr/pkg/installer"
	"browsermgr/pkg/inventory"
)

func withoutColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		input      string
		defaultYes bool
		expected   bool
	}{
		{"y", false, true},
		{"YES", false, true},
		{" n ", true, false},
		{"", true, true},
		{"", false, false},
		{"maybe", true, false},
	}

	for _, tt := range tests {
		if got := parseAnswer(tt.input, tt.defaultYes); got != tt.expected {
			t.Errorf("parseAnswer(%q, %v) = %v, want %v", tt.input, tt.defaultYes, got, tt.expected)
		}
	}
}

func TestBadge(t *testing.T) {
	withoutColor(t)

	if got := Badge("snap"); got != "[snap]" {
		t.Errorf("Badge(snap) = %q", got)
	}
	if got := Badge("other"); got != "[other]" {
		t.Errorf("Badge(other) = %q", got)
	}
}

func TestBrowserSearcher(t *testing.T) {
	browsers := browser.Default().All()
	search := browserSearcher(browsers)

	var matched []string
	for i := range browsers {
		if search("FIRE", i) {
			matched = append(matched, browsers[i].ID)
		}
	}
	if len(matched) != 1 || matched[0] != "firefox" {
		t.Errorf("searching FIRE matched %v", matched)
	}
}

func TestSelectEmpty(t *testing.T) {
	if _, err := SelectBrowser(nil, "pick"); !errors.Is(err, ErrNothingToSelect) {
		t.Errorf("SelectBrowser(nil) error = %v", err)
	}
	if _, err := SelectBackend(nil, "pick"); !errors.Is(err, ErrNothingToSelect) {
		t.Errorf("SelectBackend(nil) error = %v", err)
	}
}

func TestSelectBackendSingle(t *testing.T) {
	got, err := SelectBackend([]installer.Backend{installer.BackendSnap}, "pick")
	if err != nil || got != installer.BackendSnap {
		t.Errorf("SelectBackend(single) = %q, %v", got, err)
	}
}

func TestPrintInstalled(t *testing.T) {
	withoutColor(t)
	registry := browser.Default()

	var buf bytes.Buffer
	PrintInstalled(&buf, registry, nil)
	if !strings.Contains(buf.String(), "No browsers installed") {
		t.Errorf("expected empty message, got %q", buf.String())
	}

	buf.Reset()
	PrintInstalled(&buf, registry, []inventory.Record{
		{Browser: "firefox", Provenance: inventory.ProvenanceSystem, Package: "firefox-esr"},
		{Browser: "chrome", Provenance: inventory.ProvenanceManual, Path: "/usr/bin/google-chrome"},
	})
	out := buf.String()
	for _, want := range []string{"BROWSER", "Mozilla Firefox", "[system]", "firefox-esr", "[manual]", "/usr/bin/google-chrome"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintCatalog(t *testing.T) {
	withoutColor(t)
	registry := browser.Default()

	var buf bytes.Buffer
	PrintCatalog(&buf, registry, inventory.Snapshot{
		"brave": {Browser: "brave", Provenance: inventory.ProvenanceSnap, Package: "brave"},
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != registry.Len()+1 {
		t.Fatalf("expected %d lines, got %d", registry.Len()+1, len(lines))
	}
	for _, line := range lines {
		if strings.HasPrefix(line, "brave") && !strings.Contains(line, "installed [snap]") {
			t.Errorf("brave line should show snap install: %q", line)
		}
	}
}

func TestPrintFieldsSkipsEmpty(t *testing.T) {
	withoutColor(t)

	var buf bytes.Buffer
	PrintFields(&buf, "System", []Field{{"Name", "Ubuntu"}, {"Codename", ""}})
	out := buf.String()
	if !strings.Contains(out, "Name: Ubuntu") {
		t.Errorf("missing field: %q", out)
	}
	if strings.Contains(out, "Codename") {
		t.Errorf("empty field printed: %q", out)
	}
}

func TestStatus(t *testing.T) {
	withoutColor(t)

	for _, s := range []string{"success", "failed", "dry-run", "unknown"} {
		if got := Status(s); got != s {
			t.Errorf("Status(%q) = %q", s, got)
		}
	}
}

func TestInitASCII(t *testing.T) {
	withoutColor(t)
	t.Cleanup(func() { sym = unicodeSymbols; UseColors, UseUnicode = true, true })

	Init(false, false)
	if UseColors || UseUnicode {
		t.Errorf("Init(false, false) left UseColors=%v UseUnicode=%v", UseColors, UseUnicode)
	}
	if sym != asciiSymbols {
		t.Errorf("expected ascii markers, got %+v", sym)
	}
}

func TestInitHonoursNoColor(t *testing.T) {
	withoutColor(t)
	t.Cleanup(func() { sym = unicodeSymbols; UseColors, UseUnicode = true, true })
	t.Setenv("NO_COLOR", "1")

	Init(true, true)
	if UseColors {
		t.Error("NO_COLOR should disable colors")
	}
}

func TestWhileReturnsResult(t *testing.T) {
	if got := While("working", func() int { return 42 }); got != 42 {
		t.Errorf("While() = %d, want 42", got)
	}
}
