package history

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestOperation(t *testing.T) {
	tests := []struct {
		op       Operation
		expected string
	}{
		{OpInstall, "install"},
		{OpUninstall, "uninstall"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if string(tt.op) != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, tt.op)
			}
		})
	}
}

func TestNewEntry(t *testing.T) {
	entry := NewEntry(OpInstall, "firefox", "system")

	if entry.ID == "" {
		t.Error("entry ID should not be empty")
	}
	if entry.Operation != OpInstall {
		t.Errorf("expected Operation install, got %s", entry.Operation)
	}
	if entry.Browser != "firefox" {
		t.Errorf("expected Browser 'firefox', got '%s'", entry.Browser)
	}
	if entry.Method != "system" {
		t.Errorf("expected Method 'system', got '%s'", entry.Method)
	}
	if entry.Success {
		t.Error("new entry should have Success = false")
	}
	if entry.Timestamp.IsZero() {
		t.Error("entry timestamp should be set")
	}
}

func TestFinish(t *testing.T) {
	entry := NewEntry(OpUninstall, "brave", "snap")

	entry.Finish(errors.New("snap remove failed"))
	if entry.Success {
		t.Error("expected Success = false after a failure")
	}
	if entry.Error != "snap remove failed" {
		t.Errorf("unexpected error text %q", entry.Error)
	}

	entry.Finish(nil)
	if !entry.Success {
		t.Error("expected Success = true")
	}
	if entry.Error != "" {
		t.Errorf("expected error text to be cleared, got %q", entry.Error)
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name     string
		success  bool
		dryRun   bool
		expected string
	}{
		{"success", true, false, "success"},
		{"failed", false, false, "failed"},
		{"dry run", true, true, "dry-run"},
		{"failed dry run", false, true, "failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Entry{Success: tt.success, DryRun: tt.dryRun}
			if got := e.Status(); got != tt.expected {
				t.Errorf("Status() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	entry := &Entry{
		Timestamp: time.Date(2024, 3, 1, 10, 30, 0, 0, time.Local),
		Operation: OpInstall,
		Browser:   "chrome",
		Method:    "system",
		Success:   true,
	}

	want := "2024-03-01 10:30:00 install chrome [system] (success)"
	if got := entry.Summary(); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}

	entry.Method = ""
	if strings.Contains(entry.Summary(), "[") {
		t.Errorf("Summary() without method should have no brackets: %q", entry.Summary())
	}
}
