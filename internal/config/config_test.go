package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	if cfg.General.AutoConfirm {
		t.Error("expected AutoConfirm to be false by default")
	}
	if cfg.General.DryRun {
		t.Error("expected DryRun to be false by default")
	}
	if cfg.General.DefaultBackend != "system" {
		t.Errorf("expected DefaultBackend 'system', got %q", cfg.General.DefaultBackend)
	}
	if !cfg.General.History {
		t.Error("expected History to be true by default")
	}
	if cfg.General.HistoryDays != 90 {
		t.Errorf("expected HistoryDays 90, got %d", cfg.General.HistoryDays)
	}
	if !cfg.Output.Color {
		t.Error("expected Color to be true by default")
	}

	flatpak := cfg.GetManagerConfig("flatpak")
	if flatpak.DefaultRemote != "flathub" {
		t.Errorf("expected flatpak remote 'flathub', got %q", flatpak.DefaultRemote)
	}
	if flatpak.RemoteURL == "" {
		t.Error("expected a default flatpak remote URL")
	}
}

func TestResolveAlias(t *testing.T) {
	cfg := Default()

	tests := []struct {
		input    string
		expected string
	}{
		{"google-chrome", "chrome"},
		{"Google-Chrome", "chrome"},
		{"tor", "tor-browser"},
		{"microsoft-edge", "edge"},
		{"firefox", "firefox"},
		{"  Brave ", "brave"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := cfg.ResolveAlias(tt.input); got != tt.expected {
				t.Errorf("ResolveAlias(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestGetManagerConfig(t *testing.T) {
	cfg := Default()

	if got := cfg.GetManagerConfig("pacman").AURHelper; got != "yay" {
		t.Errorf("expected pacman AURHelper 'yay', got %q", got)
	}

	unknown := cfg.GetManagerConfig("unknown")
	if unknown != (ManagerConfig{}) {
		t.Errorf("expected empty config for unknown manager, got %+v", unknown)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		backend string
		wantErr bool
	}{
		{"system", false},
		{"snap", false},
		{"Flatpak", false},
		{"", false},
		{"appimage", true},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			cfg := Default()
			cfg.General.DefaultBackend = tt.backend
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDownloadDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/cache")

	cfg := Default()
	if got := cfg.DownloadDir(); got != filepath.Join("/tmp/cache", appName) {
		t.Errorf("DownloadDir() = %q, want cache dir", got)
	}

	cfg.Managers["dnf"] = ManagerConfig{DownloadDir: "/srv/pkgs"}
	if got := cfg.DownloadDir(); got != "/srv/pkgs" {
		t.Errorf("DownloadDir() = %q, want /srv/pkgs", got)
	}
}

func TestShouldUseColor(t *testing.T) {
	cfg := Default()

	t.Setenv("NO_COLOR", "")
	if !cfg.ShouldUseColor() {
		t.Error("expected ShouldUseColor() to return true")
	}

	// Should return false when NO_COLOR is set
	t.Setenv("NO_COLOR", "1")
	if cfg.ShouldUseColor() {
		t.Error("expected ShouldUseColor() to return false when NO_COLOR is set")
	}

	// Should return false when Color is false
	t.Setenv("NO_COLOR", "")
	cfg.Output.Color = false
	if cfg.ShouldUseColor() {
		t.Error("expected ShouldUseColor() to return false when Color is false")
	}
}

func TestLoadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	data := "[general]\ndefault_backend = \"flatpak\"\n\n[aliases]\nff = \"firefox\"\n"
	if err := os.WriteFile(configPath, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if loaded.ResolveAlias("ff") != "firefox" {
		t.Error("loaded config doesn't have expected alias")
	}
	if loaded.General.DefaultBackend != "flatpak" {
		t.Errorf("expected DefaultBackend 'flatpak', got %q", loaded.General.DefaultBackend)
	}
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	data := "[managers.apt]\nuse_nala = true\n"
	if err := os.WriteFile(configPath, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if !cfg.GetManagerConfig("apt").UseNala {
		t.Error("expected use_nala to be loaded")
	}
	if cfg.General.DefaultBackend != "system" {
		t.Errorf("expected default backend to survive, got %q", cfg.General.DefaultBackend)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	dir := t.TempDir()

	tests := map[string]string{
		"syntax":  "[general\n",
		"backend": "[general]\ndefault_backend = \"appimage\"\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".toml")
			if err := os.WriteFile(path, []byte(data), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadFrom(path); err == nil {
				t.Error("expected LoadFrom() to fail")
			}
		})
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	// Loading non-existent file should return default config
	cfg, err := LoadFrom("/non/existent/path/config.toml")
	if err != nil {
		t.Fatalf("LoadFrom() should not error for non-existent file: %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadFrom() should return default config for non-existent file")
	}

	if !cfg.Output.Color {
		t.Error("expected default Color to be true")
	}
}
