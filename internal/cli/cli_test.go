package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"browsermgr/pkg/installer"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		notice    string
		isFailure bool
	}{
		{"success", nil, "Firefox installed", false},
		{"failure", fmt.Errorf("install firefox: %w", installer.ErrInstallFailed), "Firefox was not installed", true},
		{"interrupted", fmt.Errorf("install firefox: %w", context.Canceled), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notice, failed := outcome("Firefox", "installed", tt.err)
			if notice != tt.notice || failed != tt.isFailure {
				t.Errorf("outcome() = %q, %v; want %q, %v", notice, failed, tt.notice, tt.isFailure)
			}
		})
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{"install", "uninstall", "list", "browsers", "system", "doctor", "history", "info", "menu", "version"}
	for _, name := range want {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("command %q not registered (got %v, %v)", name, cmd, err)
		}
	}
}

func TestUninstallAliases(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"rm"})
	if err != nil || cmd != uninstallCmd {
		t.Errorf("rm should resolve to uninstall, got %v, %v", cmd, err)
	}
}

func TestInstallBackendFlag(t *testing.T) {
	flag := installCmd.Flags().Lookup("backend")
	if flag == nil || flag.Shorthand != "b" {
		t.Fatal("install should have a -b/--backend flag")
	}
	if _, err := installer.ParseBackend("appimage"); !errors.Is(err, installer.ErrUnknownBackend) {
		t.Errorf("unexpected error for unknown backend: %v", err)
	}
}

func TestBadConfigIsBootstrapError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[general\n"), 0644); err != nil {
		t.Fatal(err)
	}

	prev := cfgFile
	cfgFile = path
	t.Cleanup(func() { cfgFile = prev })

	err := rootCmd.PersistentPreRunE(rootCmd, nil)
	if !errors.Is(err, ErrBootstrap) {
		t.Errorf("PersistentPreRunE() = %v, want ErrBootstrap", err)
	}
}
