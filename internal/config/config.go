// Package config loads browsermgr's TOML configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config represents the complete browsermgr configuration.
type Config struct {
	General  GeneralConfig            `toml:"general"`
	Output   OutputConfig             `toml:"output"`
	Managers map[string]ManagerConfig `toml:"managers"`
	Aliases  map[string]string        `toml:"aliases"`
}

// GeneralConfig contains general settings.
type GeneralConfig struct {
	// AutoConfirm skips confirmation prompts when true (like -y flag).
	AutoConfirm bool `toml:"auto_confirm"`

	// DryRun shows what would happen without executing when true.
	DryRun bool `toml:"dry_run"`

	// DefaultBackend is used by install when -b is not given: system, snap or flatpak.
	DefaultBackend string `toml:"default_backend"`

	// History records install and uninstall operations.
	History bool `toml:"history"`

	// HistoryDays drops history entries older than this many days. 0 keeps everything.
	HistoryDays int `toml:"history_days"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	// Color enables colored output (respects NO_COLOR env var).
	Color bool `toml:"color"`

	// Unicode enables unicode symbols in output.
	Unicode bool `toml:"unicode"`

	// Verbose enables detailed output.
	Verbose bool `toml:"verbose"`
}

// ManagerConfig contains per-manager settings.
type ManagerConfig struct {
	// UseNala uses nala instead of apt if available. APT only.
	UseNala bool `toml:"use_nala"`

	// DefaultRemote is the Flatpak remote to install from.
	DefaultRemote string `toml:"default_remote"`

	// RemoteURL is the .flatpakrepo file used to add DefaultRemote.
	RemoteURL string `toml:"remote_url"`

	// AllowClassic allows classic confinement for Snap packages.
	AllowClassic bool `toml:"allow_classic"`

	// AURHelper specifies which AUR helper to prefer (yay, paru, pamac). Pacman only.
	AURHelper string `toml:"aur_helper"`

	// DownloadDir receives vendor packages and AUR build trees.
	DownloadDir string `toml:"download_dir"`
}

var validBackends = []string{"system", "snap", "flatpak"}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			AutoConfirm:    false,
			DryRun:         false,
			DefaultBackend: "system",
			History:        true,
			HistoryDays:    90,
		},
		Output: OutputConfig{
			Color:   true,
			Unicode: true,
			Verbose: false,
		},
		Managers: map[string]ManagerConfig{
			"apt": {
				UseNala: false,
			},
			"flatpak": {
				DefaultRemote: "flathub",
				RemoteURL:     "https://flathub.org/repo/flathub.flatpakrepo",
			},
			"snap": {
				AllowClassic: false,
			},
			"pacman": {
				AURHelper: "yay",
			},
		},
		Aliases: map[string]string{
			"google-chrome":  "chrome",
			"tor":            "tor-browser",
			"microsoft-edge": "edge",
		},
	}
}

// Load loads the configuration from the default path.
// If the config file doesn't exist, it returns the default configuration.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom loads the configuration from a specific path.
// If the config file doesn't exist, it returns the default configuration.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks values that would otherwise fail later at run time.
func (c *Config) Validate() error {
	b := strings.ToLower(c.General.DefaultBackend)
	if b == "" {
		return nil
	}
	for _, v := range validBackends {
		if b == v {
			return nil
		}
	}
	return fmt.Errorf("invalid default_backend %q (expected one of %s)", c.General.DefaultBackend, strings.Join(validBackends, ", "))
}

// ResolveAlias returns the browser ID for an alias, or the name itself if no alias exists.
func (c *Config) ResolveAlias(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if id, ok := c.Aliases[name]; ok {
		return id
	}
	return name
}

// GetManagerConfig returns the configuration for a specific manager.
// Returns an empty config if no configuration exists for the manager.
func (c *Config) GetManagerConfig(name string) ManagerConfig {
	if cfg, ok := c.Managers[name]; ok {
		return cfg
	}
	return ManagerConfig{}
}

// DownloadDir returns the first configured download directory, or the cache dir.
func (c *Config) DownloadDir() string {
	for _, name := range []string{"apt", "dnf", "yum", "zypper", "pacman"} {
		if dir := c.GetManagerConfig(name).DownloadDir; dir != "" {
			return dir
		}
	}
	return CacheDir()
}

// ShouldUseColor returns true if colored output should be used.
// Respects the NO_COLOR environment variable.
func (c *Config) ShouldUseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return c.Output.Color
}
