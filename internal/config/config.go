// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// AppName names the config and data directories.
const AppName = "sitetheme"

// Default configuration values.
const (
	DefaultSelector      = ":root"
	DefaultAttribute     = "data-theme"
	DefaultHost          = "localhost"
	DefaultWatchDebounce = Duration(200 * time.Millisecond)
)

// Config represents the sitetheme configuration.
type Config struct {
	Storage    StorageConfig    `toml:"storage"`
	CSS        CSSConfig        `toml:"css"`
	TUI        TUIConfig        `toml:"tui"`
	Toggle     ToggleConfig     `toml:"toggle"`
	Transition TransitionConfig `toml:"transition"`
}

// StorageConfig locates the persisted selection.
type StorageConfig struct {
	Path string `toml:"path"` // Empty = $XDG_DATA_HOME/sitetheme/storage.json
}

// CSSConfig controls stylesheet output.
type CSSConfig struct {
	Selector      string   `toml:"selector" validate:"required"`
	Output        string   `toml:"output"`         // Empty = stdout
	WatchDebounce Duration `toml:"watch_debounce"` // Delay before rewriting on change
}

// TUIConfig holds picker TUI settings.
type TUIConfig struct {
	ShowHelp    bool `toml:"show_help"`
	ShowPreview bool `toml:"show_preview"`
}

// ToggleConfig holds light/dark toggle settings.
type ToggleConfig struct {
	Attribute string `toml:"attribute" validate:"required"`
}

// TransitionConfig describes the target browser for link auditing.
type TransitionConfig struct {
	Enabled bool   `toml:"enabled"` // Whether the browser supports view transitions
	Host    string `toml:"host" validate:"required,hostname_rfc1123"`
}

// Duration is a time.Duration that can be unmarshaled from strings like "250ms".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	dur, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	*d = Duration(dur)
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML output.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Duration returns the underlying time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		CSS: CSSConfig{
			Selector:      DefaultSelector,
			WatchDebounce: DefaultWatchDebounce,
		},
		TUI: TUIConfig{
			ShowHelp:    true,
			ShowPreview: true,
		},
		Toggle: ToggleConfig{
			Attribute: DefaultAttribute,
		},
		Transition: TransitionConfig{
			Enabled: true,
			Host:    DefaultHost,
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, AppName, "config.toml")
}

// DataPath returns the path to the data directory.
// Uses XDG_DATA_HOME if set, otherwise ~/.local/share.
func DataPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, AppName)
}

// StoragePath returns the configured storage document path, or the default.
func (c *Config) StoragePath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	return filepath.Join(DataPath(), "storage.json")
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() error {
	path := DataPath()
	if path == "" {
		return errors.New("unable to determine data directory")
	}
	return os.MkdirAll(path, 0755)
}
