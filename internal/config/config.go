package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Toolbar ToolbarConfig `mapstructure:"toolbar"`
	UI      UIConfig      `mapstructure:"ui"`
	Log     LogConfig     `mapstructure:"log"`
}

// ToolbarConfig locates the toolbar definition and keybinding overrides.
type ToolbarConfig struct {
	Path        string `mapstructure:"path"`
	Keybindings string `mapstructure:"keybindings"`
	Watch       bool   `mapstructure:"watch"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title              string        `mapstructure:"title"`
	TransitionFrames   int           `mapstructure:"transition_frames"`
	TransitionInterval time.Duration `mapstructure:"transition_interval"`
	JournalSize        int           `mapstructure:"journal_size"`
}

// LogConfig holds the log file location and level.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// Dir is the directory holding config.toml, toolbar.toml and keybindings.toml.
func Dir() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "toolstrip")
}

func configPath() string {
	if p := os.Getenv("TOOLSTRIP_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(Dir(), "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix TOOLSTRIP_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("toolbar.path", filepath.Join(Dir(), "toolbar.toml"))
	v.SetDefault("toolbar.keybindings", filepath.Join(Dir(), "keybindings.toml"))
	v.SetDefault("toolbar.watch", true)
	v.SetDefault("ui.title", "toolstrip")
	v.SetDefault("ui.transition_frames", 6)
	v.SetDefault("ui.transition_interval", "40ms")
	v.SetDefault("ui.journal_size", 256)
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "toolstrip", "toolstrip.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")
	v.SetConfigFile(configPath())

	v.SetEnvPrefix("TOOLSTRIP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing file means defaults
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.TransitionFrames < 0 {
		return Config{}, fmt.Errorf("ui.transition_frames must be >= 0")
	}
	if c.UI.TransitionInterval <= 0 {
		return Config{}, fmt.Errorf("ui.transition_interval must be positive")
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := configPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("toolbar.path", cfg.Toolbar.Path)
	v.Set("toolbar.keybindings", cfg.Toolbar.Keybindings)
	v.Set("toolbar.watch", cfg.Toolbar.Watch)
	v.Set("ui.title", cfg.UI.Title)
	v.Set("ui.transition_frames", cfg.UI.TransitionFrames)
	v.Set("ui.transition_interval", cfg.UI.TransitionInterval.String())
	v.Set("ui.journal_size", cfg.UI.JournalSize)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
