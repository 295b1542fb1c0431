package config

import (
	"errors"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// Config represents the global ~/.wed/config.toml.
type Config struct {
	LogLevel  string            `toml:"log_level"`
	MenuFile  string            `toml:"menu_file"`
	Shortcuts Shortcuts         `toml:"shortcuts"`
	Help      map[string]string `toml:"help"` // action identifier -> URL override
}

// Shortcuts holds the shortcut handler policy. The zero value matches the
// menu's defaults: never prevent default, modifier shortcuts are not global.
type Shortcuts struct {
	AlwaysPreventDefault    bool `toml:"always_prevent_default"`
	ModifierShortcutsGlobal bool `toml:"modifier_shortcuts_global"`
}

// Defaults returns the configuration used when no file exists.
func Defaults() *Config {
	return &Config{LogLevel: "info"}
}

// Load reads config from the given path. Returns zero config and error if file missing.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	_, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault reads config from path, falling back to Defaults when the file
// does not exist. Any other error (bad TOML, permissions) is returned.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Defaults(), nil
	}
	return cfg, err
}
