package paths

import (
	"os"
	"path/filepath"
)

// BaseDir returns ~/.wed.
func BaseDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".wed")
}

// ConfigPath returns the global config file path.
func ConfigPath() string {
	return filepath.Join(BaseDir(), "config.toml")
}

// MenuPath returns the path of the user's menu override file.
func MenuPath() string {
	return filepath.Join(BaseDir(), "menu.toml")
}

// LogDir returns the log directory.
func LogDir() string {
	return filepath.Join(BaseDir(), "logs")
}

// LogPath returns the editor log file path.
func LogPath() string {
	return filepath.Join(LogDir(), "wed.log")
}

// EnsureDir creates the base directory tree with proper permissions.
func EnsureDir() error {
	for _, d := range []string{BaseDir(), LogDir()} {
		if err := os.MkdirAll(d, 0700); err != nil {
			return err
		}
	}
	return nil
}
