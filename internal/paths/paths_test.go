package paths

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBaseDir(t *testing.T) {
	home, _ := os.UserHomeDir()
	if got, want := BaseDir(), filepath.Join(home, ".wed"); got != want {
		t.Errorf("BaseDir() = %q, want %q", got, want)
	}
}

func TestFilePaths(t *testing.T) {
	tests := []struct {
		name   string
		got    string
		suffix string
	}{
		{"config", ConfigPath(), filepath.Join(".wed", "config.toml")},
		{"menu", MenuPath(), filepath.Join(".wed", "menu.toml")},
		{"log", LogPath(), filepath.Join(".wed", "logs", "wed.log")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.HasSuffix(tt.got, tt.suffix) {
				t.Errorf("path = %q, want suffix %q", tt.got, tt.suffix)
			}
		})
	}
}

func TestEnsureDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := EnsureDir(); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}
	info, err := os.Stat(LogDir())
	if err != nil {
		t.Fatalf("log dir not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("log dir is not a directory")
	}
	if perm := info.Mode().Perm(); perm != 0700 {
		t.Errorf("log dir permission = %o, want 0700", perm)
	}
}
