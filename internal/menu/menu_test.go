package menu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
[[menus]]
label = "File"
class = "menu-item-file"

  [[menus.items]]
  label = "Save"
  id = "file.save"
  class = "menu-item-file-save"
  mnemonic = "s"
  shortcut = ["ctrl+s", "f2"]
  global_key = "ctrl+s"
  tooltip = "Ctrl+S"

  [[menus.items]]
  separator = true

  [[menus.items]]
  label = "Advanced"
  id = "tools.advanced.activate"
  checkable = true

[[menus]]
label = "Help"
class = "menu-item-help"

  [[menus.items]]
  label = "About"
  id = "help.about"
`

func TestParseKeepsOrderAndSeparators(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)
	require.Len(t, cfg.Menus, 2)

	file := cfg.Menus[0]
	assert.Equal(t, "File", file.Label)
	assert.Equal(t, "menu-item-file", file.Class)
	require.Len(t, file.Items, 3)

	save := file.Items[0]
	require.NotNil(t, save)
	assert.Equal(t, "file.save", save.ID)
	assert.Equal(t, []string{"ctrl+s", "f2"}, save.Shortcuts)
	assert.Equal(t, "ctrl+s", save.GlobalKey)
	assert.Equal(t, "Ctrl+S", save.Tooltip)
	assert.Equal(t, "s", save.Mnemonic)

	assert.Nil(t, file.Items[1], "separator entry should be nil")

	require.NotNil(t, file.Items[2])
	assert.True(t, file.Items[2].Checkable)

	assert.Equal(t, "Help", cfg.Menus[1].Label)
}

func TestIDs(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, []string{"file.save", "tools.advanced.activate", "help.about"}, cfg.IDs())
}

func TestLint(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	unknown := cfg.Lint(func(id string) bool { return id != "help.about" })
	assert.Equal(t, []string{"help.about"}, unknown)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("[[menus]\nlabel ="))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.toml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Menus, 2)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefault(t *testing.T) {
	cfg := Default()

	labels := make([]string, 0, len(cfg.Menus))
	for _, m := range cfg.Menus {
		labels = append(labels, m.Label)
	}
	assert.Equal(t, []string{"File", "Edit", "View", "Insert", "Tools", "Help"}, labels)

	ids := cfg.IDs()
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		assert.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
	assert.True(t, seen["file.save"])
	assert.True(t, seen["view.open.editor"])
	assert.True(t, seen["help.contributors"])
}
