// Package menu holds the menu bar configuration: the ordered top-level menus
// and the items each one drops down. The configuration is read-only once
// loaded; the menu bar never mutates it.
package menu

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed default.toml
var defaultTOML []byte

// Config is the ordered list of top-level menus.
type Config struct {
	Menus []Menu
}

// Menu describes one top-level menu button and its drop-down.
// A nil entry in Items is a separator.
type Menu struct {
	Label string
	Class string
	Items []*Item
}

// Item describes one entry of a drop-down.
type Item struct {
	Label     string
	ID        string
	Class     string
	Checkable bool
	Mnemonic  string
	Shortcuts []string
	GlobalKey string
	Tooltip   string
}

// file mirrors the TOML layout. TOML arrays cannot hold null, so separators
// are written as items with separator = true.
type file struct {
	Menus []struct {
		Label string `toml:"label"`
		Class string `toml:"class"`
		Items []struct {
			Separator bool     `toml:"separator"`
			Label     string   `toml:"label"`
			ID        string   `toml:"id"`
			Class     string   `toml:"class"`
			Checkable bool     `toml:"checkable"`
			Mnemonic  string   `toml:"mnemonic"`
			Shortcut  []string `toml:"shortcut"`
			GlobalKey string   `toml:"global_key"`
			Tooltip   string   `toml:"tooltip"`
		} `toml:"items"`
	} `toml:"menus"`
}

// Default returns the built-in menu configuration.
func Default() *Config {
	cfg, err := Parse(defaultTOML)
	if err != nil {
		panic("menu: built-in configuration is invalid: " + err.Error())
	}
	return cfg
}

// Load reads a menu configuration from a TOML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("menu %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a TOML menu configuration, keeping menu and item order.
func Parse(data []byte) (*Config, error) {
	var f file
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, err
	}

	cfg := &Config{Menus: make([]Menu, 0, len(f.Menus))}
	for _, m := range f.Menus {
		menu := Menu{Label: m.Label, Class: m.Class, Items: make([]*Item, 0, len(m.Items))}
		for _, it := range m.Items {
			if it.Separator {
				menu.Items = append(menu.Items, nil)
				continue
			}
			menu.Items = append(menu.Items, &Item{
				Label:     it.Label,
				ID:        it.ID,
				Class:     it.Class,
				Checkable: it.Checkable,
				Mnemonic:  it.Mnemonic,
				Shortcuts: it.Shortcut,
				GlobalKey: it.GlobalKey,
				Tooltip:   it.Tooltip,
			})
		}
		cfg.Menus = append(cfg.Menus, menu)
	}
	return cfg, nil
}

// IDs returns every item identifier in configuration order.
func (c *Config) IDs() []string {
	var ids []string
	for _, m := range c.Menus {
		for _, it := range m.Items {
			if it != nil && it.ID != "" {
				ids = append(ids, it.ID)
			}
		}
	}
	return ids
}

// Lint returns the identifiers that known rejects. It never fails: such
// items still build, their actions are only logged when triggered.
func (c *Config) Lint(known func(id string) bool) []string {
	var unknown []string
	for _, id := range c.IDs() {
		if !known(id) {
			unknown = append(unknown, id)
		}
	}
	return unknown
}
