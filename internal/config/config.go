// Package config loads the editor's runtime configuration from YAML.
//
// Missing files and missing fields fall back to defaults; a malformed
// file is an error rather than a silent default, so typos surface.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kestrel-edit/kestrel/internal/input/keymap"
)

// EnvConfigFile overrides the config file path when set.
const EnvConfigFile = "KESTREL_CONFIG"

// ErrInvalidConfig reports a config file that parsed but holds
// unusable values.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the editor runtime configuration.
type Config struct {
	// UndoDepth bounds the undo stack. Zero means the default.
	UndoDepth int `yaml:"undo_depth,omitempty"`

	// PageSize is the page movement distance in lines.
	PageSize int `yaml:"page_size,omitempty"`

	// TabWidth is the display width of a tab character.
	TabWidth int `yaml:"tab_width,omitempty"`

	// Platform selects modifier normalization: "linux", "windows",
	// "mac". Empty means linux behavior.
	Platform string `yaml:"platform,omitempty"`

	// Keymaps lists keymap JSON files loaded on top of the default
	// bindings, in order.
	Keymaps []string `yaml:"keymaps,omitempty"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		UndoDepth: 1000,
		PageSize:  20,
		TabWidth:  4,
		Platform:  string(keymap.PlatformLinux),
	}
}

// Load reads the configuration from path. A missing file yields the
// defaults; a malformed or invalid file is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.merge(file)

	if err := cfg.validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// LoadDefault reads from $KESTREL_CONFIG, falling back to
// kestrel.yaml in the working directory.
func LoadDefault() (Config, error) {
	path, ok := os.LookupEnv(EnvConfigFile)
	if !ok {
		path = "kestrel.yaml"
	}
	return Load(path)
}

// merge overlays non-zero fields from file onto cfg.
func (c *Config) merge(file Config) {
	if file.UndoDepth != 0 {
		c.UndoDepth = file.UndoDepth
	}
	if file.PageSize != 0 {
		c.PageSize = file.PageSize
	}
	if file.TabWidth != 0 {
		c.TabWidth = file.TabWidth
	}
	if file.Platform != "" {
		c.Platform = file.Platform
	}
	if len(file.Keymaps) > 0 {
		c.Keymaps = file.Keymaps
	}
}

func (c Config) validate() error {
	if c.UndoDepth < 0 {
		return fmt.Errorf("%w: undo_depth %d", ErrInvalidConfig, c.UndoDepth)
	}
	if c.PageSize < 0 {
		return fmt.Errorf("%w: page_size %d", ErrInvalidConfig, c.PageSize)
	}
	if c.TabWidth < 0 {
		return fmt.Errorf("%w: tab_width %d", ErrInvalidConfig, c.TabWidth)
	}
	return nil
}

// KeymapPlatform returns the normalized platform value.
func (c Config) KeymapPlatform() keymap.Platform {
	return keymap.ParsePlatform(c.Platform)
}

// BuildKeymap creates the shortcut table for this configuration:
// defaults first, then each configured keymap file layered on top.
func (c Config) BuildKeymap() (*keymap.Table, error) {
	table := keymap.NewDefaultTable(c.KeymapPlatform())
	for _, path := range c.Keymaps {
		if err := table.LoadFile(path); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// Save writes the configuration as YAML.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
