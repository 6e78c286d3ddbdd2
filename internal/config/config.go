package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (FLYOUT_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: FLYOUT_CURRENT_LANGUAGE -> current_language, etc.
	if err := k.Load(env.Provider("FLYOUT_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "FLYOUT_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
// Duplicate codes are deliberately tolerated: they render as duplicate
// rows, which is harmless.
func (c *Config) Validate() error {
	if c.CurrentLanguage == "" {
		return fmt.Errorf("current_language is required")
	}
	if c.CurrentLanguage == SentinelNewline {
		return fmt.Errorf("current_language must not be the %q marker", SentinelNewline)
	}
	if c.CurrentVersion == "" {
		return fmt.Errorf("current_version is required")
	}
	if c.CurrentVersion == SentinelNewline {
		return fmt.Errorf("current_version must not be the %q marker", SentinelNewline)
	}

	if len(c.SelectableLanguages()) == 0 {
		return fmt.Errorf("languages must contain at least one selectable entry")
	}
	if len(c.SelectableVersions()) == 0 {
		return fmt.Errorf("versions must contain at least one selectable entry")
	}

	for _, p := range c.Projects {
		if p.IsBreak() {
			continue
		}
		if p.Label == "" || p.URL == "" {
			return fmt.Errorf("project links need both label and url (got label=%q url=%q)", p.Label, p.URL)
		}
	}

	if c.SiteDir == "" {
		return fmt.Errorf("site_dir is required")
	}
	if c.AssetPath == "" {
		return fmt.Errorf("asset_path is required")
	}
	if strings.HasPrefix(c.AssetPath, "/") {
		return fmt.Errorf("asset_path must be relative to the site root, got %q", c.AssetPath)
	}

	return nil
}
