package config

// SentinelNewline is the reserved code/label marking a layout line break.
// Entries carrying it are never selectable; they only affect rendering.
const SentinelNewline = "newline"

// Option is one selectable language or version entry.
type Option struct {
	Code string `yaml:"code" koanf:"code"`
	Name string `yaml:"name" koanf:"name"`
}

// IsBreak reports whether the entry is a layout break marker.
func (o Option) IsBreak() bool { return o.Code == SentinelNewline }

// ProjectLink is one related-project entry in the flyout's links section.
type ProjectLink struct {
	Label string `yaml:"label" koanf:"label"`
	URL   string `yaml:"url" koanf:"url"`
}

// IsBreak reports whether the link is a layout break marker.
func (l ProjectLink) IsBreak() bool { return l.Label == SentinelNewline }

// Config is the top-level docflyout configuration, corresponding to .flyout.yml.
type Config struct {
	CurrentLanguage string        `yaml:"current_language" koanf:"current_language"`
	CurrentVersion  string        `yaml:"current_version" koanf:"current_version"`
	Languages       []Option      `yaml:"languages" koanf:"languages"`
	Versions        []Option      `yaml:"versions" koanf:"versions"`
	Projects        []ProjectLink `yaml:"projects" koanf:"projects"`
	SiteDir         string        `yaml:"site_dir" koanf:"site_dir"`
	AssetPath       string        `yaml:"asset_path" koanf:"asset_path"`
	StrictStyle     bool          `yaml:"strict_style" koanf:"strict_style"`
	Include         []string      `yaml:"include" koanf:"include"`
	Exclude         []string      `yaml:"exclude" koanf:"exclude"`
}

// SelectableLanguages returns the language entries with break markers removed,
// preserving configuration order. Duplicate codes are kept as-is.
func (c *Config) SelectableLanguages() []Option { return selectable(c.Languages) }

// SelectableVersions returns the version entries with break markers removed.
func (c *Config) SelectableVersions() []Option { return selectable(c.Versions) }

func selectable(opts []Option) []Option {
	out := make([]Option, 0, len(opts))
	for _, o := range opts {
		if o.IsBreak() {
			continue
		}
		out = append(out, o)
	}
	return out
}

// DisplayName returns the display name for a code from the given list,
// falling back to the code itself when no entry matches.
func DisplayName(opts []Option, code string) string {
	for _, o := range opts {
		if !o.IsBreak() && o.Code == code {
			return o.Name
		}
	}
	return code
}
