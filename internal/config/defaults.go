package config

// DefaultExcludes are page patterns skipped during injection by default.
var DefaultExcludes = []string{
	"404.html",
	"googl*.html",
	"_static/**",
	"_flyout/**",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		CurrentLanguage: "en",
		CurrentVersion:  "latest",
		Languages: []Option{
			{Code: "en", Name: "English"},
		},
		Versions: []Option{
			{Code: "latest", Name: "latest"},
		},
		SiteDir:     "site",
		AssetPath:   "_flyout",
		StrictStyle: false,
		Include:     []string{"**/*.html"},
		Exclude:     DefaultExcludes,
	}
}
