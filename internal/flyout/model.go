// Package flyout renders the language/version flyout widget and manages
// its disclosure state.
package flyout

import (
	"github.com/ziadkadry99/doc-flyout/internal/config"
)

// SelectOption is one selectable row in the language or version selector.
type SelectOption struct {
	Code     string
	Name     string
	Selected bool
}

// LinkRow is one row in the project-links section. A Break row renders
// as a line break instead of a link.
type LinkRow struct {
	Label string
	URL   string
	Break bool
}

// Model is the plain-data view model the widget template renders from.
type Model struct {
	Language      string // current language code for the page
	Version       string // current version code for the page
	LanguageLabel string // display name shown in the header
	VersionLabel  string
	Languages     []SelectOption
	Versions      []SelectOption
	Projects      []LinkRow
}

// BuildModel derives the widget view model from configuration plus the
// page's current language and version codes. Break markers are dropped
// from the selectors and kept as line breaks in the links section;
// everything else preserves configuration order, duplicates included.
func BuildModel(cfg *config.Config, lang, version string) Model {
	m := Model{
		Language:      lang,
		Version:       version,
		LanguageLabel: config.DisplayName(cfg.Languages, lang),
		VersionLabel:  config.DisplayName(cfg.Versions, version),
	}

	m.Languages = buildOptions(cfg.Languages, lang)
	m.Versions = buildOptions(cfg.Versions, version)

	for _, p := range cfg.Projects {
		if p.IsBreak() {
			m.Projects = append(m.Projects, LinkRow{Break: true})
			continue
		}
		m.Projects = append(m.Projects, LinkRow{Label: p.Label, URL: p.URL})
	}

	return m
}

// buildOptions filters break markers and pre-selects the first entry
// matching the current code.
func buildOptions(opts []config.Option, current string) []SelectOption {
	out := make([]SelectOption, 0, len(opts))
	selected := false
	for _, o := range opts {
		if o.IsBreak() {
			continue
		}
		row := SelectOption{Code: o.Code, Name: o.Name}
		if !selected && o.Code == current {
			row.Selected = true
			selected = true
		}
		out = append(out, row)
	}
	return out
}
