// Package nav resolves the destination URL for a language or version
// switch on a documentation page.
package nav

import "strings"

// Axis is the navigation dimension being changed.
type Axis string

const (
	AxisLanguage Axis = "language"
	AxisVersion  Axis = "version"
)

// ParseAxis converts a string into an Axis, reporting whether it is valid.
func ParseAxis(s string) (Axis, bool) {
	switch Axis(strings.ToLower(s)) {
	case AxisLanguage:
		return AxisLanguage, true
	case AxisVersion:
		return AxisVersion, true
	}
	return "", false
}

// Context describes the page a switch originates from. It is built once
// per resolution and never mutated.
type Context struct {
	Language string // current language code, e.g. "en-us"
	Version  string // current version code, e.g. "latest"
	PagePath string // current page path from the server root, e.g. "/en-us/latest/guide.html"
	Origin   string // scheme+host of the serving origin, e.g. "https://docs.example.com"
	Local    bool   // page opened from the filesystem rather than served
	AssetDir string // directory the widget's own assets were loaded from, used for fallback URLs
}

// current returns the context's current code for the given axis.
func (c Context) current(axis Axis) string {
	if axis == AxisVersion {
		return c.Version
	}
	return c.Language
}
