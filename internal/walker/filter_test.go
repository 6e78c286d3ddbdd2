package walker

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMatchesInclude(t *testing.T) {
	tests := []struct {
		path     string
		patterns []string
		want     bool
	}{
		{"en/latest/guide.html", []string{"**/*.html"}, true},
		{"en/latest/guide.html", nil, true},
		{"guide.html", []string{"en/**"}, false},
		{"en/latest/guide.html", []string{"en/**"}, true},
	}
	for _, tt := range tests {
		if got := MatchesInclude(tt.path, tt.patterns); got != tt.want {
			t.Errorf("MatchesInclude(%q, %v) = %v, want %v", tt.path, tt.patterns, got, tt.want)
		}
	}
}

func TestMatchesExclude(t *testing.T) {
	tests := []struct {
		path     string
		patterns []string
		want     bool
	}{
		{"en/latest/404.html", []string{"404.html"}, true},
		{"_flyout/flyout.js", []string{"_flyout/**"}, true},
		{"en/latest/guide.html", []string{"404.html"}, false},
		{"en/latest/guide.html", nil, false},
	}
	for _, tt := range tests {
		if got := MatchesExclude(tt.path, tt.patterns); got != tt.want {
			t.Errorf("MatchesExclude(%q, %v) = %v, want %v", tt.path, tt.patterns, got, tt.want)
		}
	}
}

func TestListPages(t *testing.T) {
	root := t.TempDir()
	files := []string{
		"index.html",
		"en/latest/guide.html",
		"en/latest/404.html",
		"en/latest/style.css",
		"node_modules/pkg/index.html",
	}
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("<html></html>"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	pages, err := ListPages(root, []string{"**/*.html"}, []string{"404.html"})
	if err != nil {
		t.Fatalf("ListPages error: %v", err)
	}

	want := map[string]bool{"index.html": true, "en/latest/guide.html": true}
	if len(pages) != len(want) {
		t.Fatalf("pages = %v, want %v", pages, want)
	}
	for _, p := range pages {
		if !want[p] {
			t.Errorf("unexpected page %q", p)
		}
	}
}
