package inject

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ziadkadry99/doc-flyout/internal/config"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

const page = `<!DOCTYPE html><html><head><title>t</title></head><body><p>doc</p></body></html>`

func siteConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.SiteDir = t.TempDir()
	cfg.CurrentLanguage = "en"
	cfg.CurrentVersion = "latest"
	cfg.Languages = []config.Option{
		{Code: "en", Name: "English"},
		{Code: "fr", Name: "Français"},
	}
	cfg.Versions = []config.Option{
		{Code: "latest", Name: "latest"},
		{Code: "1.0", Name: "1.0"},
	}
	return cfg
}

func TestRun(t *testing.T) {
	cfg := siteConfig(t)
	writeTestFile(t, filepath.Join(cfg.SiteDir, "index.html"), page)
	writeTestFile(t, filepath.Join(cfg.SiteDir, "en", "latest", "guide.html"), page)
	writeTestFile(t, filepath.Join(cfg.SiteDir, "en", "latest", "404.html"), page)

	inj := New(cfg, nil)
	count, err := inj.Run()
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2 (404.html excluded)", count)
	}

	// Widget script asset written.
	script, err := os.ReadFile(filepath.Join(cfg.SiteDir, "_flyout", "flyout.js"))
	if err != nil {
		t.Fatalf("reading script asset: %v", err)
	}
	if !strings.Contains(string(script), "docflyout") {
		t.Error("script asset should carry the widget behavior")
	}

	// Nested page: style in head, widget in body, relative asset href.
	data, err := os.ReadFile(filepath.Join(cfg.SiteDir, "en", "latest", "guide.html"))
	if err != nil {
		t.Fatal(err)
	}
	doc := string(data)
	if !strings.Contains(doc, `id="docflyout-style"`) {
		t.Error("style block missing")
	}
	if !strings.Contains(doc, `id="docflyout"`) {
		t.Error("widget markup missing")
	}
	if !strings.Contains(doc, `src="../../_flyout/flyout.js?v=`+inj.BuildID()) {
		t.Errorf("script tag should use relative asset href and build stamp, got: %s", doc)
	}
	if !strings.Contains(doc, "<p>doc</p>") {
		t.Error("page content must survive injection")
	}

	// Excluded page untouched.
	data, err = os.ReadFile(filepath.Join(cfg.SiteDir, "en", "latest", "404.html"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "docflyout") {
		t.Error("excluded page must not be injected")
	}
}

func TestRunIdempotent(t *testing.T) {
	cfg := siteConfig(t)
	writeTestFile(t, filepath.Join(cfg.SiteDir, "index.html"), page)

	if _, err := New(cfg, nil).Run(); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	second := New(cfg, nil)
	if _, err := second.Run(); err != nil {
		t.Fatalf("second Run: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(cfg.SiteDir, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	doc := string(data)
	if strings.Count(doc, `id="docflyout-style"`) != 1 {
		t.Error("re-injection must not stack style blocks")
	}
	if strings.Count(doc, "flyout.js?v=") != 1 {
		t.Error("re-injection must not stack script tags")
	}
	if !strings.Contains(doc, second.BuildID()) {
		t.Error("re-injection should refresh the build stamp")
	}
}

// recordingReporter captures per-page progress for assertions.
type recordingReporter struct {
	pages     []string
	refreshed []bool
	fresh     int
	again     int
}

func (r *recordingReporter) Start(int) {}
func (r *recordingReporter) Page(_ int, rel string, refreshed bool) {
	r.pages = append(r.pages, rel)
	r.refreshed = append(r.refreshed, refreshed)
}
func (r *recordingReporter) Finish(fresh, refreshed int) {
	r.fresh, r.again = fresh, refreshed
}

func TestRunReportsRefreshedPages(t *testing.T) {
	cfg := siteConfig(t)
	writeTestFile(t, filepath.Join(cfg.SiteDir, "index.html"), page)
	writeTestFile(t, filepath.Join(cfg.SiteDir, "en", "latest", "guide.html"), page)

	first := &recordingReporter{}
	if _, err := New(cfg, first).Run(); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	if first.fresh != 2 || first.again != 0 {
		t.Errorf("first run: fresh=%d refreshed=%d, want 2/0", first.fresh, first.again)
	}

	writeTestFile(t, filepath.Join(cfg.SiteDir, "en", "latest", "new.html"), page)

	second := &recordingReporter{}
	if _, err := New(cfg, second).Run(); err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if second.fresh != 1 || second.again != 2 {
		t.Errorf("second run: fresh=%d refreshed=%d, want 1/2", second.fresh, second.again)
	}
	for i, rel := range second.pages {
		want := rel != "en/latest/new.html"
		if second.refreshed[i] != want {
			t.Errorf("page %s: refreshed=%v, want %v", rel, second.refreshed[i], want)
		}
	}
}

func TestRunNoPages(t *testing.T) {
	cfg := siteConfig(t)

	_, err := New(cfg, nil).Run()
	if err == nil {
		t.Fatal("Run should fail on an empty site dir")
	}
	if !strings.Contains(err.Error(), "no HTML pages") {
		t.Errorf("error = %q, want it to mention missing pages", err)
	}
}

func TestRunInjectsPerPageContext(t *testing.T) {
	cfg := siteConfig(t)
	writeTestFile(t, filepath.Join(cfg.SiteDir, "fr", "1.0", "guide.html"), page)

	if _, err := New(cfg, nil).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(cfg.SiteDir, "fr", "1.0", "guide.html"))
	if err != nil {
		t.Fatal(err)
	}
	doc := string(data)
	if !strings.Contains(doc, `"language":"fr"`) || !strings.Contains(doc, `"version":"1.0"`) {
		t.Errorf("page context should follow the page path, got: %s", doc)
	}
	if !strings.Contains(doc, "Français / 1.0") {
		t.Error("header label should reflect the page's own language/version")
	}
}

func TestDetectPageContext(t *testing.T) {
	cfg := siteConfig(t)

	tests := []struct {
		rel      string
		wantLang string
		wantVer  string
	}{
		{"fr/1.0/guide.html", "fr", "1.0"},
		{"fr/guide.html", "fr", "latest"},          // unknown version segment: default retained
		{"es/1.0/guide.html", "en", "latest"},      // unknown language: defaults
		{"index.html", "en", "latest"},             // no segments
		{"fr/unknown/guide.html", "fr", "latest"},  // version segment not configured
		{"en/latest/deep/guide.html", "en", "latest"},
	}
	for _, tt := range tests {
		lang, ver := DetectPageContext(tt.rel, cfg)
		if lang != tt.wantLang || ver != tt.wantVer {
			t.Errorf("DetectPageContext(%q) = (%q, %q), want (%q, %q)", tt.rel, lang, ver, tt.wantLang, tt.wantVer)
		}
	}
}
