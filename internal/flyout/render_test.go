package flyout

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	m := BuildModel(testConfig(), "en-us", "latest")

	html, err := Render(m)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	if !strings.Contains(html, `id="docflyout"`) {
		t.Error("widget root element missing")
	}
	if !strings.Contains(html, `class="docflyout"`) {
		t.Error("widget should render in the initial collapsed-but-labeled state")
	}
	if strings.Contains(html, "expanded") {
		t.Error("widget must not start expanded")
	}
	if !strings.Contains(html, "English / latest") {
		t.Error("header label should show current language / version")
	}
	if !strings.Contains(html, `<option value="zh-cn">简体中文</option>`) {
		t.Error("language option missing")
	}
	if !strings.Contains(html, `<option value="en-us" selected>English</option>`) {
		t.Error("current language should be pre-selected")
	}
	if strings.Contains(html, `value="newline"`) {
		t.Error("break marker must never render as an option")
	}
	if !strings.Contains(html, `<a href="https://example.com/issues">Issues</a>`) {
		t.Error("project link missing")
	}
	if !strings.Contains(html, "<br>") {
		t.Error("project break marker should render as a line break")
	}
	if !strings.Contains(html, `"language":"en-us"`) || !strings.Contains(html, `"version":"latest"`) {
		t.Error("embedded page context JSON missing")
	}
}

func TestRenderLinkOrder(t *testing.T) {
	m := BuildModel(testConfig(), "en-us", "latest")
	html, err := Render(m)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	home := strings.Index(html, ">Homepage</a>")
	br := strings.Index(html, "<br>")
	issues := strings.Index(html, ">Issues</a>")
	if home == -1 || br == -1 || issues == -1 {
		t.Fatal("expected both links and a break")
	}
	if !(home < br && br < issues) {
		t.Errorf("rendered order must match configuration: home=%d br=%d issues=%d", home, br, issues)
	}
}

func TestStyleBlock(t *testing.T) {
	block := StyleBlock(false)
	if !strings.HasPrefix(block, `<style id="docflyout-style">`) || !strings.HasSuffix(block, "</style>") {
		t.Errorf("style block malformed: %q...", block[:40])
	}
	if strings.Contains(block, "!important") {
		t.Error("relaxed style must not carry !important")
	}
}

func TestStrictify(t *testing.T) {
	css := "#docflyout {\n  position: fixed;\n  color: red !important;\n}"
	got := Strictify(css)

	if !strings.Contains(got, "position: fixed !important;") {
		t.Errorf("declaration not strictified: %q", got)
	}
	if strings.Contains(got, "!important !important") {
		t.Error("already-qualified declaration must not be doubled")
	}
	if !strings.Contains(got, "#docflyout {") {
		t.Error("selectors must be untouched")
	}
}

func TestStrictStyleCoversEveryDeclaration(t *testing.T) {
	for _, line := range strings.Split(Style(true), "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasSuffix(trimmed, ";") && !strings.Contains(trimmed, "!important") {
			t.Errorf("unqualified declaration in strict style: %q", trimmed)
		}
	}
}

func TestScriptMirrorsResolver(t *testing.T) {
	js := Script()

	// The shipped script must carry the same branches as internal/nav:
	// file:// short-circuit, HEAD probe, and the asset-dir fallback.
	for _, needle := range []string{"file:", "HEAD", "/index.html", "stopPropagation"} {
		if !strings.Contains(js, needle) {
			t.Errorf("widget script missing %q", needle)
		}
	}
}
