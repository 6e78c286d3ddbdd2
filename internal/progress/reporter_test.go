package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestPageLabel(t *testing.T) {
	if got := pageLabel("en/latest/guide.html", false); got != "inject en/latest/guide.html" {
		t.Errorf("fresh label = %q", got)
	}
	if got := pageLabel("en/latest/guide.html", true); got != "refresh en/latest/guide.html" {
		t.Errorf("refreshed label = %q", got)
	}
}

func TestLineReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &LineReporter{Out: &buf}

	r.Start(2)
	r.Page(1, "index.html", false)
	r.Page(2, "en/latest/guide.html", true)
	r.Finish(1, 1)

	out := buf.String()
	for _, want := range []string{
		"Injecting flyout into 2 pages",
		"[1/2] inject index.html",
		"[2/2] refresh en/latest/guide.html",
		"Done: 1 pages injected, 1 refreshed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestNewReporterVerbose(t *testing.T) {
	if _, ok := NewReporter(true).(*LineReporter); !ok {
		t.Error("verbose should select the line reporter")
	}
}
