package flyout

import "testing"

func TestInitialState(t *testing.T) {
	s := NewState()
	if s.ContentExpanded {
		t.Error("widget should start collapsed")
	}
	if !s.LabelVisible {
		t.Error("widget should start labeled")
	}
	if got := s.Classes(); got != "docflyout" {
		t.Errorf("initial classes = %q, want %q", got, "docflyout")
	}
}

func TestToggleContent(t *testing.T) {
	s := NewState()

	s.ToggleContent()
	if !s.ContentExpanded {
		t.Error("first toggle should expand")
	}
	if got := s.Classes(); got != "docflyout expanded" {
		t.Errorf("classes = %q, want %q", got, "docflyout expanded")
	}

	s.ToggleContent()
	if s.ContentExpanded {
		t.Error("second toggle should collapse")
	}
}

func TestHidingLabelCollapsesContent(t *testing.T) {
	s := NewState()
	s.ToggleContent()

	s.ToggleLabel()
	if s.LabelVisible {
		t.Error("label should be hidden")
	}
	if s.ContentExpanded {
		t.Error("hiding the label must collapse the content")
	}
	if got := s.Classes(); got != "docflyout icon-only" {
		t.Errorf("classes = %q, want %q", got, "docflyout icon-only")
	}

	// Restoring the label leaves the content collapsed.
	s.ToggleLabel()
	if !s.LabelVisible {
		t.Error("label should be visible again")
	}
	if s.ContentExpanded {
		t.Error("restoring the label must not re-expand the content")
	}
}

func TestExpandingContentDoesNotRestoreLabel(t *testing.T) {
	s := NewState()
	s.ToggleLabel() // hide label

	s.ToggleContent()
	if s.LabelVisible {
		t.Error("expanding content must not force the label back")
	}
	if got := s.Classes(); got != "docflyout expanded icon-only" {
		t.Errorf("classes = %q, want %q", got, "docflyout expanded icon-only")
	}
}

func TestOutsideClick(t *testing.T) {
	s := NewState()
	s.ToggleContent()

	s.CollapseContent()
	if s.ContentExpanded {
		t.Error("outside click should collapse the content")
	}
	if !s.LabelVisible {
		t.Error("outside click must leave the label alone")
	}

	// Idempotent on an already-collapsed widget.
	before := s
	s.CollapseContent()
	if s != before {
		t.Errorf("outside click on collapsed widget changed state: %+v -> %+v", before, s)
	}
}
