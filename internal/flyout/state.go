package flyout

// State is the widget's two-level disclosure state: whether the
// language/version/links panel is open, and whether the textual label
// next to the icon is shown. It lives only in memory and resets with
// the page.
type State struct {
	ContentExpanded bool
	LabelVisible    bool
}

// NewState returns the initial widget state: collapsed but labeled.
func NewState() State {
	return State{ContentExpanded: false, LabelVisible: true}
}

// ToggleContent flips the content panel, triggered by a click on the
// header label. The divider mirrors the panel.
func (s *State) ToggleContent() {
	s.ContentExpanded = !s.ContentExpanded
}

// ToggleLabel flips the label, triggered by a click on the header icon.
// Hiding the label also collapses the content; restoring it does not
// re-expand.
func (s *State) ToggleLabel() {
	s.LabelVisible = !s.LabelVisible
	if !s.LabelVisible {
		s.ContentExpanded = false
	}
}

// CollapseContent closes the panel, triggered by a click outside the
// widget. The label is untouched, and collapsing an already-collapsed
// widget is a no-op.
func (s *State) CollapseContent() {
	s.ContentExpanded = false
}

// Classes returns the CSS class list expressing the state on the
// widget's root element.
func (s State) Classes() string {
	classes := "docflyout"
	if s.ContentExpanded {
		classes += " expanded"
	}
	if !s.LabelVisible {
		classes += " icon-only"
	}
	return classes
}
