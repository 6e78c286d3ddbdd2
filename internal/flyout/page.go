package flyout

import "strings"

// Markers fencing the injected regions. Re-injecting a page replaces
// the fenced regions instead of stacking duplicates.
const (
	styleStart  = "<!-- docflyout:style -->"
	styleEnd    = "<!-- /docflyout:style -->"
	widgetStart = "<!-- docflyout:widget -->"
	widgetEnd   = "<!-- /docflyout:widget -->"
)

// InjectPage inserts the style block into the page's <head> and the
// widget markup plus script tag at the end of <body>. Pages that were
// injected before are cleaned first, making injection idempotent.
// Pages without a <head> get the style prepended; pages without a
// </body> get the widget appended.
func InjectPage(doc, styleBlock, widgetHTML, scriptTag string) string {
	doc = stripRegion(doc, styleStart, styleEnd)
	doc = stripRegion(doc, widgetStart, widgetEnd)

	style := styleStart + "\n" + styleBlock + "\n" + styleEnd + "\n"
	widget := widgetStart + "\n" + widgetHTML + "\n" + scriptTag + "\n" + widgetEnd + "\n"

	if idx := strings.Index(doc, "</head>"); idx != -1 {
		doc = doc[:idx] + style + doc[idx:]
	} else {
		doc = style + doc
	}

	if idx := strings.LastIndex(doc, "</body>"); idx != -1 {
		doc = doc[:idx] + widget + doc[idx:]
	} else {
		doc = doc + widget
	}

	return doc
}

// Injected reports whether a page already carries the widget.
func Injected(doc string) bool {
	return strings.Contains(doc, widgetStart)
}

// stripRegion removes every start..end fenced region from the document,
// including the markers themselves.
func stripRegion(doc, start, end string) string {
	for {
		idx := strings.Index(doc, start)
		if idx == -1 {
			return doc
		}
		endIdx := strings.Index(doc[idx:], end)
		if endIdx == -1 {
			return doc
		}
		endIdx += idx + len(end)
		// Swallow one trailing newline left over from injection.
		if endIdx < len(doc) && doc[endIdx] == '\n' {
			endIdx++
		}
		doc = doc[:idx] + doc[endIdx:]
	}
}
