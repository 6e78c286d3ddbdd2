package flyout

import "strings"

// Style returns the widget stylesheet. Strict mode qualifies every
// declaration with !important for host pages whose own CSS would
// otherwise override the widget.
func Style(strict bool) string {
	if strict {
		return Strictify(baseCSS)
	}
	return baseCSS
}

// StyleBlock wraps the stylesheet in a <style> element ready for
// insertion into a page's <head>, before the widget markup, so the
// first paint is already styled.
func StyleBlock(strict bool) string {
	return `<style id="docflyout-style">` + "\n" + Style(strict) + "\n</style>"
}

// Strictify appends !important to every declaration in the stylesheet.
// Declarations already qualified are left alone.
func Strictify(css string) string {
	var b strings.Builder
	for _, line := range strings.Split(css, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasSuffix(trimmed, ";") && !strings.Contains(trimmed, "!important") {
			line = strings.TrimSuffix(line, ";") + " !important;"
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
