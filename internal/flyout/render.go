package flyout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
)

// pageContext is the per-page JSON blob embedded in the widget markup
// for the browser-side script.
type pageContext struct {
	Language string `json:"language"`
	Version  string `json:"version"`
}

// templateData is the full payload handed to the widget template.
type templateData struct {
	Model
	Classes     string
	ContextJSON template.JS
}

var widgetTmpl = template.Must(template.New("flyout").Parse(widgetTemplate))

// Render produces the widget's HTML fragment for the given view model,
// in the initial collapsed-but-labeled state.
func Render(m Model) (string, error) {
	ctxJSON, err := json.Marshal(pageContext{Language: m.Language, Version: m.Version})
	if err != nil {
		return "", fmt.Errorf("marshalling page context: %w", err)
	}

	data := templateData{
		Model:       m,
		Classes:     NewState().Classes(),
		ContextJSON: template.JS(ctxJSON),
	}

	var buf bytes.Buffer
	if err := widgetTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering widget: %w", err)
	}
	return buf.String(), nil
}

// Script returns the browser-side widget behavior asset.
func Script() string { return widgetScript }
