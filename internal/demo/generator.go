// Package demo generates a small multi-language, multi-version sample
// site for trying the flyout end to end.
package demo

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/ziadkadry99/doc-flyout/internal/config"
)

// Generator writes the sample site tree, laid out as
// <language>/<version>/<page>.html under OutputDir.
type Generator struct {
	OutputDir string
	Languages []string
	Versions  []string
}

// NewGenerator creates a Generator with the demo's default axes.
func NewGenerator(outputDir string) *Generator {
	return &Generator{
		OutputDir: outputDir,
		Languages: []string{"en", "fr"},
		Versions:  []string{"latest", "1.0"},
	}
}

// pageData holds the data passed to the HTML template for each page.
type pageData struct {
	Title    string
	Language string
	Version  string
	Content  template.HTML
}

// Generate renders every sample page for every language/version
// combination. Returns the number of pages written.
func (g *Generator) Generate() (int, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return 0, fmt.Errorf("parsing page template: %w", err)
	}

	count := 0
	for _, lang := range g.Languages {
		for _, version := range g.Versions {
			dir := filepath.Join(g.OutputDir, lang, version)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return count, err
			}
			for name, source := range samplePages {
				var htmlBuf bytes.Buffer
				if err := md.Convert([]byte(fmt.Sprintf(source, lang, version)), &htmlBuf); err != nil {
					return count, fmt.Errorf("converting %s: %w", name, err)
				}

				data := pageData{
					Title:    name,
					Language: lang,
					Version:  version,
					Content:  template.HTML(htmlBuf.String()),
				}

				f, err := os.Create(filepath.Join(dir, name+".html"))
				if err != nil {
					return count, err
				}
				if err := tmpl.Execute(f, data); err != nil {
					f.Close()
					return count, fmt.Errorf("rendering %s: %w", name, err)
				}
				f.Close()
				count++
			}
		}
	}

	return count, nil
}

// Config returns a flyout configuration matching the generated tree, so
// the demo site can be injected and served without further editing.
func Config(outputDir string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.SiteDir = outputDir
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
	cfg.Projects = []config.ProjectLink{
		{Label: "Homepage", URL: "https://example.com"},
		{Label: config.SentinelNewline},
		{Label: "Source", URL: "https://example.com/source"},
	}
	return cfg
}
