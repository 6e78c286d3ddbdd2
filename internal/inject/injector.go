// Package inject embeds the flyout widget into every page of a built
// documentation site.
package inject

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/ziadkadry99/doc-flyout/internal/config"
	"github.com/ziadkadry99/doc-flyout/internal/flyout"
	"github.com/ziadkadry99/doc-flyout/internal/progress"
	"github.com/ziadkadry99/doc-flyout/internal/walker"
)

// Injector walks a site tree and injects the widget into each page:
// style block into <head>, widget markup and script tag into <body>,
// then a link-refresh pass.
type Injector struct {
	cfg      *config.Config
	reporter progress.Reporter
	buildID  string
}

// New creates an Injector. Each Injector carries a fresh build stamp so
// re-injected pages bust cached copies of the widget script.
func New(cfg *config.Config, reporter progress.Reporter) *Injector {
	if reporter == nil {
		reporter = progress.Quiet{}
	}
	return &Injector{
		cfg:      cfg,
		reporter: reporter,
		buildID:  uuid.New().String()[:8],
	}
}

// BuildID returns the cache-busting stamp appended to asset URLs.
func (i *Injector) BuildID() string { return i.buildID }

// Run injects the widget into every matching page and writes the widget
// script asset. Returns the number of pages injected.
func (i *Injector) Run() (int, error) {
	pages, err := walker.ListPages(i.cfg.SiteDir, i.cfg.Include, i.cfg.Exclude)
	if err != nil {
		return 0, fmt.Errorf("walking site dir: %w", err)
	}
	if len(pages) == 0 {
		return 0, fmt.Errorf("no HTML pages found in %s", i.cfg.SiteDir)
	}

	if err := i.writeScriptAsset(); err != nil {
		return 0, err
	}

	fresh, refreshed := 0, 0
	i.reporter.Start(len(pages))
	for idx, rel := range pages {
		again, err := i.injectPage(rel)
		if err != nil {
			return 0, fmt.Errorf("injecting %s: %w", rel, err)
		}
		if again {
			refreshed++
		} else {
			fresh++
		}
		i.reporter.Page(idx+1, rel, again)
	}
	i.reporter.Finish(fresh, refreshed)

	return len(pages), nil
}

// writeScriptAsset writes flyout.js into the site's asset directory.
// Fallback URLs resolve relative to this location, so every published
// language/version combination must keep an index.html under it.
func (i *Injector) writeScriptAsset() error {
	assetDir := filepath.Join(i.cfg.SiteDir, filepath.FromSlash(i.cfg.AssetPath))
	if err := os.MkdirAll(assetDir, 0o755); err != nil {
		return fmt.Errorf("creating asset dir: %w", err)
	}
	path := filepath.Join(assetDir, "flyout.js")
	if err := os.WriteFile(path, []byte(flyout.Script()), 0o644); err != nil {
		return fmt.Errorf("writing widget script: %w", err)
	}
	return nil
}

// injectPage rewrites a single page: styles first so the first paint is
// already styled, then the widget markup and script, then the
// link-refresh pass. Reports whether the page already carried the
// widget from an earlier run.
func (i *Injector) injectPage(rel string) (refreshed bool, err error) {
	path := filepath.Join(i.cfg.SiteDir, filepath.FromSlash(rel))
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	refreshed = flyout.Injected(string(data))

	lang, version := DetectPageContext(rel, i.cfg)
	widget, err := flyout.Render(flyout.BuildModel(i.cfg, lang, version))
	if err != nil {
		return false, err
	}

	style := flyout.StyleBlock(i.cfg.StrictStyle)
	scriptTag := fmt.Sprintf(`<script src="%s/flyout.js?v=%s" defer></script>`, i.assetHref(rel), i.buildID)

	doc := flyout.InjectPage(string(data), style, widget, scriptTag)
	doc = i.refreshLinks(doc)

	return refreshed, os.WriteFile(path, []byte(doc), 0o644)
}

// assetHref computes the relative path from a page back to the asset
// directory (e.g. "../../_flyout" for a page two levels deep).
func (i *Injector) assetHref(rel string) string {
	depth := strings.Count(rel, "/")
	prefix := strings.Repeat("../", depth)
	return prefix + i.cfg.AssetPath
}

// refreshLinks is a post-injection pass over the page. Earlier revisions
// rewrote anchor hrefs across the page here; resolution now happens per
// interaction in the widget itself, so the pass returns the page
// unchanged. Kept as the hook for cross-page link updates.
func (i *Injector) refreshLinks(doc string) string {
	return doc
}

// DetectPageContext derives a page's language and version codes from its
// leading path segments when they match configured codes, falling back
// to the configured defaults otherwise.
func DetectPageContext(rel string, cfg *config.Config) (lang, version string) {
	lang, version = cfg.CurrentLanguage, cfg.CurrentVersion

	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) > 1 && hasCode(cfg.SelectableLanguages(), parts[0]) {
		lang = parts[0]
		if len(parts) > 2 && hasCode(cfg.SelectableVersions(), parts[1]) {
			version = parts[1]
		}
	}
	return lang, version
}

func hasCode(opts []config.Option, code string) bool {
	for _, o := range opts {
		if o.Code == code {
			return true
		}
	}
	return false
}
