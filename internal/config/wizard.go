package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
)

// siteDirCandidates are directory names commonly used for built docs trees,
// checked in order when suggesting a default site_dir.
var siteDirCandidates = []string{"site", "public", "_site", "build/html", "docs/_build/html"}

// detectSiteDir checks the current directory for a likely built-site root.
func detectSiteDir() string {
	for _, dir := range siteDirCandidates {
		if info, err := os.Stat(filepath.FromSlash(dir)); err == nil && info.IsDir() {
			return dir
		}
	}
	return ""
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .flyout.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to docflyout! Let's configure your documentation site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Site directory.
	siteDefault := detectSiteDir()
	if siteDefault != "" {
		fmt.Printf("Detected built site at: %s\n\n", siteDefault)
	} else {
		siteDefault = cfg.SiteDir
	}
	sitePrompt := promptui.Prompt{
		Label:   "Built site directory",
		Default: siteDefault,
	}
	siteDir, err := sitePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site directory: %w", err)
	}
	cfg.SiteDir = siteDir

	// 2. Current language.
	langPrompt := promptui.Prompt{
		Label:   "Default language code (e.g. en, en-us, zh-cn)",
		Default: cfg.CurrentLanguage,
	}
	lang, err := langPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("language: %w", err)
	}
	cfg.CurrentLanguage = strings.TrimSpace(lang)

	langNamePrompt := promptui.Prompt{
		Label:   "Display name for that language",
		Default: "English",
	}
	langName, err := langNamePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("language name: %w", err)
	}
	cfg.Languages = []Option{{Code: cfg.CurrentLanguage, Name: langName}}

	// 3. Current version.
	verPrompt := promptui.Prompt{
		Label:   "Default version code (e.g. latest, stable, 3.9)",
		Default: cfg.CurrentVersion,
	}
	ver, err := verPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("version: %w", err)
	}
	cfg.CurrentVersion = strings.TrimSpace(ver)
	cfg.Versions = []Option{{Code: cfg.CurrentVersion, Name: cfg.CurrentVersion}}

	// 4. Styling strictness. Strict mode qualifies every rule with !important
	// so the widget survives aggressive host-page stylesheets.
	stylePrompt := promptui.Select{
		Label: "Widget styling mode",
		Items: []string{"relaxed (plain rules)", "strict (!important rules, for hostile host CSS)"},
	}
	styleIdx, _, err := stylePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("styling mode: %w", err)
	}
	cfg.StrictStyle = styleIdx == 1

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(".flyout.yml"); err != nil {
		return nil, err
	}

	fmt.Println()
	fmt.Println("Configuration saved to .flyout.yml")
	fmt.Println("Add more languages, versions, and project links there, then run `docflyout inject`.")
	return cfg, nil
}
