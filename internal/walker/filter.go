// Package walker lists the HTML pages of a built site tree, honoring
// include/exclude glob patterns.
package walker

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// skipDirs are directory names never descended into during a walk.
var skipDirs = []string{
	".git",
	"node_modules",
	".doctrees",
}

// shouldSkipDir checks whether a directory name is always skipped.
func shouldSkipDir(name string) bool {
	for _, skip := range skipDirs {
		if strings.EqualFold(name, skip) {
			return true
		}
	}
	return false
}

// ListPages walks root and returns the relative slash-separated paths of
// all HTML pages matching the include patterns and not matching the
// exclude patterns, in walk order.
func ListPages(root string, include, exclude []string) ([]string, error) {
	var pages []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if shouldSkipDir(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".html") && !strings.HasSuffix(path, ".htm") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if !MatchesInclude(rel, include) || MatchesExclude(rel, exclude) {
			return nil
		}
		pages = append(pages, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pages, nil
}

// MatchesInclude returns true if the given relative path matches any of the
// include patterns. If patterns is empty, everything is included.
func MatchesInclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	return matchesAny(relPath, patterns)
}

// MatchesExclude returns true if the given relative path matches any of the
// exclude patterns. If patterns is empty, nothing is excluded.
func MatchesExclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	return matchesAny(relPath, patterns)
}

// matchesAny checks if relPath matches any of the given glob patterns.
// It uses doublestar for ** support, also matching against the bare
// filename so patterns like "404.html" hit at any depth.
func matchesAny(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)

		if matched, err := doublestar.PathMatch(pattern, normalized); err == nil && matched {
			return true
		}

		base := filepath.Base(normalized)
		if matched, err := doublestar.PathMatch(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}
