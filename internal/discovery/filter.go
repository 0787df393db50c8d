package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters document files by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters documents by name pattern using wildcard matching
// Supports patterns like "*README.md" or "*guide*"
func (f *Filter) FilterByName(docs []string, pattern string) []string {
	if pattern == "" {
		return docs
	}

	var filtered []string

	for _, doc := range docs {
		// Get just the filename from the full path
		docName := filepath.Base(doc)

		// Try to match using filepath.Match (supports * and ? wildcards)
		matched, err := filepath.Match(pattern, docName)
		if err == nil && matched {
			filtered = append(filtered, doc)
			continue
		}

		// If pattern contains wildcards but filepath.Match didn't match,
		// try a more flexible substring match for patterns like "*guide*"
		if strings.Contains(pattern, "*") {
			patternParts := strings.Split(pattern, "*")
			allPartsMatch := true
			hasNonEmptyPart := false
			for _, part := range patternParts {
				if part == "" {
					continue
				}
				hasNonEmptyPart = true
				if !strings.Contains(docName, part) {
					allPartsMatch = false
					break
				}
			}
			if allPartsMatch && hasNonEmptyPart {
				filtered = append(filtered, doc)
				continue
			}
		}

		// If no wildcards, do a simple contains check
		if !strings.Contains(pattern, "*") && !strings.Contains(pattern, "?") {
			if strings.Contains(docName, pattern) {
				filtered = append(filtered, doc)
			}
		}
	}

	return filtered
}
