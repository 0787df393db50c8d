package discovery

import (
	"reflect"
	"testing"
)

func TestFilter_FilterByName(t *testing.T) {
	docs := []string{
		"docs/README.md",
		"docs/guide.md",
		"docs/api/guide.md",
		"docs/CHANGELOG.md",
	}

	tests := []struct {
		name     string
		pattern  string
		expected []string
	}{
		{
			name:     "empty pattern keeps everything",
			pattern:  "",
			expected: docs,
		},
		{
			name:     "exact name",
			pattern:  "README.md",
			expected: []string{"docs/README.md"},
		},
		{
			name:     "prefix wildcard",
			pattern:  "*guide.md",
			expected: []string{"docs/guide.md", "docs/api/guide.md"},
		},
		{
			name:     "surrounding wildcards",
			pattern:  "*guide*",
			expected: []string{"docs/guide.md", "docs/api/guide.md"},
		},
		{
			name:     "plain substring",
			pattern:  "CHANGE",
			expected: []string{"docs/CHANGELOG.md"},
		},
		{
			name:     "no match",
			pattern:  "missing",
			expected: nil,
		},
	}

	filter := NewFilter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(docs, tt.pattern)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("FilterByName(%q) = %v, want %v", tt.pattern, result, tt.expected)
			}
		})
	}
}
