package extract

import (
	"fmt"
	"path/filepath"
	"strings"
)

// SanitizeName lowercases s and collapses every run of characters that
// are not ASCII letters or digits into a single underscore, trimming
// leading and trailing runs. Applying it twice yields the same string.
func SanitizeName(s string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '_'
		}
	}, s)

	parts := strings.FieldsFunc(mapped, func(r rune) bool { return r == '_' })
	return strings.Join(parts, "_")
}

// TestName derives the stable test identifier for a snippet at the given
// 0-based start line. The document path loses its trailing 3-character
// extension and is sanitized; a non-empty section namespaces the name.
// The result is a pure function of (docPath, section, line).
func TestName(docPath, section string, line int) string {
	base := docPath
	if ext := filepath.Ext(base); len(ext) == 3 {
		base = strings.TrimSuffix(base, ext)
	}
	base = SanitizeName(base)

	if section != "" {
		return fmt.Sprintf("%s_sect_%s_line_%d", base, SanitizeName(section), line)
	}
	return fmt.Sprintf("%s_line_%d", base, line)
}
