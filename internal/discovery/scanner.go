package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Scanner scans for markdown documents in a directory
type Scanner struct {
	skipDirs map[string]bool
}

// NewScanner creates a new Scanner with the given directories to skip
func NewScanner(skipDirs []string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{skipDirs: skipMap}
}

// Scan finds all markdown documents under the given root directory.
// Template fragments (*.skt.md) are not documents and are skipped.
func (s *Scanner) Scan(root string) ([]string, error) {
	var docs []string

	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("docs path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("docs path is not a directory: %s", root)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			// Skip hidden directories (starting with .)
			if strings.HasPrefix(name, ".") && name != "." && name != ".." {
				return filepath.SkipDir
			}

			if s.skipDirs[name] {
				return filepath.SkipDir
			}

			return nil
		}

		name := strings.ToLower(d.Name())
		if strings.HasSuffix(name, ".md") && !strings.HasSuffix(name, ".skt.md") {
			docs = append(docs, path)
		}

		return nil
	})

	return docs, err
}
