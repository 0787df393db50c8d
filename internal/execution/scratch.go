package execution

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// scratchProject is the disposable build unit every test body is written
// into. One program slot is reused for the whole run, which is why
// execution must stay sequential.
type scratchProject struct {
	root     string
	mainFile string
}

// initScratch creates the scratch tree and seeds its manifest from the
// project being documented. The manifest is read before anything is
// created, so an unusable project leaves no scratch directory behind.
func initScratch(root, manifestPath string) (*scratchProject, error) {
	manifest, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", manifestPath, err)
	}

	srcDir := filepath.Join(root, "src")
	if err := os.MkdirAll(srcDir, 0755); err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(root, "Cargo.toml"), manifest, 0644); err != nil {
		return nil, fmt.Errorf("seed scratch manifest: %w", err)
	}

	return &scratchProject{
		root:     root,
		mainFile: filepath.Join(srcDir, "main.rs"),
	}, nil
}

// write overwrites the program slot with the test body. os.WriteFile
// truncates, so no residue from the previous test survives.
func (p *scratchProject) write(lines []string) error {
	body := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(p.mainFile, []byte(body), 0644); err != nil {
		return fmt.Errorf("write scratch program: %w", err)
	}
	return nil
}

// remove deletes the scratch tree.
func (p *scratchProject) remove() error {
	return os.RemoveAll(p.root)
}
