package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDoc(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte("# Doc\n"), 0644); err != nil {
		t.Fatalf("failed to write doc: %v", err)
	}
}

func TestScanner_Scan(t *testing.T) {
	t.Run("finds markdown files recursively", func(t *testing.T) {
		dir := t.TempDir()
		writeDoc(t, filepath.Join(dir, "README.md"))
		writeDoc(t, filepath.Join(dir, "docs", "guide.md"))
		writeDoc(t, filepath.Join(dir, "notes.txt"))

		scanner := NewScanner(nil)
		docs, err := scanner.Scan(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(docs) != 2 {
			t.Errorf("expected 2 documents, got %d: %v", len(docs), docs)
		}
	})

	t.Run("extension match is case insensitive", func(t *testing.T) {
		dir := t.TempDir()
		writeDoc(t, filepath.Join(dir, "CHANGELOG.MD"))

		scanner := NewScanner(nil)
		docs, err := scanner.Scan(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(docs) != 1 {
			t.Errorf("expected 1 document, got %d", len(docs))
		}
	})

	t.Run("template fragments are skipped", func(t *testing.T) {
		dir := t.TempDir()
		writeDoc(t, filepath.Join(dir, "README.md"))
		writeDoc(t, filepath.Join(dir, "template.skt.md"))

		scanner := NewScanner(nil)
		docs, err := scanner.Scan(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(docs) != 1 {
			t.Fatalf("expected 1 document, got %d: %v", len(docs), docs)
		}
		if filepath.Base(docs[0]) != "README.md" {
			t.Errorf("unexpected document: %s", docs[0])
		}
	})

	t.Run("configured directories are skipped", func(t *testing.T) {
		dir := t.TempDir()
		writeDoc(t, filepath.Join(dir, "README.md"))
		writeDoc(t, filepath.Join(dir, "target", "doc.md"))
		writeDoc(t, filepath.Join(dir, "vendor", "lib", "doc.md"))

		scanner := NewScanner([]string{"target", "vendor"})
		docs, err := scanner.Scan(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(docs) != 1 {
			t.Errorf("expected 1 document, got %d: %v", len(docs), docs)
		}
	})

	t.Run("hidden directories are skipped", func(t *testing.T) {
		dir := t.TempDir()
		writeDoc(t, filepath.Join(dir, "README.md"))
		writeDoc(t, filepath.Join(dir, ".git", "doc.md"))

		scanner := NewScanner(nil)
		docs, err := scanner.Scan(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(docs) != 1 {
			t.Errorf("expected 1 document, got %d: %v", len(docs), docs)
		}
	})

	t.Run("nonexistent root", func(t *testing.T) {
		scanner := NewScanner(nil)
		_, err := scanner.Scan(filepath.Join(t.TempDir(), "missing"))
		if err == nil {
			t.Error("expected an error for a missing root")
		}
	})

	t.Run("root is a file", func(t *testing.T) {
		dir := t.TempDir()
		writeDoc(t, filepath.Join(dir, "README.md"))

		scanner := NewScanner(nil)
		_, err := scanner.Scan(filepath.Join(dir, "README.md"))
		if err == nil {
			t.Error("expected an error when the root is a file")
		}
	})
}
