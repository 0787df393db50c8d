package extract

import (
	"reflect"
	"testing"
)

func TestExtractor_Extract(t *testing.T) {
	extractor := NewExtractor()

	t.Run("document without rust blocks yields nothing", func(t *testing.T) {
		doc := "# Title\n\nJust prose.\n\n```python\nprint('x')\n```\n"
		tests := extractor.Extract([]byte(doc), "README.md")
		if len(tests) != 0 {
			t.Errorf("expected no tests, got %d", len(tests))
		}
	})

	t.Run("plain rust block under no heading", func(t *testing.T) {
		doc := "```rust\nfn main() { println!(\"hi\"); }\n```\n"
		tests := extractor.Extract([]byte(doc), "README.md")
		if len(tests) != 1 {
			t.Fatalf("expected 1 test, got %d", len(tests))
		}

		test := tests[0]
		if test.Name != "readme_line_1" {
			t.Errorf("unexpected name: %s", test.Name)
		}
		if test.StartLine != 1 {
			t.Errorf("expected start line 1, got %d", test.StartLine)
		}
		if test.Section != "" {
			t.Errorf("expected no section, got %q", test.Section)
		}
		want := []string{"fn main() { println!(\"hi\"); }"}
		if !reflect.DeepEqual(test.Text, want) {
			t.Errorf("unexpected body: %#v", test.Text)
		}
		if test.Ignore || test.NoRun || test.ShouldPanic {
			t.Error("plain rust block should carry no flags")
		}
	})

	t.Run("level-2 heading becomes the section", func(t *testing.T) {
		doc := "# Intro\n\nSome text.\n\n## Usage\n\n```rust\nfn main() {}\n```\n"
		tests := extractor.Extract([]byte(doc), "README.md")
		if len(tests) != 1 {
			t.Fatalf("expected 1 test, got %d", len(tests))
		}

		test := tests[0]
		if test.Section != "usage" {
			t.Errorf("expected section %q, got %q", "usage", test.Section)
		}
		if test.Name != "readme_sect_usage_line_7" {
			t.Errorf("unexpected name: %s", test.Name)
		}
	})

	t.Run("level-3 heading is not a section boundary", func(t *testing.T) {
		doc := "### Deep\n\n```rust\nfn main() {}\n```\n"
		tests := extractor.Extract([]byte(doc), "README.md")
		if len(tests) != 1 {
			t.Fatalf("expected 1 test, got %d", len(tests))
		}
		if tests[0].Section != "" {
			t.Errorf("expected no section, got %q", tests[0].Section)
		}
		if tests[0].StartLine != 3 {
			t.Errorf("expected start line 3, got %d", tests[0].StartLine)
		}
		if tests[0].Name != "readme_line_3" {
			t.Errorf("unexpected name: %s", tests[0].Name)
		}
	})

	t.Run("hidden lines are cleaned", func(t *testing.T) {
		doc := "```rust\n# extern crate foo;\n#\n\nfn main() {}\n```\n"
		tests := extractor.Extract([]byte(doc), "README.md")
		if len(tests) != 1 {
			t.Fatalf("expected 1 test, got %d", len(tests))
		}

		want := []string{"extern crate foo;", "fn main() {}"}
		if !reflect.DeepEqual(tests[0].Text, want) {
			t.Errorf("unexpected body: %#v", tests[0].Text)
		}
	})

	t.Run("section applies to every following block until overridden", func(t *testing.T) {
		doc := "# First\n\n```rust\nfn a() {}\n# fn main() {}\n```\n\n# Second\n\n```rust\nfn main() {}\n```\n"
		tests := extractor.Extract([]byte(doc), "guide.md")
		if len(tests) != 2 {
			t.Fatalf("expected 2 tests, got %d", len(tests))
		}

		if tests[0].Section != "first" {
			t.Errorf("first block: expected section %q, got %q", "first", tests[0].Section)
		}
		if tests[1].Section != "second" {
			t.Errorf("second block: expected section %q, got %q", "second", tests[1].Section)
		}
		if tests[0].Name == tests[1].Name {
			t.Errorf("names should differ, both %q", tests[0].Name)
		}

		wantFirst := []string{"fn a() {}", "fn main() {}"}
		if !reflect.DeepEqual(tests[0].Text, wantFirst) {
			t.Errorf("unexpected first body: %#v", tests[0].Text)
		}
	})

	t.Run("heading with inline emphasis", func(t *testing.T) {
		doc := "## Getting *started*\n\n```rust\nfn main() {}\n```\n"
		tests := extractor.Extract([]byte(doc), "README.md")
		if len(tests) != 1 {
			t.Fatalf("expected 1 test, got %d", len(tests))
		}
		if tests[0].Section != "getting_started" {
			t.Errorf("expected section %q, got %q", "getting_started", tests[0].Section)
		}
	})

	t.Run("flag tokens are recorded", func(t *testing.T) {
		doc := "```rust,ignore\nfn main() { panic!(\"x\"); }\n```\n\n" +
			"```rust,no_run\nfn main() { loop {} }\n```\n\n" +
			"```rust,should_panic\nfn main() { panic!(\"boom\"); }\n```\n"
		tests := extractor.Extract([]byte(doc), "README.md")
		if len(tests) != 3 {
			t.Fatalf("expected 3 tests, got %d", len(tests))
		}

		if !tests[0].Ignore {
			t.Error("first block should be ignored")
		}
		if !tests[1].NoRun {
			t.Error("second block should be no_run")
		}
		if !tests[2].ShouldPanic {
			t.Error("third block should be should_panic")
		}
	})

	t.Run("unknown tag alongside rust still counts", func(t *testing.T) {
		doc := "```rust,foo\nfn main() {}\n```\n"
		tests := extractor.Extract([]byte(doc), "README.md")
		if len(tests) != 1 {
			t.Fatalf("expected 1 test, got %d", len(tests))
		}
	})

	t.Run("unknown tag alone is excluded", func(t *testing.T) {
		doc := "```foo\nfn main() {}\n```\n"
		tests := extractor.Extract([]byte(doc), "README.md")
		if len(tests) != 0 {
			t.Errorf("expected no tests, got %d", len(tests))
		}
	})

	t.Run("bare fence is excluded", func(t *testing.T) {
		doc := "```\nfn main() {}\n```\n"
		tests := extractor.Extract([]byte(doc), "README.md")
		if len(tests) != 0 {
			t.Errorf("expected no tests, got %d", len(tests))
		}
	})
}
