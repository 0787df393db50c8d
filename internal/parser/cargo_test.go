package parser

import (
	"testing"

	"mdt/internal/domain"
)

func TestCargoParser_ParseFailure(t *testing.T) {
	parser := NewCargoParser()

	baseResult := domain.Result{
		Test: domain.Test{
			Name:      "readme_sect_usage_line_7",
			DocPath:   "README.md",
			Section:   "usage",
			StartLine: 7,
		},
		Outcome: domain.OutcomeFailed,
	}

	t.Run("compiler error", func(t *testing.T) {
		result := baseResult
		result.Stage = domain.StageCompile
		result.Output = `   Compiling scratch v0.1.0
error[E0308]: mismatched types
 --> src/main.rs:2:13
  |
2 |     let x: u32 = "nope";
  |            ---   ^^^^^^ expected u32, found &str
`

		failure := parser.ParseFailure(result)

		if failure.TestName != "readme_sect_usage_line_7" {
			t.Errorf("unexpected test name: %s", failure.TestName)
		}
		if failure.DocPath != "README.md" || failure.Line != 7 {
			t.Errorf("origin not carried over: %s:%d", failure.DocPath, failure.Line)
		}
		if failure.Message != "error[E0308]: mismatched types" {
			t.Errorf("unexpected message: %q", failure.Message)
		}
		if failure.ProgramLine != 2 {
			t.Errorf("expected program line 2, got %d", failure.ProgramLine)
		}
	})

	t.Run("panic output", func(t *testing.T) {
		result := baseResult
		result.Stage = domain.StageRun
		result.Output = "thread 'main' panicked at src/main.rs:3:5:\nboom\nnote: run with RUST_BACKTRACE=1\n"

		failure := parser.ParseFailure(result)

		if failure.Message != "thread 'main' panicked at src/main.rs:3:5:" {
			t.Errorf("unexpected message: %q", failure.Message)
		}
	})

	t.Run("unparseable output still yields a record", func(t *testing.T) {
		result := baseResult
		result.Stage = domain.StageRun
		result.Output = "something went sideways"

		failure := parser.ParseFailure(result)

		if failure.Message != "" {
			t.Errorf("expected no message, got %q", failure.Message)
		}
		if failure.Output != "something went sideways" {
			t.Errorf("raw output not preserved: %q", failure.Output)
		}
	})
}
