package parser

import (
	"regexp"
	"strconv"

	"mdt/internal/domain"
)

// CargoParser extracts structured diagnostics from cargo output
type CargoParser struct{}

// NewCargoParser creates a new CargoParser
func NewCargoParser() *CargoParser {
	return &CargoParser{}
}

var (
	// error[E0308]: mismatched types
	errorLinePattern = regexp.MustCompile(`(?m)^error(\[E\d+\])?:.*$`)
	// --> src/main.rs:3:5
	locationPattern = regexp.MustCompile(`-->\s+src[/\\]main\.rs:(\d+):\d+`)
	// thread 'main' panicked at src/main.rs:2:5:
	panicPattern = regexp.MustCompile(`(?m)^thread '[^']*' panicked at .*$`)
)

// ParseFailure converts a failed result into a persistable failure record,
// pulling the first compiler error or panic line out of the raw output.
func (p *CargoParser) ParseFailure(result domain.Result) domain.TestFailure {
	failure := domain.TestFailure{
		TestName: result.Test.Name,
		DocPath:  result.Test.DocPath,
		Section:  result.Test.Section,
		Line:     result.Test.StartLine,
		Stage:    result.Stage,
		Output:   result.Output,
	}

	if m := errorLinePattern.FindString(result.Output); m != "" {
		failure.Message = m
	} else if m := panicPattern.FindString(result.Output); m != "" {
		failure.Message = m
	}

	// Line within the generated program, when the compiler reports one.
	if m := locationPattern.FindStringSubmatch(result.Output); len(m) == 2 {
		if n, err := strconv.Atoi(m[1]); err == nil {
			failure.ProgramLine = n
		}
	}

	return failure
}
