package extract

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"mdt/internal/domain"
)

// bufferState tracks what the extractor is currently accumulating. Only
// one buffer is ever active; opening a new heading or block discards an
// unterminated predecessor.
type bufferState int

const (
	bufferEmpty bufferState = iota
	bufferHeading
	bufferCode
)

// Only H1 and H2 headings act as section boundaries.
const maxSectionLevel = 2

// Extractor walks a document's event stream and derives its tests.
type Extractor struct {
	scanner *Scanner
}

// NewExtractor creates a new Extractor
func NewExtractor() *Extractor {
	return &Extractor{scanner: NewScanner()}
}

// ExtractFile reads a markdown document and extracts its tests.
func (e *Extractor) ExtractFile(path string) ([]domain.Test, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read doc %s: %w", path, err)
	}
	return e.Extract(source, path), nil
}

// Extract returns the runnable tests of one document, in document order.
func (e *Extractor) Extract(source []byte, docPath string) []domain.Test {
	var tests []domain.Test

	state := bufferEmpty
	var headingBuf strings.Builder
	var codeBuf []string
	var section string
	var startLine int
	var pending *BlockFlags

	for _, ev := range e.scanner.Events(source) {
		switch ev.Kind {
		case EventHeadingStart:
			if ev.Level <= maxSectionLevel {
				state = bufferHeading
				headingBuf.Reset()
			}

		case EventHeadingEnd:
			if ev.Level <= maxSectionLevel {
				if state == bufferHeading {
					// The most recent qualifying heading wins; sections
					// do not nest.
					section = SanitizeName(headingBuf.String())
				}
				state = bufferEmpty
			}

		case EventCodeBlockStart:
			flags := ParseBlockInfo(ev.Info)
			if flags.Runnable {
				state = bufferCode
				codeBuf = nil
				pending = &flags
			}

		case EventText:
			switch state {
			case bufferCode:
				if len(codeBuf) == 0 {
					startLine = lineNumber(source, ev.Offset)
				}
				for _, line := range splitLines(ev.Text) {
					if cleaned, keep := cleanCodeLine(line); keep {
						codeBuf = append(codeBuf, cleaned)
					}
				}
			case bufferHeading:
				headingBuf.WriteString(ev.Text)
			}

		case EventCodeBlockEnd:
			if pending == nil {
				// Non-runnable block, nothing was buffered.
				continue
			}
			if state == bufferCode {
				tests = append(tests, domain.Test{
					Name:        TestName(docPath, section, startLine),
					Text:        codeBuf,
					DocPath:     docPath,
					Section:     section,
					StartLine:   startLine,
					Ignore:      pending.Ignore,
					NoRun:       pending.NoRun,
					ShouldPanic: pending.ShouldPanic,
				})
			}
			state = bufferEmpty
			codeBuf = nil
			pending = nil
		}
	}

	return tests
}

// cleanCodeLine applies the hidden-line rules: a "# " marker is stripped
// and the content kept, a bare "#" or blank line is dropped, anything
// else is kept as written.
func cleanCodeLine(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)

	if rest, ok := strings.CutPrefix(trimmed, "# "); ok {
		return rest, true
	}
	if trimmed == "#" || trimmed == "" {
		return "", false
	}
	return line, true
}

// splitLines splits a text fragment into lines without terminators.
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// lineNumber returns the 0-based line number of a byte offset.
func lineNumber(source []byte, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}
	return bytes.Count(source[:offset], []byte("\n"))
}
