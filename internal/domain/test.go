package domain

// Test represents a single runnable code snippet extracted from a
// markdown document.
type Test struct {
	Name        string   // Derived from (DocPath, Section, StartLine)
	Text        []string // Program body lines, joined in order to form the program
	DocPath     string   // Markdown document the snippet came from
	Section     string   // Sanitized nearest H1/H2 heading, "" if none seen
	StartLine   int      // 0-based line of the first content line of the block
	Ignore      bool     // Never executed, only counted
	NoRun       bool     // Compiled but not run
	ShouldPanic bool     // A runtime failure is the passing result
}
