package extract

import (
	"strings"
	"unicode"
)

// BlockFlags is the classification of one fenced block's info string.
type BlockFlags struct {
	Runnable    bool
	ShouldPanic bool
	Ignore      bool
	NoRun       bool
}

// ParseBlockInfo classifies a fence info string such as "rust,should_panic".
// Tokens are split on any character that is not alphanumeric, '_' or '-'.
// A block is runnable if the "rust" token was seen and either no
// unrecognized token appeared or at least one recognized token did, so
// "rust,ignore" counts while "python" alone does not.
func ParseBlockInfo(info string) BlockFlags {
	tokens := strings.FieldsFunc(info, func(r rune) bool {
		return !(r == '_' || r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r))
	})

	var flags BlockFlags
	var seenRustTags, seenOtherTags bool

	for _, token := range tokens {
		switch token {
		case "rust":
			flags.Runnable = true
			seenRustTags = true
		case "should_panic":
			flags.ShouldPanic = true
			seenRustTags = true
		case "ignore":
			flags.Ignore = true
			seenRustTags = true
		case "no_run":
			flags.NoRun = true
			seenRustTags = true
		default:
			seenOtherTags = true
		}
	}

	flags.Runnable = flags.Runnable && (!seenOtherTags || seenRustTags)

	return flags
}
