package extract

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// EventKind identifies the type of a structural document event.
type EventKind int

const (
	EventHeadingStart EventKind = iota
	EventHeadingEnd
	EventCodeBlockStart
	EventCodeBlockEnd
	EventText
)

// Event is one structural event produced by scanning a document.
// Offset is the byte offset of the event's content within the source.
type Event struct {
	Kind   EventKind
	Level  int    // heading level, for heading events
	Info   string // fence info string, for code block start events
	Text   string // fragment content, for text events
	Offset int
}

// Scanner turns raw markdown into a flat stream of structural events.
// Only headings, fenced code blocks and text fragments are reported;
// nothing else in the document matters here.
type Scanner struct {
	md goldmark.Markdown
}

// NewScanner creates a new Scanner
func NewScanner() *Scanner {
	return &Scanner{md: goldmark.New()}
}

// Events parses source and returns its structural events in document order.
func (s *Scanner) Events(source []byte) []Event {
	doc := s.md.Parser().Parse(text.NewReader(source))

	var events []Event
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Heading:
			if entering {
				events = append(events, Event{Kind: EventHeadingStart, Level: node.Level, Offset: nodeOffset(node)})
			} else {
				events = append(events, Event{Kind: EventHeadingEnd, Level: node.Level})
			}
		case *ast.FencedCodeBlock:
			if entering {
				var info string
				if node.Info != nil {
					info = string(node.Info.Segment.Value(source))
				}
				events = append(events, Event{Kind: EventCodeBlockStart, Info: info, Offset: nodeOffset(node)})

				// Fenced blocks hold their content as raw line segments,
				// not child nodes, so text events are emitted here.
				lines := node.Lines()
				for i := 0; i < lines.Len(); i++ {
					seg := lines.At(i)
					events = append(events, Event{Kind: EventText, Text: string(seg.Value(source)), Offset: seg.Start})
				}
			} else {
				events = append(events, Event{Kind: EventCodeBlockEnd})
			}
		case *ast.Text:
			if entering {
				events = append(events, Event{Kind: EventText, Text: string(node.Segment.Value(source)), Offset: node.Segment.Start})
			}
		}
		return ast.WalkContinue, nil
	})

	return events
}

// nodeOffset returns the byte offset of a block node's first content line.
func nodeOffset(n ast.Node) int {
	if lines := n.Lines(); lines.Len() > 0 {
		return lines.At(0).Start
	}
	return 0
}
