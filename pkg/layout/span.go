// Package layout converts raw document text into positionally addressable
// display lines for each view of the pager.
//
// Two engines share the package: the markdown engine, which applies
// block-level markdown rules and inline styling, and the source engine,
// which maps every raw line through verbatim. Both produce exactly one
// display line per logical line, which is what keeps the rendered and
// source views scroll-synchronized without a separate mapping table.
package layout

import "fmt"

// Style identifies the presentation of a span of text.
type Style uint8

const (
	// StylePlain is unstyled text.
	StylePlain Style = iota

	// StyleBold is strong emphasis (**text**).
	StyleBold

	// StyleItalic is emphasis (*text*).
	StyleItalic

	// StyleHeader1 through StyleHeader3 are ATX headings.
	StyleHeader1
	StyleHeader2
	StyleHeader3

	// StyleCode is fenced code block content, including the fence lines.
	StyleCode

	// StyleQuote is blockquote content.
	StyleQuote
)

// String returns a human-readable name for the style.
func (s Style) String() string {
	switch s {
	case StylePlain:
		return "plain"
	case StyleBold:
		return "bold"
	case StyleItalic:
		return "italic"
	case StyleHeader1:
		return "header1"
	case StyleHeader2:
		return "header2"
	case StyleHeader3:
		return "header3"
	case StyleCode:
		return "code"
	case StyleQuote:
		return "quote"
	default:
		return fmt.Sprintf("style(%d)", uint8(s))
	}
}

// HeaderStyle returns the style for an ATX heading level.
// Levels outside 1-3 are clamped into range.
func HeaderStyle(level int) Style {
	switch {
	case level <= 1:
		return StyleHeader1
	case level == 2:
		return StyleHeader2
	default:
		return StyleHeader3
	}
}

// HeaderLevel returns the heading level (1-3) for a header style,
// or 0 for non-header styles.
func (s Style) HeaderLevel() int {
	switch s {
	case StyleHeader1:
		return 1
	case StyleHeader2:
		return 2
	case StyleHeader3:
		return 3
	default:
		return 0
	}
}

// Span is a contiguous run of identically styled text within a display line.
type Span struct {
	Text  string
	Style Style
}

// Line is one terminal row of styled text together with the inclusive
// range of logical source lines it was produced from. Spans are ordered
// left to right and cover the line text with no gaps or overlaps.
type Line struct {
	Spans []Span

	// SourceStart and SourceEnd are 0-based logical line indices.
	SourceStart int
	SourceEnd   int
}

// Text returns the concatenated text of all spans.
func (l Line) Text() string {
	if len(l.Spans) == 0 {
		return ""
	}
	if len(l.Spans) == 1 {
		return l.Spans[0].Text
	}
	total := 0
	for _, sp := range l.Spans {
		total += len(sp.Text)
	}
	buf := make([]byte, 0, total)
	for _, sp := range l.Spans {
		buf = append(buf, sp.Text...)
	}
	return string(buf)
}

// Result is the full display-line sequence for one view of a document.
// It is computed once per document load and never mutated afterwards.
type Result struct {
	Lines []Line
}

// Total returns the number of display lines.
func (r *Result) Total() int {
	if r == nil {
		return 0
	}
	return len(r.Lines)
}

// Window returns the slice of display lines visible at the given scroll
// offset for a viewport of the given height. Out-of-range requests are
// clamped to the document bounds.
func (r *Result) Window(offset, height int) []Line {
	if r == nil || height <= 0 {
		return nil
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(r.Lines) {
		return nil
	}
	end := offset + height
	if end > len(r.Lines) {
		end = len(r.Lines)
	}
	return r.Lines[offset:end]
}
