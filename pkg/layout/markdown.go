package layout

import "strings"

// maxHeaderLevel is the deepest ATX heading the pager styles distinctly.
const maxHeaderLevel = 3

// blockState is the block-level scan state threaded through the forward
// pass over the document. It is a plain accumulator, never shared.
type blockState struct {
	inFence bool
}

// Markdown lays out the rendered view of a document. It performs a single
// forward scan applying block-level markdown rules and delegating inline
// styling to StyleInline. Every raw line produces exactly one display
// line: the engine never wraps or reflows, so the rendered layout always
// has the same total line count as the source layout. That parity is the
// invariant that makes synchronized side-by-side scrolling possible.
//
// An unterminated fence closes implicitly at end of document.
func Markdown(lines []string) *Result {
	out := make([]Line, 0, len(lines))
	var st blockState

	for i, raw := range lines {
		out = append(out, layoutLine(raw, i, &st))
	}

	return &Result{Lines: out}
}

// layoutLine classifies one raw line and produces its display line.
func layoutLine(raw string, idx int, st *blockState) Line {
	line := Line{SourceStart: idx, SourceEnd: idx}

	if st.inFence {
		if isFenceLine(raw) {
			st.inFence = false
		}
		line.Spans = StyleInline(raw, true)
		return line
	}

	switch {
	case isFenceLine(raw):
		st.inFence = true
		line.Spans = StyleInline(raw, true)

	case raw == "":
		// Empty display line pointing at its own index, never at a
		// neighbor, to preserve one-to-one line correspondence.

	default:
		line.Spans = blockSpans(raw)
	}

	return line
}

// blockSpans applies line-start block rules (header, blockquote, list)
// and falls through to a plain paragraph line.
func blockSpans(raw string) []Span {
	if level, rest, ok := headerLine(raw); ok {
		return styleSpans(rest, HeaderStyle(level))
	}

	if rest, ok := quoteLine(raw); ok {
		if rest == "" {
			return []Span{{Text: "", Style: StyleQuote}}
		}
		return styleSpans(rest, StyleQuote)
	}

	if marker, rest, ok := listLine(raw); ok {
		// The marker is preserved verbatim so it is never mistaken
		// for an emphasis delimiter.
		spans := []Span{{Text: marker, Style: StylePlain}}
		return append(spans, styleSpans(rest, StylePlain)...)
	}

	return styleSpans(raw, StylePlain)
}

// isFenceLine reports whether the line toggles a fenced code block:
// three backticks alone on the line, trailing whitespace ignored.
func isFenceLine(raw string) bool {
	return strings.TrimRight(raw, " \t") == "```"
}

// headerLine parses an ATX heading of level 1-3: leading # characters
// followed by a space. The marker is stripped from the returned text.
func headerLine(raw string) (level int, rest string, ok bool) {
	for level < len(raw) && raw[level] == '#' {
		level++
	}
	if level < 1 || level > maxHeaderLevel {
		return 0, "", false
	}
	if level >= len(raw) || raw[level] != ' ' {
		return 0, "", false
	}
	return level, raw[level+1:], true
}

// quoteLine parses a blockquote line, stripping the > marker and one
// optional following space.
func quoteLine(raw string) (rest string, ok bool) {
	if !strings.HasPrefix(raw, ">") {
		return "", false
	}
	rest = raw[1:]
	if strings.HasPrefix(rest, " ") {
		rest = rest[1:]
	}
	return rest, true
}

// listLine parses a bullet (- or *) or ordered (1.) list marker followed
// by a space. The returned marker includes the trailing space.
func listLine(raw string) (marker, rest string, ok bool) {
	if len(raw) >= 2 && (raw[0] == '-' || raw[0] == '*') && raw[1] == ' ' {
		return raw[:2], raw[2:], true
	}

	n := 0
	for n < len(raw) && raw[n] >= '0' && raw[n] <= '9' {
		n++
	}
	if n > 0 && n+1 < len(raw) && raw[n] == '.' && raw[n+1] == ' ' {
		return raw[:n+2], raw[n+2:], true
	}

	return "", "", false
}
