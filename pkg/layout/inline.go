package layout

import "strings"

// StyleInline splits one logical line into styled spans. Matched
// delimiter pairs are consumed; all other characters pass through
// unchanged, in order. Inside an open code fence the whole line is a
// single verbatim Code span and no delimiter scanning happens.
//
// Delimiters are tried left to right, ** before *, first match wins. An
// opening delimiter with no closing partner before end of line degrades
// to plain text for the remainder; there is no cross-line matching.
func StyleInline(line string, insideFence bool) []Span {
	if insideFence {
		if line == "" {
			return nil
		}
		return []Span{{Text: line, Style: StyleCode}}
	}
	return styleSpans(line, StylePlain)
}

// styleSpans scans for bold and italic delimiters, emitting unmatched
// text with the given base style. Header and blockquote lines pass their
// block style as base so their plain runs stay tagged.
func styleSpans(line string, base Style) []Span {
	if line == "" {
		return nil
	}

	var spans []Span
	plainStart := 0
	i := 0

	flushPlain := func(end int) {
		if end > plainStart {
			spans = append(spans, Span{Text: line[plainStart:end], Style: base})
		}
	}

	for i < len(line) {
		if line[i] != '*' {
			i++
			continue
		}

		if strings.HasPrefix(line[i:], "**") {
			end := strings.Index(line[i+2:], "**")
			if end < 0 {
				// Unterminated bold: the rest of the line is plain.
				break
			}
			flushPlain(i)
			spans = append(spans, Span{Text: line[i+2 : i+2+end], Style: StyleBold})
			i += end + 4
			plainStart = i
			continue
		}

		end := strings.IndexByte(line[i+1:], '*')
		if end < 0 {
			// Unterminated italic.
			break
		}
		flushPlain(i)
		spans = append(spans, Span{Text: line[i+1 : i+1+end], Style: StyleItalic})
		i += end + 2
		plainStart = i
	}

	flushPlain(len(line))
	return spans
}
