package layout

import "github.com/mattn/go-runewidth"

// Truncate cuts a display line to at most width terminal columns,
// re-slicing spans at the cut point. It never wraps; the side-by-side
// view relies on truncation to keep one display line per logical line.
// Width is measured in display cells, so wide runes count double.
func Truncate(l Line, width int) Line {
	if width <= 0 {
		return Line{SourceStart: l.SourceStart, SourceEnd: l.SourceEnd}
	}

	out := Line{SourceStart: l.SourceStart, SourceEnd: l.SourceEnd}
	remaining := width

	for _, sp := range l.Spans {
		w := runewidth.StringWidth(sp.Text)
		if w <= remaining {
			out.Spans = append(out.Spans, sp)
			remaining -= w
			continue
		}
		cut := runewidth.Truncate(sp.Text, remaining, "")
		if cut != "" {
			out.Spans = append(out.Spans, Span{Text: cut, Style: sp.Style})
		}
		return out
	}

	return out
}
