package layout

// Source lays out the raw view of a document: exactly one display line
// per raw line, a single plain span containing the text verbatim, each
// line referencing its own logical index. It has no failure modes.
func Source(lines []string) *Result {
	out := make([]Line, len(lines))
	for i, raw := range lines {
		out[i] = Line{SourceStart: i, SourceEnd: i}
		if raw != "" {
			out[i].Spans = []Span{{Text: raw, Style: StylePlain}}
		}
	}
	return &Result{Lines: out}
}
