package layout

import (
	"strings"
	"testing"
)

func TestMarkdown_Header(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want []Span
	}{
		{
			name: "level 1",
			line: "# Title",
			want: []Span{{Text: "Title", Style: StyleHeader1}},
		},
		{
			name: "level 2",
			line: "## Section",
			want: []Span{{Text: "Section", Style: StyleHeader2}},
		},
		{
			name: "level 3",
			line: "### Sub",
			want: []Span{{Text: "Sub", Style: StyleHeader3}},
		},
		{
			name: "level 4 is not a header",
			line: "#### Deep",
			want: []Span{{Text: "#### Deep", Style: StylePlain}},
		},
		{
			name: "no space after marker",
			line: "#Title",
			want: []Span{{Text: "#Title", Style: StylePlain}},
		},
		{
			name: "inline styling inside header",
			line: "# A **b** c",
			want: []Span{
				{Text: "A ", Style: StyleHeader1},
				{Text: "b", Style: StyleBold},
				{Text: " c", Style: StyleHeader1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := Markdown([]string{tt.line})
			if res.Total() != 1 {
				t.Fatalf("total = %d, want 1", res.Total())
			}
			assertSpans(t, res.Lines[0].Spans, tt.want)
		})
	}
}

func TestMarkdown_FencedCode(t *testing.T) {
	t.Parallel()

	lines := []string{"```", "code with **markers**", "```"}
	res := Markdown(lines)

	if res.Total() != 3 {
		t.Fatalf("total = %d, want 3", res.Total())
	}
	for i, l := range res.Lines {
		if len(l.Spans) != 1 {
			t.Fatalf("line %d: %d spans, want 1 verbatim span", i, len(l.Spans))
		}
		if l.Spans[0].Style != StyleCode {
			t.Errorf("line %d style = %v, want code", i, l.Spans[0].Style)
		}
		if l.Spans[0].Text != lines[i] {
			t.Errorf("line %d text = %q, want %q verbatim", i, l.Spans[0].Text, lines[i])
		}
	}
}

func TestMarkdown_UnterminatedFence(t *testing.T) {
	t.Parallel()

	// The fence closes implicitly at end of document; no error,
	// everything after the opener is verbatim code.
	res := Markdown([]string{"before", "```", "# not a header"})

	if res.Total() != 3 {
		t.Fatalf("total = %d, want 3", res.Total())
	}
	last := res.Lines[2]
	if len(last.Spans) != 1 || last.Spans[0].Style != StyleCode {
		t.Fatalf("line after open fence = %v, want single code span", last.Spans)
	}
	if last.Spans[0].Text != "# not a header" {
		t.Errorf("fenced text = %q, want verbatim", last.Spans[0].Text)
	}
}

func TestMarkdown_FenceWithInfoStringDoesNotToggle(t *testing.T) {
	t.Parallel()

	// Only a bare ``` toggles; ```go is laid out as a paragraph line.
	res := Markdown([]string{"```go", "# header"})

	if got := res.Lines[1].Spans[0].Style; got != StyleHeader1 {
		t.Errorf("style after non-fence = %v, want header1", got)
	}
}

func TestMarkdown_Blockquote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want []Span
	}{
		{
			name: "marker and space stripped",
			line: "> quoted",
			want: []Span{{Text: "quoted", Style: StyleQuote}},
		},
		{
			name: "marker without space",
			line: ">tight",
			want: []Span{{Text: "tight", Style: StyleQuote}},
		},
		{
			name: "inline styling inside quote",
			line: "> a *b*",
			want: []Span{
				{Text: "a ", Style: StyleQuote},
				{Text: "b", Style: StyleItalic},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := Markdown([]string{tt.line})
			assertSpans(t, res.Lines[0].Spans, tt.want)
		})
	}
}

func TestMarkdown_ListItems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want []Span
	}{
		{
			name: "dash bullet preserved verbatim",
			line: "- item",
			want: []Span{
				{Text: "- ", Style: StylePlain},
				{Text: "item", Style: StylePlain},
			},
		},
		{
			name: "star bullet is not italic",
			line: "* item",
			want: []Span{
				{Text: "* ", Style: StylePlain},
				{Text: "item", Style: StylePlain},
			},
		},
		{
			name: "ordered marker",
			line: "12. item",
			want: []Span{
				{Text: "12. ", Style: StylePlain},
				{Text: "item", Style: StylePlain},
			},
		},
		{
			name: "inline styling after marker",
			line: "- **x**",
			want: []Span{
				{Text: "- ", Style: StylePlain},
				{Text: "x", Style: StyleBold},
			},
		},
		{
			name: "digit without dot is a paragraph",
			line: "12 items",
			want: []Span{{Text: "12 items", Style: StylePlain}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := Markdown([]string{tt.line})
			assertSpans(t, res.Lines[0].Spans, tt.want)
		})
	}
}

func TestMarkdown_EmptyLineSelfReference(t *testing.T) {
	t.Parallel()

	res := Markdown([]string{"# A", "", "b"})

	blank := res.Lines[1]
	if len(blank.Spans) != 0 {
		t.Errorf("blank line spans = %v, want none", blank.Spans)
	}
	if blank.SourceStart != 1 || blank.SourceEnd != 1 {
		t.Errorf("blank line source range = [%d,%d], want [1,1]",
			blank.SourceStart, blank.SourceEnd)
	}
}

func TestMarkdown_LineCountParity(t *testing.T) {
	t.Parallel()

	// The hard invariant behind side-by-side synchronization: for any
	// document the rendered and source layouts have the same total and
	// per-index source correspondence.
	docs := []string{
		"",
		"# Title\n\nA paragraph with **bold**.\n\n- one\n- two\n",
		"```\nfenced\n```\ntrailing",
		"```\nunterminated fence\nstill open",
		"> quote\n>\n> more\n\n1. a\n2. b",
		"plain\r\ntext\r\nwith crlf",
		strings.Repeat("x\n", 100),
	}

	for _, doc := range docs {
		lines := strings.Split(strings.ReplaceAll(doc, "\r\n", "\n"), "\n")

		rendered := Markdown(lines)
		source := Source(lines)

		if rendered.Total() != source.Total() {
			t.Fatalf("parity broken: rendered %d, source %d, doc %q",
				rendered.Total(), source.Total(), doc)
		}
		for i := range rendered.Lines {
			r, s := rendered.Lines[i], source.Lines[i]
			if r.SourceStart != s.SourceStart || r.SourceEnd != s.SourceEnd {
				t.Errorf("line %d source range rendered [%d,%d] != source [%d,%d]",
					i, r.SourceStart, r.SourceEnd, s.SourceStart, s.SourceEnd)
			}
		}
	}
}
