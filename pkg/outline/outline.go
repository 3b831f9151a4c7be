// Package outline extracts the heading structure of a markdown document.
// The pager uses it to show the section under the top of the viewport in
// the footer while scrolling.
package outline

import (
	"sort"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Section is one heading with its position in the document.
type Section struct {
	Title string
	Level int

	// Line is the 0-based logical line of the heading.
	Line int
}

// Extract parses the document with goldmark and returns its headings in
// document order. Content that produces no headings yields nil.
func Extract(content []byte) []Section {
	if len(content) == 0 {
		return nil
	}

	md := goldmark.New()
	reader := text.NewReader(content)
	root := md.Parser().Parse(reader)

	starts := lineStarts(content)

	var sections []Section
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if heading.Lines().Len() == 0 {
			return ast.WalkContinue, nil
		}

		seg := heading.Lines().At(0)
		sections = append(sections, Section{
			Title: string(heading.Text(content)),
			Level: heading.Level,
			Line:  lineAt(starts, seg.Start),
		})
		return ast.WalkContinue, nil
	})

	return sections
}

// Locate returns the innermost section containing the given logical
// line: the last heading at or before it. Nil when the line precedes
// every heading or there are no headings.
func Locate(sections []Section, line int) *Section {
	idx := sort.Search(len(sections), func(i int) bool {
		return sections[i].Line > line
	})
	if idx == 0 {
		return nil
	}
	return &sections[idx-1]
}

// lineStarts returns the byte offset of every line start, for mapping
// node offsets back to logical lines.
func lineStarts(content []byte) []int {
	starts := []int{0}
	for i, b := range content {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// lineAt converts a byte offset to a 0-based line index by binary search
// over the line start table.
func lineAt(starts []int, offset int) int {
	idx := sort.Search(len(starts), func(i int) bool {
		return starts[i] > offset
	})
	return idx - 1
}
