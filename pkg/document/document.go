// Package document provides the raw text document the pager displays:
// loading, line splitting, and markdown detection.
package document

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Document is an immutable sequence of logical source lines, 0-indexed.
// It is created once at session start and never modified afterwards.
type Document struct {
	path     string
	lines    []string
	content  []byte
	markdown bool
}

// Load reads the file at path and builds a Document.
func Load(ctx context.Context, path string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load cancelled: %w", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return New(path, content), nil
}

// New builds a Document from already-loaded content.
// Both LF and CRLF line endings are handled.
func New(path string, content []byte) *Document {
	return &Document{
		path:     path,
		lines:    splitLines(content),
		content:  content,
		markdown: IsMarkdown(path, content),
	}
}

// Path returns the file path the document was loaded from.
func (d *Document) Path() string { return d.path }

// Lines returns the logical source lines. Callers must not modify the
// returned slice.
func (d *Document) Lines() []string { return d.lines }

// LineCount returns the number of logical lines.
func (d *Document) LineCount() int { return len(d.lines) }

// Content returns the raw file content.
func (d *Document) Content() []byte { return d.content }

// Markdown reports whether the document was detected as markdown.
// Non-markdown documents never get a rendered layout.
func (d *Document) Markdown() bool { return d.markdown }

// splitLines splits content into logical lines. A trailing newline does
// not produce a final empty line, matching how a file's lines are
// counted by the rest of the pager.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}

	s := string(content)
	s = strings.TrimSuffix(s, "\n")

	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
