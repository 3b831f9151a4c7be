// Package pretty renders styled document lines to a plain writer. It is
// the non-interactive output path: when stdout is not a terminal the
// pager prints the document once instead of opening a full screen.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/yaklabco/gomdless/pkg/layout"
)

// Styles maps span styles to Lipgloss renderers.
type Styles struct {
	Plain   lipgloss.Style
	Bold    lipgloss.Style
	Italic  lipgloss.Style
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Header3 lipgloss.Style
	Code    lipgloss.Style
	Quote   lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Plain:   lipgloss.NewStyle(),
		Bold:    lipgloss.NewStyle().Bold(true),
		Italic:  lipgloss.NewStyle().Italic(true),
		Header1: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Header2: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Header3: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		Code:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Quote:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Italic(true),
	}
}

// newNoColorStyles creates styles with no formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Plain:   plain,
		Bold:    plain,
		Italic:  plain,
		Header1: plain,
		Header2: plain,
		Header3: plain,
		Code:    plain,
		Quote:   plain,
	}
}

// For returns the renderer for a span style.
func (s *Styles) For(st layout.Style) lipgloss.Style {
	switch st {
	case layout.StyleBold:
		return s.Bold
	case layout.StyleItalic:
		return s.Italic
	case layout.StyleHeader1:
		return s.Header1
	case layout.StyleHeader2:
		return s.Header2
	case layout.StyleHeader3:
		return s.Header3
	case layout.StyleCode:
		return s.Code
	case layout.StyleQuote:
		return s.Quote
	default:
		return s.Plain
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
