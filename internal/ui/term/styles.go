// Package term is the interactive presenter: it owns the tcell screen,
// maps key events to pager actions, and paints the visible windows the
// session exposes. All document semantics live in pkg/pager and
// pkg/layout; this package only turns style tags into terminal
// attributes and characters into cells.
package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/yaklabco/gomdless/pkg/layout"
)

// spanStyle converts a span style tag into terminal attributes.
func spanStyle(st layout.Style) tcell.Style {
	base := tcell.StyleDefault
	switch st {
	case layout.StyleBold:
		return base.Bold(true)
	case layout.StyleItalic:
		return base.Italic(true)
	case layout.StyleHeader1:
		return base.Bold(true).Foreground(tcell.ColorBlue)
	case layout.StyleHeader2:
		return base.Bold(true).Foreground(tcell.ColorAqua)
	case layout.StyleHeader3:
		return base.Bold(true).Foreground(tcell.ColorTeal)
	case layout.StyleCode:
		return base.Foreground(tcell.ColorYellow)
	case layout.StyleQuote:
		return base.Foreground(tcell.ColorGreen).Italic(true)
	default:
		return base
	}
}

// Chrome styles for the header and footer bars.
//
//nolint:gochecknoglobals // Read-only style values.
var (
	headerBarStyle = tcell.StyleDefault.Reverse(true).Bold(true)
	footerBarStyle = tcell.StyleDefault.Reverse(true)
	dividerStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)
