package term

import "github.com/yaklabco/gomdless/pkg/layout"

// helpLines is the static help screen content.
//
//nolint:gochecknoglobals // Read-only content.
var helpLines = []string{
	"gomdless - a less-like viewer with markdown support",
	"",
	"Keyboard shortcuts:",
	"  TAB            cycle view mode (rendered / source / side-by-side)",
	"  Up/Down, j/k   scroll one line",
	"  PgUp/PgDn      scroll ten lines",
	"  Space/f, b     scroll ten lines",
	"  Home/End, g/G  go to beginning / end of file",
	"  q, Esc         quit",
	"  ?, h           show this help",
	"",
	"View modes (markdown files only):",
	"  rendered       styled markdown",
	"  source         raw text",
	"  side-by-side   both, scroll-synchronized",
	"",
	"Non-markdown files always show the source view.",
	"",
	"Press any key to continue...",
}

// drawHelp paints the help screen over the content area.
func (u *UI) drawHelp(width, contentHeight int) {
	for i, line := range helpLines {
		if i >= contentHeight {
			break
		}
		drawText(u.screen, 1, 1+i, spanStyle(layout.StylePlain), truncateTo(line, width-1))
	}
}

func truncateTo(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if len(s) <= width {
		return s
	}
	return s[:width]
}
