package term

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/gomdless/pkg/layout"
	"github.com/yaklabco/gomdless/pkg/outline"
	"github.com/yaklabco/gomdless/pkg/pager"
)

// chromeRows is the number of screen rows taken by the header and
// footer bars.
const chromeRows = 2

// draw repaints the whole screen from the session state.
func (u *UI) draw() {
	u.screen.Clear()

	width, height := u.screen.Size()
	contentHeight := height - chromeRows
	if contentHeight < 1 {
		contentHeight = 1
	}

	u.drawHeader(width)

	if u.showHelp {
		u.drawHelp(width, contentHeight)
	} else if u.session.Mode() == pager.ModeSideBySide {
		u.drawSplit(width, contentHeight)
	} else {
		primary, _ := u.session.Windows()
		drawPane(u.screen, 0, 1, width, primary.Lines)
	}

	u.drawFooter(width, height)

	u.screen.Show()
}

// drawHeader paints the top bar: tool name, file path, view mode.
func (u *UI) drawHeader(width int) {
	title := fmt.Sprintf(" gomdless  %s  [%s]", u.session.Document().Path(), u.session.Mode())
	drawBar(u.screen, 0, width, title, headerBarStyle)
}

// drawFooter paints the bottom bar: key hints, current section, and the
// less-style position indicator.
func (u *UI) drawFooter(width, height int) {
	hints := " TAB view | arrows scroll | q quit | ? help"
	if u.showHelp {
		hints = " any key to continue"
	}

	position := fmt.Sprintf("%d%%", u.session.Percent())
	switch {
	case u.session.AtTop() && u.session.AtBottom():
		position = "ALL"
	case u.session.AtTop():
		position = "TOP"
	case u.session.AtBottom():
		position = "BOT"
	}

	if section := outline.Locate(u.sections, u.session.TopLine()); section != nil {
		position = section.Title + "  " + position
	}

	bar := hints
	gap := width - runewidth.StringWidth(hints) - runewidth.StringWidth(position) - 1
	if gap > 0 {
		bar += strings.Repeat(" ", gap) + position
	}

	drawBar(u.screen, height-1, width, bar, footerBarStyle)
}

// drawSplit paints the side-by-side view: the rendered pane at its
// fixed width on the left, a divider, and the source pane on the right.
func (u *UI) drawSplit(width, contentHeight int) {
	primary, secondary := u.session.Windows()

	left := u.splitWidth
	if left > width-2 {
		left = width - 2
	}
	if left < 1 {
		left = 1
	}

	drawPane(u.screen, 0, 1, left, primary.Lines)

	for y := 1; y <= contentHeight; y++ {
		u.screen.SetContent(left, y, '│', nil, dividerStyle)
	}

	if secondary != nil && width-left-1 > 0 {
		drawPane(u.screen, left+1, 1, width-left-1, secondary.Lines)
	}
}

// drawPane paints one window of display lines into a rectangle starting
// at (x, top). Lines wider than the pane are truncated, never wrapped,
// preserving the one-row-per-logical-line alignment.
func drawPane(screen tcell.Screen, x, top, width int, lines []layout.Line) {
	for row, line := range lines {
		drawLine(screen, x, top+row, layout.Truncate(line, width))
	}
}

// drawLine paints the spans of a single display line.
func drawLine(screen tcell.Screen, x, y int, line layout.Line) {
	for _, sp := range line.Spans {
		x = drawText(screen, x, y, spanStyle(sp.Style), sp.Text)
	}
}

// drawText paints a string and returns the x position after it.
func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) int {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

// drawBar paints a full-width chrome bar with the given text.
func drawBar(screen tcell.Screen, y, width int, text string, style tcell.Style) {
	x := drawText(screen, 0, y, style, runewidth.Truncate(text, width, ""))
	for ; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}
