package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/yaklabco/gomdless/pkg/pager"
)

// ActionFor maps a key event to a pager action. The bindings follow
// less where the two overlap: arrows and j/k scroll, space/b page,
// g/G jump, q quits, Tab cycles the view, ? shows help.
func ActionFor(ev *tcell.EventKey) pager.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return pager.ActionScrollUp
	case tcell.KeyDown:
		return pager.ActionScrollDown
	case tcell.KeyPgUp:
		return pager.ActionPageUp
	case tcell.KeyPgDn:
		return pager.ActionPageDown
	case tcell.KeyHome:
		return pager.ActionHome
	case tcell.KeyEnd:
		return pager.ActionEnd
	case tcell.KeyTab:
		return pager.ActionCycleView
	case tcell.KeyEscape:
		return pager.ActionQuit
	case tcell.KeyRune:
		return actionForRune(ev.Rune())
	default:
		return pager.ActionNone
	}
}

func actionForRune(r rune) pager.Action {
	switch r {
	case 'k':
		return pager.ActionScrollUp
	case 'j':
		return pager.ActionScrollDown
	case 'b':
		return pager.ActionPageUp
	case ' ', 'f':
		return pager.ActionPageDown
	case 'g':
		return pager.ActionHome
	case 'G':
		return pager.ActionEnd
	case 'q':
		return pager.ActionQuit
	case '?', 'h':
		return pager.ActionShowHelp
	default:
		return pager.ActionNone
	}
}
