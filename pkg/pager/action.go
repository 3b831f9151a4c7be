package pager

import "fmt"

// Action is one of the closed set of abstract navigation actions the
// pager accepts. Mapping physical keys to actions happens outside this
// package; the pager is agnostic to key bindings.
type Action uint8

const (
	// ActionNone is an unmapped input.
	ActionNone Action = iota

	ActionScrollUp
	ActionScrollDown
	ActionPageUp
	ActionPageDown
	ActionHome
	ActionEnd
	ActionCycleView
	ActionShowHelp
	ActionQuit
)

// String returns the action name, mainly for debug logging.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionScrollUp:
		return "scroll-up"
	case ActionScrollDown:
		return "scroll-down"
	case ActionPageUp:
		return "page-up"
	case ActionPageDown:
		return "page-down"
	case ActionHome:
		return "home"
	case ActionEnd:
		return "end"
	case ActionCycleView:
		return "cycle-view"
	case ActionShowHelp:
		return "show-help"
	case ActionQuit:
		return "quit"
	default:
		return fmt.Sprintf("action(%d)", uint8(a))
	}
}
