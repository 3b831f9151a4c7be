// Package pager owns the viewing state of one document: the current view
// mode, the scroll position of each pane, and the translation of abstract
// navigation actions into new positions. It produces visible windows of
// display lines; painting them is the presenter's job.
package pager

import "fmt"

// Mode is the active presentation of the document.
type Mode uint8

const (
	// ModeRendered shows the markdown layout.
	ModeRendered Mode = iota

	// ModeSource shows the raw text layout.
	ModeSource

	// ModeSideBySide shows rendered and source panes with a single
	// logical scroll offset.
	ModeSideBySide
)

// String returns the mode name shown in the pager chrome.
func (m Mode) String() string {
	switch m {
	case ModeRendered:
		return "rendered"
	case ModeSource:
		return "source"
	case ModeSideBySide:
		return "side-by-side"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// Next returns the cyclic successor: rendered, source, side-by-side,
// back to rendered. It is total; guarding against documents that have no
// rendered layout happens in Session.CycleView, not here.
func (m Mode) Next() Mode {
	switch m {
	case ModeRendered:
		return ModeSource
	case ModeSource:
		return ModeSideBySide
	default:
		return ModeRendered
	}
}

// ParseMode converts a config or flag value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "rendered":
		return ModeRendered, nil
	case "source":
		return ModeSource, nil
	case "split", "side-by-side":
		return ModeSideBySide, nil
	default:
		return ModeRendered, fmt.Errorf("unknown view mode %q", s)
	}
}
