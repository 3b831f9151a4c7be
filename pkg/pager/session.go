package pager

import (
	"github.com/yaklabco/gomdless/pkg/document"
	"github.com/yaklabco/gomdless/pkg/layout"
)

// Session is the viewing state of one document for the lifetime of the
// pager. It owns the cached layouts, one scroll state per pane, and the
// current view mode. It is driven entirely by the single event loop;
// nothing here is safe for concurrent use and nothing needs to be.
type Session struct {
	doc      *document.Document
	source   *layout.Result
	rendered *layout.Result // nil for non-markdown documents

	mode     Mode
	srcPane  *Scroll
	rendPane *Scroll // nil when rendered is nil
}

// Window is the visible slice of one pane plus the position metadata the
// presenter needs for chrome.
type Window struct {
	Lines  []layout.Line
	Offset int
	Total  int
}

// NewSession lays out the document for every reachable view and starts
// at the mode appropriate for the document type: rendered for markdown,
// source for everything else.
func NewSession(doc *document.Document, height int) *Session {
	s := &Session{
		doc:     doc,
		source:  layout.Source(doc.Lines()),
		mode:    ModeSource,
		srcPane: NewScroll(doc.LineCount(), height),
	}

	if doc.Markdown() {
		s.rendered = layout.Markdown(doc.Lines())
		s.rendPane = NewScroll(s.rendered.Total(), height)
		s.mode = ModeRendered
	}

	return s
}

// Document returns the raw document being viewed.
func (s *Session) Document() *document.Document { return s.doc }

// Mode returns the current view mode.
func (s *Session) Mode() Mode { return s.mode }

// HasRendered reports whether a markdown layout exists. Without one the
// rendered and side-by-side modes are unreachable.
func (s *Session) HasRendered() bool { return s.rendered != nil }

// CycleView advances to the next view mode. For documents without a
// rendered layout it is a silent no-op and the mode stays source.
func (s *Session) CycleView() {
	if !s.HasRendered() {
		return
	}
	s.setMode(s.mode.Next())
}

// SetMode switches directly to a mode, subject to the same capability
// guard as CycleView. Used for the initial mode from config or flags.
func (s *Session) SetMode(m Mode) {
	if !s.HasRendered() && m != ModeSource {
		return
	}
	s.setMode(m)
}

func (s *Session) setMode(next Mode) {
	if next == ModeSideBySide && s.mode != ModeSideBySide {
		// Both panes pick up the active pane's offset; the layouts
		// have identical line counts, so the value is valid in both.
		offset := s.activePane().Offset()
		s.srcPane.SetOffset(offset)
		s.rendPane.SetOffset(offset)
	}
	s.mode = next
}

// Apply performs a navigation action. Quit and help are presentation
// concerns and are ignored here. In side-by-side mode every scroll
// action is applied identically to both panes, keeping their offsets
// numerically equal at all times.
func (s *Session) Apply(a Action) {
	switch a {
	case ActionCycleView:
		s.CycleView()
	case ActionScrollUp:
		s.eachActive(func(p *Scroll) { p.By(-1) })
	case ActionScrollDown:
		s.eachActive(func(p *Scroll) { p.By(1) })
	case ActionPageUp:
		s.eachActive(func(p *Scroll) { p.Page(-1) })
	case ActionPageDown:
		s.eachActive(func(p *Scroll) { p.Page(1) })
	case ActionHome:
		s.eachActive(func(p *Scroll) { p.Home() })
	case ActionEnd:
		s.eachActive(func(p *Scroll) { p.End() })
	}
}

// Resize updates the viewport height of every pane, re-clamping offsets.
func (s *Session) Resize(height int) {
	s.srcPane.Resize(height)
	if s.rendPane != nil {
		s.rendPane.Resize(height)
	}
}

// SetPageLines overrides the page scroll distance on every pane.
func (s *Session) SetPageLines(n int) {
	s.srcPane.SetPageLines(n)
	if s.rendPane != nil {
		s.rendPane.SetPageLines(n)
	}
}

// Windows returns the visible slice for the active view. In side-by-side
// mode the second window is the source pane; otherwise it is nil.
func (s *Session) Windows() (primary Window, secondary *Window) {
	switch s.mode {
	case ModeSideBySide:
		secondary = &Window{
			Lines:  s.source.Window(s.srcPane.Offset(), s.srcPane.Height()),
			Offset: s.srcPane.Offset(),
			Total:  s.source.Total(),
		}
		primary = Window{
			Lines:  s.rendered.Window(s.rendPane.Offset(), s.rendPane.Height()),
			Offset: s.rendPane.Offset(),
			Total:  s.rendered.Total(),
		}
	case ModeRendered:
		primary = Window{
			Lines:  s.rendered.Window(s.rendPane.Offset(), s.rendPane.Height()),
			Offset: s.rendPane.Offset(),
			Total:  s.rendered.Total(),
		}
	default:
		primary = Window{
			Lines:  s.source.Window(s.srcPane.Offset(), s.srcPane.Height()),
			Offset: s.srcPane.Offset(),
			Total:  s.source.Total(),
		}
	}
	return primary, secondary
}

// TopLine returns the logical line at the top of the active pane. The
// one-to-one layout policy makes this the scroll offset itself.
func (s *Session) TopLine() int {
	return s.activePane().Offset()
}

// Percent returns the scroll position of the active pane as 0-100.
func (s *Session) Percent() int {
	return s.activePane().Percent()
}

// AtTop and AtBottom report the active pane's position for the
// less-style TOP/BOT indicator.
func (s *Session) AtTop() bool { return s.activePane().Offset() == 0 }

// AtBottom reports whether the active pane cannot scroll further down.
func (s *Session) AtBottom() bool {
	p := s.activePane()
	return p.Offset() >= p.maxOffset()
}

// activePane returns the pane whose offset defines the viewport: the
// rendered pane in rendered and side-by-side modes, otherwise source.
func (s *Session) activePane() *Scroll {
	if s.mode != ModeSource && s.rendPane != nil {
		return s.rendPane
	}
	return s.srcPane
}

// eachActive applies fn to every pane the current mode displays.
func (s *Session) eachActive(fn func(*Scroll)) {
	switch s.mode {
	case ModeSideBySide:
		fn(s.rendPane)
		fn(s.srcPane)
	case ModeRendered:
		fn(s.rendPane)
	default:
		fn(s.srcPane)
	}
}
