package term

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/yaklabco/gomdless/internal/logging"
	"github.com/yaklabco/gomdless/pkg/outline"
	"github.com/yaklabco/gomdless/pkg/pager"
)

// Options configures the interactive presenter.
type Options struct {
	// SplitWidth is the rendered pane width in side-by-side view.
	SplitWidth int

	// Sections is the document outline shown in the footer.
	Sections []outline.Section

	// Logger receives event-loop debug logging. Nil disables it.
	Logger *log.Logger
}

// UI drives one pager session on a tcell screen.
type UI struct {
	screen     tcell.Screen
	session    *pager.Session
	sections   []outline.Section
	splitWidth int
	logger     *log.Logger
	showHelp   bool
}

// Run opens the terminal in full-screen mode and blocks until the user
// quits. The event loop is strictly sequential: wait for an event,
// apply a pure state transition, repaint.
func Run(session *pager.Session, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	u := &UI{
		screen:     screen,
		session:    session,
		sections:   opts.Sections,
		splitWidth: opts.SplitWidth,
		logger:     opts.Logger,
	}
	if u.splitWidth < 1 {
		u.splitWidth = 50
	}

	u.resize()
	return u.loop()
}

// loop is the single event loop. No other goroutine touches the session.
func (u *UI) loop() error {
	for {
		u.draw()

		switch ev := u.screen.PollEvent().(type) {
		case *tcell.EventResize:
			u.screen.Sync()
			u.resize()

		case *tcell.EventKey:
			if u.showHelp {
				// Any key leaves the help screen.
				u.showHelp = false
				continue
			}

			action := ActionFor(ev)
			u.debug("key event", logging.FieldAction, action.String())

			switch action {
			case pager.ActionQuit:
				return nil
			case pager.ActionShowHelp:
				u.showHelp = true
			default:
				u.session.Apply(action)
			}
		}
	}
}

// resize propagates the current content height into the session,
// re-clamping scroll offsets.
func (u *UI) resize() {
	width, height := u.screen.Size()
	contentHeight := height - chromeRows
	if contentHeight < 1 {
		contentHeight = 1
	}
	u.session.Resize(contentHeight)
	u.debug("resize", logging.FieldWidth, width, logging.FieldHeight, contentHeight)
}

func (u *UI) debug(msg string, args ...any) {
	if u.logger != nil {
		u.logger.Debug(msg, args...)
	}
}
