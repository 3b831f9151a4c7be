package pager

import (
	"strings"
	"testing"

	"github.com/yaklabco/gomdless/pkg/document"
)

func markdownSession(t *testing.T, content string, height int) *Session {
	t.Helper()
	return NewSession(document.New("test.md", []byte(content)), height)
}

func plainSession(t *testing.T, content string, height int) *Session {
	t.Helper()
	return NewSession(document.New("test.txt", []byte(content)), height)
}

func testDoc(lines int) string {
	var b strings.Builder
	b.WriteString("# Title\n")
	for i := 1; i < lines; i++ {
		b.WriteString("line\n")
	}
	return b.String()
}

func TestSession_InitialMode(t *testing.T) {
	t.Parallel()

	if got := markdownSession(t, "# x\n", 10).Mode(); got != ModeRendered {
		t.Errorf("markdown initial mode = %v, want rendered", got)
	}
	if got := plainSession(t, "x\n", 10).Mode(); got != ModeSource {
		t.Errorf("plain initial mode = %v, want source", got)
	}
}

func TestSession_CycleView(t *testing.T) {
	t.Parallel()

	t.Run("three cycles return to start for markdown", func(t *testing.T) {
		t.Parallel()

		s := markdownSession(t, testDoc(5), 10)
		start := s.Mode()

		seen := map[Mode]bool{start: true}
		s.CycleView()
		seen[s.Mode()] = true
		s.CycleView()
		seen[s.Mode()] = true
		s.CycleView()

		if s.Mode() != start {
			t.Errorf("mode after 3 cycles = %v, want %v", s.Mode(), start)
		}
		if len(seen) != 3 {
			t.Errorf("visited %d distinct modes, want 3", len(seen))
		}
	})

	t.Run("no-op for non-markdown", func(t *testing.T) {
		t.Parallel()

		s := plainSession(t, testDoc(5), 10)
		for range 7 {
			s.CycleView()
			if s.Mode() != ModeSource {
				t.Fatalf("mode = %v, want source permanently", s.Mode())
			}
		}
	})
}

func TestSession_SetModeGuard(t *testing.T) {
	t.Parallel()

	s := plainSession(t, testDoc(5), 10)
	s.SetMode(ModeRendered)
	if s.Mode() != ModeSource {
		t.Errorf("mode = %v, want source after guarded SetMode", s.Mode())
	}
	s.SetMode(ModeSideBySide)
	if s.Mode() != ModeSource {
		t.Errorf("mode = %v, want source after guarded SetMode", s.Mode())
	}
}

func TestSession_SideBySideSync(t *testing.T) {
	t.Parallel()

	t.Run("entering copies the active offset into both panes", func(t *testing.T) {
		t.Parallel()

		s := markdownSession(t, testDoc(50), 10)
		s.Apply(ActionPageDown) // rendered pane at 10

		s.SetMode(ModeSideBySide)

		primary, secondary := s.Windows()
		if secondary == nil {
			t.Fatal("side-by-side must expose two windows")
		}
		if primary.Offset != 10 || secondary.Offset != 10 {
			t.Errorf("offsets = %d/%d, want both 10", primary.Offset, secondary.Offset)
		}
	})

	t.Run("every scroll keeps offsets equal", func(t *testing.T) {
		t.Parallel()

		s := markdownSession(t, testDoc(80), 10)
		s.SetMode(ModeSideBySide)

		actions := []Action{
			ActionScrollDown, ActionPageDown, ActionScrollUp,
			ActionEnd, ActionPageUp, ActionHome, ActionScrollDown,
		}
		for _, a := range actions {
			s.Apply(a)
			primary, secondary := s.Windows()
			if secondary == nil {
				t.Fatal("missing source pane")
			}
			if primary.Offset != secondary.Offset {
				t.Fatalf("after %v: offsets %d != %d", a, primary.Offset, secondary.Offset)
			}
		}
	})

	t.Run("leaving keeps the target mode's own offset", func(t *testing.T) {
		t.Parallel()

		s := markdownSession(t, testDoc(50), 10)
		s.SetMode(ModeSideBySide)
		s.Apply(ActionPageDown)

		s.SetMode(ModeRendered)
		primary, secondary := s.Windows()
		if secondary != nil {
			t.Error("single-pane mode must expose one window")
		}
		if primary.Offset != 10 {
			t.Errorf("offset = %d, want 10 carried out of side-by-side", primary.Offset)
		}
	})
}

func TestSession_WindowsContent(t *testing.T) {
	t.Parallel()

	s := markdownSession(t, "# Title\nbody\n", 10)

	primary, secondary := s.Windows()
	if secondary != nil {
		t.Fatal("rendered mode must expose one window")
	}
	if len(primary.Lines) != 2 {
		t.Fatalf("visible lines = %d, want 2", len(primary.Lines))
	}
	if got := primary.Lines[0].Text(); got != "Title" {
		t.Errorf("rendered first line = %q, want marker stripped", got)
	}

	s.CycleView() // source
	primary, _ = s.Windows()
	if got := primary.Lines[0].Text(); got != "# Title" {
		t.Errorf("source first line = %q, want verbatim", got)
	}
}

func TestSession_ResizeReclamps(t *testing.T) {
	t.Parallel()

	s := plainSession(t, testDoc(30), 10)
	s.Apply(ActionEnd)
	if got := s.TopLine(); got != 20 {
		t.Fatalf("offset = %d, want 20", got)
	}

	s.Resize(25)
	if got := s.TopLine(); got != 5 {
		t.Errorf("offset after resize = %d, want re-clamped 5", got)
	}
}

func TestSession_PositionIndicators(t *testing.T) {
	t.Parallel()

	s := plainSession(t, testDoc(40), 10)
	if !s.AtTop() {
		t.Error("AtTop() = false at start")
	}
	s.Apply(ActionEnd)
	if !s.AtBottom() {
		t.Error("AtBottom() = false after End")
	}
	if s.Percent() != 100 {
		t.Errorf("Percent() = %d, want 100 at end", s.Percent())
	}
}
