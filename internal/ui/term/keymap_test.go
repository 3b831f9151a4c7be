package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/yaklabco/gomdless/pkg/pager"
)

func TestActionFor(t *testing.T) {
	t.Parallel()

	keyEvent := func(k tcell.Key) *tcell.EventKey {
		return tcell.NewEventKey(k, 0, tcell.ModNone)
	}
	runeEvent := func(r rune) *tcell.EventKey {
		return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
	}

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want pager.Action
	}{
		{"up arrow", keyEvent(tcell.KeyUp), pager.ActionScrollUp},
		{"down arrow", keyEvent(tcell.KeyDown), pager.ActionScrollDown},
		{"page up", keyEvent(tcell.KeyPgUp), pager.ActionPageUp},
		{"page down", keyEvent(tcell.KeyPgDn), pager.ActionPageDown},
		{"home", keyEvent(tcell.KeyHome), pager.ActionHome},
		{"end", keyEvent(tcell.KeyEnd), pager.ActionEnd},
		{"tab cycles view", keyEvent(tcell.KeyTab), pager.ActionCycleView},
		{"escape quits", keyEvent(tcell.KeyEscape), pager.ActionQuit},
		{"q quits", runeEvent('q'), pager.ActionQuit},
		{"k scrolls up", runeEvent('k'), pager.ActionScrollUp},
		{"j scrolls down", runeEvent('j'), pager.ActionScrollDown},
		{"space pages down", runeEvent(' '), pager.ActionPageDown},
		{"b pages up", runeEvent('b'), pager.ActionPageUp},
		{"g goes home", runeEvent('g'), pager.ActionHome},
		{"G goes to end", runeEvent('G'), pager.ActionEnd},
		{"question mark shows help", runeEvent('?'), pager.ActionShowHelp},
		{"unmapped rune", runeEvent('z'), pager.ActionNone},
		{"unmapped key", keyEvent(tcell.KeyF5), pager.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ActionFor(tt.ev); got != tt.want {
				t.Errorf("ActionFor() = %v, want %v", got, tt.want)
			}
		})
	}
}
