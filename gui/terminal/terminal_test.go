package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jetsetilly/matrixpong/gui"
	"github.com/jetsetilly/matrixpong/test"
)

func newTestTerm() *term {
	return &term{
		g:    gui.NewGUI(),
		held: make(map[heldKey]time.Time),
	}
}

func TestHeldKey(t *testing.T) {
	tm := newTestTerm()
	now := time.Now()

	quit := tm.keyEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), now)
	test.ExpectFailure(t, quit)
	test.ExpectEquality(t, <-tm.g.UserInput, gui.Input{Port: gui.Player2, Action: gui.StickUp, Data: true})

	// a repeat of the key does not send another press
	tm.keyEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), now.Add(holdDuration/2))
	test.ExpectEquality(t, len(tm.g.UserInput), 0)

	// the repeat extends the hold
	tm.expire(now.Add(holdDuration))
	test.ExpectEquality(t, len(tm.g.UserInput), 0)

	tm.expire(now.Add(holdDuration * 2))
	test.ExpectEquality(t, <-tm.g.UserInput, gui.Input{Port: gui.Player2, Action: gui.StickUp, Data: false})
	test.ExpectEquality(t, len(tm.held), 0)
}

func TestRuneKeys(t *testing.T) {
	tm := newTestTerm()
	now := time.Now()

	tm.keyEvent(tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), now)
	test.ExpectEquality(t, <-tm.g.UserInput, gui.Input{Port: gui.Player1, Action: gui.StickDown, Data: true})

	tm.keyEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), now)
	test.ExpectEquality(t, <-tm.g.UserInput, gui.Input{Port: gui.Panel, Action: gui.Restart, Data: true})

	test.ExpectSuccess(t, tm.keyEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), now))
	test.ExpectSuccess(t, tm.keyEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), now))
}

func TestDraw(t *testing.T) {
	s := tcell.NewSimulationScreen("")
	test.DemandEquality(t, s.Init(), nil)
	defer s.Fini()
	s.SetSize(40, 20)

	tm := newTestTerm()
	tm.screen = s
	tm.frame = gui.Frame{0x80}
	tm.draw()

	// the matrix is centred. the top left LED is lit
	ox := (40 - 16) / 2
	oy := (20 - 8) / 2
	r, _, _, _ := s.GetContent(ox, oy)
	test.ExpectEquality(t, r, '●')
}
