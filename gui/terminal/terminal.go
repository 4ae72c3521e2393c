// Package terminal is a GUI for the emulated board that runs in a terminal.
//
// Terminals report key presses but not key releases. A pressed key is
// therefore treated as held until no repeat of it has been seen for
// holdDuration.
package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jetsetilly/matrixpong/gui"
	"github.com/jetsetilly/matrixpong/version"
)

// a key is released if there has been no repeat for this long. the value is
// longer than the typical delay before a terminal starts auto-repeating
const holdDuration = 550 * time.Millisecond

// redraw rate of the terminal
const refresh = time.Second / 60

type term struct {
	screen tcell.Screen
	g      *gui.GUI

	frame gui.Frame

	// keys that are currently held and when they were last seen
	held map[heldKey]time.Time

	styleLit   tcell.Style
	styleUnlit tcell.Style
	styleText  tcell.Style
}

// heldKey is a port and action pair that is being held down
type heldKey struct {
	port   gui.Port
	action gui.Action
}

func (tm *term) send(inp gui.Input) {
	select {
	case tm.g.UserInput <- inp:
	default:
	}
}

// press a held key. the press is only sent to the board if the key is not
// already held
func (tm *term) press(k heldKey, now time.Time) {
	if _, ok := tm.held[k]; !ok {
		tm.send(gui.Input{Port: k.port, Action: k.action, Data: true})
	}
	tm.held[k] = now
}

// release any held keys that haven't been seen recently
func (tm *term) expire(now time.Time) {
	for k, t := range tm.held {
		if now.Sub(t) >= holdDuration {
			tm.send(gui.Input{Port: k.port, Action: k.action, Data: false})
			delete(tm.held, k)
		}
	}
}

// keyEvent handles a key event from the terminal. returns true if the user
// has asked to quit
func (tm *term) keyEvent(ev *tcell.EventKey, now time.Time) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		tm.press(heldKey{port: gui.Player2, action: gui.StickUp}, now)
	case tcell.KeyDown:
		tm.press(heldKey{port: gui.Player2, action: gui.StickDown}, now)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'w', 'W':
			tm.press(heldKey{port: gui.Player1, action: gui.StickUp}, now)
		case 's', 'S':
			tm.press(heldKey{port: gui.Player1, action: gui.StickDown}, now)
		case 'r', 'R':
			tm.send(gui.Input{Port: gui.Panel, Action: gui.Restart, Data: true})
		}
	}
	return false
}

func (tm *term) draw() {
	tm.screen.Clear()

	w, h := tm.screen.Size()

	// every LED is two cells wide so that the matrix looks square
	ox := (w - len(tm.frame)*2) / 2
	oy := (h - len(tm.frame)) / 2

	drawText(tm.screen, max(0, (w-len(version.Title()))/2), oy-2, version.Title(), tm.styleText)

	for row := range len(tm.frame) {
		for col := range 8 {
			st := tm.styleUnlit
			if tm.frame.Lit(row, col) {
				st = tm.styleLit
			}
			tm.screen.SetContent(ox+col*2, oy+row, '●', nil, st)
		}
	}

	help := "↑/↓ right  w/s left  r restart  q quit"
	drawText(tm.screen, max(0, (w-len([]rune(help)))/2), oy+len(tm.frame)+1, help, tm.styleText)

	tm.screen.Show()
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, ch := range []rune(text) {
		s.SetContent(x+i, y, ch, nil, st)
	}
}

// Launch the terminal GUI. The function returns when the user quits or when
// the endGui channel is signalled.
func Launch(endGui chan bool, g *gui.GUI) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()
	s.HideCursor()

	tm := &term{
		screen:     s,
		g:          g,
		held:       make(map[heldKey]time.Time),
		styleLit:   tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
		styleUnlit: tcell.StyleDefault.Foreground(tcell.ColorMaroon),
		styleText:  tcell.StyleDefault.Foreground(tcell.ColorGray),
	}

	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})
	go s.ChannelEvents(events, quit)
	defer close(quit)

	tick := time.NewTicker(refresh)
	defer tick.Stop()

	for {
		select {
		case <-endGui:
			return nil
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				s.Sync()
			case *tcell.EventKey:
				if tm.keyEvent(e, time.Now()) {
					return nil
				}
			}
		case now := <-tick.C:
			tm.expire(now)
			select {
			case tm.frame = <-g.SetImage:
			default:
			}
			tm.draw()
		}
	}
}
