package gui_test

import (
	"testing"

	"github.com/jetsetilly/matrixpong/gui"
	"github.com/jetsetilly/matrixpong/test"
)

func TestFrame(t *testing.T) {
	f := gui.Frame{0x80, 0, 0, 0, 0, 0, 0, 0x01}
	test.ExpectSuccess(t, f.Lit(0, 0))
	test.ExpectSuccess(t, f.Lit(7, 7))
	test.ExpectFailure(t, f.Lit(0, 7))
	test.ExpectFailure(t, f.Lit(-1, 0))
	test.ExpectFailure(t, f.Lit(0, 8))
	test.ExpectEquality(t, f.String(), "●·······\n········\n········\n········\n········\n········\n········\n·······●\n")
}

func TestInputPressed(t *testing.T) {
	test.ExpectSuccess(t, gui.Input{Action: gui.StickUp, Data: true}.Pressed())
	test.ExpectFailure(t, gui.Input{Action: gui.StickUp, Data: false}.Pressed())
	test.ExpectSuccess(t, gui.Input{Action: gui.Restart}.Pressed())
}
