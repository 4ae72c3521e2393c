package hardware

import (
	"github.com/jetsetilly/matrixpong/game"
	"github.com/jetsetilly/matrixpong/gui"
	"github.com/jetsetilly/matrixpong/hardware/clocks"
	"github.com/jetsetilly/matrixpong/hardware/matrix"
	"github.com/jetsetilly/matrixpong/hardware/peripherals"
)

// Clock is the time keeping part of a board.
type Clock interface {
	clocks.Clock
	Reset()
}

// Emulation is a board that exists only in software. The matrix is shown by a
// GUI and the buttons are pressed with the keyboard or a gamepad.
type Emulation struct {
	Clock
	*matrix.Matrix
	Controls *peripherals.Controls
}

// NewEmulation creates an emulated board that follows real time. Completed
// frames are sent to the GUI, if there is one.
func NewEmulation(g *gui.GUI) *Emulation {
	var out chan gui.Frame
	if g != nil {
		out = g.SetImage
	}
	return &Emulation{
		Clock:    clocks.NewWall(),
		Matrix:   matrix.NewMatrix(out),
		Controls: peripherals.NewControls(),
	}
}

// PowerOn implements the Board interface.
func (em *Emulation) PowerOn() {
	em.Clock.Reset()
	em.Matrix.Blank()
	em.Controls.Reset()
}

// ReadDigital implements the Board interface.
func (em *Emulation) ReadDigital(ch game.Channel) bool {
	return em.Controls.ReadDigital(ch)
}

// HandleInput implements the InputBoard interface.
func (em *Emulation) HandleInput(inp gui.Input) error {
	return em.Controls.Update(inp)
}
