package peripherals

import (
	"fmt"

	"github.com/jetsetilly/matrixpong/gui"
)

// Pad is a controller with an up button and a down button.
type Pad struct {
	up   bool
	down bool
}

var _ Peripheral = (*Pad)(nil)

// Reset releases both buttons.
func (p *Pad) Reset() {
	p.up = false
	p.down = false
}

// Update implements the Peripheral interface.
func (p *Pad) Update(inp gui.Input) error {
	switch inp.Action {
	case gui.StickUp:
		p.up = inp.Pressed()

		// pressing one direction releases the other. the buttons on the real
		// pad are a rocker and can't both be pressed
		if p.up {
			p.down = false
		}
	case gui.StickDown:
		p.down = inp.Pressed()
		if p.down {
			p.up = false
		}
	default:
		return fmt.Errorf("peripherals: pad does not support %v", inp.Action)
	}
	return nil
}

// Up returns true if the up button is pressed.
func (p *Pad) Up() bool {
	return p.up
}

// Down returns true if the down button is pressed.
func (p *Pad) Down() bool {
	return p.down
}
