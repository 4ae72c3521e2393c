// Package peripherals implements the controls plugged into the board. Every
// player has a pad with two buttons, one for each direction.
package peripherals

import (
	"fmt"

	"github.com/jetsetilly/matrixpong/game"
	"github.com/jetsetilly/matrixpong/gui"
)

// Peripheral is a device that responds to user input.
type Peripheral interface {
	Reset()
	Update(inp gui.Input) error
}

// Controls are the two pads, one for each player.
type Controls struct {
	players [2]*Pad
}

// NewControls creates the controls with a pad for each player.
func NewControls() *Controls {
	return &Controls{
		players: [2]*Pad{&Pad{}, &Pad{}},
	}
}

// Reset releases all buttons on both pads.
func (c *Controls) Reset() {
	for _, p := range c.players {
		p.Reset()
	}
}

// Update forwards the input to the pad for the port. Input for an undefined
// port goes to player two, who is always a human.
func (c *Controls) Update(inp gui.Input) error {
	switch inp.Port {
	case gui.Player1:
		return c.players[0].Update(inp)
	case gui.Player2, gui.Undefined:
		return c.players[1].Update(inp)
	}
	return fmt.Errorf("peripherals: input for unsupported port: %v", inp.Port)
}

// ReadDigital returns the state of the button wired to the channel.
//
// Row numbers grow towards the bottom of the matrix, so the game's "up"
// channel is wired to the button the player sees as down.
func (c *Controls) ReadDigital(ch game.Channel) bool {
	switch ch {
	case game.Player1Up:
		return c.players[0].Down()
	case game.Player1Down:
		return c.players[0].Up()
	case game.Player2Up:
		return c.players[1].Down()
	case game.Player2Down:
		return c.players[1].Up()
	}
	return false
}
