// Package hardware is the board the game runs on. The Console type connects a
// Board implementation to the game and runs the game loop.
package hardware

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/jetsetilly/matrixpong/game"
	"github.com/jetsetilly/matrixpong/gui"
	"github.com/jetsetilly/matrixpong/logger"
)

// Board is the physical (or emulated) hardware.
type Board interface {
	Now() time.Duration
	Delay(d time.Duration)
	ReadDigital(ch game.Channel) bool
	SetRowDriver(pattern uint8)
	SetColumnEnable(pattern uint8)

	// PowerOn returns the board to its power on state. the clock starts again
	// from zero and the matrix is blank
	PowerOn()
}

// InputBoard is implemented by boards that accept user input from a GUI.
type InputBoard interface {
	Board
	HandleInput(inp gui.Input) error
}

// Console is the board with the game running on it. It implements the
// game.Hardware interface.
type Console struct {
	Board
	Game *game.Game

	// user input. will be nil if there is no GUI
	g *gui.GUI

	// a restart has been requested by the game or by the user
	restart bool

	// number of power on resets since the console was created
	Restarts int
}

// Create a new Console for the board. The GUI can be nil if the board has no
// need for one.
func Create(board Board, g *gui.GUI, rng *rand.Rand, left game.Controller) *Console {
	con := &Console{
		Board: board,
		g:     g,
	}
	con.Board.PowerOn()
	con.Game = game.NewGame(con, rng, left)
	logger.Logf(logger.Allow, "console", "powered on. %s plays on the left", left)
	return con
}

// Restart implements the game.Hardware interface. The restart happens at the
// end of the current step.
func (con *Console) Restart() {
	con.restart = true
}

// Reset is the same as switching the board off and on again. The game keeps
// nothing from before the reset.
func (con *Console) Reset() {
	con.restart = false
	con.Restarts++
	con.Board.PowerOn()
	con.Game.ResetMatch()
	logger.Logf(logger.Allow, "console", "restarted (%d)", con.Restarts)
}

// Step runs one tick of the game.
func (con *Console) Step() error {
	if err := con.handleInput(); err != nil {
		return fmt.Errorf("console: %w", err)
	}

	con.Game.Tick()

	if con.restart {
		con.Reset()
	}

	return nil
}

// Run steps the console until the stop channel is signalled or until there is
// an error.
func (con *Console) Run(stop chan bool) error {
	for {
		select {
		case <-stop:
			return nil
		default:
		}

		err := con.Step()
		if err != nil {
			return err
		}
	}
}
