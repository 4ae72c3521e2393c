package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/jetsetilly/matrixpong/logger"
)

// Controller says who is in control of the left paddle. The right paddle is
// always controlled by a human.
type Controller int

// List of valid Controller values.
const (
	AI Controller = iota
	Human
)

func (c Controller) String() string {
	if c == Human {
		return "human"
	}
	return "AI"
}

// Side is one side of the matrix.
type Side int

// List of valid Side values.
const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// Game is the complete state of the game. The state is reset in place and is
// never reallocated.
type Game struct {
	hw  Hardware
	rng *rand.Rand

	// who is playing on the left hand side
	left Controller

	Left  Paddle
	Right Paddle
	Ball  Ball
	Match Match

	// the length of the previous tick in seconds
	dt float64
}

// NewGame creates a new game and performs a match reset.
func NewGame(hw Hardware, rng *rand.Rand, left Controller) *Game {
	g := &Game{
		hw:   hw,
		rng:  rng,
		left: left,
	}
	g.ResetMatch()
	return g
}

func (g *Game) String() string {
	return fmt.Sprintf("%s ball[%s] left[%s] right[%s]", g.Match, g.Ball, g.Left, g.Right)
}

// SinceServe returns the time since the start of the current serve.
func (g *Game) SinceServe() time.Duration {
	return g.hw.Now() - g.Match.ServeStart
}

// Tick runs one iteration of the game loop. The elapsed time of the tick is
// measured and used by the physics in the following tick.
//
// The tick ends early if the display state requires a hard restart. The
// restart is requested through the Hardware interface.
func (g *Game) Tick() {
	start := g.hw.Now()

	if g.SinceServe() > PlayDelay {
		up, down := g.leftButtons()
		g.Left.Update(up, down)
	}

	if g.SinceServe() > HumanDelay {
		g.Right.Update(g.hw.ReadDigital(Player2Up), g.hw.ReadDigital(Player2Down))
	}

	if g.SinceServe() > PlayDelay {
		g.Physics(g.dt)
		g.DetectStall()
	}

	f, restart := g.Render()
	if restart {
		logger.Logf(logger.Allow, "game", "controller active after match (%s). restarting", g.Match)
		g.hw.Restart()
		return
	}
	g.Refresh(f)

	g.dt = (g.hw.Now() - start).Seconds()
}

func (g *Game) leftButtons() (bool, bool) {
	if g.left == Human {
		return g.hw.ReadDigital(Player1Up), g.hw.ReadDigital(Player1Down)
	}
	return Predict(g.Ball, g.Left)
}
