package game

import "github.com/jetsetilly/matrixpong/logger"

// the row the ball is served from
const ServeRow = 3

// ResetPoint prepares the next serve. Win counts are not changed.
func (g *Game) ResetPoint(serveRight bool) {
	g.Left = Paddle{Position: PaddleCentre}
	g.Right = Paddle{Position: PaddleCentre}

	if serveRight {
		g.Ball.X = LeftPlane
		g.Ball.VX = BallSpeed
	} else {
		g.Ball.X = RightPlane
		g.Ball.VX = -BallSpeed
	}

	g.Ball.Y = ServeRow
	g.Match.LastRow = ServeRow
	g.Match.Boredom = 0

	// vertical speed is a whole number between 1 and 9 inclusive
	g.Ball.VY = 1 + g.rng.IntN(9)
	if g.rng.IntN(2) == 1 {
		g.Ball.VY = -g.Ball.VY
	}

	g.Match.ServeStart = g.hw.Now()

	side := SideLeft
	if serveRight {
		side = SideRight
	}
	logger.Logf(logger.Allow, "game", "serve towards %s: %s", side, g.Ball)
}

// ResetMatch clears the win counts and serves towards the right.
func (g *Game) ResetMatch() {
	g.Match.WinsLeft = 0
	g.Match.WinsRight = 0
	g.dt = 0
	g.ResetPoint(true)
}
