package game

import "github.com/jetsetilly/matrixpong/logger"

// Physics checks for collisions and then advances the ball by dt seconds.
//
// Collisions are tested against the position of the ball before it moves.
// Nothing stops the ball from leaving the matrix for a tick.
func (g *Game) Physics(dt float64) {
	if g.Ball.X < LeftPlane {
		g.bounce(SideLeft)
	}
	if g.Ball.X > RightPlane {
		g.bounce(SideRight)
	}

	// the ball is not pushed back inside the matrix
	if g.Ball.Y < 0 || g.Ball.Y > Size-1 {
		g.Ball.VY = -g.Ball.VY
	}

	g.Ball.X += float64(g.Ball.VX) * dt
	g.Ball.Y += float64(g.Ball.VY) * dt
}

// bounce the ball off the paddle on the side. the angle of the bounce depends
// on which third of the paddle the ball strikes and the paddle's velocity
func (g *Game) bounce(side Side) {
	p := g.Left
	if side == SideRight {
		p = g.Right
	}

	g.Ball.VX = -g.Ball.VX

	switch g.Ball.Row() - p.Position {
	case 0:
		g.Ball.VY += 2*p.Velocity + 1
	case 1:
		g.Ball.VY += p.Velocity
	case 2:
		g.Ball.VY += 2*p.Velocity - 1
	default:
		g.miss(side)
	}
}

// the paddle on the side has missed the ball
func (g *Game) miss(side Side) {
	if side == SideLeft {
		g.Match.WinsRight++
	} else {
		g.Match.WinsLeft++
	}

	logger.Logf(logger.Allow, "game", "%s missed at row %d. score is %s", side, g.Ball.Row(), g.Match)
	if g.Match.Won() {
		logger.Logf(logger.Allow, "game", "match won by %s", g.Match.Winner())
	}

	// the next serve comes from the side that missed
	g.ResetPoint(side == SideLeft)
}

// DetectStall counts the ticks the ball has spent in the same row and serves
// again, in a random direction, if play appears to have stalled.
func (g *Game) DetectStall() {
	row := g.Ball.Row()
	if row == g.Match.LastRow {
		g.Match.Boredom++
	} else {
		g.Match.Boredom = 0
	}

	if g.Match.Boredom > BoredomTicks {
		logger.Logf(logger.Allow, "game", "ball stuck in row %d", row)
		g.ResetPoint(g.rng.IntN(2) == 1)
	}

	g.Match.LastRow = g.Ball.Row()
}
