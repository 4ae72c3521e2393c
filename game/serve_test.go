package game

import (
	"testing"
	"time"

	"github.com/jetsetilly/matrixpong/test"
)

func TestResetPoint(t *testing.T) {
	g, b := newTestGame(t, AI)

	for range 100 {
		b.now += 10 * time.Millisecond

		g.Left = Paddle{Position: 5, Velocity: 1, HoldUp: 7}
		g.Match.Boredom = 99
		g.ResetPoint(true)

		test.ExpectEquality(t, g.Ball.X, 1.0)
		test.ExpectEquality(t, g.Ball.Y, 3.0)
		test.ExpectEquality(t, g.Ball.VX, BallSpeed)
		test.ExpectSuccess(t, g.Ball.VY != 0 && g.Ball.VY >= -9 && g.Ball.VY <= 9)
		test.ExpectEquality(t, g.Match.LastRow, ServeRow)
		test.ExpectEquality(t, g.Match.Boredom, 0)
		test.ExpectEquality(t, g.Match.ServeStart, b.now)
		test.ExpectEquality(t, g.Left, Paddle{Position: PaddleCentre})
		test.ExpectEquality(t, g.Right, Paddle{Position: PaddleCentre})

		g.ResetPoint(false)
		test.ExpectEquality(t, g.Ball.X, 6.0)
		test.ExpectEquality(t, g.Ball.VX, -BallSpeed)
		test.ExpectSuccess(t, g.Ball.VY != 0 && g.Ball.VY >= -9 && g.Ball.VY <= 9)
	}
}

func TestResetPointKeepsWins(t *testing.T) {
	g, _ := newTestGame(t, AI)
	g.Match.WinsLeft = 3
	g.Match.WinsRight = 5

	g.ResetPoint(false)
	test.ExpectEquality(t, g.Match.WinsLeft, 3)
	test.ExpectEquality(t, g.Match.WinsRight, 5)

	g.ResetMatch()
	test.ExpectEquality(t, g.Match.WinsLeft, 0)
	test.ExpectEquality(t, g.Match.WinsRight, 0)
	test.ExpectEquality(t, g.Ball.VX, BallSpeed)
}

func TestServeVerticalSpread(t *testing.T) {
	g, _ := newTestGame(t, AI)

	seen := make(map[int]bool)
	for range 1000 {
		g.ResetPoint(true)
		seen[g.Ball.VY] = true
	}

	// every non-zero value between -9 and 9 should have appeared
	test.ExpectEquality(t, len(seen), 18)
	test.ExpectFailure(t, seen[0])
}
