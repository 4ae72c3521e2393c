package game

import (
	"testing"
	"time"

	"github.com/jetsetilly/matrixpong/test"
)

func TestFrame(t *testing.T) {
	var f Frame
	f.Set(0, 0)
	f.Set(7, 7)
	f.Set(3, 4)
	f.Set(-1, 2)
	f.Set(2, 8)

	test.ExpectEquality(t, f[0], 0x80)
	test.ExpectEquality(t, f[7], 0x01)
	test.ExpectEquality(t, f[3], 0x08)
	test.ExpectSuccess(t, f.Lit(3, 4))
	test.ExpectFailure(t, f.Lit(3, 3))
	test.ExpectFailure(t, f.Lit(8, 0))

	f = Frame{}
	f.Column(1)
	for row := range Size {
		test.ExpectEquality(t, f[row], 0x40)
	}

	f = Frame{0x81, 0, 0, 0, 0, 0, 0, 0xff}
	test.ExpectEquality(t, f.String(), "#......#\n........\n........\n........\n........\n........\n........\n########\n")
}

func TestRenderScore(t *testing.T) {
	g, b := newTestGame(t, AI)
	g.Match.WinsLeft = 3
	g.Match.WinsRight = 1
	g.ResetPoint(true)

	b.now += 500 * time.Millisecond
	f, restart := g.Render()
	test.ExpectFailure(t, restart)
	test.ExpectEquality(t, f, Frame{0, 0, 0, 0, 0, 0x40, 0x40, 0x42})
}

func TestRenderBlankBeat(t *testing.T) {
	g, b := newTestGame(t, AI)
	g.Match.WinsLeft = 3

	b.now += 1100 * time.Millisecond
	f, restart := g.Render()
	test.ExpectFailure(t, restart)
	test.ExpectEquality(t, f, Frame{})

	b.now += 100 * time.Millisecond
	f, _ = g.Render()
	test.ExpectEquality(t, f, Frame{})
}

func TestRenderPlay(t *testing.T) {
	g, b := newTestGame(t, AI)
	b.now += 2 * time.Second

	g.Left.Position = 0
	g.Right.Position = 5
	g.Ball = Ball{X: 3.4, Y: 4.5, VX: BallSpeed, VY: 1}

	f, restart := g.Render()
	test.ExpectFailure(t, restart)
	test.ExpectEquality(t, f, Frame{0x80, 0x80, 0x80, 0, 0, 0x11, 0x01, 0x01})

	// a ball outside of the matrix is not drawn
	g.Ball = Ball{X: -0.6, Y: 3, VX: -BallSpeed, VY: 1}
	f, _ = g.Render()
	test.ExpectEquality(t, f, Frame{0x80, 0x80, 0x80, 0, 0, 0x01, 0x01, 0x01})
}

func TestRenderMatchWon(t *testing.T) {
	g, b := newTestGame(t, AI)
	g.Match.WinsLeft = WinThreshold

	// the indicator blinks on odd half periods
	b.now = 10 * BlinkPeriod
	f, restart := g.Render()
	test.ExpectFailure(t, restart)
	test.ExpectEquality(t, f, Frame{})

	b.now = 11 * BlinkPeriod
	f, restart = g.Render()
	test.ExpectFailure(t, restart)
	test.ExpectEquality(t, f, Frame{0x40, 0x40, 0x40, 0x40, 0x40, 0x40, 0x40, 0x40})

	g.Match.WinsLeft = 0
	g.Match.WinsRight = WinThreshold
	f, restart = g.Render()
	test.ExpectFailure(t, restart)
	test.ExpectEquality(t, f, Frame{0x02, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02})
}

func TestRenderStuckController(t *testing.T) {
	g, _ := newTestGame(t, AI)

	g.Match.WinsLeft = WinThreshold
	g.Right.Velocity = 1
	_, restart := g.Render()
	test.ExpectSuccess(t, restart)

	g.Match.WinsLeft = 0
	g.Match.WinsRight = WinThreshold
	g.Right.Velocity = -1
	_, restart = g.Render()
	test.ExpectSuccess(t, restart)

	// the left paddle does not trigger a restart
	g.Right.Velocity = 0
	g.Left.Velocity = 1
	_, restart = g.Render()
	test.ExpectFailure(t, restart)
}

func TestRefresh(t *testing.T) {
	g, b := newTestGame(t, AI)
	start := b.now

	f := Frame{1, 2, 3, 4, 5, 6, 7, 8}
	g.Refresh(f)

	test.DemandEquality(t, len(b.rows), Size)
	test.DemandEquality(t, len(b.enables), Size)
	for line := range Size {
		test.ExpectEquality(t, b.rows[line], f[line])
		test.ExpectEquality(t, b.enables[line], ^uint8(1<<line))
	}
	test.ExpectEquality(t, b.now-start, Size*RowHold)
}
