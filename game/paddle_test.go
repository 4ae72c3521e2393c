package game

import (
	"testing"

	"github.com/jetsetilly/matrixpong/test"
)

func TestPaddleDebounce(t *testing.T) {
	p := Paddle{Position: PaddleCentre}

	for range DebounceTicks {
		p.Update(true, false)
		test.ExpectEquality(t, p.Position, PaddleCentre)
		test.ExpectEquality(t, p.Velocity, 1)
	}
	test.ExpectEquality(t, p.HoldUp, DebounceTicks)

	// the paddle moves on the next update and the hold count starts again
	p.Update(true, false)
	test.ExpectEquality(t, p.Position, PaddleCentre+1)
	test.ExpectEquality(t, p.HoldUp, 0)
	test.ExpectEquality(t, p.Velocity, 0)

	p.Update(true, false)
	test.ExpectEquality(t, p.HoldUp, 1)
	test.ExpectEquality(t, p.Velocity, 1)

	// releasing the button clears the hold count and the velocity
	p.Update(false, false)
	test.ExpectEquality(t, p.HoldUp, 0)
	test.ExpectEquality(t, p.Velocity, 0)
	test.ExpectEquality(t, p.Position, PaddleCentre+1)
}

func TestPaddleDown(t *testing.T) {
	p := Paddle{Position: PaddleCentre}

	for range DebounceTicks + 1 {
		p.Update(false, true)
	}
	test.ExpectEquality(t, p.Position, PaddleCentre-1)
	test.ExpectEquality(t, p.HoldDown, 0)

	p.Update(false, true)
	test.ExpectEquality(t, p.Velocity, -1)
	test.ExpectEquality(t, p.HoldUp, 0)
}

func TestPaddleBounds(t *testing.T) {
	for pos := 0; pos <= PaddleMax; pos++ {
		p := Paddle{Position: pos}
		for range 10 * DebounceTicks {
			p.Update(true, false)
			test.DemandEquality(t, p.Position >= 0 && p.Position <= PaddleMax, true)
		}
		test.ExpectEquality(t, p.Position, PaddleMax)

		p = Paddle{Position: pos}
		for range 10 * DebounceTicks {
			p.Update(false, true)
			test.DemandEquality(t, p.Position >= 0 && p.Position <= PaddleMax, true)
		}
		test.ExpectEquality(t, p.Position, 0)
	}
}

func TestPaddleVelocityAtBounds(t *testing.T) {
	p := Paddle{Position: PaddleMax}
	p.Update(true, false)
	test.ExpectEquality(t, p.Velocity, 0)
	test.ExpectEquality(t, p.HoldUp, 1)

	p = Paddle{Position: 0}
	p.Update(false, true)
	test.ExpectEquality(t, p.Velocity, 0)
	test.ExpectEquality(t, p.HoldDown, 1)
}

func TestPaddleCovers(t *testing.T) {
	p := Paddle{Position: 2}
	test.ExpectFailure(t, p.Covers(1))
	test.ExpectSuccess(t, p.Covers(2))
	test.ExpectSuccess(t, p.Covers(3))
	test.ExpectSuccess(t, p.Covers(4))
	test.ExpectFailure(t, p.Covers(5))
}
