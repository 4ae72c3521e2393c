package game

import (
	"fmt"
	"math"
	"time"
)

// The size of the matrix. The matrix is square.
const Size = 8

// Tuning values for the game.
const (
	BallSpeed = 7

	// number of consecutive ticks a button must be held before the paddle
	// moves one row
	DebounceTicks = 20

	// number of points required to win the match
	WinThreshold = 8

	// number of consecutive ticks the ball can stay in the same row before
	// the point is abandoned
	BoredomTicks = 250

	PaddleHeight = 3
	PaddleCentre = 2
	PaddleMax    = Size - PaddleHeight

	// the ball is in play between the two paddle planes
	LeftPlane  = 1
	RightPlane = Size - 2

	// the predictive constant used by the AI
	PredictionFactor = 0.07
)

// Timing values, all measured from the start of the serve.
const (
	PlayDelay     = 3000 * time.Millisecond
	HumanDelay    = 1200 * time.Millisecond
	ScoreDuration = 1000 * time.Millisecond
	BlinkPeriod   = 500 * time.Millisecond
	RowHold       = 1000 * time.Microsecond
)

// Paddle is the state of one player's paddle.
type Paddle struct {
	// the row of the top cell of the paddle. the paddle covers Position to
	// Position+2
	Position int

	// the direction the paddle is moving in. it is derived from the held
	// buttons on every update and is not integrated
	Velocity int

	HoldUp   int
	HoldDown int
}

func (p Paddle) String() string {
	return fmt.Sprintf("pos=%d vel=%d hold=%d/%d", p.Position, p.Velocity, p.HoldUp, p.HoldDown)
}

// Ball is the position and velocity of the ball. The X axis runs from the
// left paddle to the right paddle and the Y axis is the row.
type Ball struct {
	X, Y   float64
	VX, VY int
}

func (b Ball) String() string {
	return fmt.Sprintf("x=%.2f y=%.2f vx=%d vy=%d", b.X, b.Y, b.VX, b.VY)
}

// Row is the matrix row the ball is in.
func (b Ball) Row() int {
	return cell(b.Y)
}

// Column is the matrix column the ball is in.
func (b Ball) Column() int {
	return cell(b.X)
}

// Match is the state of the current match.
type Match struct {
	WinsLeft  int
	WinsRight int

	// the time the current serve started
	ServeStart time.Duration

	// number of consecutive ticks the ball has stayed in LastRow
	Boredom int
	LastRow int
}

func (m Match) String() string {
	return fmt.Sprintf("%d-%d", m.WinsLeft, m.WinsRight)
}

// Won returns true if either side has reached the win threshold.
func (m Match) Won() bool {
	return m.WinsLeft >= WinThreshold || m.WinsRight >= WinThreshold
}

// cell converts a ball coordinate to a matrix index. halves round away from
// zero.
func cell(v float64) int {
	return int(math.Round(v))
}

// Winner returns the side that has won the match. The result is only
// meaningful if Won() returns true.
func (m Match) Winner() Side {
	if m.WinsRight >= WinThreshold {
		return SideRight
	}
	return SideLeft
}
