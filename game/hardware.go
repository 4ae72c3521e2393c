package game

import "time"

// Channel identifies one of the digital input channels read by the game.
type Channel int

// List of valid Channel values. "Up" raises the paddle's row index, which is
// towards the bottom edge of the matrix.
const (
	Player1Up Channel = iota
	Player1Down
	Player2Up
	Player2Down
)

func (ch Channel) String() string {
	switch ch {
	case Player1Up:
		return "P1 up"
	case Player1Down:
		return "P1 down"
	case Player2Up:
		return "P2 up"
	case Player2Down:
		return "P2 down"
	}
	return "unknown channel"
}

// Hardware is everything the game needs from the board it runs on.
type Hardware interface {
	// Now returns the time since the board was powered on
	Now() time.Duration

	// Delay blocks for the duration
	Delay(d time.Duration)

	// ReadDigital returns true if the channel is asserted
	ReadDigital(ch Channel) bool

	// SetRowDriver puts the pattern on the matrix data lines. bit 7 drives
	// column 0
	SetRowDriver(pattern uint8)

	// SetColumnEnable selects the scan line(s) of the matrix. the lines are
	// active low
	SetColumnEnable(pattern uint8)

	// Restart is a hard reset of the board. the game state is discarded and
	// the program re-enters from power on
	Restart()
}
