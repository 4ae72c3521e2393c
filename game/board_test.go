package game

import (
	"math/rand/v2"
	"testing"
	"time"
)

// board is a Hardware implementation for testing. the clock only advances
// when Delay() is called or when the test changes it
type board struct {
	now      time.Duration
	inputs   map[Channel]bool
	rows     []uint8
	enables  []uint8
	restarts int
}

func newBoard() *board {
	return &board{inputs: make(map[Channel]bool)}
}

func (b *board) Now() time.Duration {
	return b.now
}

func (b *board) Delay(d time.Duration) {
	b.now += d
}

func (b *board) ReadDigital(ch Channel) bool {
	return b.inputs[ch]
}

func (b *board) SetRowDriver(pattern uint8) {
	b.rows = append(b.rows, pattern)
}

func (b *board) SetColumnEnable(pattern uint8) {
	b.enables = append(b.enables, pattern)
}

func (b *board) Restart() {
	b.restarts++
}

func newTestGame(t *testing.T, left Controller) (*Game, *board) {
	t.Helper()
	b := newBoard()
	return NewGame(b, rand.New(rand.NewPCG(0, 0)), left), b
}
