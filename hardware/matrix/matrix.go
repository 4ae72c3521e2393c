// Package matrix emulates an 8x8 LED matrix driven by multiplexing.
//
// The matrix has eight data lines, one per column, and eight scan lines, one
// per row. The scan lines are active low. Only the row selected by the scan
// lines shows the pattern on the data lines, so a complete image is built up
// by selecting each row in turn. The emulation latches the data for the
// selected row and publishes the image every time the bottom row is latched.
package matrix

import (
	"math/bits"

	"github.com/jetsetilly/matrixpong/gui"
)

// Matrix is the emulated LED matrix.
type Matrix struct {
	// the pattern currently on the data lines
	data uint8

	// the pattern last latched for each row. this is the persistence of the
	// LEDs in the emulation
	rows gui.Frame

	// the most recently completed frame
	frame gui.Frame

	// completed frames are sent to the GUI on this channel. the channel may be
	// nil
	out chan gui.Frame

	// the number of completed frames
	Frames int
}

// NewMatrix creates a new Matrix. Completed frames are sent to the channel
// without blocking. The channel can be nil.
func NewMatrix(out chan gui.Frame) *Matrix {
	return &Matrix{out: out}
}

// Blank clears the matrix, as happens when the board is powered on.
func (mx *Matrix) Blank() {
	mx.data = 0
	mx.rows = gui.Frame{}
	mx.frame = gui.Frame{}
	mx.Frames = 0
	mx.publish()
}

// SetRowDriver puts the pattern on the data lines.
func (mx *Matrix) SetRowDriver(pattern uint8) {
	mx.data = pattern
}

// SetColumnEnable drives the scan lines. A pattern with anything other than a
// single low bit selects no row.
func (mx *Matrix) SetColumnEnable(pattern uint8) {
	sel := ^pattern
	if bits.OnesCount8(sel) != 1 {
		return
	}

	row := bits.TrailingZeros8(sel)
	mx.rows[row] = mx.data

	if row == len(mx.rows)-1 {
		mx.frame = mx.rows
		mx.Frames++
		mx.publish()
	}
}

func (mx *Matrix) publish() {
	if mx.out == nil {
		return
	}

	// if the GUI hasn't collected the previous frame then replace it with the
	// new frame
	select {
	case <-mx.out:
	default:
	}
	select {
	case mx.out <- mx.frame:
	default:
	}
}

// Snapshot returns the most recently completed frame.
func (mx *Matrix) Snapshot() gui.Frame {
	return mx.frame
}
