//go:build linux

// Package gpio is a board made from an LED matrix and two sets of buttons
// wired to the GPIO pins of a Linux single board computer. The pins are driven
// through the GPIO character device.
package gpio

import (
	"fmt"

	"github.com/jetsetilly/matrixpong/game"
	"github.com/jetsetilly/matrixpong/hardware/clocks"
	"github.com/jetsetilly/matrixpong/logger"
	"github.com/warthog618/go-gpiocdev"
)

// Pins is the wiring of the board. Values are line offsets on the GPIO chip.
type Pins struct {
	// the data lines. the first entry is column 0
	Data [8]int

	// the scan lines. the first entry is row 0
	Scan [8]int

	// the buttons. indexed by game.Channel
	Buttons [4]int
}

// DefaultPins is the wiring used by the reference board, using the GPIO
// numbering of the Raspberry Pi header.
var DefaultPins = Pins{
	Data:    [8]int{2, 3, 4, 17, 27, 22, 10, 9},
	Scan:    [8]int{11, 5, 6, 13, 19, 26, 14, 15},
	Buttons: [4]int{18, 23, 24, 25},
}

// Board implements the hardware.Board interface with real hardware.
type Board struct {
	*clocks.Wall

	data    *gpiocdev.Lines
	scan    *gpiocdev.Lines
	buttons [4]*gpiocdev.Line

	// reused by setLines() to avoid allocation in the refresh loop
	values [8]int
}

// NewBoard requests all the lines used by the board. Any lines already
// requested are released if there is an error.
func NewBoard(chip string, pins Pins) (*Board, error) {
	b := &Board{
		Wall: clocks.NewWall(),
	}

	var err error

	b.data, err = gpiocdev.RequestLines(chip, pins.Data[:], gpiocdev.AsOutput(0, 0, 0, 0, 0, 0, 0, 0),
		gpiocdev.WithConsumer("matrixpong"))
	if err != nil {
		return nil, fmt.Errorf("gpio: data lines: %w", err)
	}

	// scan lines are active low so they start high
	b.scan, err = gpiocdev.RequestLines(chip, pins.Scan[:], gpiocdev.AsOutput(1, 1, 1, 1, 1, 1, 1, 1),
		gpiocdev.WithConsumer("matrixpong"))
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("gpio: scan lines: %w", err)
	}

	for i, offset := range pins.Buttons {
		b.buttons[i], err = gpiocdev.RequestLine(chip, offset, gpiocdev.AsInput, gpiocdev.WithPullUp,
			gpiocdev.AsActiveLow, gpiocdev.WithConsumer("matrixpong"))
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("gpio: %s button: %w", game.Channel(i), err)
		}
	}

	logger.Logf(logger.Allow, "gpio", "lines requested on %s", chip)

	return b, nil
}

// Close releases all lines.
func (b *Board) Close() error {
	var failed error

	if b.data != nil {
		if err := b.data.Close(); err != nil {
			failed = err
		}
		b.data = nil
	}
	if b.scan != nil {
		if err := b.scan.Close(); err != nil {
			failed = err
		}
		b.scan = nil
	}
	for i, l := range b.buttons {
		if l == nil {
			continue
		}
		if err := l.Close(); err != nil {
			failed = err
		}
		b.buttons[i] = nil
	}

	if failed != nil {
		return fmt.Errorf("gpio: %w", failed)
	}
	return nil
}

// PowerOn implements the hardware.Board interface.
func (b *Board) PowerOn() {
	b.Wall.Reset()
	b.SetColumnEnable(0xff)
	b.SetRowDriver(0x00)
}

func (b *Board) setLines(l *gpiocdev.Lines, pattern uint8) {
	if l == nil {
		return
	}
	for i := range b.values {
		b.values[i] = int(pattern>>(7-i)) & 0x01
	}
	if err := l.SetValues(b.values[:]); err != nil {
		logger.Log(logger.Allow, "gpio", err)
	}
}

// SetRowDriver implements the hardware.Board interface. Bit 7 of the pattern
// is written to the first data line.
func (b *Board) SetRowDriver(pattern uint8) {
	b.setLines(b.data, pattern)
}

// SetColumnEnable implements the hardware.Board interface. The scan lines are
// in row order so bit 0 of the pattern is written to the first scan line.
func (b *Board) SetColumnEnable(pattern uint8) {
	b.setLines(b.scan, bitsReverse(pattern))
}

// ReadDigital implements the hardware.Board interface. The buttons are active
// low and a line that can't be read counts as a released button.
func (b *Board) ReadDigital(ch game.Channel) bool {
	if ch < 0 || int(ch) >= len(b.buttons) || b.buttons[ch] == nil {
		return false
	}
	v, err := b.buttons[ch].Value()
	if err != nil {
		logger.Logf(logger.Allow, "gpio", "%s: %v", ch, err)
		return false
	}
	return v == 1
}
