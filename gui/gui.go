// Package gui defines how the board communicates with a GUI. It does not
// depend on any particular toolkit. The gui/ebiten and gui/terminal packages
// implement GUIs using this package.
package gui

import "strings"

// Frame is a complete image of the LED matrix. Each entry is one row of the
// matrix from top to bottom. Bit 7 of the row is the left most LED.
type Frame [8]uint8

// Lit returns true if the LED at the row and column is lit.
func (f Frame) Lit(row int, col int) bool {
	if row < 0 || row >= len(f) || col < 0 || col >= 8 {
		return false
	}
	return f[row]&(0x80>>col) != 0
}

func (f Frame) String() string {
	var s strings.Builder
	for row := range len(f) {
		for col := range 8 {
			if f.Lit(row, col) {
				s.WriteRune('●')
			} else {
				s.WriteRune('·')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}

// GUI is the communication channels between the board and the GUI.
type GUI struct {
	// the board sends completed frames on the SetImage channel. sending is non
	// blocking so a GUI will only ever see the most recent frame
	SetImage chan Frame

	// user input is sent by the GUI. the board drains the channel before every
	// tick
	UserInput chan Input
}

// NewGUI creates a new GUI instance with the channels initialised.
func NewGUI() *GUI {
	return &GUI{
		SetImage:  make(chan Frame, 1),
		UserInput: make(chan Input, 16),
	}
}
