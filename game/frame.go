package game

import "strings"

// Frame is one full image of the matrix. Each entry is one row. Bit 7 of a row
// is column 0, on the left edge of the matrix.
type Frame [Size]uint8

func columnBit(col int) uint8 {
	return 0x80 >> col
}

// Set lights the cell. Cells outside the matrix are ignored.
func (f *Frame) Set(row int, col int) {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return
	}
	f[row] |= columnBit(col)
}

// Lit returns true if the cell is lit.
func (f Frame) Lit(row int, col int) bool {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return false
	}
	return f[row]&columnBit(col) != 0
}

// Column lights every cell in the column.
func (f *Frame) Column(col int) {
	for row := range Size {
		f.Set(row, col)
	}
}

// String returns the frame as eight lines of '#' and '.' characters.
func (f Frame) String() string {
	var s strings.Builder
	for row := range Size {
		for col := range Size {
			if f.Lit(row, col) {
				s.WriteByte('#')
			} else {
				s.WriteByte('.')
			}
		}
		s.WriteByte('\n')
	}
	return s.String()
}
