package gpio

import "math/bits"

// scan patterns are in row order, with row 0 in bit 0, but the lines are
// written most significant bit first
func bitsReverse(v uint8) uint8 {
	return bits.Reverse8(v)
}
