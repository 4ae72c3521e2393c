package gpio

import (
	"testing"

	"github.com/jetsetilly/matrixpong/test"
)

func TestBitsReverse(t *testing.T) {
	test.ExpectEquality(t, bitsReverse(0x01), 0x80)
	test.ExpectEquality(t, bitsReverse(0xfe), 0x7f)
	test.ExpectEquality(t, bitsReverse(0x00), 0x00)
	test.ExpectEquality(t, bitsReverse(0xa0), 0x05)
}
