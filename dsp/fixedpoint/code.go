package fixedpoint

import (
	"fmt"
	"math"
	"strconv"
)

// Code is a quantized value: an integer code interpreted in Format as
// Value * 2^-Frac.
type Code struct {
	Value  int64
	Format Format
}

// Float returns the real value represented by c.
func (c Code) Float() float64 {
	return math.Ldexp(float64(c.Value), -c.Format.Frac)
}

// Word returns the raw Width-bit pattern of c, two's-complement for
// negative signed values, in the low bits of a uint64.
func (c Code) Word() uint64 {
	return uint64(c.Value) & c.Format.mask()
}

// Bits returns exactly Format.Width characters of '0' and '1', most
// significant bit first.
func (c Code) Bits() string {
	w := c.Word()
	buf := make([]byte, c.Format.Width)
	for i := len(buf) - 1; i >= 0; i-- {
		buf[i] = '0' + byte(w&1)
		w >>= 1
	}

	return string(buf)
}

// String returns the bit pattern with its format, e.g. "0000000010110101 (s16.8)".
func (c Code) String() string {
	return fmt.Sprintf("%s (%s)", c.Bits(), c.Format)
}

// FromWord interprets the low Format.Width bits of word as a code,
// sign-extending when the format is signed. Higher bits are ignored.
func FromWord(word uint64, f Format) Code {
	word &= f.mask()

	v := int64(word)
	if f.Signed && word>>(f.Width-1)&1 == 1 {
		v -= int64(1) << f.Width
	}

	return Code{Value: v, Format: f}
}

// Decode parses a bit string produced by [Code.Bits].
func Decode(bits string, f Format) (Code, error) {
	if err := f.Validate(); err != nil {
		return Code{}, err
	}

	if len(bits) != f.Width {
		return Code{}, fmt.Errorf("%w: got %d bits, want %d", ErrInvalidBits, len(bits), f.Width)
	}

	word, err := strconv.ParseUint(bits, 2, 64)
	if err != nil {
		return Code{}, fmt.Errorf("%w: %q", ErrInvalidBits, bits)
	}

	return FromWord(word, f), nil
}
