package fixedpoint

import (
	"fmt"
	"math"
)

const (
	// MinWidth is the smallest supported total width.
	MinWidth = 1
	// MaxWidth is the largest supported total width. Two components of a
	// test vector must fit in one 64-bit word.
	MaxWidth = 32
)

// Format describes a fixed-point encoding.
type Format struct {
	Signed bool
	Width  int // total bits, sign included
	Frac   int // fractional bits
}

// NewFormat returns a validated Format.
func NewFormat(signed bool, width, frac int) (Format, error) {
	f := Format{Signed: signed, Width: width, Frac: frac}
	if err := f.Validate(); err != nil {
		return Format{}, err
	}

	return f, nil
}

// Signed16Q8 is the 16-bit signed format with 8 fractional bits used by
// the tail-stage FFT block.
var Signed16Q8 = Format{Signed: true, Width: 16, Frac: 8}

// Validate reports whether f satisfies MinWidth <= Width <= MaxWidth and
// 0 <= Frac <= Width.
func (f Format) Validate() error {
	if f.Width < MinWidth || f.Width > MaxWidth {
		return fmt.Errorf("%w: width must be in [%d, %d]: %d", ErrInvalidFormat, MinWidth, MaxWidth, f.Width)
	}

	if f.Frac < 0 || f.Frac > f.Width {
		return fmt.Errorf("%w: fractional bits must be in [0, %d]: %d", ErrInvalidFormat, f.Width, f.Frac)
	}

	return nil
}

// IntBits returns the number of integer (non-fractional, non-sign) bits.
// It is -1 for a signed format with Frac == Width.
func (f Format) IntBits() int {
	n := f.Width - f.Frac
	if f.Signed {
		n--
	}

	return n
}

// MinCode returns the smallest representable integer code.
func (f Format) MinCode() int64 {
	if !f.Signed {
		return 0
	}

	return -(int64(1) << (f.Width - 1))
}

// MaxCode returns the largest representable integer code.
func (f Format) MaxCode() int64 {
	if !f.Signed {
		return int64(1)<<f.Width - 1
	}

	return int64(1)<<(f.Width-1) - 1
}

// Resolution returns the value of one least-significant bit, 2^-Frac.
func (f Format) Resolution() float64 {
	return math.Ldexp(1, -f.Frac)
}

// MinValue returns the smallest representable real value.
func (f Format) MinValue() float64 {
	return math.Ldexp(float64(f.MinCode()), -f.Frac)
}

// MaxValue returns the largest representable real value.
func (f Format) MaxValue() float64 {
	return math.Ldexp(float64(f.MaxCode()), -f.Frac)
}

func (f Format) mask() uint64 {
	return uint64(1)<<f.Width - 1
}

// String returns a compact description such as "s16.8" or "u8.8".
func (f Format) String() string {
	sign := "u"
	if f.Signed {
		sign = "s"
	}

	return fmt.Sprintf("%s%d.%d", sign, f.Width, f.Frac)
}
