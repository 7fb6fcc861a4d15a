package fixedpoint

import (
	"fmt"
	"strings"
)

// Rounding selects how a scaled value is rounded to an integer code.
type Rounding int

const (
	// RoundHalfAway rounds to nearest, ties away from zero.
	RoundHalfAway Rounding = iota
	// RoundHalfEven rounds to nearest, ties to even.
	RoundHalfEven

	roundingCount
)

var roundingNames = [roundingCount]string{"HalfAway", "HalfEven"}

// String returns the name of the rounding mode.
func (r Rounding) String() string {
	if r.Valid() {
		return roundingNames[r]
	}
	return fmt.Sprintf("Rounding(%d)", r)
}

// Valid reports whether r is a known rounding mode.
func (r Rounding) Valid() bool {
	return r >= 0 && r < roundingCount
}

// ParseRounding maps "away" and "even" (case-insensitive) to a Rounding.
func ParseRounding(s string) (Rounding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "away", "halfaway", "half-away":
		return RoundHalfAway, nil
	case "even", "halfeven", "half-even":
		return RoundHalfEven, nil
	default:
		return 0, fmt.Errorf("fixedpoint: unknown rounding mode %q", s)
	}
}

// Overflow selects what happens to values outside the representable range.
type Overflow int

const (
	// OverflowError rejects out-of-range values with ErrQuantizationOverflow.
	OverflowError Overflow = iota
	// OverflowSaturate clamps out-of-range values to the nearest bound.
	OverflowSaturate

	overflowCount
)

var overflowNames = [overflowCount]string{"Error", "Saturate"}

// String returns the name of the overflow policy.
func (o Overflow) String() string {
	if o.Valid() {
		return overflowNames[o]
	}
	return fmt.Sprintf("Overflow(%d)", o)
}

// Valid reports whether o is a known overflow policy.
func (o Overflow) Valid() bool {
	return o >= 0 && o < overflowCount
}

// ParseOverflow maps "error" and "saturate" (case-insensitive) to an Overflow.
func ParseOverflow(s string) (Overflow, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return OverflowError, nil
	case "saturate", "sat":
		return OverflowSaturate, nil
	default:
		return 0, fmt.Errorf("fixedpoint: unknown overflow policy %q", s)
	}
}
