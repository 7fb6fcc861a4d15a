package fixedpoint

import (
	"fmt"
	"math"
)

// Quantizer maps real values onto the grid of a fixed-point Format.
type Quantizer struct {
	format   Format
	rounding Rounding
	overflow Overflow

	// derived from format
	scale   int
	minCode float64
	maxCode float64
}

// NewQuantizer creates a Quantizer for format. The default configuration
// rounds half away from zero and rejects out-of-range values.
func NewQuantizer(format Format, opts ...Option) (*Quantizer, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}

	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		err := opt(&cfg)
		if err != nil {
			return nil, err
		}
	}

	return &Quantizer{
		format:   format,
		rounding: cfg.rounding,
		overflow: cfg.overflow,
		scale:    format.Frac,
		minCode:  float64(format.MinCode()),
		maxCode:  float64(format.MaxCode()),
	}, nil
}

// Quantize rounds v to the nearest code of the quantizer's format.
//
// Values whose rounded code lies outside [MinCode, MaxCode] fail with
// ErrQuantizationOverflow, or are clamped when the policy is
// OverflowSaturate. NaN and infinities always fail.
func (q *Quantizer) Quantize(v float64) (Code, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Code{}, fmt.Errorf("%w: non-finite value %v", ErrQuantizationOverflow, v)
	}

	r := q.round(math.Ldexp(v, q.scale))

	if r < q.minCode || r > q.maxCode {
		if q.overflow != OverflowSaturate {
			return Code{}, fmt.Errorf("%w: %v outside [%v, %v] for %s",
				ErrQuantizationOverflow, v, q.format.MinValue(), q.format.MaxValue(), q.format)
		}

		r = max(q.minCode, min(q.maxCode, r))
	}

	return Code{Value: int64(r), Format: q.format}, nil
}

// Snap returns v rounded onto the quantizer's grid as a float64.
func (q *Quantizer) Snap(v float64) (float64, error) {
	c, err := q.Quantize(v)
	if err != nil {
		return 0, err
	}

	return c.Float(), nil
}

// SnapComplex snaps the real and imaginary parts of v independently.
func (q *Quantizer) SnapComplex(v complex128) (complex128, error) {
	re, err := q.Snap(real(v))
	if err != nil {
		return 0, fmt.Errorf("real part: %w", err)
	}

	im, err := q.Snap(imag(v))
	if err != nil {
		return 0, fmt.Errorf("imaginary part: %w", err)
	}

	return complex(re, im), nil
}

func (q *Quantizer) round(x float64) float64 {
	if q.rounding == RoundHalfEven {
		return math.RoundToEven(x)
	}

	return math.Round(x)
}

// Format returns the target format.
func (q *Quantizer) Format() Format { return q.format }

// Rounding returns the rounding mode.
func (q *Quantizer) Rounding() Rounding { return q.rounding }

// Overflow returns the overflow policy.
func (q *Quantizer) Overflow() Overflow { return q.overflow }
