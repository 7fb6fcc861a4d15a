package fixedpoint

import "errors"

var (
	// ErrInvalidFormat is returned when a Format violates its width constraints.
	ErrInvalidFormat = errors.New("fixedpoint: invalid format")

	// ErrQuantizationOverflow is returned when a value does not fit the
	// representable range of a Format and the overflow policy is
	// [OverflowError], or when the value is NaN or infinite.
	ErrQuantizationOverflow = errors.New("fixedpoint: quantization overflow")

	// ErrInvalidBits is returned by [Decode] for malformed bit strings.
	ErrInvalidBits = errors.New("fixedpoint: invalid bit string")
)
