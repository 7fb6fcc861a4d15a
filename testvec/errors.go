package testvec

import "errors"

var (
	// ErrInvalidConfig is returned by NewConfig for out-of-range parameters.
	ErrInvalidConfig = errors.New("testvec: invalid configuration")

	// ErrReadbackLength is returned when the number of readback words does
	// not match the number of expected bins.
	ErrReadbackLength = errors.New("testvec: readback length mismatch")

	// ErrReadbackWidth is returned for readback words with bits set above
	// twice the component width.
	ErrReadbackWidth = errors.New("testvec: readback word too wide")
)
