package testutil

import "math"

// UnitTone computes amplitude*exp(-2πj*(freq/fs)*n) for n = 1..length
// with math.Sincos, independently of the signal package.
func UnitTone(length int, amplitude, freq, fs float64) []complex128 {
	out := make([]complex128, length)
	for i := range out {
		s, c := math.Sincos(-2 * math.Pi * freq / fs * float64(i+1))
		out[i] = complex(amplitude*c, amplitude*s)
	}
	return out
}

// ComplexImpulse generates a unit impulse at the given position.
func ComplexImpulse(length, pos int) []complex128 {
	out := make([]complex128, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// ComplexDC generates a constant-valued sequence.
func ComplexDC(value complex128, length int) []complex128 {
	out := make([]complex128, length)
	for i := range out {
		out[i] = value
	}
	return out
}
