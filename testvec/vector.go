package testvec

import (
	"fmt"

	"github.com/cwbudde/fftvec/dsp/fixedpoint"
)

// Vector is one hardware input word: the real code followed by the
// imaginary code.
type Vector struct {
	Real fixedpoint.Code
	Imag fixedpoint.Code
}

// BuildVector quantizes both parts of sample with q.
func BuildVector(q *fixedpoint.Quantizer, sample complex128) (Vector, error) {
	re, err := q.Quantize(real(sample))
	if err != nil {
		return Vector{}, fmt.Errorf("real part of %v: %w", sample, err)
	}

	im, err := q.Quantize(imag(sample))
	if err != nil {
		return Vector{}, fmt.Errorf("imaginary part of %v: %w", sample, err)
	}

	return Vector{Real: re, Imag: im}, nil
}

// VectorFromWord splits a hardware word into its real (upper) and
// imaginary (lower) components.
func VectorFromWord(word uint64, f fixedpoint.Format) Vector {
	return Vector{
		Real: fixedpoint.FromWord(word>>f.Width, f),
		Imag: fixedpoint.FromWord(word, f),
	}
}

// Width returns the vector width in bits, twice the component width.
func (v Vector) Width() int { return 2 * v.Real.Format.Width }

// Bits returns the concatenated bit string, real bits first.
func (v Vector) Bits() string {
	return v.Real.Bits() + v.Imag.Bits()
}

// Word returns the vector as an unsigned integer with the real code in
// the upper half.
func (v Vector) Word() uint64 {
	return v.Real.Word()<<v.Real.Format.Width | v.Imag.Word()
}

// Complex returns the snapped complex value the vector encodes.
func (v Vector) Complex() complex128 {
	return complex(v.Real.Float(), v.Imag.Float())
}
