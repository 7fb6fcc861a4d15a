package testvec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/fftvec/dsp/fixedpoint"
)

// Mismatch describes one readback component outside tolerance.
type Mismatch struct {
	Index int
	Part  string // "real" or "imag"
	Got   int64
	Want  int64
}

// String returns a one-line description of the mismatch.
func (m Mismatch) String() string {
	return fmt.Sprintf("bin %d %s: got %d, want %d (off by %d LSB)", m.Index, m.Part, m.Got, m.Want, abs64(m.Got-m.Want))
}

// CheckReadback compares hardware output words against expected bins.
// Each word carries the real code in its upper half and the imaginary code
// in its lower half, in q's format. Components that differ from the
// quantized expectation by more than maxLSB codes are reported.
func CheckReadback(q *fixedpoint.Quantizer, expected []complex128, words []uint64, maxLSB int64) ([]Mismatch, error) {
	if maxLSB < 0 {
		return nil, fmt.Errorf("testvec: readback tolerance must be >= 0: %d", maxLSB)
	}
	if len(words) != len(expected) {
		return nil, fmt.Errorf("%w: got %d words, want %d", ErrReadbackLength, len(words), len(expected))
	}

	width := 2 * q.Format().Width
	var out []Mismatch
	for i, e := range expected {
		if width < 64 && words[i]>>width != 0 {
			return nil, fmt.Errorf("%w: word %d is %#x, limit is %d bits", ErrReadbackWidth, i, words[i], width)
		}

		want, err := BuildVector(q, e)
		if err != nil {
			return nil, fmt.Errorf("testvec: expected bin %d: %w", i, err)
		}
		got := VectorFromWord(words[i], q.Format())

		if d := got.Real.Value - want.Real.Value; abs64(d) > maxLSB {
			out = append(out, Mismatch{Index: i, Part: "real", Got: got.Real.Value, Want: want.Real.Value})
		}
		if d := got.Imag.Value - want.Imag.Value; abs64(d) > maxLSB {
			out = append(out, Mismatch{Index: i, Part: "imag", Got: got.Imag.Value, Want: want.Imag.Value})
		}
	}
	return out, nil
}

// ParseWords parses a comma- or space-separated list of readback words
// for format f. Tokens are hexadecimal, with an optional 0x prefix. A
// token is read as binary only when it carries a 0b prefix followed by
// more binary digits than a hex word of f has characters, so bare hex
// words such as 0B000100 stay hexadecimal.
func ParseWords(s string, f fixedpoint.Format) ([]uint64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	hexDigits := (2*f.Width + 3) / 4

	out := make([]uint64, 0, len(fields))
	for _, tok := range fields {
		digits, base := tok, 16
		switch lower := strings.ToLower(tok); {
		case strings.HasPrefix(lower, "0x"):
			digits = tok[2:]
		case strings.HasPrefix(lower, "0b") && len(tok)-2 > hexDigits && isBinary(tok[2:]):
			digits, base = tok[2:], 2
		}

		v, err := strconv.ParseUint(digits, base, 64)
		if err != nil {
			return nil, fmt.Errorf("testvec: bad readback word %q: %w", tok, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func isBinary(s string) bool {
	for _, r := range s {
		if r != '0' && r != '1' {
			return false
		}
	}
	return true
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
