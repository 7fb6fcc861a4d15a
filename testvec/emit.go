package testvec

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// WriteBinary writes the expected FFT output line (when present) followed
// by one 0b-prefixed literal per vector, comma-separated.
func WriteBinary(w io.Writer, res *Result) error {
	var b strings.Builder

	if res.Reference != nil {
		parts := make([]string, len(res.Reference))
		for i, c := range res.Reference {
			parts[i] = FormatComplex(c)
		}
		fmt.Fprintf(&b, "Expected FFT output: [%s]\n", strings.Join(parts, ", "))
	}

	for i, v := range res.Vectors {
		sep := ","
		if i == len(res.Vectors)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, "0b%s%s\n", v.Bits(), sep)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteC writes the vectors as a C array initializer named name, one
// binary literal per line with its hex value as a trailing comment.
func WriteC(w io.Writer, res *Result, name string) error {
	width := 2 * res.Format.Width
	digits := (width + 3) / 4

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s[%d] = {\n", cType(width), name, len(res.Vectors))
	for i, v := range res.Vectors {
		sep := ", "
		if i == len(res.Vectors)-1 {
			sep = "  "
		}
		fmt.Fprintf(&b, "  0b%s%s// %0*X\n", v.Bits(), sep, digits, v.Word())
	}
	b.WriteString("};\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// FormatComplex renders c as "(re±imj)" with six decimals.
func FormatComplex(c complex128) string {
	return fmt.Sprintf("(%.6f%+.6fj)", cleanZero(real(c)), cleanZero(imag(c)))
}

// cleanZero maps values that print as ±0.000000 to +0.
func cleanZero(v float64) float64 {
	if math.Abs(v) < 5e-7 {
		return 0
	}
	return v
}

func cType(bits int) string {
	switch {
	case bits <= 8:
		return "uint8_t"
	case bits <= 16:
		return "uint16_t"
	case bits <= 32:
		return "uint32_t"
	default:
		return "uint64_t"
	}
}
