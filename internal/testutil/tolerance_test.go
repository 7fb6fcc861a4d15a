package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiffComplex(t *testing.T) {
	a := []complex128{1, 2i, 3}
	b := []complex128{1, 2i, 3 + 0.1i}

	d, err := MaxAbsDiffComplex(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiffComplex error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiffComplex = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffComplexLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiffComplex([]complex128{1}, []complex128{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestMaxAbsDiffComplexIdentical(t *testing.T) {
	a := []complex128{1 - 1i, 2, 3i}

	d, err := MaxAbsDiffComplex(a, a)
	if err != nil {
		t.Fatalf("MaxAbsDiffComplex error: %v", err)
	}

	if d != 0 {
		t.Fatalf("MaxAbsDiffComplex = %v, want 0 for identical slices", d)
	}
}
