package signal

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/fftvec/internal/testutil"
)

func TestComplexToneLength(t *testing.T) {
	g, err := NewGenerator(128)
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}
	s, err := g.ComplexTone(16, 8)
	if err != nil {
		t.Fatalf("ComplexTone() error = %v", err)
	}
	if len(s) != 8 {
		t.Fatalf("len = %d, want 8", len(s))
	}
}

func TestComplexToneUnitMagnitude(t *testing.T) {
	for _, tc := range []struct{ f, fs float64 }{{16, 128}, {1, 3}, {1000, 48000}, {97, 100}} {
		s, err := ComplexTone(64, tc.f, tc.fs)
		if err != nil {
			t.Fatal(err)
		}
		for i, v := range s {
			if d := math.Abs(cmplx.Abs(v) - 1); d > 1e-12 {
				t.Fatalf("f=%v fs=%v n=%d: |x| = %v", tc.f, tc.fs, i+1, cmplx.Abs(v))
			}
		}
	}
}

func TestComplexToneFirstSample(t *testing.T) {
	s, err := ComplexTone(8, 16, 128)
	if err != nil {
		t.Fatal(err)
	}

	// n = 1 is exp(-jπ/4).
	want := complex(math.Sqrt2/2, -math.Sqrt2/2)
	if cmplx.Abs(s[0]-want) > 1e-12 {
		t.Fatalf("s[0] = %v, want %v", s[0], want)
	}

	// n = 8 closes the full turn.
	if cmplx.Abs(s[7]-1) > 1e-12 {
		t.Fatalf("s[7] = %v, want 1", s[7])
	}
}

func TestComplexToneMatchesReference(t *testing.T) {
	got, err := ComplexTone(32, 5, 77)
	if err != nil {
		t.Fatal(err)
	}
	want := testutil.UnitTone(32, 1, 5, 77)
	testutil.RequireComplexNearlyEqual(t, got, want, 1e-12)
}

func TestComplexToneEmpty(t *testing.T) {
	s, err := ComplexTone(0, 16, 128)
	if err != nil {
		t.Fatalf("ComplexTone(0) error = %v", err)
	}
	if s == nil || len(s) != 0 {
		t.Fatalf("ComplexTone(0) = %v, want empty non-nil slice", s)
	}
}

func TestComplexToneValidation(t *testing.T) {
	tests := []struct {
		name    string
		samples int
		f, fs   float64
	}{
		{"negative samples", -1, 16, 128},
		{"zero freq", 8, 0, 128},
		{"negative freq", 8, -16, 128},
		{"inf freq", 8, math.Inf(1), 128},
		{"nan freq", 8, math.NaN(), 128},
		{"zero fs", 8, 16, 0},
		{"nan fs", 8, 16, math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ComplexTone(tt.samples, tt.f, tt.fs); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestGeneratorOptions(t *testing.T) {
	g, err := NewGenerator(8, WithStartIndex(0), WithAmplitude(0.5), nil)
	if err != nil {
		t.Fatal(err)
	}
	if g.StartIndex() != 0 || g.Amplitude() != 0.5 || g.SampleRate() != 8 {
		t.Fatalf("options not applied: start=%d amp=%v fs=%v", g.StartIndex(), g.Amplitude(), g.SampleRate())
	}

	s, err := g.ComplexTone(2, 4)
	if err != nil {
		t.Fatal(err)
	}
	// n = 0 is the amplitude itself, n = 1 a quarter turn clockwise, n = 2 a half turn.
	if cmplx.Abs(s[0]-0.5) > 1e-12 || cmplx.Abs(s[1]-complex(0, -0.5)) > 1e-12 || cmplx.Abs(s[2]+0.5) > 1e-12 {
		t.Fatalf("unexpected tone %v", s)
	}

	if _, err := NewGenerator(8, WithAmplitude(math.NaN())); err == nil {
		t.Fatal("NaN amplitude should fail")
	}
}
