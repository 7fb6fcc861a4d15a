package signal

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Generator creates deterministic complex tones at a fixed sample rate.
type Generator struct {
	sampleRate float64
	startIndex int
	amplitude  float64
}

// Option configures a Generator.
type Option func(*Generator)

// WithStartIndex sets the index of the first generated sample (default 1).
func WithStartIndex(n int) Option {
	return func(g *Generator) {
		g.startIndex = n
	}
}

// WithAmplitude sets the tone magnitude (default 1).
func WithAmplitude(amplitude float64) Option {
	return func(g *Generator) {
		g.amplitude = amplitude
	}
}

// NewGenerator creates a tone generator for sampleRate.
func NewGenerator(sampleRate float64, opts ...Option) (*Generator, error) {
	if !positiveFinite(sampleRate) {
		return nil, fmt.Errorf("signal: sample rate must be > 0 and finite: %f", sampleRate)
	}

	g := &Generator{
		sampleRate: sampleRate,
		startIndex: 1,
		amplitude:  1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	if math.IsNaN(g.amplitude) || math.IsInf(g.amplitude, 0) {
		return nil, fmt.Errorf("signal: amplitude must be finite: %f", g.amplitude)
	}

	return g, nil
}

// SampleRate returns the configured sample rate.
func (g *Generator) SampleRate() float64 { return g.sampleRate }

// StartIndex returns the index of the first generated sample.
func (g *Generator) StartIndex() int { return g.startIndex }

// Amplitude returns the tone magnitude.
func (g *Generator) Amplitude() float64 { return g.amplitude }

// ComplexTone returns samples points of A*exp(-2πj*(freqHz/fs)*n) for
// n = start, start+1, ... in ascending order. Zero samples yields an
// empty slice.
func (g *Generator) ComplexTone(freqHz float64, samples int) ([]complex128, error) {
	if samples < 0 {
		return nil, fmt.Errorf("signal: tone samples must be >= 0: %d", samples)
	}
	if !positiveFinite(freqHz) {
		return nil, fmt.Errorf("signal: tone frequency must be > 0 and finite: %f", freqHz)
	}

	out := make([]complex128, samples)
	step := -2 * math.Pi * (freqHz / g.sampleRate)
	amp := complex(g.amplitude, 0)
	for i := range out {
		n := float64(g.startIndex + i)
		out[i] = amp * cmplx.Exp(complex(0, step*n))
	}
	return out, nil
}

// ComplexTone is shorthand for a unit-amplitude tone starting at n = 1.
func ComplexTone(samples int, freqHz, sampleRate float64) ([]complex128, error) {
	g, err := NewGenerator(sampleRate)
	if err != nil {
		return nil, err
	}
	return g.ComplexTone(freqHz, samples)
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
