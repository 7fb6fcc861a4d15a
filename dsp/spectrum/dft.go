package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Backend selects the transform implementation used by [DFT].
type Backend int

const (
	// BackendAlgoFFT uses an algo-fft plan. Lengths the planner rejects
	// fall back to the direct sum.
	BackendAlgoFFT Backend = iota
	// BackendGonum uses gonum's mixed-radix complex FFT.
	BackendGonum
	// BackendDirect evaluates the O(N²) definition.
	BackendDirect

	backendCount
)

var backendNames = [backendCount]string{"algofft", "gonum", "direct"}

// String returns the flag name of the backend.
func (b Backend) String() string {
	if b.Valid() {
		return backendNames[b]
	}
	return fmt.Sprintf("Backend(%d)", b)
}

// Valid reports whether b is a known backend.
func (b Backend) Valid() bool {
	return b >= 0 && b < backendCount
}

// ParseBackend maps a backend name ("algofft", "gonum", "direct") to a Backend.
func ParseBackend(s string) (Backend, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range backendNames {
		if n == name {
			return Backend(i), nil
		}
	}
	return 0, fmt.Errorf("spectrum: unknown backend %q", s)
}

type config struct {
	backend Backend
}

// Option configures [DFT].
type Option func(*config) error

// WithBackend selects the transform backend (default [BackendAlgoFFT]).
func WithBackend(b Backend) Option {
	return func(cfg *config) error {
		if !b.Valid() {
			return fmt.Errorf("spectrum: invalid backend: %d", b)
		}
		cfg.backend = b
		return nil
	}
}

// DFT returns the unnormalized forward transform of x. The input is not
// modified. Empty input yields an empty result.
func DFT(x []complex128, opts ...Option) ([]complex128, error) {
	cfg := config{backend: BackendAlgoFFT}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if len(x) == 0 {
		return []complex128{}, nil
	}

	switch cfg.backend {
	case BackendGonum:
		return gonumDFT(x), nil
	case BackendDirect:
		return directDFT(x), nil
	default:
		return algoFFT(x)
	}
}

func algoFFT(x []complex128) ([]complex128, error) {
	plan, err := algofft.NewPlan64(len(x))
	if err != nil {
		return directDFT(x), nil //nolint:nilerr // unsupported length
	}

	in := make([]complex128, len(x))
	copy(in, x)
	out := make([]complex128, len(x))

	err = plan.Forward(out, in)
	if err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT: %w", err)
	}
	return out, nil
}

func gonumDFT(x []complex128) []complex128 {
	fft := fourier.NewCmplxFFT(len(x))
	return fft.Coefficients(nil, x)
}

func directDFT(x []complex128) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := range out {
		var sum complex128
		for i, v := range x {
			// k*i mod n keeps the twiddle argument small for large n.
			phase := -2 * math.Pi * float64((k*i)%n) / float64(n)
			sum += v * cmplx.Exp(complex(0, phase))
		}
		out[k] = sum
	}
	return out
}
