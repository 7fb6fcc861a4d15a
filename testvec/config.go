package testvec

import (
	"fmt"
	"math"

	"github.com/cwbudde/fftvec/dsp/fixedpoint"
	"github.com/cwbudde/fftvec/dsp/spectrum"
)

// Defaults reproduce the tail-stage FFT bring-up: an 8-point, 16 MHz tone
// sampled at 128 MHz in signed 16-bit words with 8 fractional bits.
const (
	DefaultSampleCount = 8
	DefaultInputFreq   = 16.0
	DefaultSampleFreq  = 128.0
)

// Config is an immutable, validated generator configuration.
type Config struct {
	sampleCount int
	inputFreq   float64
	sampleFreq  float64
	format      fixedpoint.Format
	rounding    fixedpoint.Rounding
	overflow    fixedpoint.Overflow
	backend     spectrum.Backend
	reference   bool
	debug       bool
}

// Option configures a [Config].
type Option func(*Config) error

// WithSampleCount sets the number of generated points (default 8). Zero is
// allowed and produces no vectors.
func WithSampleCount(n int) Option {
	return func(cfg *Config) error {
		if n < 0 {
			return fmt.Errorf("%w: sample count must be >= 0: %d", ErrInvalidConfig, n)
		}
		cfg.sampleCount = n
		return nil
	}
}

// WithInputFreq sets the tone frequency (default 16).
func WithInputFreq(freq float64) Option {
	return func(cfg *Config) error {
		if !positiveFinite(freq) {
			return fmt.Errorf("%w: input frequency must be > 0 and finite: %f", ErrInvalidConfig, freq)
		}
		cfg.inputFreq = freq
		return nil
	}
}

// WithSampleFreq sets the sampling frequency (default 128).
func WithSampleFreq(freq float64) Option {
	return func(cfg *Config) error {
		if !positiveFinite(freq) {
			return fmt.Errorf("%w: sample frequency must be > 0 and finite: %f", ErrInvalidConfig, freq)
		}
		cfg.sampleFreq = freq
		return nil
	}
}

// WithFormat sets the fixed-point format (default signed 16.8).
func WithFormat(f fixedpoint.Format) Option {
	return func(cfg *Config) error {
		if err := f.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		cfg.format = f
		return nil
	}
}

// WithRounding sets the quantizer rounding mode.
func WithRounding(r fixedpoint.Rounding) Option {
	return func(cfg *Config) error {
		if !r.Valid() {
			return fmt.Errorf("%w: rounding mode %v", ErrInvalidConfig, r)
		}
		cfg.rounding = r
		return nil
	}
}

// WithOverflow sets the quantizer overflow policy.
func WithOverflow(o fixedpoint.Overflow) Option {
	return func(cfg *Config) error {
		if !o.Valid() {
			return fmt.Errorf("%w: overflow policy %v", ErrInvalidConfig, o)
		}
		cfg.overflow = o
		return nil
	}
}

// WithBackend selects the FFT backend for the reference output.
func WithBackend(b spectrum.Backend) Option {
	return func(cfg *Config) error {
		if !b.Valid() {
			return fmt.Errorf("%w: backend %v", ErrInvalidConfig, b)
		}
		cfg.backend = b
		return nil
	}
}

// WithReference enables computing the expected FFT output (default true).
func WithReference(enabled bool) Option {
	return func(cfg *Config) error {
		cfg.reference = enabled
		return nil
	}
}

// WithDebug enables per-sample debug logging (default false).
func WithDebug(enabled bool) Option {
	return func(cfg *Config) error {
		cfg.debug = enabled
		return nil
	}
}

// NewConfig returns a validated configuration. Any option error wraps
// ErrInvalidConfig.
func NewConfig(opts ...Option) (Config, error) {
	cfg := Config{
		sampleCount: DefaultSampleCount,
		inputFreq:   DefaultInputFreq,
		sampleFreq:  DefaultSampleFreq,
		format:      fixedpoint.Signed16Q8,
		rounding:    fixedpoint.RoundHalfAway,
		overflow:    fixedpoint.OverflowError,
		backend:     spectrum.BackendAlgoFFT,
		reference:   true,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

// SampleCount returns the number of generated points.
func (c Config) SampleCount() int { return c.sampleCount }

// InputFreq returns the tone frequency.
func (c Config) InputFreq() float64 { return c.inputFreq }

// SampleFreq returns the sampling frequency.
func (c Config) SampleFreq() float64 { return c.sampleFreq }

// Format returns the fixed-point format.
func (c Config) Format() fixedpoint.Format { return c.format }

// Rounding returns the quantizer rounding mode.
func (c Config) Rounding() fixedpoint.Rounding { return c.rounding }

// Overflow returns the quantizer overflow policy.
func (c Config) Overflow() fixedpoint.Overflow { return c.overflow }

// Backend returns the reference FFT backend.
func (c Config) Backend() spectrum.Backend { return c.backend }

// Reference reports whether the expected FFT output is computed.
func (c Config) Reference() bool { return c.reference }

// Debug reports whether per-sample values are logged.
func (c Config) Debug() bool { return c.debug }

// Quantizer builds the quantizer described by the configuration.
func (c Config) Quantizer() (*fixedpoint.Quantizer, error) {
	return fixedpoint.NewQuantizer(c.format,
		fixedpoint.WithRounding(c.rounding),
		fixedpoint.WithOverflow(c.overflow))
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
