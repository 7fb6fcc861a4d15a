package testvec

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cwbudde/fftvec/dsp/fixedpoint"
	"github.com/cwbudde/fftvec/dsp/signal"
	"github.com/cwbudde/fftvec/dsp/spectrum"
)

// Result holds everything one generator run produced.
type Result struct {
	Format    fixedpoint.Format
	Samples   []complex128
	Vectors   []Vector
	Reference []complex128 // nil unless the configuration enables it
}

// Generate runs the tone → quantize → vector pipeline described by cfg.
// It either returns a complete Result or an error; there are no partial
// results. Per-sample values are logged at debug level when cfg.Debug()
// is set.
func Generate(cfg Config, logger zerolog.Logger) (*Result, error) {
	q, err := cfg.Quantizer()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	samples, err := signal.ComplexTone(cfg.SampleCount(), cfg.InputFreq(), cfg.SampleFreq())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	vectors := make([]Vector, len(samples))
	for i, s := range samples {
		v, err := BuildVector(q, s)
		if err != nil {
			return nil, fmt.Errorf("testvec: point %d: %w", i+1, err)
		}
		vectors[i] = v

		if cfg.Debug() {
			logger.Debug().
				Int("point", i+1).
				Float64("real", real(s)).
				Float64("real_fp", v.Real.Float()).
				Str("real_bits", v.Real.Bits()).
				Float64("imag", imag(s)).
				Float64("imag_fp", v.Imag.Float()).
				Str("imag_bits", v.Imag.Bits()).
				Msg("sample")
		}
	}

	res := &Result{
		Format:  cfg.Format(),
		Samples: samples,
		Vectors: vectors,
	}

	if !cfg.Reference() {
		return res, nil
	}

	res.Reference, err = ReferenceFFT(q, samples, spectrum.WithBackend(cfg.Backend()))
	if err != nil {
		return nil, err
	}

	if cfg.Debug() {
		logger.Debug().
			Str("backend", cfg.Backend().String()).
			Int("peak_bin", spectrum.PeakBin(res.Reference)).
			Floats64("magnitude", spectrum.Magnitude(res.Reference)).
			Msg("reference")
	}

	return res, nil
}

// ReferenceFFT snaps each sample onto q's grid and returns the DFT of the
// snapped sequence. Hardware results may differ from it by one LSB since
// the two rounding paths are independent.
func ReferenceFFT(q *fixedpoint.Quantizer, samples []complex128, opts ...spectrum.Option) ([]complex128, error) {
	snapped := make([]complex128, len(samples))
	for i, s := range samples {
		v, err := q.SnapComplex(s)
		if err != nil {
			return nil, fmt.Errorf("testvec: reference point %d: %w", i+1, err)
		}
		snapped[i] = v
	}

	out, err := spectrum.DFT(snapped, opts...)
	if err != nil {
		return nil, fmt.Errorf("testvec: reference FFT: %w", err)
	}
	return out, nil
}
