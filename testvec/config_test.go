package testvec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/fftvec/dsp/fixedpoint"
	"github.com/cwbudde/fftvec/dsp/spectrum"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.SampleCount())
	assert.Equal(t, 16.0, cfg.InputFreq())
	assert.Equal(t, 128.0, cfg.SampleFreq())
	assert.Equal(t, fixedpoint.Signed16Q8, cfg.Format())
	assert.Equal(t, fixedpoint.RoundHalfAway, cfg.Rounding())
	assert.Equal(t, fixedpoint.OverflowError, cfg.Overflow())
	assert.Equal(t, spectrum.BackendAlgoFFT, cfg.Backend())
	assert.True(t, cfg.Reference())
	assert.False(t, cfg.Debug())
}

func TestNewConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"negative count", WithSampleCount(-1)},
		{"zero freq", WithInputFreq(0)},
		{"negative freq", WithInputFreq(-16)},
		{"nan freq", WithInputFreq(math.NaN())},
		{"zero fs", WithSampleFreq(0)},
		{"inf fs", WithSampleFreq(math.Inf(1))},
		{"frac exceeds width", WithFormat(fixedpoint.Format{Signed: true, Width: 8, Frac: 9})},
		{"width too large", WithFormat(fixedpoint.Format{Signed: true, Width: 40, Frac: 8})},
		{"bad rounding", WithRounding(fixedpoint.Rounding(5))},
		{"bad overflow", WithOverflow(fixedpoint.Overflow(5))},
		{"bad backend", WithBackend(spectrum.Backend(9))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfig(tt.opt)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestNewConfigOptions(t *testing.T) {
	f := fixedpoint.Format{Signed: false, Width: 12, Frac: 10}
	cfg, err := NewConfig(
		nil,
		WithSampleCount(0),
		WithInputFreq(1),
		WithSampleFreq(4),
		WithFormat(f),
		WithRounding(fixedpoint.RoundHalfEven),
		WithOverflow(fixedpoint.OverflowSaturate),
		WithBackend(spectrum.BackendGonum),
		WithReference(false),
		WithDebug(true),
	)
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.SampleCount())
	assert.Equal(t, f, cfg.Format())
	assert.Equal(t, fixedpoint.RoundHalfEven, cfg.Rounding())
	assert.Equal(t, fixedpoint.OverflowSaturate, cfg.Overflow())
	assert.Equal(t, spectrum.BackendGonum, cfg.Backend())
	assert.False(t, cfg.Reference())
	assert.True(t, cfg.Debug())

	q, err := cfg.Quantizer()
	require.NoError(t, err)
	assert.Equal(t, f, q.Format())
	assert.Equal(t, fixedpoint.RoundHalfEven, q.Rounding())
}
