package testvec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/fftvec/dsp/fixedpoint"
)

func TestWriteBinaryDefault(t *testing.T) {
	res := mustGenerate(t)

	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, res))

	want := "Expected FFT output: [" +
		"(0.000000+0.000000j), (0.000000+0.000000j), (0.000000+0.000000j), (-0.000302+0.000302j), " +
		"(0.000000+0.000000j), (0.000000+0.000000j), (0.000000+0.000000j), (5.656552-5.656552j)]\n" +
		"0b00000000101101011111111101001011,\n" +
		"0b00000000000000001111111100000000,\n" +
		"0b11111111010010111111111101001011,\n" +
		"0b11111111000000000000000000000000,\n" +
		"0b11111111010010110000000010110101,\n" +
		"0b00000000000000000000000100000000,\n" +
		"0b00000000101101010000000010110101,\n" +
		"0b00000001000000000000000000000000\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteBinaryWithoutReference(t *testing.T) {
	res := mustGenerate(t, WithSampleCount(2), WithReference(false))

	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, res))
	assert.Equal(t, "0b00000000101101011111111101001011,\n0b00000000000000001111111100000000\n", buf.String())
}

func TestWriteC(t *testing.T) {
	res := mustGenerate(t, WithSampleCount(3), WithReference(false))

	var buf bytes.Buffer
	require.NoError(t, WriteC(&buf, res, "points"))

	want := "uint32_t points[3] = {\n" +
		"  0b00000000101101011111111101001011, // 00B5FF4B\n" +
		"  0b00000000000000001111111100000000, // 0000FF00\n" +
		"  0b11111111010010111111111101001011  // FF4BFF4B\n" +
		"};\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCNarrowFormat(t *testing.T) {
	res := mustGenerate(t,
		WithSampleCount(1),
		WithReference(false),
		WithFormat(fixedpoint.Format{Signed: true, Width: 6, Frac: 4}))

	var buf bytes.Buffer
	require.NoError(t, WriteC(&buf, res, "pts"))
	// 0.7071*16 = 11.3 -> 11 = 001011, -11 = 110101.
	assert.Equal(t, "uint16_t pts[1] = {\n  0b001011110101  // 2F5\n};\n", buf.String())
}

func TestFormatComplex(t *testing.T) {
	assert.Equal(t, "(1.500000-0.250000j)", FormatComplex(complex(1.5, -0.25)))
	assert.Equal(t, "(0.000000+0.000000j)", FormatComplex(complex(-1e-12, -3e-9)))
}

func TestCType(t *testing.T) {
	assert.Equal(t, "uint8_t", cType(8))
	assert.Equal(t, "uint16_t", cType(12))
	assert.Equal(t, "uint32_t", cType(32))
	assert.Equal(t, "uint64_t", cType(64))
}
