// Package testvec builds fixed-point input vectors for a hardware FFT block.
//
// A run generates a complex tone, quantizes each sample's real and imaginary
// parts with a [fixedpoint.Quantizer] and concatenates the two codes into a
// [Vector]. Optionally the expected transform of the quantization-snapped
// samples is computed for comparison against hardware readback.
package testvec
