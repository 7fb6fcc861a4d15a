// Package fixedpoint encodes real values as fixed-point two's-complement
// codes.
//
// A [Format] fixes the total bit width, the number of fractional bits and
// whether the code is signed. A [Quantizer] maps float64 values onto that
// grid with an explicit [Rounding] mode and [Overflow] policy and returns a
// [Code], which renders directly as a bit string of exactly Format.Width
// characters (most-significant bit first).
//
// Codes round-trip: decoding a code's bits with [Decode] and quantizing the
// resulting float again yields the same bits.
package fixedpoint
