// Package spectrum computes reference discrete Fourier transforms.
//
// [DFT] evaluates X[k] = Σ x[n]·exp(-2πj·k·n/N) through one of several
// backends: an algo-fft plan (default), gonum's fourier package, or the
// direct O(N²) definition. All backends produce unnormalized forward
// transforms with identical sign conventions, so results are directly
// comparable with fixed-point hardware output.
package spectrum
