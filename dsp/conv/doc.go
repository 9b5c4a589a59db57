// Package conv provides linear convolution and cross-correlation of real
// sequences.
//
// Short kernels are handled with a direct O(N*M) sum; longer ones go through
// a zero-padded FFT of size 2^ceil(log2(N+M-1)). Both paths return identical
// results up to floating-point rounding.
//
// # Correlation
//
// Correlation output follows the usual lag convention: index k of a full
// correlation of a (length N) against b (length M) is lag k-(M-1).
//
//	corr, err := conv.Correlate(signal, template)
//	peakIdx, peakVal := conv.FindPeak(corr)
//	lag := conv.LagFromIndex(peakIdx, len(template))
//
// [CorrelateMode] trims the full result to [ModeSame] (len(a) samples,
// centred) or [ModeValid] (fully overlapping lags only).
package conv
