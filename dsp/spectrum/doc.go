// Package spectrum wraps the FFT backend and provides spectrum-domain helpers
// used by the matched-filter and pulse-compression pipelines: zero-padded
// forward and inverse transforms, magnitude extraction and zero-delay
// centring.
//
// Transforms use algo-fft plans. The inverse transform is scaled by 1/nfft,
// so Inverse(Transform(x)) reproduces x.
package spectrum
