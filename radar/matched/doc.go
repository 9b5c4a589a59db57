// Package matched implements a frequency-domain matched filter.
//
// [Compute] correlates a received record against a known replica as
// |IFFT(FFT(replica) * conj(FFT(received)))| / nfft on an nfft-point grid,
// nfft being the next power of two >= len(received). The magnitude is
// rotated so that zero lag sits at index nfft/2 and the delay axis reads
// (k - nfft/2) / fs seconds.
//
// [Simulate] builds the classic damped-sinusoid detection scenario: a
// decaying tone starting at t = 0 buried in white Gaussian noise, filtered
// with a replica sampled on a record centred at t = 0.
package matched
