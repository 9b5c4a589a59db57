// Package pulse implements linear-FM pulse compression for a set of point
// scatterers.
//
// The receive window spans rrec metres beyond the minimum range rmin. Its
// two-way delay trec = 2*rrec/c sets the sample count n = floor(2*trec*B)
// and the transform size nfft = 2^ceil(log2(n)). Each scatterer contributes
// a chirp whose beat frequency is proportional to its range relative to
// rmin, so after windowing, an nfft-point FFT and an fftshift the compressed
// echo of a scatterer at rmin + j*deltar peaks at bin nfft/2 + j, where
// deltar = c/(2B) is the range resolution.
//
// Scatterers further than deltar*nfft/2 from rmin alias into the window;
// [Result.Aliased] lists them.
package pulse
