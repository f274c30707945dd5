// Package psd computes smoothed, response-corrected power spectral
// densities of seismic waveform segments.
//
// The pipeline per segment: derive the FFT size from segment length, run an
// averaged Welch periodogram (linear detrend, 20% cosine taper, 75%
// overlap), remove the instrument response, convert to dB over ascending
// periods, and smooth in octave bands at the configured target periods.
package psd
