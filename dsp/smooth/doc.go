// Package smooth provides octave-band smoothing of period-domain power
// spectra, either per target period or globally with interpolation.
package smooth
