// Package spectrum provides spectrum-domain bin utilities shared by the
// Welch estimator and the response removal step.
//
// The package intentionally does not implement FFT itself. It operates on
// complex spectrum bins produced by external FFT backends and provides
// helpers for power extraction, decibel conversion, and axis reversal.
package spectrum
