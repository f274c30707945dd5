// Package feature turns waveform segments into fixed-width amplitude
// feature rows suitable for anomaly scoring.
package feature
