// Package seis defines the waveform segment and channel identity types
// shared by the spectral estimation and feature extraction packages.
package seis
