// Package welch implements averaged-periodogram power spectral density
// estimation over overlapping, detrended, cosine-tapered windows.
package welch
