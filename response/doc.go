// Package response resolves instrument responses and removes them from
// power spectra, converting the result to a period-ascending dB spectrum.
package response
