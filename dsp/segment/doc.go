// Package segment provides stride-based windowing of sample sequences into
// overlapping views and per-window trend removal.
package segment
