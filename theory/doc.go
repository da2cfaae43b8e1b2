// Package theory holds the small closed sets of values a rhythm or pitch
// model is built from: note durations as negative powers of two, interval
// qualities, note letters, pitch modifiers and time signatures.
//
// Every value is an immutable constant, so the package is safe to share
// between goroutines without locking.
package theory
