// Package dhex converts between hexadecimal strings, ASCII strings,
// and byte slices.
//
// These are the conversions that feed messages into the hash engines
// and render digests back out.
// Every function is pure and safe to call concurrently.
package dhex
