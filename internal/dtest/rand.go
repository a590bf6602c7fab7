// Package dtest holds helpers shared by the plainhash test suites.
package dtest

import (
	"crypto/sha256"
	"math/rand/v2"
	"testing"
)

// RandomDataForTest returns sz pseudorandom bytes
// seeded from the test name, so failures reproduce across runs.
func RandomDataForTest(t testing.TB, sz int) []byte {
	// The chacha8 seed is 32 bytes, which is exactly a SHA-256 digest
	// of the test name regardless of how long the name is.
	seed := sha256.Sum256([]byte(t.Name()))
	chacha := rand.NewChaCha8(seed)

	out := make([]byte, sz)
	if _, err := chacha.Read(out); err != nil {
		panic(err)
	}

	return out
}
