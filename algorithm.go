package plainhash

import (
	"fmt"
	"strings"

	"github.com/gordian-engine/plainhash/dmd5"
	"github.com/gordian-engine/plainhash/dsha256"
)

// Algorithm selects which hash engine [Sum] runs.
// The zero value is not a valid algorithm.
type Algorithm uint8

const (
	AlgorithmMD5 Algorithm = iota + 1
	AlgorithmSHA256
)

// String returns the canonical lowercase name, "md5" or "sha256".
func (a Algorithm) String() string {
	switch a {
	case AlgorithmMD5:
		return dmd5.Name
	case AlgorithmSHA256:
		return dsha256.Name
	default:
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
}

// Size returns the digest size in bytes,
// or 0 for an unknown algorithm.
func (a Algorithm) Size() int {
	switch a {
	case AlgorithmMD5:
		return dmd5.Size
	case AlgorithmSHA256:
		return dsha256.Size
	default:
		return 0
	}
}

// Valid reports whether a names a supported algorithm.
func (a Algorithm) Valid() bool {
	return a == AlgorithmMD5 || a == AlgorithmSHA256
}

// ParseAlgorithm parses an algorithm name.
// Names are case-insensitive; "sha256" may also be spelled "sha-256".
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(name) {
	case "md5":
		return AlgorithmMD5, nil
	case "sha256", "sha-256":
		return AlgorithmSHA256, nil
	default:
		return 0, fmt.Errorf("unknown hash algorithm %q", name)
	}
}
