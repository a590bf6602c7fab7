package dpad

import "fmt"

// OverflowError is returned when a message is too long
// for its bit length to be stored in the 64-bit length field.
type OverflowError struct {
	ByteLength int
}

func (e OverflowError) Error() string {
	return fmt.Sprintf(
		"message of %d bytes cannot have its bit length represented in 64 bits",
		e.ByteLength,
	)
}
