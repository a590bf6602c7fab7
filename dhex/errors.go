package dhex

import "fmt"

// FormatError is returned from [HexToBytes]
// when the input is not a well-formed hexadecimal string.
type FormatError struct {
	// The full input string.
	Input string

	// Byte offset of the offending character.
	// For odd-length input, Offset is the length of the input.
	Offset int

	Reason string
}

func (e FormatError) Error() string {
	return fmt.Sprintf("malformed hex string at offset %d: %s", e.Offset, e.Reason)
}

// EncodingError is returned from [ASCIIToBytes]
// when the input contains a code point that does not fit in a single byte.
type EncodingError struct {
	Input string

	// Byte offset of the offending rune within Input.
	Offset int

	Rune rune
}

func (e EncodingError) Error() string {
	return fmt.Sprintf(
		"code point U+%04X at offset %d does not fit in a byte", e.Rune, e.Offset,
	)
}
