package plainhash

import (
	"github.com/gordian-engine/plainhash/dhex"
	"github.com/gordian-engine/plainhash/dpad"
)

// FormatError is returned for malformed hexadecimal input.
// See [dhex.HexToBytes].
type FormatError = dhex.FormatError

// EncodingError is returned for text containing a code point above 255.
// See [dhex.ASCIIToBytes].
type EncodingError = dhex.EncodingError

// OverflowError is returned for a message whose bit length
// cannot be represented in the 64-bit padding length field.
type OverflowError = dpad.OverflowError
