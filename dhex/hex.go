package dhex

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// HexToBytes decodes s, a string of hexadecimal digits,
// into a byte slice of length len(s)/2.
// Each byte is formed from two consecutive digits, most significant nibble first.
// Upper and lower case digits are both accepted.
//
// If s has odd length or contains a non-hex character,
// HexToBytes returns a [FormatError].
func HexToBytes(s string) ([]byte, error) {
	// Check for invalid characters before length,
	// so that "ZZZ" reports the bad digit rather than the length.
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			r, _ := utf8.DecodeRuneInString(s[i:])
			return nil, FormatError{
				Input:  s,
				Offset: i,
				Reason: "invalid hex digit " + strconv.QuoteRune(r),
			}
		}
	}

	if len(s)%2 != 0 {
		return nil, FormatError{
			Input:  s,
			Offset: len(s),
			Reason: "odd number of hex digits",
		}
	}

	b := make([]byte, len(s)/2)
	if _, err := hex.Decode(b, []byte(s)); err != nil {
		panic(fmt.Errorf("BUG: hex decode failed after validation: %w", err))
	}

	return b, nil
}

// BytesToHex renders b as a string of lowercase hexadecimal digits,
// two per byte, in order.
// An empty or nil b produces an empty string.
func BytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// ASCIIToBytes maps each code point in s to a single byte.
//
// Code points up to 255 are accepted.
// Any larger code point, or any byte sequence that is not valid UTF-8,
// causes ASCIIToBytes to return an [EncodingError].
func ASCIIToBytes(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for i, r := range s {
		// Invalid UTF-8 decodes as U+FFFD, which is rejected here too.
		if r > 0xff {
			return nil, EncodingError{Input: s, Offset: i, Rune: r}
		}
		out = append(out, byte(r))
	}
	return out, nil
}

func isHexDigit(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}
