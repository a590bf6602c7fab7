// Package dpad implements the message padding shared by
// the 512-bit block hash functions in this module.
//
// A padded message is the original message,
// a single 0x80 byte (the 1-bit followed by seven 0-bits),
// as many zero bytes as needed to reach 56 bytes mod 64,
// and finally the original message length in bits as a 64-bit integer.
// MD5 encodes that length little-endian; SHA-256 encodes it big-endian.
package dpad

import (
	"encoding/binary"
	"math"
)

// BlockSize is the size in bytes of one compression block.
const BlockSize = 64

// lengthSize is the size of the trailing bit-length field.
const lengthSize = 8

// BitLength returns the length in bits of an n-byte message,
// or an [OverflowError] if that does not fit in 64 bits.
func BitLength(n int) (uint64, error) {
	if n < 0 || uint64(n) > math.MaxUint64/8 {
		return 0, OverflowError{ByteLength: n}
	}
	return uint64(n) * 8, nil
}

// BlockCount reports how many blocks an n-byte message occupies after padding.
// There must be room for at least the 0x80 marker and the length field,
// so a 55-byte message fits in one block but a 56-byte message needs two.
func BlockCount(n int) int {
	return (n + 1 + lengthSize + BlockSize - 1) / BlockSize
}

// Pad returns a new slice containing msg followed by its padding.
// The length of the result is always BlockCount(len(msg))*BlockSize.
// The bit length is appended in the given byte order.
//
// msg is not modified.
func Pad(msg []byte, order binary.AppendByteOrder) ([]byte, error) {
	bitLen, err := BitLength(len(msg))
	if err != nil {
		return nil, err
	}

	total := BlockCount(len(msg)) * BlockSize

	out := make([]byte, len(msg), total)
	copy(out, msg)
	out = append(out, 0x80)

	// The slice capacity already accounts for every zero byte;
	// reslicing exposes zeroed memory from make.
	out = out[:total-lengthSize]

	return order.AppendUint64(out, bitLen), nil
}
