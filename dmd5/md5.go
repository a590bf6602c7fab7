// Package dmd5 implements the MD5 message digest as defined in RFC 1321.
//
// MD5 is cryptographically broken.
// This implementation exists for interoperability and for inspecting
// the algorithm round by round through the [dtrace] observer contract;
// it is not hardened against side channels.
package dmd5

import (
	"encoding/binary"
	"log/slog"
	"math/bits"

	"github.com/gordian-engine/plainhash/dpad"
	"github.com/gordian-engine/plainhash/dtrace"
)

// Size is the size of an MD5 digest in bytes.
const Size = 16

// Name is the algorithm name reported in trace events.
const Name = "md5"

// Options configures a single [Sum] call.
// The zero value hashes without tracing.
type Options struct {
	// Observer, if non-nil, receives a trace event
	// at every checkpoint described in package dtrace.
	Observer dtrace.Observer

	// Log receives a warning if Observer panics.
	// May be nil.
	Log *slog.Logger
}

// Sum returns the MD5 digest of msg.
//
// The only possible error is a [dpad.OverflowError]
// for a message whose bit length does not fit in 64 bits.
func Sum(msg []byte, opts Options) ([Size]byte, error) {
	padded, err := dpad.Pad(msg, binary.LittleEndian)
	if err != nil {
		return [Size]byte{}, err
	}

	var d *dtrace.Deliverer
	if opts.Observer != nil {
		d = dtrace.NewDeliverer(opts.Log, Name, opts.Observer)
	}

	s := [4]uint32{init0, init1, init2, init3}
	d.Deliver(dtrace.CheckpointInit, -1, -1, s[:])

	for i := 0; i < len(padded)/dpad.BlockSize; i++ {
		block := padded[i*dpad.BlockSize : (i+1)*dpad.BlockSize]
		compress(&s, block, i, d)
	}

	var out [Size]byte
	for i, v := range s {
		binary.LittleEndian.PutUint32(out[4*i:], v)
	}
	return out, nil
}

// compress runs the 64 rounds over one 64-byte block
// and accumulates the result into s.
func compress(s *[4]uint32, block []byte, blockIdx int, d *dtrace.Deliverer) {
	var m [16]uint32
	for i := range m {
		m[i] = binary.LittleEndian.Uint32(block[4*i:])
	}

	a, b, c, dd := s[0], s[1], s[2], s[3]

	for i := range 64 {
		var f uint32
		switch i / 16 {
		case 0:
			f = fnF(b, c, dd)
		case 1:
			f = fnG(b, c, dd)
		case 2:
			f = fnH(b, c, dd)
		default:
			f = fnI(b, c, dd)
		}

		f += a + k[i] + m[msgIndex[i]]
		a, b, c, dd = dd, b+bits.RotateLeft32(f, int(shifts[i])), b, c

		if d.Enabled() {
			regs := [4]uint32{a, b, c, dd}
			d.Deliver(dtrace.CheckpointRound, blockIdx, i, regs[:])
		}
	}

	s[0] += a
	s[1] += b
	s[2] += c
	s[3] += dd

	d.Deliver(dtrace.CheckpointBlock, blockIdx, -1, s[:])
}

// The four auxiliary functions of RFC 1321 section 3.4.

func fnF(x, y, z uint32) uint32 { return (x & y) | (^x & z) }
func fnG(x, y, z uint32) uint32 { return (x & z) | (y &^ z) }
func fnH(x, y, z uint32) uint32 { return x ^ y ^ z }
func fnI(x, y, z uint32) uint32 { return y ^ (x | ^z) }
