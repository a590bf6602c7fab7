// Package dsha256 implements the SHA-256 hash algorithm as defined in FIPS 180-4.
//
// The whole message is hashed in one call; there is no incremental API.
// Register state can be inspected round by round
// through the [dtrace] observer contract.
package dsha256

import (
	"encoding/binary"
	"log/slog"
	"math/bits"

	"github.com/gordian-engine/plainhash/dpad"
	"github.com/gordian-engine/plainhash/dtrace"
)

// Size is the size of a SHA-256 digest in bytes.
const Size = 32

// Name is the algorithm name reported in trace events.
const Name = "sha256"

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

// Sum returns the SHA-256 digest of msg.
//
// The only possible error is a [dpad.OverflowError]
// for a message whose bit length does not fit in 64 bits.
func Sum(msg []byte, opts Options) ([Size]byte, error) {
	padded, err := dpad.Pad(msg, binary.BigEndian)
	if err != nil {
		return [Size]byte{}, err
	}

	var d *dtrace.Deliverer
	if opts.Observer != nil {
		d = dtrace.NewDeliverer(opts.Log, Name, opts.Observer)
	}

	h := [8]uint32{init0, init1, init2, init3, init4, init5, init6, init7}
	d.Deliver(dtrace.CheckpointInit, -1, -1, h[:])

	var w [64]uint32
	for i := 0; i < len(padded)/dpad.BlockSize; i++ {
		block := padded[i*dpad.BlockSize : (i+1)*dpad.BlockSize]
		schedule(&w, block)
		compress(&h, &w, i, d)
	}

	var out [Size]byte
	for i, v := range h {
		binary.BigEndian.PutUint32(out[4*i:], v)
	}
	return out, nil
}

// schedule fills w with the message schedule for one block.
func schedule(w *[64]uint32, block []byte) {
	for t := range 16 {
		w[t] = binary.BigEndian.Uint32(block[4*t:])
	}
	for t := 16; t < 64; t++ {
		w[t] = sigma1(w[t-2]) + w[t-7] + sigma0(w[t-15]) + w[t-16]
	}
}

// compress runs the 64 rounds over one scheduled block
// and accumulates the working registers into h.
func compress(h *[8]uint32, w *[64]uint32, blockIdx int, d *dtrace.Deliverer) {
	a, b, c, dd, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]

	for t := range 64 {
		t1 := hh + bigSigma1(e) + ch(e, f, g) + k[t] + w[t]
		t2 := bigSigma0(a) + maj(a, b, c)

		hh = g
		g = f
		f = e
		e = dd + t1
		dd = c
		c = b
		b = a
		a = t1 + t2

		if d.Enabled() {
			regs := [8]uint32{a, b, c, dd, e, f, g, hh}
			d.Deliver(dtrace.CheckpointRound, blockIdx, t, regs[:])
		}
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += dd
	h[4] += e
	h[5] += f
	h[6] += g
	h[7] += hh

	d.Deliver(dtrace.CheckpointBlock, blockIdx, -1, h[:])
}

// Logical functions, FIPS 180-4 section 4.1.2.

func ch(x, y, z uint32) uint32  { return (x & y) ^ (^x & z) }
func maj(x, y, z uint32) uint32 { return (x & y) ^ (x & z) ^ (y & z) }

func bigSigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -2) ^ bits.RotateLeft32(x, -13) ^ bits.RotateLeft32(x, -22)
}

func bigSigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -6) ^ bits.RotateLeft32(x, -11) ^ bits.RotateLeft32(x, -25)
}

func sigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ (x >> 3)
}

func sigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ (x >> 10)
}
