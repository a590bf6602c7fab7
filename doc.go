// Package plainhash computes MD5 and SHA-256 digests of whole messages,
// with optional round-by-round tracing of the internal register state.
//
// The engines live in packages [dmd5] and [dsha256];
// hex and ASCII conversions are in [dhex];
// the trace contract and its observers are in [dtrace].
// This package ties them together behind the [Algorithm] variant,
// so a caller can select an engine by value:
//
//	msg, err := dhex.HexToBytes("FF00CA9634")
//	...
//	digest, err := plainhash.MD5(msg, false)
//	...
//	fmt.Println(dhex.BytesToHex(digest))
//
// All functions are synchronous and keep no state between calls,
// so they are safe to call concurrently.
package plainhash
