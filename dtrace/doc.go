// Package dtrace defines the debug trace contract for the hash engines.
//
// An engine given a non-nil [Observer] reports its register state
// at fixed checkpoints:
// once before the first block ([CheckpointInit]),
// after every round of every block ([CheckpointRound]),
// and after each block's state accumulation ([CheckpointBlock]).
// A message of N blocks therefore produces 1 + 65*N events.
//
// Observers are called synchronously on the hashing goroutine.
// They receive copies of the registers and cannot influence the digest.
// If an observer panics, the engine recovers,
// logs the panic once, and stops delivering events for that call;
// the digest is still returned normally.
//
// This package provides observers for in-memory recording ([Recorder]),
// structured logging ([LogObserver]), OpenTelemetry spans ([SpanObserver]),
// and concurrent consumers ([Stream]).
package dtrace
