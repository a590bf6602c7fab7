package dtrace

import (
	"github.com/bits-and-blooms/bitset"
)

// Recorder is an [Observer] that keeps every event in memory
// and tracks which rounds of which blocks were reported.
//
// A Recorder is intended for a single hash call;
// it is not safe for concurrent use.
// The zero value is ready to use.
type Recorder struct {
	events []Event

	sawInit bool

	// One bitset per block, indexed by round.
	rounds []*bitset.BitSet

	// Blocks that reported CheckpointBlock.
	finished bitset.BitSet
}

func (r *Recorder) Observe(e Event) {
	r.events = append(r.events, e)

	switch e.Checkpoint {
	case CheckpointInit:
		r.sawInit = true
	case CheckpointRound:
		r.roundsFor(e.Block).Set(uint(e.Round))
	case CheckpointBlock:
		r.roundsFor(e.Block)
		r.finished.Set(uint(e.Block))
	}
}

func (r *Recorder) roundsFor(block int) *bitset.BitSet {
	for len(r.rounds) <= block {
		r.rounds = append(r.rounds, bitset.MustNew(RoundsPerBlock))
	}
	return r.rounds[block]
}

// Events returns a copy of all recorded events, in delivery order.
func (r *Recorder) Events() []Event {
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Len is the number of recorded events.
func (r *Recorder) Len() int {
	return len(r.events)
}

// Blocks is the number of distinct blocks that reported any event.
func (r *Recorder) Blocks() int {
	return len(r.rounds)
}

// RoundsSeen is the number of distinct rounds reported for the given block.
func (r *Recorder) RoundsSeen(block int) int {
	if block < 0 || block >= len(r.rounds) {
		return 0
	}
	return int(r.rounds[block].Count())
}

// Complete reports whether the recorded trace covers a full hash call:
// the init checkpoint, every round of every block,
// and the accumulation checkpoint of every block.
func (r *Recorder) Complete() bool {
	if !r.sawInit || len(r.rounds) == 0 {
		return false
	}
	for _, bs := range r.rounds {
		if !bs.All() {
			return false
		}
	}
	return int(r.finished.Count()) == len(r.rounds)
}

// Final returns the registers from the last CheckpointBlock event,
// which equal the engine's final state before serialization.
// The boolean is false if no block has finished.
func (r *Recorder) Final() ([]uint32, bool) {
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Checkpoint == CheckpointBlock {
			return r.events[i].Registers(), true
		}
	}
	return nil, false
}
