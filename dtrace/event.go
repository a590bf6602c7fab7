package dtrace

import (
	"fmt"
	"strings"
)

// MaxRegisters is the largest register count of any traced engine.
const MaxRegisters = 8

// Checkpoint identifies where in the computation an [Event] was taken.
type Checkpoint uint8

const (
	// CheckpointInit is reported once, after state initialization
	// and before the first block is compressed.
	CheckpointInit Checkpoint = iota

	// CheckpointRound is reported after each compression round.
	// The registers are the working registers in role order
	// (A, B, C, D for MD5; a through h for SHA-256).
	CheckpointRound

	// CheckpointBlock is reported after a block's working registers
	// have been added back into the running state.
	CheckpointBlock
)

func (c Checkpoint) String() string {
	switch c {
	case CheckpointInit:
		return "init"
	case CheckpointRound:
		return "round"
	case CheckpointBlock:
		return "block"
	default:
		return fmt.Sprintf("Checkpoint(%d)", uint8(c))
	}
}

// Event is a snapshot of engine state at a [Checkpoint].
type Event struct {
	// Algorithm is the lowercase engine name, "md5" or "sha256".
	Algorithm string

	Checkpoint Checkpoint

	// Block is the 0-based index of the block being compressed,
	// or -1 for CheckpointInit.
	Block int

	// Round is the 0-based round index within the block,
	// or -1 for CheckpointInit and CheckpointBlock.
	Round int

	regs  [MaxRegisters]uint32
	nRegs uint8
}

// NewEvent returns an Event holding a copy of regs.
// It panics if len(regs) exceeds [MaxRegisters].
func NewEvent(algorithm string, cp Checkpoint, block, round int, regs []uint32) Event {
	if len(regs) > MaxRegisters {
		panic(fmt.Errorf(
			"BUG: too many registers for trace event (got %d, max %d)",
			len(regs), MaxRegisters,
		))
	}

	e := Event{
		Algorithm:  algorithm,
		Checkpoint: cp,
		Block:      block,
		Round:      round,
		nRegs:      uint8(len(regs)),
	}
	copy(e.regs[:], regs)
	return e
}

// Registers returns a copy of the register values in the event.
func (e Event) Registers() []uint32 {
	out := make([]uint32, e.nRegs)
	copy(out, e.regs[:e.nRegs])
	return out
}

// RegisterName returns the conventional lowercase name of register i:
// "a", "b", and so on.
func RegisterName(i int) string {
	return string(rune('a' + i))
}

// String formats the event on one line, e.g.
// "md5 round block=0 round=3 a=67452301 b=efcdab89 c=98badcfe d=10325476".
func (e Event) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s block=%d round=%d", e.Algorithm, e.Checkpoint, e.Block, e.Round)
	for i := range int(e.nRegs) {
		sb.WriteString(" " + RegisterName(i) + "=" + formatRegister(e.regs[i]))
	}
	return sb.String()
}

// formatRegister is the one register format used by every trace output.
func formatRegister(v uint32) string {
	return fmt.Sprintf("%08x", v)
}
