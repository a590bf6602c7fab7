package dtrace

import (
	"io"
	"log/slog"
)

// RoundsPerBlock is the number of compression rounds per block
// for both MD5 and SHA-256.
const RoundsPerBlock = 64

// Deliverer is the engine-side half of the trace contract.
// It builds events from raw register slices
// and hands them to an [Observer], isolating the engine from
// any panic the observer raises.
//
// A nil *Deliverer, or one created with a nil Observer, is disabled.
// Engines call [*Deliverer.Enabled] in their round loops
// to avoid building events nobody reads.
//
// A Deliverer is owned by a single hash call and must not be shared.
type Deliverer struct {
	log *slog.Logger

	algorithm string
	obs       Observer
}

// NewDeliverer returns a Deliverer forwarding events for the named
// algorithm to obs. If log is nil, observer panics are not logged.
func NewDeliverer(log *slog.Logger, algorithm string, obs Observer) *Deliverer {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Deliverer{
		log:       log,
		algorithm: algorithm,
		obs:       obs,
	}
}

// Enabled reports whether events will be delivered.
// It turns false permanently after the observer panics.
func (d *Deliverer) Enabled() bool {
	return d != nil && d.obs != nil
}

// Deliver sends a copy of regs to the observer as an [Event].
func (d *Deliverer) Deliver(cp Checkpoint, block, round int, regs []uint32) {
	if !d.Enabled() {
		return
	}

	e := NewEvent(d.algorithm, cp, block, round, regs)

	defer func() {
		if r := recover(); r != nil {
			d.log.Warn(
				"Trace observer panicked; disabling trace delivery",
				"algorithm", d.algorithm,
				"checkpoint", cp,
				"block", block,
				"round", round,
				"recovered", r,
			)
			d.obs = nil
		}
	}()

	d.obs.Observe(e)
}
