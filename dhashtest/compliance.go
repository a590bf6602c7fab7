// Package dhashtest contains a compliance suite
// that every traced hash engine in this module must pass.
package dhashtest

import (
	"log/slog"
	"sync"
	"testing"

	"github.com/gordian-engine/plainhash/dpad"
	"github.com/gordian-engine/plainhash/dtrace"
	"github.com/gordian-engine/plainhash/internal/dtest"
	"github.com/stretchr/testify/require"
)

// SumFunc hashes msg, reporting trace events to obs if it is non-nil
// and observer panics to log.
type SumFunc func(msg []byte, obs dtrace.Observer, log *slog.Logger) ([]byte, error)

// EngineFactory returns the engine under test,
// its digest size in bytes, and the number of registers in its state.
type EngineFactory func() (sum SumFunc, digestSize, nRegisters int)

// TestEngineCompliance runs the shared engine behavior checks.
// Known-answer tests are left to each engine's own tests.
func TestEngineCompliance(t *testing.T, f EngineFactory) {
	t.Run("digest is deterministic", func(t *testing.T) {
		t.Parallel()

		sum, _, _ := f()

		msg := dtest.RandomDataForTest(t, 300)

		d1, err := sum(msg, nil, nil)
		require.NoError(t, err)

		d2, err := sum(msg, nil, nil)
		require.NoError(t, err)

		require.Equal(t, d1, d2)
	})

	t.Run("digest size is fixed", func(t *testing.T) {
		t.Parallel()

		sum, sz, _ := f()

		for _, n := range []int{0, 1, 55, 56, 63, 64, 65, 127, 128, 1000} {
			d, err := sum(dtest.RandomDataForTest(t, n), nil, nil)
			require.NoError(t, err)
			require.Lenf(t, d, sz, "digest of %d-byte message", n)
		}
	})

	t.Run("input is not modified", func(t *testing.T) {
		t.Parallel()

		sum, _, _ := f()

		msg := dtest.RandomDataForTest(t, 70)
		orig := append([]byte(nil), msg...)

		_, err := sum(msg, nil, nil)
		require.NoError(t, err)
		require.Equal(t, orig, msg)
	})

	t.Run("different inputs differ", func(t *testing.T) {
		t.Parallel()

		sum, _, _ := f()

		msg := dtest.RandomDataForTest(t, 64)
		d1, err := sum(msg, nil, nil)
		require.NoError(t, err)

		msg[63] ^= 1
		d2, err := sum(msg, nil, nil)
		require.NoError(t, err)

		require.NotEqual(t, d1, d2)
	})

	t.Run("trace covers every block and round", func(t *testing.T) {
		t.Parallel()

		sum, _, nRegs := f()

		for _, tc := range []struct {
			n, blocks int
		}{
			{0, 1},
			{55, 1},
			{56, 2},
			{64, 2},
			{119, 2},
			{120, 3},
		} {
			var r dtrace.Recorder
			_, err := sum(dtest.RandomDataForTest(t, tc.n), &r, nil)
			require.NoError(t, err)

			require.Equalf(t, tc.blocks, r.Blocks(), "blocks for %d-byte message", tc.n)
			require.Equal(t, dpad.BlockCount(tc.n), r.Blocks())
			require.True(t, r.Complete())
			require.Equal(t, 1+tc.blocks*(dtrace.RoundsPerBlock+1), r.Len())

			for _, e := range r.Events() {
				require.Len(t, e.Registers(), nRegs)
			}
		}
	})

	t.Run("trace events are ordered", func(t *testing.T) {
		t.Parallel()

		sum, _, _ := f()

		var r dtrace.Recorder
		_, err := sum(dtest.RandomDataForTest(t, 100), &r, nil)
		require.NoError(t, err)

		events := r.Events()
		require.Equal(t, dtrace.CheckpointInit, events[0].Checkpoint)
		require.Equal(t, -1, events[0].Block)
		require.Equal(t, -1, events[0].Round)

		i := 1
		for block := range r.Blocks() {
			for round := range dtrace.RoundsPerBlock {
				e := events[i]
				require.Equal(t, dtrace.CheckpointRound, e.Checkpoint)
				require.Equal(t, block, e.Block)
				require.Equal(t, round, e.Round)
				i++
			}

			e := events[i]
			require.Equal(t, dtrace.CheckpointBlock, e.Checkpoint)
			require.Equal(t, block, e.Block)
			require.Equal(t, -1, e.Round)
			i++
		}
		require.Equal(t, len(events), i)
	})

	t.Run("tracing does not change digest", func(t *testing.T) {
		t.Parallel()

		sum, _, _ := f()

		for _, n := range []int{0, 3, 56, 200} {
			msg := dtest.RandomDataForTest(t, n)

			plain, err := sum(msg, nil, nil)
			require.NoError(t, err)

			var r dtrace.Recorder
			traced, err := sum(msg, &r, dtest.NewLogger(t))
			require.NoError(t, err)

			require.Equal(t, plain, traced)
		}
	})

	t.Run("observer cannot mutate state", func(t *testing.T) {
		t.Parallel()

		sum, _, _ := f()

		msg := dtest.RandomDataForTest(t, 90)
		want, err := sum(msg, nil, nil)
		require.NoError(t, err)

		got, err := sum(msg, dtrace.ObserverFunc(func(e dtrace.Event) {
			regs := e.Registers()
			for i := range regs {
				regs[i] = 0xdeadbeef
			}
		}), nil)
		require.NoError(t, err)

		require.Equal(t, want, got)
	})

	t.Run("panicking observer does not affect digest", func(t *testing.T) {
		t.Parallel()

		sum, _, _ := f()

		msg := dtest.RandomDataForTest(t, 150)
		want, err := sum(msg, nil, nil)
		require.NoError(t, err)

		calls := 0
		got, err := sum(msg, dtrace.ObserverFunc(func(e dtrace.Event) {
			calls++
			if e.Checkpoint == dtrace.CheckpointRound && e.Round == 10 {
				panic("observer failure")
			}
		}), dtest.NewLogger(t))
		require.NoError(t, err)
		require.Equal(t, want, got)

		// Init, then rounds 0 through 10 of the first block.
		// Delivery stops after the panic.
		require.Equal(t, 12, calls)
	})

	t.Run("concurrent calls are independent", func(t *testing.T) {
		t.Parallel()

		sum, _, _ := f()

		const nMsgs = 16
		msgs := make([][]byte, nMsgs)
		want := make([][]byte, nMsgs)
		for i := range msgs {
			msgs[i] = dtest.RandomDataForTest(t, 33*i)
			d, err := sum(msgs[i], nil, nil)
			require.NoError(t, err)
			want[i] = d
		}

		got := make([][]byte, nMsgs)
		errs := make([]error, nMsgs)
		var wg sync.WaitGroup
		for i := range msgs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				var r dtrace.Recorder
				got[i], errs[i] = sum(msgs[i], &r, nil)
			}(i)
		}
		wg.Wait()

		for i := range msgs {
			require.NoError(t, errs[i])
			require.Equal(t, want[i], got[i])
		}
	})
}
