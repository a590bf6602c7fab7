package dtrace

import (
	"context"
	"log/slog"
)

// LogObserver writes one structured log record per trace event.
//
// Each record carries the algorithm, checkpoint, block and round,
// plus one attribute per register, named "a", "b", and so on,
// formatted as eight lowercase hex digits.
type LogObserver struct {
	Log *slog.Logger

	// Level for each record. The zero value is slog.LevelInfo;
	// use [NewLogObserver] for the usual debug level.
	Level slog.Level
}

// NewLogObserver returns a LogObserver logging to log at debug level.
func NewLogObserver(log *slog.Logger) LogObserver {
	return LogObserver{Log: log, Level: slog.LevelDebug}
}

func (o LogObserver) Observe(e Event) {
	ctx := context.Background()
	if o.Log == nil || !o.Log.Enabled(ctx, o.Level) {
		return
	}

	attrs := make([]slog.Attr, 0, 4+MaxRegisters)
	attrs = append(attrs,
		slog.String("algorithm", e.Algorithm),
		slog.String("checkpoint", e.Checkpoint.String()),
		slog.Int("block", e.Block),
		slog.Int("round", e.Round),
	)
	for i := range int(e.nRegs) {
		attrs = append(attrs, slog.String(RegisterName(i), formatRegister(e.regs[i])))
	}

	o.Log.LogAttrs(ctx, o.Level, "Hash trace checkpoint", attrs...)
}
