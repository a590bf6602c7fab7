package plainhash

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gordian-engine/plainhash/dmd5"
	"github.com/gordian-engine/plainhash/dsha256"
	"github.com/gordian-engine/plainhash/dtrace"
)

// Config is the configuration for [Sum].
type Config struct {
	Algorithm Algorithm

	// When set, every trace checkpoint is logged to Log at TraceLevel,
	// added as an event to the span started on TracerProvider,
	// and passed to Observer if that is non-nil.
	// When unset, no events are produced and Observer is ignored.
	Trace bool

	Observer dtrace.Observer

	// Destination for trace records and for warnings about a panicking Observer.
	// If nil, slog.Default() is used.
	Log *slog.Logger

	// Level of the per-checkpoint trace records.
	// The zero value is slog.LevelInfo, so an explicitly requested trace
	// is visible through a default logger.
	TraceLevel slog.Level

	// Used to start one span per Sum call.
	// If nil, a no-op provider is used.
	TracerProvider dtrace.TracerProvider
}

// validate panics if there are any illegal settings in the configuration.
func (c Config) validate() {
	if !c.Algorithm.Valid() {
		panic(fmt.Errorf("BUG: Config.Algorithm must be set (got %s)", c.Algorithm))
	}
}

// Sum returns the digest of msg using the configured algorithm.
// The returned slice has length cfg.Algorithm.Size().
//
// ctx is only used as the parent of the trace span;
// hashing never blocks and cannot be canceled.
//
// Sum panics if cfg.Algorithm is not a valid [Algorithm].
// On error, the digest is nil.
func Sum(ctx context.Context, cfg Config, msg []byte) ([]byte, error) {
	cfg.validate()

	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}

	tp := cfg.TracerProvider
	if tp == nil {
		tp = dtrace.NopTracerProvider()
	}

	_, span := tp.Tracer(dtrace.TracerName).Start(
		ctx, "plainhash.Sum",
		dtrace.WithAttributes(
			dtrace.AlgorithmAttr(cfg.Algorithm.String()),
			dtrace.MessageLengthAttr(len(msg)),
		),
	)
	defer span.End()

	var obs dtrace.Observer
	if cfg.Trace {
		obs = dtrace.Multi(
			dtrace.LogObserver{Log: log, Level: cfg.TraceLevel},
			dtrace.NewSpanObserver(span),
			cfg.Observer,
		)
	}

	var digest []byte
	var err error
	switch cfg.Algorithm {
	case AlgorithmMD5:
		var d [dmd5.Size]byte
		d, err = dmd5.Sum(msg, dmd5.Options{Observer: obs, Log: log})
		digest = d[:]
	case AlgorithmSHA256:
		var d [dsha256.Size]byte
		d, err = dsha256.Sum(msg, dsha256.Options{Observer: obs, Log: log})
		digest = d[:]
	}

	if err != nil {
		dtrace.SpanError(span, err)
		return nil, fmt.Errorf("%s: %w", cfg.Algorithm, err)
	}

	if span.IsRecording() {
		span.SetAttributes(dtrace.HexAttr("hash.digest", digest))
	}
	return digest, nil
}

// MD5 returns the 16-byte MD5 digest of msg.
// If trace is true, checkpoints are logged to slog.Default() at info level.
func MD5(msg []byte, trace bool) ([]byte, error) {
	return Sum(context.Background(), Config{Algorithm: AlgorithmMD5, Trace: trace}, msg)
}

// SHA256 returns the 32-byte SHA-256 digest of msg.
// If trace is true, checkpoints are logged to slog.Default() at info level.
func SHA256(msg []byte, trace bool) ([]byte, error) {
	return Sum(context.Background(), Config{Algorithm: AlgorithmSHA256, Trace: trace}, msg)
}
