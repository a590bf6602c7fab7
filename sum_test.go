package plainhash_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/gordian-engine/plainhash"
	"github.com/gordian-engine/plainhash/dhex"
	"github.com/gordian-engine/plainhash/dtrace"
	"github.com/gordian-engine/plainhash/internal/dtest"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestMD5_hexPipeline(t *testing.T) {
	t.Parallel()

	msg, err := dhex.HexToBytes("FF00CA9634")
	require.NoError(t, err)

	digest, err := plainhash.MD5(msg, false)
	require.NoError(t, err)
	require.Len(t, digest, 16)
	require.Equal(t, "3a2102c6015273538de92262536dc2b5", dhex.BytesToHex(digest))

	traced, err := plainhash.Sum(context.Background(), plainhash.Config{
		Algorithm: plainhash.AlgorithmMD5,
		Trace:     true,
		Log:       dtest.NewLogger(t),
	}, msg)
	require.NoError(t, err)
	require.Equal(t, digest, traced)
}

func TestSHA256_asciiPipeline(t *testing.T) {
	t.Parallel()

	msg, err := dhex.ASCIIToBytes("the quick brown fox")
	require.NoError(t, err)

	digest, err := plainhash.SHA256(msg, false)
	require.NoError(t, err)
	require.Len(t, digest, 32)
	require.Equal(t,
		"9ecb36561341d18eb65484e833efea61edc74b84cf5e6ae1b81c63533e25fc8f",
		dhex.BytesToHex(digest),
	)

	traced, err := plainhash.Sum(context.Background(), plainhash.Config{
		Algorithm: plainhash.AlgorithmSHA256,
		Trace:     true,
		Log:       dtest.NewLogger(t),
	}, msg)
	require.NoError(t, err)
	require.Equal(t, digest, traced)
}

func TestEmptyMessage(t *testing.T) {
	t.Parallel()

	msg, err := dhex.ASCIIToBytes("")
	require.NoError(t, err)

	d, err := plainhash.MD5(msg, false)
	require.NoError(t, err)
	require.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", dhex.BytesToHex(d))

	d, err = plainhash.SHA256(msg, false)
	require.NoError(t, err)
	require.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", dhex.BytesToHex(d))
}

func TestConversionErrors(t *testing.T) {
	t.Parallel()

	_, err := dhex.HexToBytes("ABC")
	var fe plainhash.FormatError
	require.ErrorAs(t, err, &fe)

	_, err = dhex.HexToBytes("ZZ")
	require.ErrorAs(t, err, &fe)

	_, err = dhex.ASCIIToBytes("Ā")
	var ee plainhash.EncodingError
	require.ErrorAs(t, err, &ee)
}

func TestSum_observerRequiresTrace(t *testing.T) {
	t.Parallel()

	msg := dtest.RandomDataForTest(t, 80)

	for _, a := range []plainhash.Algorithm{plainhash.AlgorithmMD5, plainhash.AlgorithmSHA256} {
		var off dtrace.Recorder
		d1, err := plainhash.Sum(context.Background(), plainhash.Config{
			Algorithm: a,
			Observer:  &off,
			Log:       dtest.NewLogger(t),
		}, msg)
		require.NoError(t, err)
		require.Zero(t, off.Len())

		var on dtrace.Recorder
		d2, err := plainhash.Sum(context.Background(), plainhash.Config{
			Algorithm: a,
			Trace:     true,
			Observer:  &on,
			Log:       dtest.NewLogger(t),
		}, msg)
		require.NoError(t, err)
		require.True(t, on.Complete())
		require.Equal(t, 2, on.Blocks())

		require.Equal(t, d1, d2)
		require.Len(t, d1, a.Size())
	}
}

func TestSum_span(t *testing.T) {
	t.Parallel()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	_, err := plainhash.Sum(context.Background(), plainhash.Config{
		Algorithm:      plainhash.AlgorithmSHA256,
		Trace:          true,
		Log:            dtest.NewLogger(t),
		TracerProvider: tp,
	}, []byte("abc"))
	require.NoError(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 1)

	s := spans[0]
	require.Equal(t, "plainhash.Sum", s.Name())

	events := s.Events()
	require.Len(t, events, 1+dtrace.RoundsPerBlock+1)
	require.Equal(t, "hash.init", events[0].Name)
	require.Equal(t, "hash.round", events[1].Name)
	require.Equal(t, "hash.block", events[len(events)-1].Name)

	var digestAttr string
	for _, kv := range s.Attributes() {
		if kv.Key == "hash.digest" {
			digestAttr = kv.Value.Emit()
		}
	}
	require.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", digestAttr)
}

func TestSum_invalidAlgorithm(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		_, _ = plainhash.Sum(context.Background(), plainhash.Config{}, nil)
	})
}

// Not parallel: this test replaces the process-wide default logger.
func TestTraceFlag_visibleWithDefaultLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))

	countRecords := func() int {
		n := strings.Count(buf.String(), "Hash trace checkpoint")
		buf.Reset()
		return n
	}

	_, err := plainhash.MD5([]byte("abc"), false)
	require.NoError(t, err)
	require.Zero(t, countRecords())

	_, err = plainhash.MD5([]byte("abc"), true)
	require.NoError(t, err)
	require.Equal(t, 1+1*(dtrace.RoundsPerBlock+1), countRecords())

	_, err = plainhash.SHA256([]byte(strings.Repeat("x", 56)), true)
	require.NoError(t, err)
	require.Equal(t, 1+2*(dtrace.RoundsPerBlock+1), countRecords())
}

func TestSum_traceLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	// Below the handler's level, nothing is written.
	_, err := plainhash.Sum(context.Background(), plainhash.Config{
		Algorithm:  plainhash.AlgorithmMD5,
		Trace:      true,
		Log:        log,
		TraceLevel: slog.LevelDebug,
	}, []byte("abc"))
	require.NoError(t, err)
	require.Zero(t, buf.Len())

	_, err = plainhash.Sum(context.Background(), plainhash.Config{
		Algorithm:  plainhash.AlgorithmMD5,
		Trace:      true,
		Log:        log,
		TraceLevel: slog.LevelWarn,
	}, []byte("abc"))
	require.NoError(t, err)
	require.Equal(t, 1+dtrace.RoundsPerBlock+1, strings.Count(buf.String(), "level=WARN"))
}
