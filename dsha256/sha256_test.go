package dsha256_test

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"log/slog"
	"strings"
	"testing"

	"github.com/gordian-engine/plainhash/dhashtest"
	"github.com/gordian-engine/plainhash/dsha256"
	"github.com/gordian-engine/plainhash/dtrace"
	"github.com/gordian-engine/plainhash/internal/dtest"
	"github.com/stretchr/testify/require"
)

func TestCompliance(t *testing.T) {
	t.Parallel()

	dhashtest.TestEngineCompliance(t, func() (dhashtest.SumFunc, int, int) {
		return func(msg []byte, obs dtrace.Observer, log *slog.Logger) ([]byte, error) {
			d, err := dsha256.Sum(msg, dsha256.Options{Observer: obs, Log: log})
			if err != nil {
				return nil, err
			}
			return d[:], nil
		}, dsha256.Size, 8
	})
}

func TestSum_knownAnswers(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		in   string
		want string
	}{
		{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{
			"abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
			"248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1",
		},
		{"the quick brown fox", "9ecb36561341d18eb65484e833efea61edc74b84cf5e6ae1b81c63533e25fc8f"},
		{
			"The quick brown fox jumps over the lazy dog",
			"d7a8fbb307d7809469ca9abcb0082e4f8d5651e46d3cdb762d02d0bf37c9e592",
		},
		{strings.Repeat("a", 55), "9f4390f8d30c2dd92ec9f095b65e2b9ae9b0a925a5258e241c9f1e910f734318"},
		{strings.Repeat("a", 56), "b35439a4ac6f0948b6d6f9e3c6af0f5f590ce20f1bde7090ef7970686ec6738a"},
		{strings.Repeat("a", 64), "ffe054fe7ae0cb6dc65c3af9b61d5209f439851db43d0ba5997337df154668eb"},
	} {
		got, err := dsha256.Sum([]byte(tc.in), dsha256.Options{})
		require.NoError(t, err)
		require.Equalf(t, tc.want, hex.EncodeToString(got[:]), "SHA-256(%q)", tc.in)
	}
}

func TestSum_millionA(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long message in short mode")
	}
	t.Parallel()

	got, err := dsha256.Sum([]byte(strings.Repeat("a", 1_000_000)), dsha256.Options{})
	require.NoError(t, err)
	require.Equal(t,
		"cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0",
		hex.EncodeToString(got[:]),
	)
}

func TestSum_matchesStdlib(t *testing.T) {
	t.Parallel()

	data := dtest.RandomDataForTest(t, 1024)
	for n := 0; n <= len(data); n += 7 {
		got, err := dsha256.Sum(data[:n], dsha256.Options{})
		require.NoError(t, err)
		require.Equalf(t, sha256.Sum256(data[:n]), got, "length %d", n)
	}
}

func TestSum_trace(t *testing.T) {
	t.Parallel()

	var r dtrace.Recorder
	got, err := dsha256.Sum([]byte("the quick brown fox"), dsha256.Options{Observer: &r})
	require.NoError(t, err)

	events := r.Events()
	require.Equal(t, dsha256.Name, events[0].Algorithm)
	require.Equal(t, []uint32{
		0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
		0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
	}, events[0].Registers())

	// Each round shifts registers down by one: the new b is the old a, and so on.
	for i := 2; i <= dtrace.RoundsPerBlock; i++ {
		prev, cur := events[i-1].Registers(), events[i].Registers()
		require.Equal(t, prev[0:3], cur[1:4])
		require.Equal(t, prev[4:7], cur[5:8])
	}

	final, ok := r.Final()
	require.True(t, ok)
	var fromTrace [dsha256.Size]byte
	for i, v := range final {
		binary.BigEndian.PutUint32(fromTrace[4*i:], v)
	}
	require.Equal(t, got, fromTrace)
}
