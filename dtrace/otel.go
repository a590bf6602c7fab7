package dtrace

import (
	"context"
	"fmt"

	otelattr "go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	otpnoop "go.opentelemetry.io/otel/trace/noop"
)

type TracerProvider = oteltrace.TracerProvider

type Span = oteltrace.Span

type KeyValueAttr = otelattr.KeyValue

// TracerName is the instrumentation name used for spans
// started by this module.
const TracerName = "github.com/gordian-engine/plainhash"

// NopTracerProvider returns the otel no-op tracer provider.
// This is intended to use as a fallback when a nil tracer provider is given.
func NopTracerProvider() TracerProvider {
	return otpnoop.NewTracerProvider()
}

// WithAttributes is an alias to [oteltrace.WithAttributes]
// to allow consumers to only reference the dtrace package.
func WithAttributes(attrs ...KeyValueAttr) oteltrace.SpanStartEventOption {
	return oteltrace.WithAttributes(attrs...)
}

// HexAttr returns an attribute holding fmt.Sprintf("%x", val).
// The value is formatted immediately,
// so callers on hot paths should check Span.IsRecording first.
func HexAttr(key string, val any) KeyValueAttr {
	return otelattr.String(key, fmt.Sprintf("%x", val))
}

// RegisterAttr returns an attribute holding a register value
// as eight lowercase hex digits, matching [Event.String] and [LogObserver].
func RegisterAttr(key string, v uint32) KeyValueAttr {
	return otelattr.String(key, formatRegister(v))
}

// SpanError sets the given span to error status,
// with detail from err.Error().
func SpanError(span Span, err error) {
	span.SetStatus(otelcodes.Error, err.Error())
}

// AlgorithmAttr returns the "hash.algorithm" attribute.
func AlgorithmAttr(name string) KeyValueAttr {
	return otelattr.String("hash.algorithm", name)
}

// MessageLengthAttr returns the "hash.message.length" attribute,
// the message size in bytes.
func MessageLengthAttr(n int) KeyValueAttr {
	return otelattr.Int("hash.message.length", n)
}

// SpanObserver records each trace event as an event on an OpenTelemetry span.
//
// Event names are "hash.init", "hash.round", and "hash.block".
// Registers are attached as eight-digit hex attributes
// named "hash.reg.a", "hash.reg.b", and so on.
// Nothing is formatted for a span that is not recording.
type SpanObserver struct {
	span Span
}

// NewSpanObserver returns a SpanObserver adding events to span.
// If span is nil, the observer uses a non-recording span.
func NewSpanObserver(span Span) SpanObserver {
	if span == nil {
		span = oteltrace.SpanFromContext(context.Background())
	}
	return SpanObserver{span: span}
}

func (o SpanObserver) Observe(e Event) {
	if !o.span.IsRecording() {
		return
	}

	attrs := make([]KeyValueAttr, 0, 2+MaxRegisters)
	attrs = append(attrs,
		otelattr.Int("hash.block", e.Block),
		otelattr.Int("hash.round", e.Round),
	)
	for i := range int(e.nRegs) {
		attrs = append(attrs, RegisterAttr("hash.reg."+RegisterName(i), e.regs[i]))
	}

	o.span.AddEvent("hash."+e.Checkpoint.String(), WithAttributes(attrs...))
}
