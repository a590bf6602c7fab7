package dtrace

import "context"

// Stream is a linked list of trace events.
// The list has a single writer, a [StreamObserver],
// and any number of readers, each consuming at its own pace.
//
// A reader waits on Ready; once Ready is closed,
// Val and Next are safe to read.
// A nil Next after Ready is closed marks the end of the trace.
//
// If readers do not actively consume the list,
// the node they observe will never be garbage collected.
type Stream struct {
	Ready chan struct{}
	Next  *Stream
	Val   Event
}

// NewStream returns an initialized, unpublished stream node.
func NewStream() *Stream {
	return &Stream{
		Ready: make(chan struct{}),
	}
}

// publish assigns s's value and initializes s.Next,
// then closes s.Ready to notify readers.
func (s *Stream) publish(e Event) {
	s.Val = e
	s.Next = NewStream()
	close(s.Ready)
}

// StreamObserver is an [Observer] that publishes each event to a [Stream].
// Create one with [NewStreamObserver].
type StreamObserver struct {
	tail *Stream
}

// NewStreamObserver returns an observer and the head of the stream it writes.
// Call [*StreamObserver.Close] after the hash call returns
// so readers can detect the end of the trace.
func NewStreamObserver() (*StreamObserver, *Stream) {
	head := NewStream()
	return &StreamObserver{tail: head}, head
}

// Observe publishes e and advances the tail.
// Observe panics if called after Close.
func (o *StreamObserver) Observe(e Event) {
	o.tail.publish(e)
	o.tail = o.tail.Next
}

// Close marks the end of the stream.
// The final node has Ready closed and a nil Next.
// Close panics if called twice.
func (o *StreamObserver) Close() {
	close(o.tail.Ready)
}

// Collect reads s from the given node to the end of the trace.
// It returns early with context.Cause(ctx) if ctx is canceled first,
// along with the events read so far.
func Collect(ctx context.Context, s *Stream) ([]Event, error) {
	var out []Event
	for {
		select {
		case <-ctx.Done():
			return out, context.Cause(ctx)
		case <-s.Ready:
			if s.Next == nil {
				return out, nil
			}
			out = append(out, s.Val)
			s = s.Next
		}
	}
}
