package dtrace

// Observer receives trace events from a hash engine.
//
// Observe is called synchronously, in checkpoint order,
// on the goroutine computing the hash.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a plain function to the [Observer] interface.
type ObserverFunc func(Event)

func (f ObserverFunc) Observe(e Event) {
	f(e)
}

// Multi returns an Observer that forwards every event
// to each of the non-nil observers, in order.
// It returns nil if there are no non-nil observers,
// which engines treat as tracing disabled.
func Multi(observers ...Observer) Observer {
	var m multiObserver
	for _, o := range observers {
		if o != nil {
			m = append(m, o)
		}
	}

	switch len(m) {
	case 0:
		return nil
	case 1:
		return m[0]
	default:
		return m
	}
}

type multiObserver []Observer

func (m multiObserver) Observe(e Event) {
	for _, o := range m {
		o.Observe(e)
	}
}
