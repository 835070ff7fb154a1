package sixpack

// Lifecycle and Notifier are small capability values embedded by owners
// (Aircraft, Knob, instruments) instead of a base-type chain: Lifecycle
// collects cleanup work, Notifier holds an ordered change-listener list.

// --- Lifecycle ---

// Lifecycle tracks cleanup callbacks for an owning object. The zero value is
// ready to use. Dispose runs the registered hooks in reverse registration
// order exactly once; a second Dispose is a programming error and panics.
type Lifecycle struct {
	hooks    []func()
	disposed bool
}

// OnDispose registers fn to run when the owner is disposed.
func (l *Lifecycle) OnDispose(fn func()) {
	if fn == nil {
		panic("sixpack: OnDispose requires a callback")
	}
	if l.disposed {
		panic("sixpack: OnDispose on a disposed object")
	}
	l.hooks = append(l.hooks, fn)
}

// Dispose runs all hooks in reverse registration order and marks the
// lifecycle disposed. Panics on double disposal.
func (l *Lifecycle) Dispose() {
	if l.disposed {
		panic("sixpack: object already disposed")
	}
	l.disposed = true
	for i := len(l.hooks) - 1; i >= 0; i-- {
		l.hooks[i]()
	}
	l.hooks = nil
}

// IsDisposed reports whether Dispose has been called.
func (l *Lifecycle) IsDisposed() bool {
	return l.disposed
}

// --- Notifier ---

type listenerEntry struct {
	id uint32
	fn func(source any)
}

// Notifier is an ordered set of change listeners for a single emitting
// object. The zero value is ready to use. Each Listen call creates a
// distinct registration identified by its handle, so the same function can
// be registered more than once and each registration fires independently.
type Notifier struct {
	listeners []listenerEntry
	scratch   []listenerEntry
	nextID    uint32
}

// ListenerHandle identifies a single registration on a Notifier.
type ListenerHandle struct {
	n  *Notifier
	id uint32
}

// Listen registers fn to be called on every Notify, in registration order.
func (n *Notifier) Listen(fn func(source any)) ListenerHandle {
	if fn == nil {
		panic("sixpack: Listen requires a callback")
	}
	n.nextID++
	n.listeners = append(n.listeners, listenerEntry{id: n.nextID, fn: fn})
	return ListenerHandle{n: n, id: n.nextID}
}

// Remove unregisters the listener. Removing a handle that is not registered
// (including removing it twice) is a programming error and panics.
func (h ListenerHandle) Remove() {
	if h.n == nil {
		panic("sixpack: Remove on a zero ListenerHandle")
	}
	ls := h.n.listeners
	for i := range ls {
		if ls[i].id == h.id {
			copy(ls[i:], ls[i+1:])
			ls[len(ls)-1] = listenerEntry{}
			h.n.listeners = ls[:len(ls)-1]
			return
		}
	}
	panic("sixpack: listener not registered")
}

// Notify synchronously invokes every listener with source, in registration
// order. Listeners registered or removed during delivery do not affect the
// current round.
func (n *Notifier) Notify(source any) {
	// Snapshot so removal during delivery cannot skip or repeat a listener.
	n.scratch = append(n.scratch[:0], n.listeners...)
	for _, e := range n.scratch {
		e.fn(source)
	}
}

// Len returns the number of registered listeners.
func (n *Notifier) Len() int {
	return len(n.listeners)
}
