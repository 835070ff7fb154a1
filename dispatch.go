package sixpack

// Dispatcher routes pointer events to registered (event, node) listeners,
// with exclusive capture: while a node holds capture, every dispatched event
// of a registered type is redirected to that node's listeners regardless of
// the hit target, so a knob being dragged keeps receiving moves after the
// pointer leaves its face.
//
// A Dispatcher is an explicit service — construct one per Panel (or per
// test); there is no package-global capture state.
type Dispatcher struct {
	regs    map[EventType][]*Registration
	capture *Node
}

// PointerEvent is delivered to registered callbacks.
type PointerEvent struct {
	Type   EventType
	Target *Node // hit node the event was dispatched at; nil for synthetic events
	World  Vec2  // world-space pointer position
	Local  Vec2  // World translated into the registered node's local space
	// Capturing is true when this delivery was redirected to the capture
	// holder rather than routed by hit target.
	Capturing bool
}

// PointerFunc handles a dispatched pointer event. Synthetic capture events
// (EventCaptureSet, EventCaptureLost) carry only Type.
type PointerFunc func(ev PointerEvent)

// Registration identifies one (event, node, callback, includeDescendants)
// record. Each Register call yields a distinct record even for an identical
// callback, and all records for a matching (event, node) pair fire.
type Registration struct {
	d           *Dispatcher
	Event       EventType
	Node        *Node
	Descendants bool
	fn          PointerFunc
}

// NewDispatcher creates an empty dispatcher with no capture set.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{regs: make(map[EventType][]*Registration)}
}

// Register adds a listener for ev on node. With includeDescendants, events
// hitting any descendant of node also fire the callback (capture routing
// ignores this flag). The returned Registration is the removal token.
func (d *Dispatcher) Register(ev EventType, node *Node, fn PointerFunc, includeDescendants bool) *Registration {
	if node == nil {
		panic("sixpack: Register requires a node")
	}
	if fn == nil {
		panic("sixpack: Register requires a callback")
	}
	r := &Registration{d: d, Event: ev, Node: node, Descendants: includeDescendants, fn: fn}
	d.regs[ev] = append(d.regs[ev], r)
	return r
}

// Unregister removes a previously registered record. Removing a record that
// is not present (including removing it twice) is a programming error and
// panics. Unregistering a record for the node currently holding capture
// releases capture first, so the release hook still runs.
func (d *Dispatcher) Unregister(r *Registration) {
	if r == nil || r.d != d {
		panic("sixpack: Unregister of a foreign registration")
	}
	if r.Node == d.capture {
		d.ReleaseCapture()
	}
	list := d.regs[r.Event]
	for i, rec := range list {
		if rec == r {
			copy(list[i:], list[i+1:])
			list[len(list)-1] = nil
			d.regs[r.Event] = list[:len(list)-1]
			r.d = nil
			return
		}
	}
	panic("sixpack: registration not found")
}

// Dispatch routes an event of type ev that hit target at the world-space
// position. With capture set, listeners of ev on the capture node fire with
// the position translated into the capture node's space and Capturing true;
// otherwise listeners fire when target is their node or, with
// includeDescendants, any descendant of it.
//
// target may be nil (pointer over empty space); only capture routing can
// deliver such events.
func (d *Dispatcher) Dispatch(ev EventType, target *Node, world Vec2) {
	if ev.synthetic() {
		panic("sixpack: cannot dispatch a synthetic capture event")
	}

	// Snapshot so callbacks may register/unregister during delivery and
	// capture transitions may fire their own hooks reentrantly.
	snap := append([]*Registration(nil), d.regs[ev]...)

	if c := d.capture; c != nil {
		for _, r := range snap {
			if r.d != d || r.Node != c {
				continue
			}
			lx, ly := c.WorldToLocal(world.X, world.Y)
			r.fn(PointerEvent{
				Type: ev, Target: target, World: world,
				Local: Vec2{lx, ly}, Capturing: true,
			})
		}
		return
	}

	if target == nil {
		return
	}
	for _, r := range snap {
		if r.d != d {
			continue // unregistered during this dispatch
		}
		if target != r.Node && !(r.Descendants && isAncestor(r.Node, target)) {
			continue
		}
		lx, ly := r.Node.WorldToLocal(world.X, world.Y)
		r.fn(PointerEvent{
			Type: ev, Target: target, World: world,
			Local: Vec2{lx, ly},
		})
	}
}

// SetCapture makes node the sole routing target for subsequent dispatches.
// Any existing capture is released first (running its EventCaptureLost
// listeners), then node's EventCaptureSet listeners fire.
func (d *Dispatcher) SetCapture(node *Node) {
	if node == nil {
		panic("sixpack: SetCapture requires a node")
	}
	if d.capture != nil {
		d.ReleaseCapture()
	}
	d.capture = node
	d.fireSynthetic(EventCaptureSet, node)
}

// ReleaseCapture fires the capture holder's EventCaptureLost listeners and
// clears capture. Idempotent when nothing is captured.
func (d *Dispatcher) ReleaseCapture() {
	c := d.capture
	if c == nil {
		return
	}
	d.fireSynthetic(EventCaptureLost, c)
	// The hook may have re-captured; only clear if it did not.
	if d.capture == c {
		d.capture = nil
	}
}

// Captured returns the node currently holding capture, or nil.
func (d *Dispatcher) Captured() *Node {
	return d.capture
}

func (d *Dispatcher) fireSynthetic(ev EventType, node *Node) {
	snap := append([]*Registration(nil), d.regs[ev]...)
	for _, r := range snap {
		if r.d == d && r.Node == node {
			r.fn(PointerEvent{Type: ev})
		}
	}
}

// Dispose drops every registration and releases capture. Further use of the
// dispatcher is a programming error.
func (d *Dispatcher) Dispose() {
	d.ReleaseCapture()
	for ev, list := range d.regs {
		for _, r := range list {
			r.d = nil
		}
		delete(d.regs, ev)
	}
	d.regs = nil
}
