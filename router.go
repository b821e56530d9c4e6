// Package tern provides DOM-like event routing with capture, target and
// bubble phases over a component forest.
package tern

// Phase is where in the propagation walk a handler fires.
type Phase int

const (
	// PhaseCapture runs root-to-target, before the target.
	PhaseCapture Phase = iota
	// PhaseTarget runs at the target itself.
	PhaseTarget
	// PhaseBubble runs target-to-root, after the target.
	PhaseBubble
)

// RoutingContext threads through one routing walk.
type RoutingContext struct {
	// Phase is the currently executing phase.
	Phase Phase

	stopped   bool
	prevented bool
}

// StopPropagation halts the walk; no further handlers run anywhere.
func (c *RoutingContext) StopPropagation() {
	c.stopped = true
}

// PreventDefault asks the caller to suppress the default action without
// halting the walk.
func (c *RoutingContext) PreventDefault() {
	c.prevented = true
}

// Stopped reports whether propagation has been stopped.
func (c *RoutingContext) Stopped() bool {
	return c.stopped
}

// RouteHandler handles an event during routing.
type RouteHandler func(ev Event, ctx *RoutingContext) EventResult

type routeEntry struct {
	phase   Phase
	handler RouteHandler
}

// EventRouter routes events through a forest of registered nodes. Each
// node has at most one parent; handlers are tagged with the phase they
// fire in.
type EventRouter struct {
	parents  map[ComponentID]ComponentID
	handlers map[ComponentID][]routeEntry
	nextID   ComponentID
}

// NewEventRouter creates an empty router.
func NewEventRouter() *EventRouter {
	return &EventRouter{
		parents:  make(map[ComponentID]ComponentID),
		handlers: make(map[ComponentID][]routeEntry),
		nextID:   1,
	}
}

// Register adds a node under parent (zero for a root) and returns its
// fresh id.
func (r *EventRouter) Register(parent ComponentID) ComponentID {
	id := r.nextID
	r.nextID++
	if parent != 0 {
		r.parents[id] = parent
	}
	return id
}

// Unregister removes a node's handlers. Its own parent link is kept, so
// children keep their parent link and simply route past the gap to the
// ancestors above it.
func (r *EventRouter) Unregister(id ComponentID) {
	delete(r.handlers, id)
}

// AddHandler attaches a phase-tagged handler to a node.
func (r *EventRouter) AddHandler(id ComponentID, phase Phase, handler RouteHandler) {
	r.handlers[id] = append(r.handlers[id], routeEntry{phase: phase, handler: handler})
}

// Route propagates ev to target: capture handlers root-to-target, target
// handlers, then bubble handlers target-to-root. The result is Consumed
// if propagation was stopped, Handled if a default was prevented, else
// Ignored.
func (r *EventRouter) Route(ev Event, target ComponentID) EventResult {
	ctx := &RoutingContext{}

	// Path from root down to target.
	path := []ComponentID{target}
	current := target
	for {
		parent, ok := r.parents[current]
		if !ok {
			break
		}
		path = append(path, parent)
		current = parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	ctx.Phase = PhaseCapture
	for _, id := range path[:len(path)-1] {
		if ctx.stopped {
			break
		}
		r.invoke(id, PhaseCapture, ev, ctx)
	}

	if !ctx.stopped {
		ctx.Phase = PhaseTarget
		r.invoke(target, PhaseTarget, ev, ctx)
	}

	if !ctx.stopped {
		ctx.Phase = PhaseBubble
		for i := len(path) - 2; i >= 0; i-- {
			if ctx.stopped {
				break
			}
			r.invoke(path[i], PhaseBubble, ev, ctx)
		}
	}

	switch {
	case ctx.stopped:
		return Consumed
	case ctx.prevented:
		return Handled
	default:
		return Ignored
	}
}

func (r *EventRouter) invoke(id ComponentID, phase Phase, ev Event, ctx *RoutingContext) {
	for _, entry := range r.handlers[id] {
		if entry.phase != phase {
			continue
		}
		if entry.handler(ev, ctx) == Consumed {
			ctx.StopPropagation()
		}
		if ctx.stopped {
			return
		}
	}
}
