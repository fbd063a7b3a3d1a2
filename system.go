package depot

import "reflect"

// Before wraps an event for the phase delivered ahead of the main event.
// Systems subscribe to it like any other event type:
//
//	depot.On(func(r *depot.Registry, ev depot.Before[Collision]) { ... })
type Before[E any] struct {
	Event E
}

// After wraps an event for the phase delivered behind the main event.
type After[E any] struct {
	Event E
}

var _ Handler = handler[struct{}]{}

type handler[E any] struct {
	fn func(*Registry, E)
}

// On builds a Handler invoking fn for every dispatched event of type E.
func On[E any](fn func(*Registry, E)) Handler {
	return handler[E]{fn: fn}
}

func (h handler[E]) eventType() reflect.Type {
	return reflect.TypeFor[E]()
}

func (h handler[E]) invoke(r *Registry, event any) {
	h.fn(r, event.(E))
}

// SystemFunc adapts a plain handler list into a System, for behaviors that
// need no state of their own.
type SystemFunc []Handler

func (s SystemFunc) Mount() []Handler {
	return s
}
