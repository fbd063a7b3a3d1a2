package depot

import (
	"reflect"
	"sync"
)

// Feature owns an ordered list of systems behind one enable switch.
// Disabling gates dispatch only; the systems stay registered. Insertion
// order is the dispatch order within every phase.
type Feature struct {
	mu       sync.RWMutex
	disabled bool
	slots    []systemSlot
}

// systemSlot caches the handlers a system mounted when it was added, so
// dispatch never re-queries the system.
type systemSlot struct {
	sys      System
	handlers []Handler
}

func newFeature(systems ...System) *Feature {
	f := &Feature{}
	for _, s := range systems {
		f.AddSystem(s)
	}
	return f
}

// AddSystem appends the system; it will dispatch after every system added
// before it. Returns the feature for chaining.
func (f *Feature) AddSystem(sys System) *Feature {
	handlers := sys.Mount()
	f.mu.Lock()
	f.slots = append(f.slots, systemSlot{sys: sys, handlers: handlers})
	f.mu.Unlock()
	return f
}

func (f *Feature) Enable() *Feature {
	f.mu.Lock()
	f.disabled = false
	f.mu.Unlock()
	return f
}

func (f *Feature) Disable() *Feature {
	f.mu.Lock()
	f.disabled = true
	f.mu.Unlock()
	return f
}

func (f *Feature) IsEnabled() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return !f.disabled
}

func (f *Feature) IsDisabled() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.disabled
}

// featureProcess delivers one event to a feature in three phases:
// Before[E], then E, then After[E]. All phases walk the same snapshot of the
// system list, so a handler adding systems mid-event affects only later
// events.
func featureProcess[E any](f *Feature, r *Registry, event E) {
	f.mu.RLock()
	slots := f.slots
	f.mu.RUnlock()
	fireEvent(r, slots, Before[E]{Event: event})
	fireEvent(r, slots, event)
	fireEvent(r, slots, After[E]{Event: event})
}

// fireEvent invokes, in system insertion order, every handler whose event
// type matches X.
func fireEvent[X any](r *Registry, slots []systemSlot, event X) {
	t := reflect.TypeFor[X]()
	for _, slot := range slots {
		for _, h := range slot.handlers {
			if h.eventType() == t {
				h.invoke(r, event)
			}
		}
	}
}
