package depot

import "reflect"

// System is a unit of behavior owned by a Feature. Mount returns the
// handlers the system responds with, in declaration order; it is called once
// when the system is added to a feature.
type System interface {
	Mount() []Handler
}

// Handler is a typed event callback produced by On. A feature dispatching an
// event invokes every handler whose event type matches, walking systems in
// insertion order.
type Handler interface {
	eventType() reflect.Type
	invoke(r *Registry, event any)
}

// Applier is a captured construction record for one component type. It can
// populate an entity or be cloned into another prototype. Build one with
// Comp.
type Applier interface {
	family() FamilyID
	clone() Applier
	applyToEntity(e Entity, override bool)
}

// baseStorage is the type-erased face of a component column, used for
// registry-level walks: destroy, clone, counting and memory accounting.
type baseStorage interface {
	removeID(id EntityID) bool
	hasID(id EntityID) bool
	cloneID(from, to EntityID)
	removeAll() int
	count() int
	memoryUsage() int
}

// MemoryUsageInfo splits a registry's byte usage between the entity identity
// structures and the component columns.
type MemoryUsageInfo struct {
	Entities   int
	Components int
}
