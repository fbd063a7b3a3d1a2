/*
Package depot provides a sparse-set Entity-Component-System runtime for
simulations, games and data-oriented pipelines.

State lives in lightweight entities that aggregate typed components stored
column-wise for cache-friendly iteration; behavior is expressed as systems
grouped into features and driven by events.

Core Concepts:

  - Entity: an identity handle carrying a registry reference and a packed
    (index, version) id. Versions detect stale handles across slot reuse.
  - Component: a user value type attached to entities, one column per type.
  - Registry: owns entities, columns and features; the sole entry point.
  - Option: a composable predicate filtering iteration candidates.
  - Feature: an ordered list of systems behind one enable switch, fired per
    event in before/main/after phases.
  - Prototype: type-erased construction records for bulk-building entities.

Basic Usage:

	registry := depot.Factory.NewRegistry()

	// Create entities and attach components
	player, _ := registry.CreateEntity()
	depot.Assign(player, Position{X: 10, Y: 20})
	depot.Assign(player, Velocity{X: 1, Y: 2})

	// Joined iteration: the leftmost type drives, so list the scarcest
	// component first
	depot.ForJoined2(registry, func(e depot.Entity, p *Position, v *Velocity) {
		p.X += v.X
		p.Y += v.Y
	})

	// Events through features
	depot.AssignFeature[Physics](registry, movementSystem{})
	depot.ProcessEvent(registry, Tick{Delta: 16 * time.Millisecond})

Multiple goroutines may hold handles into the same registry: each column is
guarded by its own reader-writer lock and the identity structures by the
registry's. Destroys requested while an iteration is in flight are journaled
and applied when the iteration finishes.
*/
package depot
