package depot_test

import (
	"fmt"

	"github.com/bitdepot/depot"
)

// Position is a simple component for 2D coordinates
type Position struct {
	X, Y float64
}

// Velocity is a simple component for 2D movement
type Velocity struct {
	X, Y float64
}

// Frozen marks entities excluded from movement
type Frozen struct{}

// Example shows basic entity creation, joined iteration and options
func Example_basic() {
	registry := depot.Factory.NewRegistry()

	mover, _ := registry.CreateEntity()
	depot.Assign(mover, Position{X: 0, Y: 0})
	depot.Assign(mover, Velocity{X: 1, Y: 2})

	statue, _ := registry.CreateEntity()
	depot.Assign(statue, Position{X: 5, Y: 5})
	depot.Assign(statue, Velocity{X: 3, Y: 3})
	depot.Assign(statue, Frozen{})

	// Advance everything that moves and is not frozen
	depot.ForJoined2(registry, func(e depot.Entity, p *Position, v *Velocity) {
		p.X += v.X
		p.Y += v.Y
	}, depot.Without[Frozen]())

	p, _ := depot.GetComponent[Position](mover)
	fmt.Printf("mover: (%v, %v)\n", p.X, p.Y)
	p, _ = depot.GetComponent[Position](statue)
	fmt.Printf("statue: (%v, %v)\n", p.X, p.Y)
	// Output:
	// mover: (1, 2)
	// statue: (5, 5)
}

// Physics tags the feature owning the simulation systems
type Physics struct{}

// Step advances the simulation by one frame
type Step struct {
	Frame int
}

type movementSystem struct{}

func (movementSystem) Mount() []depot.Handler {
	return []depot.Handler{
		depot.On(func(r *depot.Registry, s Step) {
			depot.ForJoined2(r, func(_ depot.Entity, p *Position, v *Velocity) {
				p.X += v.X
				p.Y += v.Y
			})
		}),
		depot.On(func(_ *depot.Registry, s depot.After[Step]) {
			fmt.Printf("frame %d done\n", s.Event.Frame)
		}),
	}
}

// Example_events shows feature-driven dispatch with event phases
func Example_events() {
	registry := depot.Factory.NewRegistry()
	depot.AssignFeature[Physics](registry, movementSystem{})

	e, _ := registry.CreateEntity()
	depot.Assign(e, Position{})
	depot.Assign(e, Velocity{X: 2, Y: 1})

	depot.ProcessEvent(registry, Step{Frame: 1})
	depot.ProcessEvent(registry, Step{Frame: 2})

	p, _ := depot.GetComponent[Position](e)
	fmt.Printf("position: (%v, %v)\n", p.X, p.Y)
	// Output:
	// frame 1 done
	// frame 2 done
	// position: (4, 2)
}

// Example_prototype shows bulk construction through a prototype
func Example_prototype() {
	registry := depot.Factory.NewRegistry()
	soldier := depot.Factory.NewPrototype().
		With(depot.Comp(Position{X: 9, Y: 9}), depot.Comp(Velocity{X: 1, Y: 1}))

	e, _ := registry.CreateEntityFrom(soldier)
	p, _ := depot.GetComponent[Position](e)
	fmt.Printf("spawned at (%v, %v)\n", p.X, p.Y)
	// Output:
	// spawned at (9, 9)
}
