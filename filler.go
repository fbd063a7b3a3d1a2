package depot

// EntityFiller assigns components to one entity in a fluent chain:
//
//	f := depot.Factory.NewEntityFiller(e)
//	depot.FillComponent(f, Position{1, 2})
//	depot.FillComponent(f, Velocity{3, 4})
type EntityFiller struct {
	ent Entity
}

func (f *EntityFiller) Entity() Entity {
	return f.ent
}

// FillComponent assigns the value to the filler's entity and returns the
// filler.
func FillComponent[T any](f *EntityFiller, v T) *EntityFiller {
	Assign(f.ent, v)
	return f
}

// RegistryFiller binds features to a registry in a fluent chain.
type RegistryFiller struct {
	reg *Registry
}

func (f *RegistryFiller) Registry() *Registry {
	return f.reg
}

// FillFeature assigns a feature under the tag and returns the filler.
func FillFeature[Tag any](f *RegistryFiller, systems ...System) *RegistryFiller {
	AssignFeature[Tag](f.reg, systems...)
	return f
}
