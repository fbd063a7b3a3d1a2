package depot

type factory struct{}

// Factory builds the package's top-level objects.
var Factory factory

func (factory) NewRegistry() *Registry {
	return newRegistry()
}

func (factory) NewPrototype() *Prototype {
	return newPrototype()
}

func (factory) NewFeature(systems ...System) *Feature {
	return newFeature(systems...)
}

func (factory) NewEntityFiller(e Entity) *EntityFiller {
	return &EntityFiller{ent: e}
}

func (factory) NewRegistryFiller(r *Registry) *RegistryFiller {
	return &RegistryFiller{reg: r}
}
