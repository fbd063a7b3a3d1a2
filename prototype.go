package depot

var _ Applier = &valueApplier[struct{}]{}

// valueApplier captures one component value. Cloning copies the value;
// applying either assigns it or, without override, skips entities that
// already carry the type.
type valueApplier[T any] struct {
	value T
}

// Comp captures a component value for deferred application through a
// Prototype.
func Comp[T any](v T) Applier {
	return &valueApplier[T]{value: v}
}

func (a *valueApplier[T]) family() FamilyID {
	return FamilyOf[T]()
}

func (a *valueApplier[T]) clone() Applier {
	c := *a
	return &c
}

func (a *valueApplier[T]) applyToEntity(e Entity, override bool) {
	if override || !ExistsComponent[T](e.View()) {
		Assign(e, a.value)
	}
}

// Prototype is a reusable bundle of appliers keyed by component family. It
// bulk-assigns components to new or existing entities. Prototypes are not
// safe for concurrent use.
type Prototype struct {
	appliers sparseMap[FamilyID, Applier]
}

func newPrototype() *Prototype {
	return &Prototype{appliers: newSparseMap[FamilyID, Applier](familyIndexer)}
}

// With records the given appliers, replacing any prior applier of the same
// component type. Returns the prototype for chaining.
func (p *Prototype) With(appliers ...Applier) *Prototype {
	for _, a := range appliers {
		p.appliers.insertOrAssign(a.family(), a)
	}
	return p
}

// Clone deep-copies the prototype: every applier is cloned, so later edits
// to either side stay independent.
func (p *Prototype) Clone() *Prototype {
	q := newPrototype()
	for i := 0; i < p.appliers.size(); i++ {
		q.appliers.insert(p.appliers.keyAt(i), (*p.appliers.at(i)).clone())
	}
	return q
}

// MergeWith unions the other prototype's appliers into this one. Collisions
// keep the resident applier unless override is set.
func (p *Prototype) MergeWith(other *Prototype, override bool) *Prototype {
	for i := 0; i < other.appliers.size(); i++ {
		fam := other.appliers.keyAt(i)
		if override || !p.appliers.has(fam) {
			p.appliers.insertOrAssign(fam, (*other.appliers.at(i)).clone())
		}
	}
	return p
}

// ApplyToEntity runs every applier against the entity. Without override,
// components the entity already carries are preserved.
func (p *Prototype) ApplyToEntity(e Entity, override bool) {
	for i := 0; i < p.appliers.size(); i++ {
		(*p.appliers.at(i)).applyToEntity(e, override)
	}
}

func (p *Prototype) Clear() {
	p.appliers.clear()
}

func (p *Prototype) Empty() bool {
	return p.appliers.empty()
}

// HasApplier reports whether the prototype carries an applier for T.
func HasApplier[T any](p *Prototype) bool {
	return p.appliers.has(FamilyOf[T]())
}

// ApplyToComponent overwrites the component value in place if the prototype
// carries an applier for T, and reports whether it did.
func ApplyToComponent[T any](p *Prototype, c *T) bool {
	ap := p.appliers.find(FamilyOf[T]())
	if ap == nil {
		return false
	}
	va, ok := (*ap).(*valueApplier[T])
	if !ok {
		return false
	}
	*c = va.value
	return true
}
