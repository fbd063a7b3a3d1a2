package depot

// Entity is a mutable handle: a registry reference plus a packed id. The
// zero Entity is invalid, equal to every other zero Entity, and never
// matches a live id. A handle whose entity was destroyed is also invalid,
// but it keeps its registry and id and so does not equal the zero Entity.
type Entity struct {
	owner *Registry
	id    EntityID
}

// EntityView is the read-only counterpart of Entity. Options and read
// iteration work in terms of views.
type EntityView struct {
	owner *Registry
	id    EntityID
}

func (e Entity) Owner() *Registry {
	return e.owner
}

func (e Entity) ID() EntityID {
	return e.id
}

// View narrows the handle to its read-only form.
func (e Entity) View() EntityView {
	return EntityView{owner: e.owner, id: e.id}
}

func (e Entity) Valid() bool {
	return e.owner != nil && e.owner.alive(e.id)
}

// Clone creates a fresh entity carrying a copy of every component of this
// one.
func (e Entity) Clone() (Entity, error) {
	return e.owner.CloneEntity(e)
}

func (e Entity) Destroy() {
	if e.owner != nil {
		e.owner.DestroyEntity(e)
	}
}

func (e Entity) ComponentCount() int {
	if e.owner == nil {
		return 0
	}
	return e.owner.EntityComponentCount(e.View())
}

func (e Entity) RemoveAllComponents() int {
	if e.owner == nil {
		return 0
	}
	return e.owner.RemoveAllComponents(e)
}

// Hash folds the owning registry's serial into the id, so equal handles hash
// equal and handles of different registries diverge.
func (e Entity) Hash() uint64 {
	return e.View().Hash()
}

// Less orders handles lexicographically by (registry serial, id).
func (e Entity) Less(other Entity) bool {
	return e.View().Less(other.View())
}

func (v EntityView) Owner() *Registry {
	return v.owner
}

func (v EntityView) ID() EntityID {
	return v.id
}

func (v EntityView) Valid() bool {
	return v.owner != nil && v.owner.alive(v.id)
}

func (v EntityView) ComponentCount() int {
	if v.owner == nil {
		return 0
	}
	return v.owner.EntityComponentCount(v)
}

func (v EntityView) Hash() uint64 {
	var serial uint64
	if v.owner != nil {
		serial = v.owner.serial
	}
	return hashCombine(serial, uint64(v.id))
}

func (v EntityView) Less(other EntityView) bool {
	var ls, rs uint64
	if v.owner != nil {
		ls = v.owner.serial
	}
	if other.owner != nil {
		rs = other.owner.serial
	}
	if ls != rs {
		return ls < rs
	}
	return v.id < other.id
}
