package depot

// ComponentRef is a thin typed wrapper over a mutable entity handle,
// providing component operations without repeating the type argument at
// every call site.
type ComponentRef[T any] struct {
	owner Entity
}

// RefComponent wraps an entity into a typed component reference.
func RefComponent[T any](e Entity) ComponentRef[T] {
	return ComponentRef[T]{owner: e}
}

func (c ComponentRef[T]) Owner() Entity {
	return c.owner
}

func (c ComponentRef[T]) Valid() bool {
	return c.owner.Valid()
}

func (c ComponentRef[T]) Exists() bool {
	return ExistsComponent[T](c.owner.View())
}

func (c ComponentRef[T]) Assign(v T) *T {
	return Assign(c.owner, v)
}

func (c ComponentRef[T]) Ensure(v T) *T {
	return Ensure(c.owner, v)
}

func (c ComponentRef[T]) Remove() bool {
	return RemoveComponent[T](c.owner)
}

func (c ComponentRef[T]) Get() (*T, error) {
	return GetComponent[T](c.owner)
}

func (c ComponentRef[T]) Find() *T {
	return FindComponent[T](c.owner)
}

func (c ComponentRef[T]) Hash() uint64 {
	return c.owner.Hash()
}

// ComponentView is the read-only counterpart of ComponentRef.
type ComponentView[T any] struct {
	owner EntityView
}

// ViewComponent wraps an entity view into a typed component view.
func ViewComponent[T any](v EntityView) ComponentView[T] {
	return ComponentView[T]{owner: v}
}

func (c ComponentView[T]) Owner() EntityView {
	return c.owner
}

func (c ComponentView[T]) Valid() bool {
	return c.owner.Valid()
}

func (c ComponentView[T]) Exists() bool {
	return ExistsComponent[T](c.owner)
}

func (c ComponentView[T]) Get() (T, error) {
	return GetComponentView[T](c.owner)
}

func (c ComponentView[T]) Find() (T, bool) {
	return FindComponentView[T](c.owner)
}

func (c ComponentView[T]) Hash() uint64 {
	return c.owner.Hash()
}
