package depot

import "iter"

// Entities returns a range-over-func sequence of the live entities passing
// all options. The iteration loan is held until the range ends or breaks,
// so destroys requested inside the loop are journaled like in ForEachEntity.
func (r *Registry) Entities(opts ...Option) iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		r.iterGuard.lock()
		defer r.releaseIterGuard()
		for _, id := range r.idSnapshot() {
			if !evalOptions(EntityView{owner: r, id: id}, opts) {
				continue
			}
			if !yield(Entity{owner: r, id: id}) {
				return
			}
		}
	}
}

// Components returns a sequence over T's column with mutable component
// pointers. The column's exclusive lock is held for the life of the range;
// the loop body must not assign or remove T components.
func Components[T any](r *Registry, opts ...Option) iter.Seq2[Entity, *T] {
	return func(yield func(Entity, *T) bool) {
		s := findStorage[T](r)
		if s == nil {
			return
		}
		r.iterGuard.lock()
		defer r.releaseIterGuard()
		s.forEach(func(id EntityID, c *T) bool {
			if !evalOptions(EntityView{owner: r, id: id}, opts) {
				return true
			}
			return yield(Entity{owner: r, id: id}, c)
		})
	}
}
