package depot

// Option is a predicate over a candidate entity, evaluated at iteration time
// before the user callback runs. Options compose with And, Or and Not in
// short-circuit argument order.
//
// Options handed to component or joined iteration must not test the driver
// type of that iteration: the driver column's lock is held while they run.
type Option func(EntityView) bool

// With matches entities that carry a component of type T.
func With[T any]() Option {
	return func(v EntityView) bool {
		return ExistsComponent[T](v)
	}
}

// Without matches entities that carry no component of type T.
func Without[T any]() Option {
	return Not(With[T]())
}

// BoolOption matches everything or nothing, regardless of the entity.
func BoolOption(b bool) Option {
	return func(EntityView) bool {
		return b
	}
}

// Not inverts an option.
func Not(o Option) Option {
	return func(v EntityView) bool {
		return !o(v)
	}
}

// AllOf is the conjunction of its arguments; empty means "always".
func AllOf(opts ...Option) Option {
	return func(v EntityView) bool {
		for _, o := range opts {
			if !o(v) {
				return false
			}
		}
		return true
	}
}

// AnyOf is the disjunction of its arguments; empty means "never".
func AnyOf(opts ...Option) Option {
	return func(v EntityView) bool {
		for _, o := range opts {
			if o(v) {
				return true
			}
		}
		return false
	}
}

func (o Option) And(p Option) Option {
	return AllOf(o, p)
}

func (o Option) Or(p Option) Option {
	return AnyOf(o, p)
}

func (o Option) Not() Option {
	return Not(o)
}

func evalOptions(v EntityView, opts []Option) bool {
	for _, o := range opts {
		if !o(v) {
			return false
		}
	}
	return true
}
