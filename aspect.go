package depot

// Aspects are compile-time bundles of required component types. They carry
// no state; instantiate one inline to filter or join on its type list:
//
//	var movers depot.Aspect2[Position, Velocity]
//	movers.ForJoined(registry, func(e depot.Entity, p *Position, v *Velocity) { ... })

type Aspect1[A any] struct{}

func (Aspect1[A]) ToOption() Option {
	return BoolOption(true).And(With[A]())
}

func (Aspect1[A]) MatchEntity(v EntityView) bool {
	return ExistsComponent[A](v)
}

func (Aspect1[A]) ForEachEntity(r *Registry, f func(Entity), opts ...Option) {
	ForJoined1(r, func(e Entity, _ *A) { f(e) }, opts...)
}

func (Aspect1[A]) ForJoined(r *Registry, f func(Entity, *A), opts ...Option) {
	ForJoined1(r, f, opts...)
}

type Aspect2[A, B any] struct{}

func (Aspect2[A, B]) ToOption() Option {
	return BoolOption(true).And(With[A]()).And(With[B]())
}

func (Aspect2[A, B]) MatchEntity(v EntityView) bool {
	return ExistsComponent[A](v) && ExistsComponent[B](v)
}

func (Aspect2[A, B]) ForEachEntity(r *Registry, f func(Entity), opts ...Option) {
	ForJoined2(r, func(e Entity, _ *A, _ *B) { f(e) }, opts...)
}

func (Aspect2[A, B]) ForJoined(r *Registry, f func(Entity, *A, *B), opts ...Option) {
	ForJoined2(r, f, opts...)
}

type Aspect3[A, B, C any] struct{}

func (Aspect3[A, B, C]) ToOption() Option {
	return BoolOption(true).And(With[A]()).And(With[B]()).And(With[C]())
}

func (Aspect3[A, B, C]) MatchEntity(v EntityView) bool {
	return ExistsComponent[A](v) && ExistsComponent[B](v) && ExistsComponent[C](v)
}

func (Aspect3[A, B, C]) ForEachEntity(r *Registry, f func(Entity), opts ...Option) {
	ForJoined3(r, func(e Entity, _ *A, _ *B, _ *C) { f(e) }, opts...)
}

func (Aspect3[A, B, C]) ForJoined(r *Registry, f func(Entity, *A, *B, *C), opts ...Option) {
	ForJoined3(r, f, opts...)
}

type Aspect4[A, B, C, D any] struct{}

func (Aspect4[A, B, C, D]) ToOption() Option {
	return BoolOption(true).And(With[A]()).And(With[B]()).And(With[C]()).And(With[D]())
}

func (Aspect4[A, B, C, D]) MatchEntity(v EntityView) bool {
	return ExistsComponent[A](v) && ExistsComponent[B](v) &&
		ExistsComponent[C](v) && ExistsComponent[D](v)
}

func (Aspect4[A, B, C, D]) ForEachEntity(r *Registry, f func(Entity), opts ...Option) {
	ForJoined4(r, func(e Entity, _ *A, _ *B, _ *C, _ *D) { f(e) }, opts...)
}

func (Aspect4[A, B, C, D]) ForJoined(r *Registry, f func(Entity, *A, *B, *C, *D), opts ...Option) {
	ForJoined4(r, f, opts...)
}
