package depot

import "testing"

// optionFixture builds three entities: A has only Position, B has only
// Velocity, C has both.
func optionFixture(t *testing.T) (*Registry, Entity, Entity, Entity) {
	t.Helper()
	r := Factory.NewRegistry()
	a := mustCreate(t, r)
	b := mustCreate(t, r)
	c := mustCreate(t, r)
	Assign(a, Position{1, 1})
	Assign(b, Velocity{1, 1})
	Assign(c, Position{2, 2})
	Assign(c, Velocity{2, 2})
	return r, a, b, c
}

func collectMatching(r *Registry, opts ...Option) map[EntityID]bool {
	got := map[EntityID]bool{}
	r.ForEachEntity(func(e Entity) {
		got[e.ID()] = true
	}, opts...)
	return got
}

func TestOptionAlgebra(t *testing.T) {
	r, a, b, c := optionFixture(t)

	tests := []struct {
		name string
		opt  Option
		want []Entity
	}{
		{"Conjunction", With[Position]().And(With[Velocity]()), []Entity{c}},
		{"Disjunction", With[Position]().Or(With[Velocity]()), []Entity{a, b, c}},
		{"Negation", Not(With[Position]()), []Entity{b}},
		{"Without", Without[Velocity](), []Entity{a}},
		{"AllOf", AllOf(With[Position](), With[Velocity]()), []Entity{c}},
		{"AnyOf", AnyOf(With[Position](), With[Velocity]()), []Entity{a, b, c}},
		{"Always", BoolOption(true), []Entity{a, b, c}},
		{"Never", BoolOption(false), nil},
		{"Method negation", With[Position]().Not(), []Entity{b}},
		{"Empty AllOf matches all", AllOf(), []Entity{a, b, c}},
		{"Empty AnyOf matches none", AnyOf(), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collectMatching(r, tt.opt)
			if len(got) != len(tt.want) {
				t.Fatalf("matched %d entities, want %d", len(got), len(tt.want))
			}
			for _, e := range tt.want {
				if !got[e.ID()] {
					t.Errorf("entity %d missing from matches", e.ID())
				}
			}
		})
	}
}

func TestOptionsShortCircuit(t *testing.T) {
	r, _, _, _ := optionFixture(t)

	calls := 0
	counting := Option(func(EntityView) bool {
		calls++
		return true
	})
	r.ForEachEntity(func(Entity) {}, BoolOption(false), counting)
	if calls != 0 {
		t.Errorf("later option evaluated %d times after a false", calls)
	}
}

func TestOptionsOnJoinedIteration(t *testing.T) {
	r, _, _, c := optionFixture(t)
	Assign(c, Health{1, 1})

	var visited []Entity
	// Velocity drives; the option filters on a third, unrelated column.
	ForJoined1(r, func(e Entity, _ *Velocity) {
		visited = append(visited, e)
	}, With[Health]())
	if len(visited) != 1 || visited[0] != c {
		t.Errorf("visited = %v, want [%v]", visited, c)
	}
}
