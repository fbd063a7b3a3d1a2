package depot

import (
	"reflect"
	"testing"

	"github.com/rotisserie/eris"
)

type Tick struct {
	Frame int
}

type Damage struct {
	Amount int
}

// traceSystem records the phases it observes for Tick events.
type traceSystem struct {
	name  string
	trace *[]string
}

func (s *traceSystem) Mount() []Handler {
	return []Handler{
		On(func(_ *Registry, _ Before[Tick]) {
			*s.trace = append(*s.trace, "before."+s.name)
		}),
		On(func(_ *Registry, _ Tick) {
			*s.trace = append(*s.trace, "tick."+s.name)
		}),
		On(func(_ *Registry, _ After[Tick]) {
			*s.trace = append(*s.trace, "after."+s.name)
		}),
	}
}

// multiEventSystem handles two unrelated event types.
type multiEventSystem struct {
	ticks, hits int
}

func (s *multiEventSystem) Mount() []Handler {
	return []Handler{
		On(func(_ *Registry, _ Tick) { s.ticks++ }),
		On(func(_ *Registry, d Damage) { s.hits += d.Amount }),
	}
}

type simTag struct{}

func TestFeatureDispatchOrder(t *testing.T) {
	r := Factory.NewRegistry()
	var trace []string
	AssignFeature[simTag](r,
		&traceSystem{name: "s1", trace: &trace},
		&traceSystem{name: "s2", trace: &trace},
	)

	ProcessEvent(r, Tick{Frame: 1})

	want := []string{
		"before.s1", "before.s2",
		"tick.s1", "tick.s2",
		"after.s1", "after.s2",
	}
	if !reflect.DeepEqual(trace, want) {
		t.Errorf("dispatch trace = %v, want %v", trace, want)
	}
}

func TestFeatureEnableDisable(t *testing.T) {
	r := Factory.NewRegistry()
	var trace []string
	f := AssignFeature[simTag](r, &traceSystem{name: "s", trace: &trace})

	if !f.IsEnabled() || f.IsDisabled() {
		t.Fatal("feature must start enabled")
	}

	f.Disable()
	ProcessEvent(r, Tick{})
	if len(trace) != 0 {
		t.Errorf("disabled feature dispatched: %v", trace)
	}

	f.Enable()
	ProcessEvent(r, Tick{})
	if len(trace) != 3 {
		t.Errorf("re-enabled feature trace = %v", trace)
	}
}

func TestMultiEventSystem(t *testing.T) {
	r := Factory.NewRegistry()
	sys := &multiEventSystem{}
	AssignFeature[simTag](r, sys)

	ProcessEvent(r, Tick{})
	ProcessEvent(r, Tick{})
	ProcessEvent(r, Damage{Amount: 7})

	if sys.ticks != 2 {
		t.Errorf("ticks = %d, want 2", sys.ticks)
	}
	if sys.hits != 7 {
		t.Errorf("hits = %d, want 7", sys.hits)
	}
}

func TestFeatureAcrossTags(t *testing.T) {
	type combatTag struct{}

	r := Factory.NewRegistry()
	var trace []string
	AssignFeature[simTag](r, &traceSystem{name: "sim", trace: &trace})
	AssignFeature[combatTag](r, &traceSystem{name: "combat", trace: &trace})

	ProcessEvent(r, Tick{})

	// Features fire in binding order, each running its full phase cycle.
	want := []string{
		"before.sim", "tick.sim", "after.sim",
		"before.combat", "tick.combat", "after.combat",
	}
	if !reflect.DeepEqual(trace, want) {
		t.Errorf("trace = %v, want %v", trace, want)
	}
}

func TestAssignFeatureReplaces(t *testing.T) {
	r := Factory.NewRegistry()
	var trace []string
	AssignFeature[simTag](r, &traceSystem{name: "old", trace: &trace})
	AssignFeature[simTag](r, &traceSystem{name: "new", trace: &trace})

	ProcessEvent(r, Tick{})
	want := []string{"before.new", "tick.new", "after.new"}
	if !reflect.DeepEqual(trace, want) {
		t.Errorf("trace after replace = %v, want %v", trace, want)
	}
}

func TestEnsureFeatureKeepsExisting(t *testing.T) {
	r := Factory.NewRegistry()
	f1 := EnsureFeature[simTag](r)
	f2 := EnsureFeature[simTag](r, SystemFunc{On(func(*Registry, Tick) {})})
	if f1 != f2 {
		t.Error("EnsureFeature replaced an existing feature")
	}
}

func TestGetFeature(t *testing.T) {
	type unboundTag struct{}

	r := Factory.NewRegistry()
	if HasFeature[unboundTag](r) {
		t.Error("HasFeature = true before binding")
	}
	if _, err := GetFeature[unboundTag](r); !eris.Is(err, ErrFeatureNotFound) {
		t.Errorf("error = %v, want ErrFeatureNotFound", err)
	}

	assigned := AssignFeature[unboundTag](r)
	if !HasFeature[unboundTag](r) {
		t.Error("HasFeature = false after binding")
	}
	got, err := GetFeature[unboundTag](r)
	if err != nil || got != assigned {
		t.Errorf("GetFeature = %v, %v", got, err)
	}
}

func TestSystemsSeeRegistryEffects(t *testing.T) {
	r := Factory.NewRegistry()
	spawn := SystemFunc{On(func(r *Registry, _ Tick) {
		e, _ := r.CreateEntity()
		Assign(e, Health{10, 10})
	})}
	count := 0
	observe := SystemFunc{On(func(r *Registry, _ After[Tick]) {
		count = ComponentCount[Health](r)
	})}
	AssignFeature[simTag](r, spawn, observe)

	ProcessEvent(r, Tick{})
	if count != 1 {
		t.Errorf("after-phase observed %d components, want 1", count)
	}
}
