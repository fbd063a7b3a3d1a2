package depot

import (
	"reflect"
	"sync"
)

// familyTable hands out process-wide monotonic ids for component and feature
// tag types. Ids are dense-map keys only; their relative order carries no
// meaning and they must not cross process or plugin boundaries.
type familyTable struct {
	mu   sync.Mutex
	ids  map[reflect.Type]FamilyID
	last FamilyID
}

var families = familyTable{ids: make(map[reflect.Type]FamilyID)}

func (t *familyTable) idFor(rt reflect.Type) FamilyID {
	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.ids[rt]; ok {
		return id
	}
	t.last++
	if t.last == 0 {
		panic("depot: family id overflow")
	}
	t.ids[rt] = t.last
	return t.last
}

// FamilyOf returns the stable non-zero family id for T, allocating one on
// first use.
func FamilyOf[T any]() FamilyID {
	return families.idFor(reflect.TypeFor[T]())
}
