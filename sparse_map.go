package depot

import (
	"iter"
	"unsafe"
)

// sparseMap pairs a sparseSet of keys with a parallel dense slice of values
// kept in lock-step: values[i] belongs to keys.dense[i].
type sparseMap[K comparable, V any] struct {
	keys   sparseSet[K]
	values []V
}

func newSparseMap[K comparable, V any](index indexer[K]) sparseMap[K, V] {
	return sparseMap[K, V]{keys: newSparseSet[K](index)}
}

// insert adds the pair unless the key is already present, in which case the
// existing value is returned untouched. The key insert runs first so a
// growth panic leaves the two arrays in lock-step.
func (m *sparseMap[K, V]) insert(k K, v V) (*V, bool) {
	if p := m.find(k); p != nil {
		return p, false
	}
	m.keys.insert(k)
	m.values = append(m.values, v)
	return &m.values[len(m.values)-1], true
}

func (m *sparseMap[K, V]) insertOrAssign(k K, v V) (*V, bool) {
	if p := m.find(k); p != nil {
		*p = v
		return p, false
	}
	m.keys.insert(k)
	m.values = append(m.values, v)
	return &m.values[len(m.values)-1], true
}

func (m *sparseMap[K, V]) unorderedErase(k K) bool {
	di, ok := m.keys.findDenseIndex(k)
	if !ok {
		return false
	}
	last := len(m.values) - 1
	if di != last {
		m.values[di] = m.values[last]
	}
	var zero V
	m.values[last] = zero
	m.values = m.values[:last]
	m.keys.unorderedErase(k)
	return true
}

func (m *sparseMap[K, V]) clear() {
	m.keys.clear()
	var zero V
	for i := range m.values {
		m.values[i] = zero
	}
	m.values = m.values[:0]
}

func (m *sparseMap[K, V]) has(k K) bool {
	return m.keys.has(k)
}

func (m *sparseMap[K, V]) get(k K) (*V, error) {
	di, err := m.keys.denseIndex(k)
	if err != nil {
		return nil, err
	}
	return &m.values[di], nil
}

func (m *sparseMap[K, V]) find(k K) *V {
	di, ok := m.keys.findDenseIndex(k)
	if !ok {
		return nil
	}
	return &m.values[di]
}

func (m *sparseMap[K, V]) keyAt(i int) K {
	return m.keys.at(i)
}

func (m *sparseMap[K, V]) at(i int) *V {
	return &m.values[i]
}

func (m *sparseMap[K, V]) keySeq() iter.Seq[K] {
	return m.keys.values()
}

func (m *sparseMap[K, V]) size() int {
	return len(m.values)
}

func (m *sparseMap[K, V]) empty() bool {
	return len(m.values) == 0
}

func (m *sparseMap[K, V]) memoryUsage() int {
	var v V
	return m.keys.memoryUsage() + cap(m.values)*int(unsafe.Sizeof(v))
}
