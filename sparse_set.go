package depot

import (
	"iter"
	"unsafe"
)

// indexer maps a value to its slot in a sparse array.
type indexer[T any] func(T) int

// nextCapacitySize implements the shared growth policy: double the current
// size, never below min, and clamp to max once the current size has reached
// half of it. A min above max is a programmer error and panics with
// ErrCapacityRequest.
func nextCapacitySize(cur, minSize, maxSize int) int {
	if minSize > maxSize {
		panic(ErrCapacityRequest)
	}
	if cur >= maxSize/2 {
		return maxSize
	}
	return max(cur*2, minSize)
}

// sparseSet is a dense array of values plus a sparse back-index keyed by the
// indexer. Insert, erase and lookup are O(1); iteration walks the dense
// array contiguously. Erasing swaps with the last element, so dense order is
// not stable across erases.
//
// The invariant: has(v) iff sparse[index(v)] < len(dense) and
// dense[sparse[index(v)]] == v. Stale sparse slots are never cleared; the
// double check makes them harmless.
type sparseSet[T comparable] struct {
	index  indexer[T]
	dense  []T
	sparse []int
}

func newSparseSet[T comparable](index indexer[T]) sparseSet[T] {
	return sparseSet[T]{index: index}
}

func (s *sparseSet[T]) insert(v T) bool {
	if s.has(v) {
		return false
	}
	vi := s.index(v)
	if vi >= len(s.sparse) {
		grown := make([]int, nextCapacitySize(len(s.sparse), vi+1, maxSparseLen))
		copy(grown, s.sparse)
		s.sparse = grown
	}
	s.dense = append(s.dense, v)
	s.sparse[vi] = len(s.dense) - 1
	return true
}

func (s *sparseSet[T]) unorderedErase(v T) bool {
	if !s.has(v) {
		return false
	}
	vi := s.index(v)
	di := s.sparse[vi]
	last := len(s.dense) - 1
	if di != last {
		s.dense[di] = s.dense[last]
		s.sparse[s.index(s.dense[di])] = di
	}
	s.dense = s.dense[:last]
	return true
}

func (s *sparseSet[T]) clear() {
	s.dense = s.dense[:0]
}

func (s *sparseSet[T]) has(v T) bool {
	vi := s.index(v)
	return vi < len(s.sparse) &&
		s.sparse[vi] < len(s.dense) &&
		s.dense[s.sparse[vi]] == v
}

func (s *sparseSet[T]) findDenseIndex(v T) (int, bool) {
	if !s.has(v) {
		return -1, false
	}
	return s.sparse[s.index(v)], true
}

func (s *sparseSet[T]) denseIndex(v T) (int, error) {
	if di, ok := s.findDenseIndex(v); ok {
		return di, nil
	}
	return -1, ErrValueNotFound
}

func (s *sparseSet[T]) at(i int) T {
	return s.dense[i]
}

// denseItems exposes the current dense slice header. Callers that iterate it
// without holding the owner's lock see a stable length; concurrent appends
// land past the captured length.
func (s *sparseSet[T]) denseItems() []T {
	return s.dense
}

func (s *sparseSet[T]) values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.dense {
			if !yield(v) {
				return
			}
		}
	}
}

func (s *sparseSet[T]) size() int {
	return len(s.dense)
}

func (s *sparseSet[T]) empty() bool {
	return len(s.dense) == 0
}

func (s *sparseSet[T]) memoryUsage() int {
	var v T
	return cap(s.dense)*int(unsafe.Sizeof(v)) +
		cap(s.sparse)*int(unsafe.Sizeof(int(0)))
}
