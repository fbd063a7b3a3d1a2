package depot

import (
	"sync"

	"github.com/willf/bitset"
)

// opQueue journals entity destroys requested while an iteration loan is
// outstanding. Draining happens when the loan count returns to zero; until
// then the journaled entities stay live and visible. Requests are deduped by
// slot index, since at most one version of a slot is ever alive.
type opQueue struct {
	mu       sync.Mutex
	destroys []EntityID
	pending  bitset.BitSet
}

func (q *opQueue) enqueueDestroy(id EntityID) {
	q.mu.Lock()
	defer q.mu.Unlock()
	idx := uint(entityIndex(id))
	if q.pending.Test(idx) {
		return
	}
	q.pending.Set(idx)
	q.destroys = append(q.destroys, id)
}

func (q *opQueue) drain(r *Registry) {
	q.mu.Lock()
	ids := q.destroys
	q.destroys = nil
	q.pending.ClearAll()
	q.mu.Unlock()
	for _, id := range ids {
		r.destroyNow(id)
	}
}
