package depot

import (
	"sync"
	"sync/atomic"
	"unsafe"

	iterutil "github.com/TheBitDrifter/util/iter"
	"github.com/rotisserie/eris"
)

var registrySerials atomic.Uint64

// Registry owns the live-entity set, the component columns and the features.
// It is the sole entry point: handles and the generic component operations
// all route through it.
//
// Locking: entityMu guards the id set, the free list and the allocation
// seed; storagesMu serializes lazy column creation; featureMu guards the
// feature table. Each column additionally carries its own reader-writer
// lock.
type Registry struct {
	serial uint64

	entityMu      sync.RWMutex
	lastEntityID  EntityID
	freeEntityIDs []EntityID
	entityIDs     sparseSet[EntityID]

	storagesMu sync.RWMutex
	storages   sparseMap[FamilyID, baseStorage]

	featureMu sync.RWMutex
	features  sparseMap[FamilyID, *Feature]

	iterGuard incrementalLocker
	opQueue   opQueue
}

func newRegistry() *Registry {
	return &Registry{
		serial:    registrySerials.Add(1),
		entityIDs: newSparseSet[EntityID](entityIndexer),
		storages:  newSparseMap[FamilyID, baseStorage](familyIndexer),
		features:  newSparseMap[FamilyID, *Feature](familyIndexer),
	}
}

// CreateEntity allocates a fresh entity. Destroyed slots are reissued with a
// bumped version before new index space is consumed; once the index space is
// exhausted the call fails with ErrEntityIndexOverflow.
func (r *Registry) CreateEntity() (Entity, error) {
	r.entityMu.Lock()
	defer r.entityMu.Unlock()
	if n := len(r.freeEntityIDs); n > 0 {
		id := upgradeEntityID(r.freeEntityIDs[n-1])
		r.freeEntityIDs = r.freeEntityIDs[:n-1]
		r.entityIDs.insert(id)
		return Entity{owner: r, id: id}, nil
	}
	if r.lastEntityID >= entityIndexMask {
		return Entity{}, ErrEntityIndexOverflow
	}
	// Keep free-list capacity ahead of the live count so the free-list
	// append in destroyNow never grows the slice. A destroy journaled during
	// iteration still appends to the opQueue, which can allocate.
	if cap(r.freeEntityIDs) <= r.entityIDs.size() {
		grown := make([]EntityID, len(r.freeEntityIDs),
			nextCapacitySize(cap(r.freeEntityIDs), r.entityIDs.size()+1, maxSparseLen))
		copy(grown, r.freeEntityIDs)
		r.freeEntityIDs = grown
	}
	r.lastEntityID++
	r.entityIDs.insert(r.lastEntityID)
	return Entity{owner: r, id: r.lastEntityID}, nil
}

// CreateEntityFrom allocates an entity and populates it from the prototype.
func (r *Registry) CreateEntityFrom(proto *Prototype) (Entity, error) {
	e, err := r.CreateEntity()
	if err != nil {
		return Entity{}, eris.Wrap(err, "create entity from prototype")
	}
	proto.ApplyToEntity(e, true)
	return e, nil
}

// CloneEntity allocates an entity and copies every component of the live
// source onto it.
func (r *Registry) CloneEntity(src Entity) (Entity, error) {
	if !r.ValidEntity(src) {
		return Entity{}, eris.Wrap(ErrEntityNotAlive, "clone entity")
	}
	e, err := r.CreateEntity()
	if err != nil {
		return Entity{}, eris.Wrap(err, "clone entity")
	}
	for _, fam := range r.familySnapshot() {
		if s := r.storageByFamily(fam); s != nil {
			s.cloneID(src.id, e.id)
		}
	}
	return e, nil
}

// DestroyEntity removes the entity from the live set, strips its components
// and queues the id for reissue. While any iteration is in flight the
// destroy is journaled and applied when the iteration finishes; until then
// the entity stays visible.
func (r *Registry) DestroyEntity(e Entity) {
	if e.owner != r {
		return
	}
	if r.iterGuard.isLocked() {
		r.opQueue.enqueueDestroy(e.id)
		return
	}
	r.destroyNow(e.id)
}

func (r *Registry) destroyNow(id EntityID) {
	r.entityMu.Lock()
	if !r.entityIDs.unorderedErase(id) {
		r.entityMu.Unlock()
		return
	}
	// Capacity was reserved at creation time; this append cannot grow.
	r.freeEntityIDs = append(r.freeEntityIDs, id)
	r.entityMu.Unlock()
	r.removeAllByID(id)
}

// ValidEntity reports whether the handle belongs to this registry and its id
// is currently alive.
func (r *Registry) ValidEntity(e Entity) bool {
	return e.owner == r && r.alive(e.id)
}

func (r *Registry) alive(id EntityID) bool {
	r.entityMu.RLock()
	defer r.entityMu.RUnlock()
	return r.entityIDs.has(id)
}

// WrapEntity builds a mutable handle around a raw id without checking
// liveness.
func (r *Registry) WrapEntity(id EntityID) Entity {
	return Entity{owner: r, id: id}
}

// ViewEntity builds a read-only handle around a raw id without checking
// liveness.
func (r *Registry) ViewEntity(id EntityID) EntityView {
	return EntityView{owner: r, id: id}
}

func (r *Registry) EntityCount() int {
	r.entityMu.RLock()
	defer r.entityMu.RUnlock()
	return r.entityIDs.size()
}

// EntityComponentCount counts the columns currently holding a component for
// the entity.
func (r *Registry) EntityComponentCount(v EntityView) int {
	if v.owner != r {
		return 0
	}
	n := 0
	for _, fam := range r.familySnapshot() {
		if s := r.storageByFamily(fam); s != nil && s.hasID(v.id) {
			n++
		}
	}
	return n
}

// RemoveAllComponents strips every component from the entity, leaving it
// alive. Returns the number of components removed.
func (r *Registry) RemoveAllComponents(e Entity) int {
	if e.owner != r {
		return 0
	}
	return r.removeAllByID(e.id)
}

func (r *Registry) removeAllByID(id EntityID) int {
	removed := 0
	for _, fam := range r.familySnapshot() {
		if s := r.storageByFamily(fam); s != nil && s.removeID(id) {
			removed++
		}
	}
	return removed
}

// familySnapshot collects the family ids with a column, in column creation
// order.
func (r *Registry) familySnapshot() []FamilyID {
	r.storagesMu.RLock()
	defer r.storagesMu.RUnlock()
	return iterutil.Collect(r.storages.keySeq())
}

func (r *Registry) storageByFamily(fam FamilyID) baseStorage {
	r.storagesMu.RLock()
	defer r.storagesMu.RUnlock()
	p := r.storages.find(fam)
	if p == nil {
		return nil
	}
	return *p
}

// ForEachEntity calls f for every live entity passing all options. The dense
// id list is snapshotted up front: entities created by the callback are not
// visited in this pass, and destroys are journaled until the walk ends.
func (r *Registry) ForEachEntity(f func(Entity), opts ...Option) {
	r.iterGuard.lock()
	defer r.releaseIterGuard()
	for _, id := range r.idSnapshot() {
		if evalOptions(EntityView{owner: r, id: id}, opts) {
			f(Entity{owner: r, id: id})
		}
	}
}

// ForEachEntityView is the read-only variant of ForEachEntity.
func (r *Registry) ForEachEntityView(f func(EntityView), opts ...Option) {
	r.iterGuard.lock()
	defer r.releaseIterGuard()
	for _, id := range r.idSnapshot() {
		if v := (EntityView{owner: r, id: id}); evalOptions(v, opts) {
			f(v)
		}
	}
}

func (r *Registry) idSnapshot() []EntityID {
	r.entityMu.RLock()
	defer r.entityMu.RUnlock()
	return r.entityIDs.denseItems()
}

func (r *Registry) releaseIterGuard() {
	if r.iterGuard.unlock() == 0 {
		r.opQueue.drain(r)
	}
}

// MemoryUsage reports the bytes owned by the identity structures and by the
// component columns.
func (r *Registry) MemoryUsage() MemoryUsageInfo {
	var info MemoryUsageInfo
	r.entityMu.RLock()
	info.Entities = cap(r.freeEntityIDs)*int(unsafe.Sizeof(EntityID(0))) +
		r.entityIDs.memoryUsage()
	r.entityMu.RUnlock()
	for _, fam := range r.familySnapshot() {
		if s := r.storageByFamily(fam); s != nil {
			info.Components += s.memoryUsage()
		}
	}
	return info
}

//
// generic component operations
//

func findStorage[T any](r *Registry) *componentStorage[T] {
	fam := FamilyOf[T]()
	r.storagesMu.RLock()
	p := r.storages.find(fam)
	r.storagesMu.RUnlock()
	if p == nil {
		return nil
	}
	return (*p).(*componentStorage[T])
}

// storageFor returns T's column, creating it on first touch. Creation races
// are serialized by the storages write lock with a double check.
func storageFor[T any](r *Registry) *componentStorage[T] {
	if s := findStorage[T](r); s != nil {
		return s
	}
	fam := FamilyOf[T]()
	r.storagesMu.Lock()
	defer r.storagesMu.Unlock()
	if p := r.storages.find(fam); p != nil {
		return (*p).(*componentStorage[T])
	}
	s := newComponentStorage[T](r)
	r.storages.insert(fam, s)
	return s
}

// Assign sets the entity's T component, overwriting any present value.
// Returns the resident component, or nil for a dead or foreign handle.
func Assign[T any](e Entity, v T) *T {
	r := e.owner
	if r == nil || !r.ValidEntity(e) {
		return nil
	}
	return storageFor[T](r).assign(e.id, v)
}

// Ensure sets the entity's T component only if absent and returns the
// resident one, or nil for a dead or foreign handle.
func Ensure[T any](e Entity, v T) *T {
	r := e.owner
	if r == nil || !r.ValidEntity(e) {
		return nil
	}
	return storageFor[T](r).ensure(e.id, v)
}

// RemoveComponent drops the entity's T component and reports whether one was
// present.
func RemoveComponent[T any](e Entity) bool {
	r := e.owner
	if r == nil {
		return false
	}
	s := findStorage[T](r)
	return s != nil && s.removeID(e.id)
}

// ExistsComponent reports whether the entity is alive and carries a T
// component.
func ExistsComponent[T any](v EntityView) bool {
	r := v.owner
	if r == nil || !r.alive(v.id) {
		return false
	}
	s := findStorage[T](r)
	return s != nil && s.exists(v.id)
}

// GetComponent returns the entity's T component or ErrComponentNotFound.
func GetComponent[T any](e Entity) (*T, error) {
	if p := FindComponent[T](e); p != nil {
		return p, nil
	}
	return nil, ErrComponentNotFound
}

// GetComponentView returns a copy of the entity's T component or
// ErrComponentNotFound.
func GetComponentView[T any](v EntityView) (T, error) {
	if c, ok := FindComponentView[T](v); ok {
		return c, nil
	}
	var zero T
	return zero, ErrComponentNotFound
}

// FindComponent returns the entity's T component or nil.
func FindComponent[T any](e Entity) *T {
	r := e.owner
	if r == nil {
		return nil
	}
	s := findStorage[T](r)
	if s == nil {
		return nil
	}
	return s.find(e.id)
}

// FindComponentView returns a copy of the entity's T component and whether
// it was present.
func FindComponentView[T any](v EntityView) (T, bool) {
	r := v.owner
	if r == nil {
		var zero T
		return zero, false
	}
	s := findStorage[T](r)
	if s == nil {
		var zero T
		return zero, false
	}
	p := s.find(v.id)
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

// Components2 resolves two components at once; any miss fails the batch.
func Components2[A, B any](e Entity) (*A, *B, error) {
	a, err := GetComponent[A](e)
	if err != nil {
		return nil, nil, err
	}
	b, err := GetComponent[B](e)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// Components3 resolves three components at once; any miss fails the batch.
func Components3[A, B, C any](e Entity) (*A, *B, *C, error) {
	a, b, err := Components2[A, B](e)
	if err != nil {
		return nil, nil, nil, err
	}
	c, err := GetComponent[C](e)
	if err != nil {
		return nil, nil, nil, err
	}
	return a, b, c, nil
}

// FindComponents2 resolves two components, nil for each miss.
func FindComponents2[A, B any](e Entity) (*A, *B) {
	return FindComponent[A](e), FindComponent[B](e)
}

// FindComponents3 resolves three components, nil for each miss.
func FindComponents3[A, B, C any](e Entity) (*A, *B, *C) {
	return FindComponent[A](e), FindComponent[B](e), FindComponent[C](e)
}

// RemoveAllComponentsOf clears T's entire column and returns how many
// entities lost a component.
func RemoveAllComponentsOf[T any](r *Registry) int {
	s := findStorage[T](r)
	if s == nil {
		return 0
	}
	return s.removeAll()
}

// ComponentCount returns the number of entities carrying a T component.
func ComponentCount[T any](r *Registry) int {
	s := findStorage[T](r)
	if s == nil {
		return 0
	}
	return s.count()
}

// ComponentMemoryUsage returns the bytes owned by T's column.
func ComponentMemoryUsage[T any](r *Registry) int {
	s := findStorage[T](r)
	if s == nil {
		return 0
	}
	return s.memoryUsage()
}

//
// component iteration
//

// ForEachComponent walks T's column under its exclusive lock, handing out
// mutable component pointers. The callback must not assign or remove T
// components; see Option for the matching restriction on options.
func ForEachComponent[T any](r *Registry, f func(Entity, *T), opts ...Option) {
	s := findStorage[T](r)
	if s == nil {
		return
	}
	r.iterGuard.lock()
	defer r.releaseIterGuard()
	s.forEach(func(id EntityID, c *T) bool {
		if evalOptions(EntityView{owner: r, id: id}, opts) {
			f(Entity{owner: r, id: id}, c)
		}
		return true
	})
}

// ForEachComponentView walks T's column under its shared lock, handing out
// value copies.
func ForEachComponentView[T any](r *Registry, f func(EntityView, T), opts ...Option) {
	s := findStorage[T](r)
	if s == nil {
		return
	}
	r.iterGuard.lock()
	defer r.releaseIterGuard()
	s.forEachRead(func(id EntityID, c T) bool {
		if v := (EntityView{owner: r, id: id}); evalOptions(v, opts) {
			f(v, c)
		}
		return true
	})
}

//
// joined iteration
//

// ForJoined1 iterates every entity carrying an A component. Alias of
// ForEachComponent, named for symmetry with the wider joins.
func ForJoined1[A any](r *Registry, f func(Entity, *A), opts ...Option) {
	ForEachComponent(r, f, opts...)
}

// ForJoined2 joins two columns. The leftmost type drives the iteration:
// its column is walked densely and the remaining columns are probed per
// entity, so callers should list the scarcest type first. If any probed
// column does not exist the join is empty. Every matching entity is visited
// exactly once; order follows the driver column's dense order, which is not
// stable across erases.
func ForJoined2[A, B any](r *Registry, f func(Entity, *A, *B), opts ...Option) {
	sb := findStorage[B](r)
	if sb == nil {
		return
	}
	ForEachComponent(r, func(e Entity, a *A) {
		if b := sb.find(e.id); b != nil {
			f(e, a, b)
		}
	}, opts...)
}

// ForJoined3 joins three columns; see ForJoined2 for the driver contract.
func ForJoined3[A, B, C any](r *Registry, f func(Entity, *A, *B, *C), opts ...Option) {
	sb := findStorage[B](r)
	sc := findStorage[C](r)
	if sb == nil || sc == nil {
		return
	}
	ForEachComponent(r, func(e Entity, a *A) {
		b := sb.find(e.id)
		if b == nil {
			return
		}
		if c := sc.find(e.id); c != nil {
			f(e, a, b, c)
		}
	}, opts...)
}

// ForJoined4 joins four columns; see ForJoined2 for the driver contract.
func ForJoined4[A, B, C, D any](r *Registry, f func(Entity, *A, *B, *C, *D), opts ...Option) {
	sb := findStorage[B](r)
	sc := findStorage[C](r)
	sd := findStorage[D](r)
	if sb == nil || sc == nil || sd == nil {
		return
	}
	ForEachComponent(r, func(e Entity, a *A) {
		b := sb.find(e.id)
		if b == nil {
			return
		}
		c := sc.find(e.id)
		if c == nil {
			return
		}
		if d := sd.find(e.id); d != nil {
			f(e, a, b, c, d)
		}
	}, opts...)
}

//
// features and events
//

// AssignFeature binds a fresh feature to the tag, replacing any existing
// one, and returns it.
func AssignFeature[Tag any](r *Registry, systems ...System) *Feature {
	fam := FamilyOf[Tag]()
	f := newFeature(systems...)
	r.featureMu.Lock()
	defer r.featureMu.Unlock()
	r.features.insertOrAssign(fam, f)
	return f
}

// EnsureFeature returns the tag's feature, creating it (with the given
// systems) only if absent.
func EnsureFeature[Tag any](r *Registry, systems ...System) *Feature {
	fam := FamilyOf[Tag]()
	r.featureMu.Lock()
	defer r.featureMu.Unlock()
	if p := r.features.find(fam); p != nil {
		return *p
	}
	f := newFeature(systems...)
	r.features.insert(fam, f)
	return f
}

// HasFeature reports whether a feature is bound to the tag.
func HasFeature[Tag any](r *Registry) bool {
	r.featureMu.RLock()
	defer r.featureMu.RUnlock()
	return r.features.has(FamilyOf[Tag]())
}

// GetFeature returns the tag's feature or ErrFeatureNotFound.
func GetFeature[Tag any](r *Registry) (*Feature, error) {
	r.featureMu.RLock()
	defer r.featureMu.RUnlock()
	if p := r.features.find(FamilyOf[Tag]()); p != nil {
		return *p, nil
	}
	return nil, ErrFeatureNotFound
}

// ProcessEvent delivers the event to every enabled feature, each in three
// phases: Before[E], E, After[E]. Features fire in binding order; within a
// feature, systems fire in insertion order. Returns the registry for
// chaining.
func ProcessEvent[E any](r *Registry, event E) *Registry {
	r.featureMu.RLock()
	feats := make([]*Feature, 0, r.features.size())
	for i := 0; i < r.features.size(); i++ {
		feats = append(feats, *r.features.at(i))
	}
	r.featureMu.RUnlock()
	for _, f := range feats {
		if f.IsEnabled() {
			featureProcess(f, r, event)
		}
	}
	return r
}
