package depot

import "math"

// Entity ids pack a dense slot index and a recycling version into a single
// 32-bit value. The two widths must sum to the width of EntityID.
const (
	entityIndexBits   = 22
	entityVersionBits = 10

	entityIndexMask   = (1 << entityIndexBits) - 1
	entityVersionMask = (1 << entityVersionBits) - 1
)

// MaxEntities is the number of entities a registry can keep alive at once.
// Slot zero is never issued, so the usable index range is [1, entityIndexMask].
const MaxEntities = entityIndexMask

// MaxVersions is the number of times a slot can be recycled before its
// version counter wraps around.
const MaxVersions = entityVersionMask + 1

// maxSparseLen bounds the growth of the sparse index arrays and of the
// registry's free list; dense slices grow through append. Entity indexes are
// 22-bit and family ids 16-bit, so this is never the limiting factor in
// practice.
const maxSparseLen = math.MaxInt32
