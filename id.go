package depot

// EntityID is a packed entity identity: the low entityIndexBits hold the
// slot index, the high entityVersionBits hold the recycling version.
type EntityID uint32

// FamilyID is the process-wide dense key assigned to a component or feature
// tag type. Ids start at 1; zero means "no family".
type FamilyID uint16

func entityIndex(id EntityID) EntityID {
	return id & entityIndexMask
}

func entityVersion(id EntityID) EntityID {
	return (id >> entityIndexBits) & entityVersionMask
}

func joinEntityID(index, version EntityID) EntityID {
	return index | version<<entityIndexBits
}

// upgradeEntityID bumps the version, wrapping modulo MaxVersions. Issued on
// every slot reuse so stale handles stop matching.
func upgradeEntityID(id EntityID) EntityID {
	return joinEntityID(entityIndex(id), (entityVersion(id)+1)&entityVersionMask)
}

// entityIndexer addresses the liveness set by slot index alone. Version bumps
// therefore never move an entity to a different sparse slot.
func entityIndexer(id EntityID) int {
	return int(entityIndex(id))
}

func familyIndexer(id FamilyID) int {
	return int(id)
}

func hashCombine(l, r uint64) uint64 {
	return l ^ (r + 0x9e3779b9 + l<<6 + l>>2)
}
