package depot

import "github.com/rotisserie/eris"

var (
	// ErrComponentNotFound is returned by the Get family of accessors when
	// the entity has no component of the requested type.
	ErrComponentNotFound = eris.New("depot: component not found")

	// ErrFeatureNotFound is returned by GetFeature for an unassigned tag.
	ErrFeatureNotFound = eris.New("depot: feature not found")

	// ErrEntityIndexOverflow is returned by CreateEntity once the 22-bit
	// index space is exhausted. The only recovery is destroying entities.
	ErrEntityIndexOverflow = eris.New("depot: entity index space exhausted")

	// ErrEntityNotAlive is returned by operations that require a live
	// source entity, such as CloneEntity.
	ErrEntityNotAlive = eris.New("depot: entity is not alive")

	// ErrValueNotFound is returned by sparse-container dense-index lookups.
	ErrValueNotFound = eris.New("depot: value not present in sparse container")

	// ErrCapacityRequest is the panic value raised when a container growth
	// request asks for a minimum above the allowed maximum.
	ErrCapacityRequest = eris.New("depot: capacity request out of range")
)
