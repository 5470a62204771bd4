// Package memory provides the public constructor for the in-memory
// manager registry. Implementation details stay internal; callers work
// through the interfaces in pkg/types.
//
// Example:
//
//	reg := memory.NewRegistry()
//	id, err := reg.Catalog().Register("Water", 2.50)
package memory

import (
	impl "camarim/internal/memory"
	"camarim/pkg/types"
)

// NewRegistry creates an empty manager set. Every call returns an
// independent registry; nothing is shared between instances.
func NewRegistry() types.Registry {
	return impl.NewRegistry()
}
