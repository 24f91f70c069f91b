package catalog

import "context"

// Lookup resolves display names against existing catalog entities.
//
// FindByName matches under the canonical comparison rules (case folding and
// width normalization, see pkg/normalize) and returns nil without error when
// no entity of that kind carries the name.
type Lookup interface {
	FindByName(context context.Context, kind Kind, name string) (*Entity, error)
}
