// Package sources defines where booster catalogs come from.
//
// A Source fetches the catalog at a given ref and indexes it. The
// conversion pipeline fetches the development, staging and production
// refs one after another from the same source and calls Cleanup once all
// fetches are done. Sources are not safe for concurrent use.
package sources

import (
	"context"

	"github.com/fabric8-launcher/boosterconv/pkg/catalogs"
)

// ID represents the identifier of a catalog source.
type ID string

// String returns the string representation of a source id.
func (id ID) String() string {
	return string(id)
}

// Known source ids.
const (
	GitID   ID = "git"
	LocalID ID = "local"
)

// Source represents a catalog source.
type Source interface {
	// ID returns the id of this source
	ID() ID

	// Fetch retrieves and indexes the catalog at ref
	Fetch(ctx context.Context, ref string) (*catalogs.Catalog, error)

	// Cleanup releases any resources (called after all Fetch operations)
	Cleanup() error
}
