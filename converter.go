// Package boosterconv converts a booster catalog into a tree of
// booster.yaml documents.
//
// In environments mode (the default) the catalog is read at the
// development ref and optionally at staging and production refs. The
// records are grouped by booster id, staging and production are reduced
// to what differs from development, and each group is written as one
// projected document at <mission>/<runtime>/<version>/booster.yaml.
//
// In catalog mode only the development ref is read. Every descriptor is
// written as-is at <runtime>/<version>/<mission>/booster.yaml and a
// metadata.yaml index of missions and runtimes is written at the root.
//
// Example usage:
//
//	conv, err := boosterconv.New(boosterconv.WithSource(src))
//	if err != nil {
//	    return err
//	}
//	result, err := conv.Convert(ctx, boosterconv.Request{
//	    Dest:        "out",
//	    StagingRef:  "staging",
//	})
package boosterconv

import (
	"context"
	"fmt"

	"github.com/fabric8-launcher/boosterconv/pkg/boosters"
)

// Converter converts booster catalogs
type Converter interface {
	// Convert fetches the requested refs and writes the documents
	Convert(ctx context.Context, req Request) (*Result, error)

	// Mode returns the conversion mode
	Mode() boosters.Mode

	// OnFetched registers a callback for fetched catalogs
	OnFetched(FetchedHook)

	// OnDocumentWritten registers a callback for written documents
	OnDocumentWritten(DocumentWrittenHook)

	// OnOrphan registers a callback for dropped orphan records
	OnOrphan(OrphanHook)
}

// converter is the internal implementation of the Converter interface
type converter struct {
	config *config
	*hooks
}

// New creates a new Converter with the given options
func New(opts ...Option) (Converter, error) {
	c := &converter{
		config: defaultConfig(),
		hooks:  newHooks(),
	}

	for _, opt := range opts {
		if err := opt(c.config); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}
	for _, h := range c.config.hooks {
		c.hooks.add(h)
	}
	return c, nil
}

// Mode returns the conversion mode
func (c *converter) Mode() boosters.Mode {
	return c.config.mode
}
