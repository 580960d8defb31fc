// Package categories builds the metadata.yaml index of missions and
// runtimes, each runtime listing the versions its boosters use.
package categories

import (
	"github.com/fabric8-launcher/boosterconv/pkg/boosters"
	"github.com/fabric8-launcher/boosterconv/pkg/document"
)

// Source provides the classifications of a catalog.
type Source interface {
	Missions() []*boosters.Mission
	Runtimes() []*boosters.Runtime
	// Versions returns the versions of boosters with exactly this runtime.
	Versions(runtimeID string) []*boosters.Version
}

// Index returns the metadata.yaml document:
//
//	missions: [...]
//	runtimes: [...]
func Index(src Source) *document.Map {
	missions := make([]boosters.Classification, 0, len(src.Missions()))
	for _, m := range src.Missions() {
		missions = append(missions, m)
	}
	runtimes := make([]boosters.Classification, 0, len(src.Runtimes()))
	for _, r := range src.Runtimes() {
		runtimes = append(runtimes, r)
	}

	return document.NewMap().
		Set("missions", List(missions, src.Versions)).
		Set("runtimes", List(runtimes, src.Versions))
}

// List builds one category document per classification. versions is
// consulted for runtimes only and may be nil.
func List(items []boosters.Classification, versions func(runtimeID string) []*boosters.Version) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, Document(item, versions))
	}
	return out
}

// Document builds the category document of c.
func Document(c boosters.Classification, versions func(runtimeID string) []*boosters.Version) *document.Map {
	core := c.Core()
	doc := document.NewMap().
		Set("id", core.ID).
		Set("name", core.Name)
	if core.Description != nil {
		doc.Set("description", *core.Description)
	}

	switch v := c.(type) {
	case *boosters.Mission:
		if v.Suggested {
			doc.SetPath(true, "metadata", "suggested")
		}
	case *boosters.Runtime:
		if v.Icon != nil {
			doc.Set("icon", *v.Icon)
		}
		if v.PipelinePlatform != nil {
			doc.SetPath(*v.PipelinePlatform, "metadata", "pipelinePlatform")
		}
		var list []boosters.Classification
		if versions != nil {
			for _, version := range versions(core.ID) {
				list = append(list, version)
			}
		}
		doc.Set("versions", List(list, nil))
	}
	return doc
}
