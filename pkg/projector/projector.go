// Package projector maps booster records onto the booster.yaml document
// shape:
//
//	source:
//	  git:
//	    url: https://github.com/<githubRepo>
//	    ref: <gitRef>
//	name: <metadata.name>
//	description: <metadata.description>
//	metadata:
//	  version:
//	    name: <version name>
//	  buildProfile: <buildProfile>
//	  runsOn: none
//	environment:
//	  staging: <projected staging override>
//	  production: <projected production override>
//
// Absent values are omitted, never written as null.
package projector

import (
	"strings"

	"github.com/fabric8-launcher/boosterconv/pkg/boosters"
	"github.com/fabric8-launcher/boosterconv/pkg/constants"
	"github.com/fabric8-launcher/boosterconv/pkg/document"
	"github.com/fabric8-launcher/boosterconv/pkg/reconciler"
)

// DeploymentTypeZip is the supportedDeploymentTypes value that marks a
// booster as not running on a cluster.
const DeploymentTypeZip = "zip"

// RunsOnNone is the metadata.runsOn value written for zip boosters.
const RunsOnNone = "none"

// Booster projects a single record.
func Booster(b *boosters.Booster) *document.Map {
	doc := document.NewMap()
	if b == nil {
		return doc
	}

	if b.GithubRepo != nil || b.GitRef != nil {
		git := document.NewMap()
		if b.GithubRepo != nil {
			git.Set("url", constants.GitHubURLPrefix+*b.GithubRepo)
		}
		if b.GitRef != nil {
			git.Set("ref", *b.GitRef)
		}
		doc.Set("source", document.NewMap().Set("git", git))
	}

	if v, ok := b.Metadata.Get("name"); ok {
		doc.Set("name", v)
	}
	if v, ok := b.Metadata.Get("description"); ok {
		doc.Set("description", v)
	}

	zip := isZip(b.SupportedDeploymentTypes)
	if b.Version != nil || b.BuildProfile != nil || zip {
		meta := document.NewMap()
		if b.Version != nil {
			meta.Set("version", document.NewMap().Set("name", VersionName(b)))
		}
		if b.BuildProfile != nil {
			meta.Set("buildProfile", *b.BuildProfile)
		}
		if zip {
			meta.Set("runsOn", RunsOnNone)
		}
		doc.Set("metadata", meta)
	}

	return doc
}

// Group projects the development record of g and nests the projected
// staging and production overrides under environment.
func Group(g *reconciler.Group) *document.Map {
	doc := Booster(g.Development)

	env := document.NewMap()
	if g.Staging != nil {
		env.Set(boosters.Staging.String(), Booster(g.Staging))
	}
	if g.Production != nil {
		env.Set(boosters.Production.String(), Booster(g.Production))
	}
	if env.Len() > 0 {
		doc.Set("environment", env)
	}
	return doc
}

// VersionName resolves the display name of the booster's version from
// metadata.versions[<version id>].name, falling back to the version's own
// name when that entry is missing or malformed.
func VersionName(b *boosters.Booster) string {
	if b.Version == nil {
		return ""
	}
	if versions, ok := b.Metadata.GetMap("versions"); ok {
		if entry, ok := versions.GetMap(b.Version.ID); ok {
			if v, ok := entry.Get("name"); ok {
				if name, ok := document.ScalarString(v); ok {
					return name
				}
			}
		}
	}
	return b.Version.Name
}

func isZip(deploymentTypes *string) bool {
	return deploymentTypes != nil && strings.EqualFold(*deploymentTypes, DeploymentTypeZip)
}
