package differ

import (
	"github.com/fabric8-launcher/boosterconv/pkg/boosters"
	"github.com/fabric8-launcher/boosterconv/pkg/document"
)

// Field names reported by Overrides, in booster field order.
const (
	FieldGithubRepo               = "githubRepo"
	FieldGitRef                   = "gitRef"
	FieldSupportedDeploymentTypes = "supportedDeploymentTypes"
	FieldBuildProfile             = "buildProfile"
	FieldBoosterDescriptorPath    = "boosterDescriptorPath"
	FieldVersion                  = "version"
	FieldMetadata                 = "metadata"
)

// Apply overlays a reduced override onto baseline and returns the result
// as a new record. Absent override fields take the baseline value;
// metadata mappings are merged recursively. Neither input is modified.
func Apply(override, baseline *boosters.Booster) *boosters.Booster {
	if override == nil {
		return baseline.Clone()
	}
	if baseline == nil {
		return override.Clone()
	}

	out := baseline.Clone()
	out.ID = override.ID
	if override.Mission != nil {
		out.Mission = override.Mission
	}
	if override.Runtime != nil {
		out.Runtime = override.Runtime
	}
	if override.Version != nil {
		out.Version = override.Version
	}

	o := override.Clone()
	overlay(&out.GithubRepo, o.GithubRepo)
	overlay(&out.GitRef, o.GitRef)
	overlay(&out.SupportedDeploymentTypes, o.SupportedDeploymentTypes)
	overlay(&out.BuildProfile, o.BuildProfile)
	overlay(&out.BoosterDescriptorPath, o.BoosterDescriptorPath)
	if o.ContentPath != "" {
		out.ContentPath = o.ContentPath
	}
	if o.Data != nil {
		out.Data = o.Data
	}

	switch {
	case out.Metadata == nil:
		out.Metadata = o.Metadata
	case o.Metadata != nil:
		ApplyMap(o.Metadata, out.Metadata)
	}
	return out
}

// ApplyMap merges override into target in place. Mappings present on
// both sides are merged recursively; any other override value replaces
// the target value.
func ApplyMap(override, target *document.Map) {
	for _, key := range override.Keys() {
		ov, _ := override.Get(key)
		om, oIsMap := ov.(*document.Map)
		if tm, ok := target.GetMap(key); ok && oIsMap {
			ApplyMap(om, tm)
			continue
		}
		target.Set(key, ov)
	}
}

// Overrides lists the fields an override record still carries, in
// booster field order. Empty metadata does not count as an override.
func Overrides(b *boosters.Booster) []string {
	if b == nil {
		return nil
	}

	var fields []string
	add := func(name string, present bool) {
		if present {
			fields = append(fields, name)
		}
	}
	add(FieldGithubRepo, b.GithubRepo != nil)
	add(FieldGitRef, b.GitRef != nil)
	add(FieldSupportedDeploymentTypes, b.SupportedDeploymentTypes != nil)
	add(FieldBuildProfile, b.BuildProfile != nil)
	add(FieldBoosterDescriptorPath, b.BoosterDescriptorPath != nil)
	add(FieldVersion, b.Version != nil)
	add(FieldMetadata, b.Metadata.Len() > 0)
	return fields
}

func overlay(target **string, value *string) {
	if value != nil {
		*target = value
	}
}
