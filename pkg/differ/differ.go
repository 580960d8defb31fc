// Package differ reduces a booster record to the fields that differ from
// a baseline record, and overlays such a reduced override back onto its
// baseline.
package differ

import (
	"github.com/fabric8-launcher/boosterconv/internal/utils/ptr"
	"github.com/fabric8-launcher/boosterconv/pkg/boosters"
	"github.com/fabric8-launcher/boosterconv/pkg/document"
)

// Reduce clears every field of candidate that equals the corresponding
// field of baseline and returns candidate. Metadata is reduced in place
// with ReduceMap. Candidate must not be shared with any other record.
//
// The version is cleared when both versions carry the same display name;
// version ids are not compared.
func Reduce(candidate, baseline *boosters.Booster) *boosters.Booster {
	if candidate == nil || baseline == nil {
		return candidate
	}

	clearIfEqual(&candidate.GithubRepo, baseline.GithubRepo)
	clearIfEqual(&candidate.GitRef, baseline.GitRef)
	clearIfEqual(&candidate.SupportedDeploymentTypes, baseline.SupportedDeploymentTypes)
	clearIfEqual(&candidate.BuildProfile, baseline.BuildProfile)
	clearIfEqual(&candidate.BoosterDescriptorPath, baseline.BoosterDescriptorPath)

	if candidate.Version != nil && baseline.Version != nil &&
		candidate.Version.Name == baseline.Version.Name {
		candidate.Version = nil
	}

	ReduceMap(candidate.Metadata, baseline.Metadata)
	return candidate
}

// ReduceMap removes from candidate every key whose value equals the
// baseline's value at the same key. When both values are mappings the
// reduction recurses instead, and the (possibly empty) sub-mapping is
// kept. Keys only present in candidate, and values whose shapes differ,
// are left untouched.
func ReduceMap(candidate, baseline *document.Map) {
	if candidate == nil || baseline == nil {
		return
	}

	for _, key := range baseline.Keys() {
		cv, ok := candidate.Get(key)
		if !ok {
			continue
		}
		bv, _ := baseline.Get(key)

		cm, cIsMap := cv.(*document.Map)
		bm, bIsMap := bv.(*document.Map)
		if cIsMap && bIsMap {
			ReduceMap(cm, bm)
			continue
		}

		if document.Equal(cv, bv) {
			candidate.Delete(key)
		}
	}
}

func clearIfEqual(field **string, baseline *string) {
	if *field != nil && ptr.Equal(*field, baseline) {
		*field = nil
	}
}
