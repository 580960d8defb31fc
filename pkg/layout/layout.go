// Package layout derives where a booster document is written from the
// booster's mission, runtime and version ids.
package layout

import (
	"path/filepath"

	"github.com/fabric8-launcher/boosterconv/pkg/boosters"
	"github.com/fabric8-launcher/boosterconv/pkg/constants"
)

// Order is the sequence of classification axes that name the directory
// segments of a booster path.
type Order []boosters.Kind

// Segment orders.
var (
	// MissionFirst lays boosters out as mission/runtime/version.
	MissionFirst = Order{boosters.KindMission, boosters.KindRuntime, boosters.KindVersion}
	// RuntimeFirst lays boosters out as runtime/version/mission.
	RuntimeFirst = Order{boosters.KindRuntime, boosters.KindVersion, boosters.KindMission}
)

// ForMode returns the order used by mode.
func ForMode(mode boosters.Mode) Order {
	if mode == boosters.ModeCatalog {
		return RuntimeFirst
	}
	return MissionFirst
}

// Segments returns one id per present classification, in order. Absent
// classifications contribute nothing.
func (o Order) Segments(b *boosters.Booster) []string {
	segments := make([]string, 0, len(o))
	for _, kind := range o {
		if id := classificationID(b, kind); id != "" {
			segments = append(segments, id)
		}
	}
	return segments
}

// Dir returns the relative directory of b.
func (o Order) Dir(b *boosters.Booster) string {
	return filepath.Join(o.Segments(b)...)
}

// Path returns the relative path of the booster.yaml file of b.
func (o Order) Path(b *boosters.Booster) string {
	return filepath.Join(o.Dir(b), constants.BoosterFileName)
}

func classificationID(b *boosters.Booster, kind boosters.Kind) string {
	switch kind {
	case boosters.KindMission:
		return boosters.ClassificationID(b.Mission)
	case boosters.KindRuntime:
		return boosters.ClassificationID(b.Runtime)
	case boosters.KindVersion:
		return boosters.ClassificationID(b.Version)
	default:
		return ""
	}
}
