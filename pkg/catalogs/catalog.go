// Package catalogs indexes a checkout of the booster catalog into booster
// records and their mission, runtime and version classifications.
//
// The catalog layout is:
//
//	metadata.yaml                          missions and runtimes (optional)
//	<mission>/<runtime>/<name>.yaml        booster without version
//	<mission>/<runtime>/<version>/<name>.yaml
//
// Example usage:
//
//	cat, err := catalogs.Load(ctx, os.DirFS(checkout), catalogs.WithRoot(checkout))
//	if err != nil {
//	    return err
//	}
//	for _, b := range cat.Boosters() {
//	    fmt.Println(b.ID)
//	}
package catalogs

import (
	"github.com/fabric8-launcher/boosterconv/pkg/boosters"
)

// Catalog is an indexed, read-only view of one catalog checkout.
type Catalog struct {
	boosters []*boosters.Booster
	byID     map[string]*boosters.Booster

	missions []*boosters.Mission
	runtimes []*boosters.Runtime
	versions map[string][]*boosters.Version

	metadata *metadataFile
}

func newCatalog(meta *metadataFile) *Catalog {
	return &Catalog{
		byID:     make(map[string]*boosters.Booster),
		versions: make(map[string][]*boosters.Version),
		metadata: meta,
	}
}

// Boosters returns the boosters in catalog walk order.
func (c *Catalog) Boosters() []*boosters.Booster {
	return c.boosters
}

// Booster returns the booster with id.
func (c *Catalog) Booster(id string) (*boosters.Booster, bool) {
	b, ok := c.byID[id]
	return b, ok
}

// Len returns the number of boosters.
func (c *Catalog) Len() int {
	return len(c.boosters)
}

// Missions returns the distinct missions used by boosters, first-seen order.
func (c *Catalog) Missions() []*boosters.Mission {
	return c.missions
}

// Runtimes returns the distinct runtimes used by boosters, first-seen order.
func (c *Catalog) Runtimes() []*boosters.Runtime {
	return c.runtimes
}

// Versions returns the distinct versions of boosters whose runtime id is
// exactly runtimeID, first-seen order.
func (c *Catalog) Versions(runtimeID string) []*boosters.Version {
	return c.versions[runtimeID]
}

func (c *Catalog) add(b *boosters.Booster) {
	if _, ok := c.byID[b.ID]; !ok {
		c.boosters = append(c.boosters, b)
	}
	c.byID[b.ID] = b

	if b.Mission != nil && !containsID(c.missions, b.Mission.ID) {
		c.missions = append(c.missions, b.Mission)
	}
	if b.Runtime == nil {
		return
	}
	if !containsID(c.runtimes, b.Runtime.ID) {
		c.runtimes = append(c.runtimes, b.Runtime)
	}
	if b.Version != nil && !containsID(c.versions[b.Runtime.ID], b.Version.ID) {
		c.versions[b.Runtime.ID] = append(c.versions[b.Runtime.ID], b.Version)
	}
}

func containsID[T boosters.Classification](items []T, id string) bool {
	for _, item := range items {
		if item.Core().ID == id {
			return true
		}
	}
	return false
}
