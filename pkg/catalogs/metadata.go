package catalogs

import (
	"github.com/fabric8-launcher/boosterconv/pkg/boosters"
)

// metadataFile mirrors the catalog's metadata.yaml.
type metadataFile struct {
	Missions []missionEntry `yaml:"missions"`
	Runtimes []runtimeEntry `yaml:"runtimes"`
}

type missionEntry struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description *string `yaml:"description"`
	Metadata    struct {
		Suggested bool `yaml:"suggested"`
	} `yaml:"metadata"`
}

type runtimeEntry struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description *string `yaml:"description"`
	Icon        *string `yaml:"icon"`
	Metadata    struct {
		PipelinePlatform *string `yaml:"pipelinePlatform"`
	} `yaml:"metadata"`
	Versions []versionEntry `yaml:"versions"`
}

type versionEntry struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description *string `yaml:"description"`
}

// classifier resolves ids to shared classification values so every
// booster of a mission points at the same *Mission.
type classifier struct {
	meta     *metadataFile
	missions map[string]*boosters.Mission
	runtimes map[string]*boosters.Runtime
	versions map[string]*boosters.Version
}

func newClassifier(meta *metadataFile) *classifier {
	return &classifier{
		meta:     meta,
		missions: make(map[string]*boosters.Mission),
		runtimes: make(map[string]*boosters.Runtime),
		versions: make(map[string]*boosters.Version),
	}
}

func (c *classifier) mission(id string) *boosters.Mission {
	if m, ok := c.missions[id]; ok {
		return m
	}
	m := &boosters.Mission{Category: boosters.Category{ID: id, Name: id}}
	for _, e := range c.meta.Missions {
		if e.ID == id {
			m.Name = nameOr(e.Name, id)
			m.Description = e.Description
			m.Suggested = e.Metadata.Suggested
			break
		}
	}
	c.missions[id] = m
	return m
}

func (c *classifier) runtime(id string) *boosters.Runtime {
	if r, ok := c.runtimes[id]; ok {
		return r
	}
	r := &boosters.Runtime{Category: boosters.Category{ID: id, Name: id}}
	if e, ok := c.runtimeEntry(id); ok {
		r.Name = nameOr(e.Name, id)
		r.Description = e.Description
		r.Icon = e.Icon
		r.PipelinePlatform = e.Metadata.PipelinePlatform
	}
	c.runtimes[id] = r
	return r
}

// version resolves a version of runtimeID. fallbackName is used when
// metadata.yaml does not name the version.
func (c *classifier) version(runtimeID, id, fallbackName string) *boosters.Version {
	key := runtimeID + "/" + id
	if v, ok := c.versions[key]; ok {
		return v
	}
	v := &boosters.Version{Category: boosters.Category{ID: id, Name: nameOr(fallbackName, id)}}
	if e, ok := c.runtimeEntry(runtimeID); ok {
		for _, ve := range e.Versions {
			if ve.ID == id {
				v.Name = nameOr(ve.Name, v.Name)
				v.Description = ve.Description
				break
			}
		}
	}
	c.versions[key] = v
	return v
}

func (c *classifier) runtimeEntry(id string) (runtimeEntry, bool) {
	for _, e := range c.meta.Runtimes {
		if e.ID == id {
			return e, true
		}
	}
	return runtimeEntry{}, false
}

func nameOr(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
