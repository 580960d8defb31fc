package categories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabric8-launcher/boosterconv/internal/utils/ptr"
	"github.com/fabric8-launcher/boosterconv/pkg/boosters"
	"github.com/fabric8-launcher/boosterconv/pkg/document"
)

type fakeSource struct {
	missions []*boosters.Mission
	runtimes []*boosters.Runtime
	versions map[string][]*boosters.Version
}

func (f fakeSource) Missions() []*boosters.Mission { return f.missions }
func (f fakeSource) Runtimes() []*boosters.Runtime { return f.runtimes }
func (f fakeSource) Versions(runtimeID string) []*boosters.Version {
	return f.versions[runtimeID]
}

func version(id string) *boosters.Version {
	return &boosters.Version{Category: boosters.Category{ID: id, Name: id + " name"}}
}

func TestIndex(t *testing.T) {
	src := fakeSource{
		missions: []*boosters.Mission{
			{Category: boosters.Category{ID: "crud", Name: "CRUD", Description: ptr.To("Create, read, update, delete")}, Suggested: true},
			{Category: boosters.Category{ID: "health-check", Name: "Health Check"}},
		},
		runtimes: []*boosters.Runtime{
			{
				Category:         boosters.Category{ID: "spring-boot", Name: "Spring Boot"},
				Icon:             ptr.To("data:image/svg+xml;base64,xyz"),
				PipelinePlatform: ptr.To("maven"),
			},
			{Category: boosters.Category{ID: "nodejs", Name: "Node.js"}},
		},
		versions: map[string][]*boosters.Version{
			"spring-boot": {version("1.x"), version("2.x"), version("3.x")},
		},
	}

	idx := Index(src)
	assert.Equal(t, []string{"missions", "runtimes"}, idx.Keys())

	missions, _ := idx.Get("missions")
	require.Len(t, missions, 2)

	crud := missions.([]any)[0].(*document.Map)
	assert.Equal(t, []string{"id", "name", "description", "metadata"}, crud.Keys())
	meta, _ := crud.GetMap("metadata")
	suggested, _ := meta.Get("suggested")
	assert.Equal(t, true, suggested)

	health := missions.([]any)[1].(*document.Map)
	assert.False(t, health.Has("metadata"), "suggested is only written when true")
	assert.False(t, health.Has("description"))

	runtimes, _ := idx.Get("runtimes")
	springBoot := runtimes.([]any)[0].(*document.Map)
	assert.Equal(t, []string{"id", "name", "icon", "metadata", "versions"}, springBoot.Keys())
	meta, _ = springBoot.GetMap("metadata")
	platform, _ := meta.GetString("pipelinePlatform")
	assert.Equal(t, "maven", platform)

	versions, _ := springBoot.Get("versions")
	require.Len(t, versions, 3)
	var ids []string
	for _, v := range versions.([]any) {
		doc := v.(*document.Map)
		id, _ := doc.GetString("id")
		name, _ := doc.GetString("name")
		assert.Equal(t, id+" name", name)
		assert.Equal(t, []string{"id", "name"}, doc.Keys())
		ids = append(ids, id)
	}
	assert.Equal(t, []string{"1.x", "2.x", "3.x"}, ids)

	nodejs := runtimes.([]any)[1].(*document.Map)
	nodeVersions, _ := nodejs.Get("versions")
	assert.Empty(t, nodeVersions)
}

func TestDocumentVersionHasNoExtras(t *testing.T) {
	doc := Document(version("community"), nil)
	assert.Equal(t, []string{"id", "name"}, doc.Keys())
}
