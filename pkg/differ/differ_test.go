package differ

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabric8-launcher/boosterconv/internal/utils/ptr"
	"github.com/fabric8-launcher/boosterconv/pkg/boosters"
	"github.com/fabric8-launcher/boosterconv/pkg/document"
)

func baseline() *boosters.Booster {
	return &boosters.Booster{
		ID:                       "rest-http/vert.x/community/booster",
		Mission:                  &boosters.Mission{Category: boosters.Category{ID: "rest-http", Name: "REST API Level 0"}},
		Runtime:                  &boosters.Runtime{Category: boosters.Category{ID: "vert.x", Name: "Eclipse Vert.x"}},
		Version:                  &boosters.Version{Category: boosters.Category{ID: "community", Name: "3.5.0 (Community)"}},
		GithubRepo:               ptr.To("fabric8-launcher/launcher-booster-rest-http"),
		GitRef:                   ptr.To("v1"),
		SupportedDeploymentTypes: ptr.To("zip"),
		BuildProfile:             ptr.To("local"),
		BoosterDescriptorPath:    ptr.To(".openshiftio/description.adoc"),
		Metadata: document.NewMap().
			Set("name", "Rest HTTP").
			Set("app", document.NewMap().
				Set("launcher", document.NewMap().Set("runsOn", "openshift-online")).
				Set("osio", document.NewMap().Set("enabled", true))).
			Set("tags", []any{"a", "b"}),
	}
}

// fields flattens the comparable fields of a record for cmp.
func fields(b *boosters.Booster) map[string]any {
	out := map[string]any{
		"githubRepo":               b.GithubRepo,
		"gitRef":                   b.GitRef,
		"supportedDeploymentTypes": b.SupportedDeploymentTypes,
		"buildProfile":             b.BuildProfile,
		"boosterDescriptorPath":    b.BoosterDescriptorPath,
	}
	if b.Version != nil {
		out["version"] = b.Version.Name
	}
	return out
}

func TestReduceSelfClearsEverything(t *testing.T) {
	reduced := Reduce(baseline(), baseline())

	assert.Nil(t, reduced.GithubRepo)
	assert.Nil(t, reduced.GitRef)
	assert.Nil(t, reduced.SupportedDeploymentTypes)
	assert.Nil(t, reduced.BuildProfile)
	assert.Nil(t, reduced.BoosterDescriptorPath)
	assert.Nil(t, reduced.Version)

	// Sub-mappings shared with the baseline are pruned but kept.
	assert.Equal(t, []string{"app"}, reduced.Metadata.Keys())
	app, ok := reduced.Metadata.GetMap("app")
	require.True(t, ok)
	assert.Equal(t, []string{"launcher", "osio"}, app.Keys())
	launcher, _ := app.GetMap("launcher")
	assert.Equal(t, 0, launcher.Len())

	assert.Equal(t, []string{FieldMetadata}, Overrides(reduced))
}

func TestReduceKeepsDifferences(t *testing.T) {
	candidate := baseline()
	candidate.GitRef = ptr.To("v2")
	candidate.Version = &boosters.Version{Category: boosters.Category{ID: "community", Name: "4.0.0 (Community)"}}
	candidate.BuildProfile = nil

	reduced := Reduce(candidate, baseline())
	assert.Same(t, candidate, reduced, "reduction happens in place")
	assert.Equal(t, "v2", *reduced.GitRef)
	assert.Nil(t, reduced.GithubRepo)
	assert.Nil(t, reduced.BuildProfile)
	require.NotNil(t, reduced.Version)
	assert.Equal(t, []string{FieldGitRef, FieldVersion, FieldMetadata}, Overrides(reduced))
}

func TestReduceComparesVersionByName(t *testing.T) {
	candidate := baseline()
	candidate.Version = &boosters.Version{Category: boosters.Category{ID: "redhat", Name: "3.5.0 (Community)"}}

	reduced := Reduce(candidate, baseline())
	assert.Nil(t, reduced.Version)
}

func TestReduceSameGitRef(t *testing.T) {
	dev := &boosters.Booster{ID: "rest-http", GitRef: ptr.To("v1")}
	staging := &boosters.Booster{ID: "rest-http", GitRef: ptr.To("v1")}

	reduced := Reduce(staging, dev)
	assert.Nil(t, reduced.GitRef)
	assert.Empty(t, Overrides(reduced))
}

func TestReduceMap(t *testing.T) {
	t.Run("additive keys survive at any depth", func(t *testing.T) {
		candidate := document.NewMap().
			Set("name", "Rest HTTP").
			Set("extra", "new").
			Set("app", document.NewMap().Set("launcher", document.NewMap().
				Set("runsOn", "openshift-online").
				Set("added", 1)))
		base := baseline().Metadata

		ReduceMap(candidate, base)
		assert.Equal(t, []string{"extra", "app"}, candidate.Keys())
		app, _ := candidate.GetMap("app")
		launcher, _ := app.GetMap("launcher")
		assert.Equal(t, []string{"added"}, launcher.Keys())
	})

	t.Run("type mismatch is kept", func(t *testing.T) {
		candidate := document.NewMap().Set("app", "scalar").Set("tags", document.NewMap())
		ReduceMap(candidate, baseline().Metadata)
		assert.Equal(t, []string{"app", "tags"}, candidate.Keys())
	})

	t.Run("sequences compare structurally", func(t *testing.T) {
		same := document.NewMap().Set("tags", []any{"a", "b"})
		ReduceMap(same, baseline().Metadata)
		assert.False(t, same.Has("tags"))

		reordered := document.NewMap().Set("tags", []any{"b", "a"})
		ReduceMap(reordered, baseline().Metadata)
		assert.True(t, reordered.Has("tags"))
	})

	t.Run("numbers compare exactly", func(t *testing.T) {
		base, err := document.Parse([]byte("build: 9007199254740993\nratio: 1\nreplicas: 3\n"))
		require.NoError(t, err)
		candidate, err := document.Parse([]byte("build: 9007199254740992\nratio: 1.0\nreplicas: 3\n"))
		require.NoError(t, err)

		ReduceMap(candidate, base)
		assert.Equal(t, []string{"build", "ratio"}, candidate.Keys())

		ApplyMap(candidate, base)
		build, _ := base.Get("build")
		assert.True(t, document.Equal(uint64(9007199254740992), build))
	})

	t.Run("nil inputs", func(t *testing.T) {
		assert.NotPanics(t, func() {
			ReduceMap(nil, baseline().Metadata)
			ReduceMap(document.NewMap(), nil)
		})
	})
}

func TestApplyRestoresCandidate(t *testing.T) {
	candidate := baseline()
	candidate.GitRef = ptr.To("v2")
	candidate.SupportedDeploymentTypes = ptr.To("s2i")
	candidate.Metadata.Set("extra", "new")
	app, _ := candidate.Metadata.GetMap("app")
	osio, _ := app.GetMap("osio")
	osio.Set("enabled", false)

	want := candidate.Clone()
	base := baseline()
	restored := Apply(Reduce(candidate, base), base)

	if diff := cmp.Diff(fields(want), fields(restored)); diff != "" {
		t.Errorf("Apply(Reduce(c, b), b) mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, document.Equal(want.Metadata, restored.Metadata))

	// The baseline is not modified by either operation.
	assert.Equal(t, "v1", *base.GitRef)
	baseApp, _ := base.Metadata.GetMap("app")
	baseOsio, _ := baseApp.GetMap("osio")
	enabled, _ := baseOsio.Get("enabled")
	assert.Equal(t, true, enabled)
}

func TestApplyNilSides(t *testing.T) {
	base := baseline()
	got := Apply(nil, base)
	assert.NotSame(t, base, got)
	assert.Equal(t, *base.GitRef, *got.GitRef)

	override := &boosters.Booster{ID: "x", GitRef: ptr.To("v3")}
	got = Apply(override, nil)
	assert.Equal(t, "v3", *got.GitRef)
}

func TestOverridesNil(t *testing.T) {
	assert.Nil(t, Overrides(nil))
}
