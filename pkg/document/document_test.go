package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabric8-launcher/boosterconv/pkg/errors"
)

func TestMapKeepsInsertionOrder(t *testing.T) {
	m := NewMap().Set("b", 1).Set("a", 2).Set("c", 3)
	assert.Equal(t, []string{"b", "a", "c"}, m.Keys())

	m.Set("a", 20)
	assert.Equal(t, []string{"b", "a", "c"}, m.Keys(), "replacing a value keeps its position")
	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 20, v)

	m.Delete("b")
	m.Delete("missing")
	assert.Equal(t, []string{"a", "c"}, m.Keys())
	assert.Equal(t, 2, m.Len())
}

func TestZeroValueMap(t *testing.T) {
	var m Map
	m.Set("k", "v")
	assert.True(t, m.Has("k"))

	var nilMap *Map
	assert.Equal(t, 0, nilMap.Len())
	assert.False(t, nilMap.Has("k"))
	assert.Nil(t, nilMap.Clone())
}

func TestSetNormalizesContainers(t *testing.T) {
	m := NewMap().Set("nested", map[string]any{"z": 1, "a": 2})
	sub, ok := m.GetMap("nested")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "z"}, sub.Keys())

	m.Set("list", []string{"x", "y"})
	v, _ := m.Get("list")
	assert.Equal(t, []any{"x", "y"}, v)
}

func TestCloneIsDeep(t *testing.T) {
	orig := NewMap().
		Set("name", "booster").
		Set("meta", NewMap().Set("app", NewMap().Set("launcher", "x"))).
		Set("list", []any{NewMap().Set("k", "v")})

	cp := orig.Clone()
	require.True(t, Equal(orig, cp))

	meta, _ := cp.GetMap("meta")
	app, _ := meta.GetMap("app")
	app.Set("launcher", "changed")

	list, _ := cp.Get("list")
	list.([]any)[0].(*Map).Set("k", "changed")

	origMeta, _ := orig.GetMap("meta")
	origApp, _ := origMeta.GetMap("app")
	s, _ := origApp.GetString("launcher")
	assert.Equal(t, "x", s)

	origList, _ := orig.Get("list")
	s, _ = origList.([]any)[0].(*Map).GetString("k")
	assert.Equal(t, "v", s)
}

func TestSetAtPath(t *testing.T) {
	m := NewMap()
	require.NoError(t, m.SetAtPath([]string{"metadata", "version", "name"}, "Community"))
	require.NoError(t, m.SetAtPath([]string{"metadata", "buildProfile"}, "local"))

	meta, ok := m.GetMap("metadata")
	require.True(t, ok)
	assert.Equal(t, []string{"version", "buildProfile"}, meta.Keys())
	version, ok := meta.GetMap("version")
	require.True(t, ok)
	name, _ := version.GetString("name")
	assert.Equal(t, "Community", name)

	t.Run("replaces scalar intermediate", func(t *testing.T) {
		m := NewMap().Set("metadata", "scalar")
		require.NoError(t, m.SetAtPath([]string{"metadata", "suggested"}, true))
		meta, ok := m.GetMap("metadata")
		require.True(t, ok)
		v, _ := meta.Get("suggested")
		assert.Equal(t, true, v)
	})

	t.Run("empty path", func(t *testing.T) {
		err := NewMap().SetAtPath(nil, "x")
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestSetPath(t *testing.T) {
	m := NewMap().
		SetPath("maven", "metadata", "pipelinePlatform").
		SetPath(true, "metadata", "suggested").
		SetPath("top", "id")

	assert.Equal(t, []string{"metadata", "id"}, m.Keys())
	meta, ok := m.GetMap("metadata")
	require.True(t, ok)
	assert.Equal(t, []string{"pipelinePlatform", "suggested"}, meta.Keys())
	id, _ := m.GetString("id")
	assert.Equal(t, "top", id)
}

func TestScalarString(t *testing.T) {
	tests := []struct {
		in   any
		want string
		ok   bool
	}{
		{"v1", "v1", true},
		{uint64(7), "7", true},
		{1.5, "1.5", true},
		{true, "true", true},
		{nil, "", false},
		{NewMap(), "", false},
		{[]any{"a"}, "", false},
	}
	for _, tt := range tests {
		got, ok := ScalarString(tt.in)
		assert.Equal(t, tt.ok, ok, "%v", tt.in)
		assert.Equal(t, tt.want, got, "%v", tt.in)
	}
}
