package app

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"testing/fstest"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabric8-launcher/boosterconv/pkg/catalogs"
	"github.com/fabric8-launcher/boosterconv/pkg/errors"
	"github.com/fabric8-launcher/boosterconv/pkg/sources"
)

// memorySource serves one in-memory catalog per ref.
type memorySource struct {
	refs    map[string]fstest.MapFS
	fetched []string
}

func (m *memorySource) ID() sources.ID { return "memory" }

func (m *memorySource) Fetch(ctx context.Context, ref string) (*catalogs.Catalog, error) {
	m.fetched = append(m.fetched, ref)
	fsys, ok := m.refs[ref]
	if !ok {
		return nil, errors.NewNotFoundError("ref", ref)
	}
	return catalogs.Load(ctx, fsys)
}

func (m *memorySource) Cleanup() error { return nil }

func catalogAt(gitRef string) fstest.MapFS {
	return fstest.MapFS{
		"rest-http/vert.x/community/booster.yaml": {Data: []byte("githubRepo: fabric8-launcher/launcher-booster-rest-http\ngitRef: " + gitRef + "\nname: Rest HTTP\n")},
		"crud/nodejs/booster.yaml":                {Data: []byte("githubRepo: nodeshift-starters/nodejs-crud\ngitRef: master\n")},
	}
}

type testApp struct {
	app        *App
	src        *memorySource
	fs         afero.Fs
	out        *bytes.Buffer
	repository string
	config     Config
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	isolate(t)

	ta := &testApp{
		src: &memorySource{refs: map[string]fstest.MapFS{
			"master":  catalogAt("v1"),
			"staging": catalogAt("v2"),
		}},
		fs:  afero.NewMemMapFs(),
		out: &bytes.Buffer{},
	}
	factory := func(repository string, config *Config) (sources.Source, error) {
		ta.repository = repository
		ta.config = *config
		return ta.src, nil
	}

	app, err := New("1.0.0", "abc123", "2026-01-01", "test",
		WithConfig(&Config{
			DevRef:         "master",
			Mode:           "environments",
			DocumentFormat: "yaml",
			CloneContent:   true,
			LogLevel:       "error",
			LogFormat:      "json",
			LogOutput:      "stderr",
		}),
		WithSourceFactory(factory),
		WithFileSystem(ta.fs),
		WithOutput(ta.out),
	)
	require.NoError(t, err)
	ta.app = app
	return ta
}

func (ta *testApp) run(args ...string) error {
	return ta.app.Execute(context.Background(), args)
}

func TestApp_New(t *testing.T) {
	ta := newTestApp(t)

	assert.Equal(t, "1.0.0", ta.app.Version())
	assert.Equal(t, "abc123", ta.app.Commit())
	assert.Equal(t, "2026-01-01", ta.app.Date())
	assert.Equal(t, "test", ta.app.BuiltBy())
	assert.NotNil(t, ta.app.Logger())
	assert.NotNil(t, ta.app.Config())
}

func TestApp_InvalidOptions(t *testing.T) {
	isolate(t)

	_, err := New("dev", "", "", "", WithSourceFactory(nil))
	assert.True(t, errors.IsValidationError(err))

	_, err = New("dev", "", "", "", WithFileSystem(nil))
	assert.True(t, errors.IsValidationError(err))
}

func TestExecute_NoArgumentsPrintsUsage(t *testing.T) {
	ta := newTestApp(t)

	require.NoError(t, ta.run())
	assert.Contains(t, ta.out.String(), "Usage:")
	assert.Empty(t, ta.src.fetched)
}

func TestExecute_DevelopmentOnly(t *testing.T) {
	ta := newTestApp(t)

	require.NoError(t, ta.run("-o", "json", "/out"))

	assert.Equal(t, []string{"master"}, ta.src.fetched)
	assert.Empty(t, ta.repository)

	exists, err := afero.Exists(ta.fs, "/out/rest-http/vert.x/community/booster.yaml")
	require.NoError(t, err)
	assert.True(t, exists)

	var summary struct {
		Mode  string `json:"mode"`
		Files []struct {
			ID string `json:"id"`
		} `json:"files"`
	}
	require.NoError(t, json.Unmarshal(ta.out.Bytes(), &summary))
	assert.Equal(t, "environments", summary.Mode)
	assert.Len(t, summary.Files, 2)
}

func TestExecute_PositionalRefs(t *testing.T) {
	ta := newTestApp(t)

	require.NoError(t, ta.run("-o", "table", "/out", "./bundles", "", "staging"))

	assert.Equal(t, "./bundles", ta.repository)
	assert.Equal(t, []string{"master", "staging"}, ta.src.fetched)
	assert.Contains(t, ta.out.String(), "Converted 2 boosters into /out (environments mode)")

	data, err := afero.ReadFile(ta.fs, "/out/rest-http/vert.x/community/booster.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "staging:")
}

func TestExecute_Flags(t *testing.T) {
	ta := newTestApp(t)

	require.NoError(t, ta.run("--no-content", "--keep-work-dir", "--work-dir", "/var/tmp", "-o", "yaml", "/out"))

	assert.False(t, ta.config.CloneContent)
	assert.True(t, ta.config.KeepWorkDir)
	assert.Equal(t, "/var/tmp", ta.config.WorkDir)
	assert.Contains(t, ta.out.String(), "mode: environments")
}

func TestExecute_JSONDocuments(t *testing.T) {
	ta := newTestApp(t)

	require.NoError(t, ta.run("--output-format", "json", "-o", "json", "/out"))

	data, err := afero.ReadFile(ta.fs, "/out/crud/nodejs/booster.yaml")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "source")
}

func TestExecute_CatalogMode(t *testing.T) {
	ta := newTestApp(t)

	require.NoError(t, ta.run("--mode", "catalog", "-o", "json", "/out"))

	exists, err := afero.Exists(ta.fs, "/out/metadata.yaml")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = afero.Exists(ta.fs, "/out/vert.x/community/rest-http/booster.yaml")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestExecute_CatalogModeRejectsStaging(t *testing.T) {
	ta := newTestApp(t)

	err := ta.run("--mode", "catalog", "/out", "", "master", "staging")
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
	assert.Empty(t, ta.src.fetched)
}

func TestExecute_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown mode", args: []string{"--mode", "bogus", "/out"}},
		{name: "unknown document format", args: []string{"--output-format", "xml", "/out"}},
		{name: "unknown summary format", args: []string{"-o", "wide", "/out"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t)
			err := ta.run(tt.args...)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestExecute_TooManyArguments(t *testing.T) {
	ta := newTestApp(t)

	err := ta.run("/out", "", "a", "b", "c", "d")
	assert.Error(t, err)
	assert.Empty(t, ta.src.fetched)
}

func TestExecute_FetchError(t *testing.T) {
	ta := newTestApp(t)

	err := ta.run("/out", "", "master", "missing")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}
