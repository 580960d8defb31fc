package output

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabric8-launcher/boosterconv"
	"github.com/fabric8-launcher/boosterconv/pkg/boosters"
	"github.com/fabric8-launcher/boosterconv/pkg/errors"
)

func testResult() *boosterconv.Result {
	dest := filepath.Join("tmp", "out")
	return &boosterconv.Result{
		Mode: boosters.ModeEnvironments,
		Dest: dest,
		Refs: map[boosters.Environment]string{
			boosters.Development: "master",
			boosters.Staging:     "staging",
		},
		Counts: map[boosters.Environment]int{
			boosters.Development: 2,
			boosters.Staging:     1,
		},
		Files: []boosterconv.WrittenFile{
			{
				ID:           "rest-http/vert.x/community",
				Path:         filepath.Join(dest, "rest-http", "vert.x", "community", "booster.yaml"),
				Environments: []boosters.Environment{boosters.Development, boosters.Staging},
				Overrides: map[boosters.Environment][]string{
					boosters.Staging: {"gitRef"},
				},
			},
			{
				ID:           "crud/nodejs",
				Path:         filepath.Join(dest, "crud", "nodejs", "booster.yaml"),
				Environments: []boosters.Environment{boosters.Development},
			},
		},
		Orphans: []*errors.OrphanError{errors.NewOrphanError("staging", "cache/spring-boot")},
	}
}

func TestResultTable(t *testing.T) {
	got := ResultTable(testResult())

	want := [][]string{
		{"rest-http/vert.x/community", "development,staging", "staging: gitRef", filepath.Join("rest-http", "vert.x", "community", "booster.yaml")},
		{"crud/nodejs", "development", "", filepath.Join("crud", "nodejs", "booster.yaml")},
	}
	if diff := cmp.Diff(want, got.Rows); diff != "" {
		t.Errorf("ResultTable() rows mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"Booster", "Environments", "Overrides", "Path"}, got.Headers)
}

func TestResultTable_MetadataFile(t *testing.T) {
	result := &boosterconv.Result{
		Dest:  "out",
		Files: []boosterconv.WrittenFile{{Path: filepath.Join("out", "metadata.yaml")}},
	}

	got := ResultTable(result)
	require.Len(t, got.Rows, 1)
	assert.Equal(t, "-", got.Rows[0][0])
	assert.Equal(t, "metadata.yaml", got.Rows[0][3])
}

func TestWriteResult_Table(t *testing.T) {
	result := testResult()

	var buf bytes.Buffer
	require.NoError(t, WriteResult(&buf, result, FormatTable))

	out := buf.String()
	assert.Contains(t, out, "crud/nodejs")
	assert.Contains(t, out, "staging: gitRef")
	assert.Contains(t, out, result.Summary())
}

func TestWriteResult_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteResult(&buf, testResult(), FormatJSON))

	var got struct {
		Mode    string `json:"mode"`
		Files   []struct {
			ID string `json:"id"`
		} `json:"files"`
		Orphans []struct {
			Environment string `json:"environment"`
			BoosterID   string `json:"boosterId"`
		} `json:"orphans"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "environments", got.Mode)
	require.Len(t, got.Files, 2)
	assert.Equal(t, "rest-http/vert.x/community", got.Files[0].ID)
	require.Len(t, got.Orphans, 1)
	assert.Equal(t, "cache/spring-boot", got.Orphans[0].BoosterID)
}

func TestWriteResult_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteResult(&buf, testResult(), FormatYAML))

	out := buf.String()
	assert.Contains(t, out, "mode: environments")
	assert.Contains(t, out, "boosterId: cache/spring-boot")
}
