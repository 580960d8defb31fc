package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: ""},
		{in: "table", want: FormatTable},
		{in: "JSON", want: FormatJSON},
		{in: "yaml", want: FormatYAML},
		{in: "wide", wantErr: true},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormat_Explicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
	assert.Equal(t, FormatTable, DetectFormat("table"))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Booster", Title("booster"))
	assert.Equal(t, "Pipeline Platform", Title("pipeline_platform"))
}

func TestTableFormatter(t *testing.T) {
	data := Data{
		Headers:         []string{"Id", "Name"},
		Rows:            [][]string{{"rest-http", "REST API Level 0"}, {"crud", "CRUD"}},
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, data))

	out := buf.String()
	assert.Contains(t, out, "rest-http")
	assert.Contains(t, out, "REST API Level 0")
	assert.Contains(t, out, "crud")
}

func TestTableFormatter_FallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, map[string]int{"boosters": 2}))

	var got map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 2, got["boosters"])
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	err := NewFormatter(FormatYAML).Format(&buf, struct {
		Mode  string   `yaml:"mode"`
		Files []string `yaml:"files"`
	}{Mode: "catalog", Files: []string{"a", "b"}})
	require.NoError(t, err)

	assert.Equal(t, "mode: catalog\nfiles:\n- a\n- b\n", buf.String())
}
