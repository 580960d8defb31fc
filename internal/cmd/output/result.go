package output

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/fabric8-launcher/boosterconv"
	"github.com/fabric8-launcher/boosterconv/pkg/boosters"
)

// ResultTable lists the written files of a conversion run, one row per
// file, with the environments merged into it and the fields each
// environment overrides.
func ResultTable(result *boosterconv.Result) Data {
	data := Data{
		Headers:         []string{Title("booster"), Title("environments"), Title("overrides"), Title("path")},
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignLeft, AlignLeft},
	}

	for _, f := range result.Files {
		id := f.ID
		if id == "" {
			id = "-"
		}

		var envs []string
		for _, env := range f.Environments {
			envs = append(envs, env.String())
		}

		var overrides []string
		for _, env := range boosters.Environments() {
			fields, ok := f.Overrides[env]
			if !ok {
				continue
			}
			if len(fields) == 0 {
				fields = []string{"none"}
			}
			overrides = append(overrides, env.String()+": "+strings.Join(fields, ","))
		}

		path := f.Path
		if rel, err := filepath.Rel(result.Dest, f.Path); err == nil {
			path = rel
		}

		data.Rows = append(data.Rows, []string{id, strings.Join(envs, ","), strings.Join(overrides, "; "), path})
	}
	return data
}

// WriteResult renders result in format. Tables are followed by the
// one-line summary.
func WriteResult(w io.Writer, result *boosterconv.Result, format Format) error {
	if format == FormatTable || format == "" {
		if err := NewFormatter(FormatTable).Format(w, ResultTable(result)); err != nil {
			return err
		}
		_, err := io.WriteString(w, result.Summary()+"\n")
		return err
	}
	return NewFormatter(format).Format(w, result)
}
