// Package save writes generated documents under an output root.
package save

import (
	"encoding/json"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/fabric8-launcher/boosterconv/pkg/constants"
	"github.com/fabric8-launcher/boosterconv/pkg/document"
	"github.com/fabric8-launcher/boosterconv/pkg/errors"
)

// Writer writes documents below a root directory. Files already written
// stay in place when a later write fails.
type Writer struct {
	root string
	opts Options
}

// NewWriter creates a writer rooted at root.
func NewWriter(root string, opts ...Option) *Writer {
	return &Writer{
		root: root,
		opts: Defaults().Apply(opts...),
	}
}

// Root returns the output root.
func (w *Writer) Root() string {
	return w.root
}

// Format returns the document format.
func (w *Writer) Format() Format {
	return w.opts.format
}

// Path returns the absolute location of rel under the root.
func (w *Writer) Path(rel string) string {
	return filepath.Join(w.root, rel)
}

// Write encodes doc and writes it to rel, creating parent directories.
// It returns the path written.
func (w *Writer) Write(rel string, doc *document.Map) (string, error) {
	data, err := w.encode(doc)
	if err != nil {
		return "", err
	}
	return w.WriteBytes(rel, data)
}

// WriteBytes writes data to rel, creating parent directories.
func (w *Writer) WriteBytes(rel string, data []byte) (string, error) {
	path := w.Path(rel)
	dir := filepath.Dir(path)
	if err := w.opts.fs.MkdirAll(dir, constants.DirPermissions); err != nil {
		return "", errors.WrapIO("create", dir, err)
	}
	if err := afero.WriteFile(w.opts.fs, path, data, constants.FilePermissions); err != nil {
		return "", errors.WrapIO("write", path, err)
	}
	return path, nil
}

func (w *Writer) encode(doc *document.Map) ([]byte, error) {
	if doc == nil {
		doc = document.NewMap()
	}
	switch w.opts.format {
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, errors.WrapParse("json", "", err)
		}
		return append(data, '\n'), nil
	default:
		data, err := document.Marshal(doc)
		if err != nil {
			return nil, errors.WrapParse("yaml", "", err)
		}
		return data, nil
	}
}
