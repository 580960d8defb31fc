package boosterconv

import (
	"context"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/fabric8-launcher/boosterconv/pkg/boosters"
	"github.com/fabric8-launcher/boosterconv/pkg/document"
	"github.com/fabric8-launcher/boosterconv/pkg/errors"
	"github.com/fabric8-launcher/boosterconv/pkg/logging"
)

// describe replaces metadata.description with the contents of the
// booster's descriptor file when that file exists under its content
// path. A missing file is not an error; a file that cannot be read is
// reported and the booster keeps its current description.
func (c *converter) describe(ctx context.Context, b *boosters.Booster, result *Result) {
	if b == nil || b.BoosterDescriptorPath == nil || b.ContentPath == "" {
		return
	}

	path := filepath.Join(b.ContentPath, filepath.FromSlash(*b.BoosterDescriptorPath))
	exists, err := afero.Exists(c.config.contentFs, path)
	if err == nil && !exists {
		return
	}

	var data []byte
	if err == nil {
		data, err = afero.ReadFile(c.config.contentFs, path)
	}
	if err != nil {
		err = errors.WrapIO("read", path, err)
		logging.FromContext(ctx).Error().
			Err(err).
			Str("booster_id", b.ID).
			Msg("Could not read booster description")
		result.warn("%s: %v", b.ID, err)
		return
	}

	if b.Metadata == nil {
		b.Metadata = document.NewMap()
	}
	b.Metadata.Set("description", string(data))
}
