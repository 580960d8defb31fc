package catalogs

import (
	"context"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/fabric8-launcher/boosterconv/pkg/boosters"
	"github.com/fabric8-launcher/boosterconv/pkg/constants"
	"github.com/fabric8-launcher/boosterconv/pkg/document"
	"github.com/fabric8-launcher/boosterconv/pkg/errors"
	"github.com/fabric8-launcher/boosterconv/pkg/logging"
)

// Descriptor keys read into typed booster fields. Every other top-level
// key goes to the booster's metadata.
const (
	keyGithubRepo               = "githubRepo"
	keyGitRef                   = "gitRef"
	keyBuildProfile             = "buildProfile"
	keySupportedDeploymentTypes = "supportedDeploymentTypes"
	keyBoosterDescriptorPath    = "boosterDescriptorPath"
)

// Load indexes the catalog held in fsys. A descriptor that cannot be
// parsed is skipped with a warning; an unreadable metadata.yaml or a
// failed walk is an error.
func Load(ctx context.Context, fsys fs.FS, opts ...Option) (*Catalog, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	logger := logging.FromContext(ctx)

	meta, err := loadMetadataYAML(fsys)
	if err != nil {
		return nil, err
	}

	cat := newCatalog(meta)
	classify := newClassifier(meta)

	err = fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if p == constants.MetadataFileName || path.Ext(p) != constants.DescriptorExtension {
			return nil
		}

		dirs := strings.Split(path.Dir(p), "/")
		if len(dirs) != 2 && len(dirs) != 3 {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			logger.Warn().Err(err).Str("file", p).Msg("Skipping unreadable booster descriptor")
			return nil
		}
		descriptor, err := document.Parse(data)
		if err != nil {
			logger.Warn().Err(err).Str("file", p).Msg("Skipping invalid booster descriptor")
			return nil
		}

		b := newBooster(strings.TrimSuffix(p, constants.DescriptorExtension), descriptor)
		b.Mission = classify.mission(dirs[0])
		b.Runtime = classify.runtime(dirs[1])
		if len(dirs) == 3 {
			b.Version = classify.version(dirs[1], dirs[2], metadataVersionName(b.Metadata, dirs[2]))
		}
		b.ContentPath = filepath.Join(o.root, filepath.FromSlash(path.Dir(p)))

		cat.add(b)
		return nil
	})
	if err != nil {
		return nil, errors.WrapIO("walk", "catalog", err)
	}

	logger.Debug().Int("count", cat.Len()).Msg("Indexed booster catalog")
	return cat, nil
}

// loadMetadataYAML reads metadata.yaml. A missing file yields empty metadata.
func loadMetadataYAML(fsys fs.FS) (*metadataFile, error) {
	meta := &metadataFile{}
	data, err := fs.ReadFile(fsys, constants.MetadataFileName)
	if errors.Is(err, fs.ErrNotExist) {
		return meta, nil
	}
	if err != nil {
		return nil, errors.WrapIO("read", constants.MetadataFileName, err)
	}
	if err := yaml.Unmarshal(data, meta); err != nil {
		return nil, errors.WrapParse("yaml", constants.MetadataFileName, err)
	}
	return meta, nil
}

// newBooster splits a descriptor into typed fields and metadata.
func newBooster(id string, descriptor *document.Map) *boosters.Booster {
	b := &boosters.Booster{
		ID:       id,
		Metadata: document.NewMap(),
		Data:     descriptor,
	}

	for _, key := range descriptor.Keys() {
		value, _ := descriptor.Get(key)
		var field **string
		switch key {
		case keyGithubRepo:
			field = &b.GithubRepo
		case keyGitRef:
			field = &b.GitRef
		case keyBuildProfile:
			field = &b.BuildProfile
		case keySupportedDeploymentTypes:
			field = &b.SupportedDeploymentTypes
		case keyBoosterDescriptorPath:
			field = &b.BoosterDescriptorPath
		default:
			b.Metadata.Set(key, document.CloneValue(value))
			continue
		}
		if s, ok := document.ScalarString(value); ok {
			*field = &s
		}
	}
	return b
}

// metadataVersionName returns metadata.versions[id].name when it is a scalar.
func metadataVersionName(meta *document.Map, id string) string {
	versions, ok := meta.GetMap("versions")
	if !ok {
		return ""
	}
	entry, ok := versions.GetMap(id)
	if !ok {
		return ""
	}
	v, _ := entry.Get("name")
	name, _ := document.ScalarString(v)
	return name
}
