package boosterconv

import (
	"context"

	"github.com/fabric8-launcher/boosterconv/internal/sources/git"
	"github.com/fabric8-launcher/boosterconv/pkg/boosters"
	"github.com/fabric8-launcher/boosterconv/pkg/catalogs"
	"github.com/fabric8-launcher/boosterconv/pkg/categories"
	"github.com/fabric8-launcher/boosterconv/pkg/constants"
	"github.com/fabric8-launcher/boosterconv/pkg/differ"
	"github.com/fabric8-launcher/boosterconv/pkg/document"
	"github.com/fabric8-launcher/boosterconv/pkg/errors"
	"github.com/fabric8-launcher/boosterconv/pkg/layout"
	"github.com/fabric8-launcher/boosterconv/pkg/logging"
	"github.com/fabric8-launcher/boosterconv/pkg/projector"
	"github.com/fabric8-launcher/boosterconv/pkg/reconciler"
	"github.com/fabric8-launcher/boosterconv/pkg/save"
	"github.com/fabric8-launcher/boosterconv/pkg/sources"
)

// Convert runs one conversion. Any fetch error aborts the run before a
// document is written; a write error aborts the run and leaves the
// documents already written in place. The returned result is non-nil
// whenever the request was valid, also on error.
func (c *converter) Convert(ctx context.Context, req Request) (*Result, error) {
	// Step 0: Set context
	if ctx == nil {
		ctx = context.Background()
	}
	if c.config.logger != nil {
		ctx = logging.WithLogger(ctx, c.config.logger)
	}
	logger := logging.FromContext(ctx)

	// Step 1: Validate the request against the mode
	req, err := req.validate(c.config.mode)
	if err != nil {
		return nil, err
	}

	// Step 2: Resolve the catalog source
	src, err := c.source()
	if err != nil {
		return nil, err
	}
	defer func() {
		if cleanupErr := src.Cleanup(); cleanupErr != nil {
			logger.Warn().Err(cleanupErr).Msg("Source cleanup failed")
		}
	}()

	result := newResult(c.config.mode, req)
	defer result.finish()

	writer := save.NewWriter(req.Dest,
		save.WithFS(c.config.outputFs),
		save.WithFormat(c.config.format),
	)

	// Step 3: Convert in the selected mode
	switch c.config.mode {
	case boosters.ModeCatalog:
		err = c.convertCatalog(ctx, src, req, writer, result)
	default:
		err = c.convertEnvironments(ctx, src, req, writer, result)
	}
	return result, err
}

func (c *converter) source() (sources.Source, error) {
	if c.config.source != nil {
		return c.config.source, nil
	}
	return git.New(constants.DefaultCatalogURL)
}

// fetch reads the catalog of env. Fetches run one at a time.
func (c *converter) fetch(ctx context.Context, src sources.Source, env boosters.Environment, ref string, result *Result) (*catalogs.Catalog, error) {
	ctx = logging.WithEnvironment(ctx, env.String())
	cat, err := src.Fetch(ctx, ref)
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Info().
		Str("ref", ref).
		Int("count", cat.Len()).
		Msgf("Read %d boosters from %s", cat.Len(), env)
	result.Counts[env] = cat.Len()
	c.fetched(env, cat.Len())
	return cat, nil
}

// convertEnvironments merges development, staging and production into
// one projected document per booster.
func (c *converter) convertEnvironments(ctx context.Context, src sources.Source, req Request, writer *save.Writer, result *Result) error {
	var sets reconciler.Sets
	for _, env := range req.Environments() {
		cat, err := c.fetch(ctx, src, env, req.Ref(env), result)
		if err != nil {
			return err
		}
		switch env {
		case boosters.Development:
			sets.Development = cat.Boosters()
		case boosters.Staging:
			sets.Staging = cat.Boosters()
		case boosters.Production:
			sets.Production = cat.Boosters()
		}
	}

	rec, err := reconciler.New(reconciler.WithOrphanHandler(func(orphan *errors.OrphanError) {
		result.Orphans = append(result.Orphans, orphan)
		c.orphan(orphan)
	}))
	if err != nil {
		return err
	}
	reconciled, err := rec.Reconcile(ctx, sets)
	if err != nil {
		return err
	}

	order := layout.ForMode(boosters.ModeEnvironments)
	seen := make(map[string]string)
	for _, group := range reconciled.Groups() {
		c.describe(ctx, group.Development, result)

		rel := order.Path(group.Development)
		file := WrittenFile{
			ID:           group.ID,
			Environments: group.Environments(),
		}
		for _, env := range file.Environments {
			if env.IsBaseline() {
				continue
			}
			if file.Overrides == nil {
				file.Overrides = make(map[boosters.Environment][]string)
			}
			file.Overrides[env] = differ.Overrides(group.Get(env))
		}

		if err := c.write(ctx, writer, rel, group.ID, projector.Group(group), seen, &file, result); err != nil {
			return err
		}
	}
	return nil
}

// convertCatalog writes the development descriptors as-is plus the
// category index.
func (c *converter) convertCatalog(ctx context.Context, src sources.Source, req Request, writer *save.Writer, result *Result) error {
	cat, err := c.fetch(ctx, src, boosters.Development, req.DevelopmentRef, result)
	if err != nil {
		return err
	}

	order := layout.ForMode(boosters.ModeCatalog)
	seen := make(map[string]string)
	for _, b := range cat.Boosters() {
		file := WrittenFile{
			ID:           b.ID,
			Environments: []boosters.Environment{boosters.Development},
		}
		if err := c.write(ctx, writer, order.Path(b), b.ID, b.Data, seen, &file, result); err != nil {
			return err
		}
	}

	file := WrittenFile{}
	return c.write(ctx, writer, constants.MetadataFileName, "", categories.Index(cat), seen, &file, result)
}

func (c *converter) write(ctx context.Context, writer *save.Writer, rel, id string, doc *document.Map, seen map[string]string, file *WrittenFile, result *Result) error {
	logger := logging.FromContext(ctx)
	if previous, ok := seen[rel]; ok {
		logger.Debug().
			Str("path", rel).
			Str("booster_id", id).
			Str("previous", previous).
			Msg("Overwriting booster with the same mission, runtime and version")
		result.Overwritten++
	}
	seen[rel] = id

	path, err := writer.Write(rel, doc)
	if err != nil {
		return err
	}
	logger.Info().Str("path", path).Msgf("Writing %s", rel)

	file.Path = path
	result.Files = append(result.Files, *file)
	c.documentWritten(path)
	return nil
}
