// Package git fetches booster catalogs with git.
//
// The repository locator is either a remote URL (anything containing a
// colon) or a local directory of git bundles. A local directory holds
// booster-catalog.bundle for the catalog itself and one
// <owner>/<repo>.bundle per booster repository.
package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fabric8-launcher/boosterconv/pkg/catalogs"
	"github.com/fabric8-launcher/boosterconv/pkg/constants"
	"github.com/fabric8-launcher/boosterconv/pkg/errors"
	"github.com/fabric8-launcher/boosterconv/pkg/logging"
	"github.com/fabric8-launcher/boosterconv/pkg/sources"
)

var _ sources.Source = (*Source)(nil)

// Source fetches catalogs by cloning a git repository.
type Source struct {
	repository   string
	local        bool
	baseDir      string
	keepWorkDir  bool
	cloneContent bool
	runner       Runner

	workDir string
	fetches int
	content map[string]string // "<repo>@<ref>" -> checkout
}

// New creates a source for repository. A local repository must be an
// existing directory; anything else is a configuration error.
func New(repository string, opts ...Option) (*Source, error) {
	if repository == "" {
		repository = constants.DefaultCatalogURL
	}
	s := &Source{
		repository:   repository,
		local:        IsLocal(repository),
		cloneContent: true,
		runner:       ExecRunner{},
		content:      make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.local {
		info, err := os.Stat(repository)
		if err != nil {
			return nil, errors.NewConfigError("catalog", fmt.Sprintf("local catalog directory %s does not exist", repository), err)
		}
		if !info.IsDir() {
			return nil, errors.NewConfigError("catalog", fmt.Sprintf("local catalog %s is not a directory", repository), nil)
		}
	}
	return s, nil
}

// IsLocal reports whether repository names a local bundle directory.
func IsLocal(repository string) bool {
	return !strings.Contains(repository, ":")
}

// ID returns the id of this source.
func (s *Source) ID() sources.ID {
	if s.local {
		return sources.LocalID
	}
	return sources.GitID
}

// Repository returns the repository locator.
func (s *Source) Repository() string {
	return s.repository
}

// WorkDir returns the directory holding the clones, once created.
func (s *Source) WorkDir() string {
	return s.workDir
}

// Fetch clones the catalog at ref and indexes it.
func (s *Source) Fetch(ctx context.Context, ref string) (*catalogs.Catalog, error) {
	if ref == "" {
		ref = constants.DefaultDevelopmentRef
	}
	ctx = logging.WithRef(ctx, ref)
	logger := logging.FromContext(ctx)

	if s.local {
		bundle := s.catalogURL()
		if _, err := os.Stat(bundle); err != nil {
			return nil, errors.NewNotFoundError("catalog bundle", bundle)
		}
	}

	if err := s.ensureWorkDir(); err != nil {
		return nil, err
	}

	s.fetches++
	dir := filepath.Join(s.workDir, fmt.Sprintf("catalog-%d-%s", s.fetches, sanitize(ref)))
	logger.Info().Str("repository", s.repository).Msg("Fetching booster catalog")
	if err := s.clone(ctx, s.catalogURL(), ref, dir); err != nil {
		return nil, err
	}

	cat, err := catalogs.Load(ctx, os.DirFS(dir), catalogs.WithRoot(dir))
	if err != nil {
		return nil, err
	}

	if s.cloneContent {
		s.fetchContent(ctx, cat)
	}
	return cat, nil
}

// Cleanup removes the work directory unless it is kept.
func (s *Source) Cleanup() error {
	if s.workDir == "" || s.keepWorkDir {
		return nil
	}
	if err := os.RemoveAll(s.workDir); err != nil {
		return errors.WrapIO("remove", s.workDir, err)
	}
	s.workDir = ""
	return nil
}

// fetchContent clones the repository of every booster and points its
// content path at the checkout. Failures leave the content path empty.
func (s *Source) fetchContent(ctx context.Context, cat *catalogs.Catalog) {
	logger := logging.FromContext(ctx)
	for _, b := range cat.Boosters() {
		if b.GithubRepo == nil {
			continue
		}
		ref := ""
		if b.GitRef != nil {
			ref = *b.GitRef
		}

		key := *b.GithubRepo + "@" + ref
		if dir, ok := s.content[key]; ok {
			b.ContentPath = dir
			continue
		}

		dir := filepath.Join(s.workDir, "content", filepath.FromSlash(*b.GithubRepo), sanitize(ref))
		if err := s.clone(ctx, s.contentURL(*b.GithubRepo), ref, dir); err != nil {
			logger.Warn().
				Err(err).
				Str("booster_id", b.ID).
				Str("repository", *b.GithubRepo).
				Msg("Could not fetch booster content")
			b.ContentPath = ""
			s.content[key] = ""
			continue
		}
		b.ContentPath = dir
		s.content[key] = dir
	}
}

func (s *Source) clone(ctx context.Context, url, ref, dir string) error {
	if err := os.MkdirAll(filepath.Dir(dir), constants.DirPermissions); err != nil {
		return errors.WrapIO("create", filepath.Dir(dir), err)
	}

	ctx, cancel := context.WithTimeout(ctx, constants.CloneTimeout)
	defer cancel()

	args := []string{"clone", "--quiet"}
	if !s.local {
		args = append(args, "--depth", "1")
	}
	if ref != "" {
		args = append(args, "--branch", ref)
	}
	args = append(args, url, dir)

	_, err := s.runner.Run(ctx, s.workDir, args...)
	return err
}

func (s *Source) ensureWorkDir() error {
	if s.workDir != "" {
		return nil
	}
	if s.baseDir != "" {
		if err := os.MkdirAll(s.baseDir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", s.baseDir, err)
		}
	}
	dir, err := os.MkdirTemp(s.baseDir, constants.WorkDirPattern)
	if err != nil {
		return errors.WrapIO("create", "work directory", err)
	}
	s.workDir = dir
	return nil
}

func (s *Source) catalogURL() string {
	if s.local {
		return filepath.Join(s.repository, constants.CatalogBundleName+constants.BundleExtension)
	}
	return s.repository
}

func (s *Source) contentURL(githubRepo string) string {
	if s.local {
		return filepath.Join(s.repository, filepath.FromSlash(githubRepo)+constants.BundleExtension)
	}
	return constants.GitHubURLPrefix + githubRepo
}

// sanitize turns a ref into a single path segment.
func sanitize(ref string) string {
	if ref == "" {
		return "HEAD"
	}
	return strings.NewReplacer("/", "_", "\\", "_", ":", "_").Replace(ref)
}
