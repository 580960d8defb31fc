package boosterconv

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/fabric8-launcher/boosterconv/pkg/boosters"
	"github.com/fabric8-launcher/boosterconv/pkg/errors"
	"github.com/fabric8-launcher/boosterconv/pkg/save"
	"github.com/fabric8-launcher/boosterconv/pkg/sources"
)

// config holds converter settings.
type config struct {
	source    sources.Source
	mode      boosters.Mode
	logger    *zerolog.Logger
	outputFs  afero.Fs
	contentFs afero.Fs
	format    save.Format
	hooks     []Hooks
}

func defaultConfig() *config {
	return &config{
		mode:      boosters.ModeEnvironments,
		outputFs:  afero.NewOsFs(),
		contentFs: afero.NewOsFs(),
		format:    save.FormatYAML,
	}
}

// Option is a function that configures a Converter
type Option func(*config) error

// WithSource sets the catalog source. Defaults to the public booster
// catalog on GitHub.
func WithSource(src sources.Source) Option {
	return func(c *config) error {
		if src == nil {
			return &errors.ValidationError{Field: "source", Message: "cannot be nil"}
		}
		c.source = src
		return nil
	}
}

// WithMode selects the conversion mode
func WithMode(mode boosters.Mode) Option {
	return func(c *config) error {
		if !mode.IsValid() {
			return &errors.ValidationError{Field: "mode", Value: mode, Message: "unsupported mode"}
		}
		c.mode = mode
		return nil
	}
}

// WithLogger sets the logger used when the context carries none
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

// WithFileSystem sets the filesystem documents are written to
func WithFileSystem(fs afero.Fs) Option {
	return func(c *config) error {
		if fs == nil {
			return &errors.ValidationError{Field: "filesystem", Message: "cannot be nil"}
		}
		c.outputFs = fs
		return nil
	}
}

// WithContentFileSystem sets the filesystem booster content (description
// files) is read from
func WithContentFileSystem(fs afero.Fs) Option {
	return func(c *config) error {
		if fs == nil {
			return &errors.ValidationError{Field: "content filesystem", Message: "cannot be nil"}
		}
		c.contentFs = fs
		return nil
	}
}

// WithFormat sets the document encoding
func WithFormat(format save.Format) Option {
	return func(c *config) error {
		if !format.IsValid() {
			return &errors.ValidationError{Field: "format", Value: format, Message: "unsupported format"}
		}
		c.format = format
		return nil
	}
}

// WithHooks registers event callbacks
func WithHooks(h Hooks) Option {
	return func(c *config) error {
		c.hooks = append(c.hooks, h)
		return nil
	}
}
