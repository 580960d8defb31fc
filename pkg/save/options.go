package save

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/fabric8-launcher/boosterconv/pkg/errors"
)

// Format is the encoding of written documents.
type Format int

// Format constants.
const (
	FormatYAML Format = iota
	FormatJSON
)

// IsValid checks if the format is valid.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	}
	return "unknown"
}

// ParseFormat parses a format name. An empty name selects YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return 0, &errors.ValidationError{
			Field:   "format",
			Value:   s,
			Message: fmt.Sprintf("unsupported document format %q", s),
		}
	}
}

// Options is the configuration for a Writer.
type Options struct {
	fs     afero.Fs
	format Format
}

// FS returns the filesystem documents are written to.
func (s *Options) FS() afero.Fs {
	return s.fs
}

// Format returns the document format.
func (s *Options) Format() Format {
	return s.format
}

// Defaults returns the default save options.
func Defaults() *Options {
	return &Options{
		fs:     afero.NewOsFs(),
		format: FormatYAML,
	}
}

// Apply applies the given options to the save options.
func (s *Options) Apply(opts ...Option) Options {
	for _, opt := range opts {
		opt(s)
	}
	return *s
}

// Option is a function that configures save options.
type Option func(*Options)

// WithFormat for custom output format.
func WithFormat(f Format) Option {
	return func(s *Options) {
		s.format = f
	}
}

// WithFS for custom filesystems, such as afero.NewMemMapFs in tests.
func WithFS(fs afero.Fs) Option {
	return func(s *Options) {
		if fs != nil {
			s.fs = fs
		}
	}
}
