// Package app wires configuration, logging and the converter together
// for the convert CLI.
package app

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/fabric8-launcher/boosterconv/internal/sources/git"
	"github.com/fabric8-launcher/boosterconv/pkg/errors"
	"github.com/fabric8-launcher/boosterconv/pkg/sources"
)

// SourceFactory creates the catalog source for a repository locator.
type SourceFactory func(repository string, config *Config) (sources.Source, error)

// App represents the convert application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	newSource SourceFactory
	fs        afero.Fs
	stdout    io.Writer
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version:   version,
		commit:    commit,
		date:      date,
		builtBy:   builtBy,
		newSource: GitSource,
		fs:        afero.NewOsFs(),
		stdout:    os.Stdout,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, errors.WrapConfig("config", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// GitSource is the default SourceFactory. It clones with git according
// to the work directory and content settings of config.
func GitSource(repository string, config *Config) (sources.Source, error) {
	return git.New(repository,
		git.WithWorkDir(config.WorkDir),
		git.WithKeepWorkDir(config.KeepWorkDir),
		git.WithContentCloning(config.CloneContent),
	)
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithSourceFactory replaces the git source (useful for testing).
func WithSourceFactory(factory SourceFactory) Option {
	return func(a *App) error {
		if factory == nil {
			return errors.NewValidationError("source factory", nil, "cannot be nil")
		}
		a.newSource = factory
		return nil
	}
}

// WithFileSystem sets the filesystem documents are written to.
func WithFileSystem(fs afero.Fs) Option {
	return func(a *App) error {
		if fs == nil {
			return errors.NewValidationError("filesystem", nil, "cannot be nil")
		}
		a.fs = fs
		return nil
	}
}

// WithOutput sets where the run summary is printed.
func WithOutput(w io.Writer) Option {
	return func(a *App) error {
		a.stdout = w
		return nil
	}
}
