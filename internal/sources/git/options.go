package git

// Option configures a Source.
type Option func(*Source)

// WithWorkDir sets the directory clones are placed under. A fresh
// temporary directory is created inside it. Defaults to the system
// temporary directory.
func WithWorkDir(dir string) Option {
	return func(s *Source) {
		s.baseDir = dir
	}
}

// WithKeepWorkDir leaves the clones on disk after Cleanup.
func WithKeepWorkDir(keep bool) Option {
	return func(s *Source) {
		s.keepWorkDir = keep
	}
}

// WithContentCloning controls whether booster repositories are cloned
// so their descriptor files can be read. Enabled by default.
func WithContentCloning(enabled bool) Option {
	return func(s *Source) {
		s.cloneContent = enabled
	}
}

// WithRunner replaces the git runner.
func WithRunner(r Runner) Option {
	return func(s *Source) {
		if r != nil {
			s.runner = r
		}
	}
}
