package catalogs

// options configures Load.
type options struct {
	root string
}

// Option is a function that configures catalog loading.
type Option func(*options)

// WithRoot sets the on-disk directory the catalog filesystem was opened
// from. Booster content paths resolve against it; without a root they
// are relative to the catalog.
func WithRoot(dir string) Option {
	return func(o *options) {
		o.root = dir
	}
}
