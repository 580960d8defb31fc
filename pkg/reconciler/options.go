package reconciler

import (
	"github.com/fabric8-launcher/boosterconv/pkg/boosters"
	"github.com/fabric8-launcher/boosterconv/pkg/differ"
	"github.com/fabric8-launcher/boosterconv/pkg/errors"
)

// ReduceFunc reduces candidate against baseline, see differ.Reduce.
type ReduceFunc func(candidate, baseline *boosters.Booster) *boosters.Booster

// OrphanFunc is called for every rejected orphan record.
type OrphanFunc func(err *errors.OrphanError)

// Options configures a reconciler.
type options struct {
	reduce   ReduceFunc
	onOrphan OrphanFunc
}

func defaultOptions() *options {
	return &options{
		reduce:   differ.Reduce,
		onOrphan: func(*errors.OrphanError) {},
	}
}

// Option is a function that configures a Reconciler.
type Option func(*options) error

func (options *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

// newOptions returns reconciler options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithReducer replaces the delta reducer.
func WithReducer(reduce ReduceFunc) Option {
	return func(o *options) error {
		if reduce == nil {
			return &errors.ValidationError{
				Field:   "reducer",
				Message: "cannot be nil",
			}
		}
		o.reduce = reduce
		return nil
	}
}

// WithOrphanHandler registers a callback for orphan records, in addition
// to the warning that is always logged.
func WithOrphanHandler(fn OrphanFunc) Option {
	return func(o *options) error {
		if fn == nil {
			return &errors.ValidationError{
				Field:   "orphan handler",
				Message: "cannot be nil",
			}
		}
		o.onOrphan = fn
		return nil
	}
}
