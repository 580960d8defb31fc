// Package reconciler groups booster records fetched from the development,
// staging and production refs by booster id.
//
// Development is the baseline: a group exists only for ids present in
// development. Staging and production records are reduced against their
// development record, so each group carries the development record plus
// the minimal overrides of the other environments. Records without a
// development counterpart are orphans; they are reported and dropped.
package reconciler

import (
	"context"

	"github.com/fabric8-launcher/boosterconv/pkg/boosters"
	"github.com/fabric8-launcher/boosterconv/pkg/errors"
	"github.com/fabric8-launcher/boosterconv/pkg/logging"
)

// Reconciler merges per-environment booster sets.
type Reconciler interface {
	// Reconcile groups the records of sets by id. Input records are not
	// modified.
	Reconcile(ctx context.Context, sets Sets) (*Result, error)
}

// Sets holds the records read from each environment. Staging and
// Production may be empty.
type Sets struct {
	Development []*boosters.Booster
	Staging     []*boosters.Booster
	Production  []*boosters.Booster
}

// Get returns the set for env.
func (s Sets) Get(env boosters.Environment) []*boosters.Booster {
	switch env {
	case boosters.Development:
		return s.Development
	case boosters.Staging:
		return s.Staging
	case boosters.Production:
		return s.Production
	default:
		return nil
	}
}

type reconciler struct {
	reduce   ReduceFunc
	onOrphan OrphanFunc
}

// New creates a new Reconciler with options.
func New(opts ...Option) (Reconciler, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &reconciler{
		reduce:   options.reduce,
		onOrphan: options.onOrphan,
	}, nil
}

// Reconcile seeds one group per development record, then attaches the
// reduced staging and production overrides.
func (r *reconciler) Reconcile(ctx context.Context, sets Sets) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := logging.FromContext(ctx)
	result := newResult()

	for _, b := range sets.Development {
		if b == nil {
			continue
		}
		result.Counts[boosters.Development]++
		result.seed(b)
	}

	for _, env := range []boosters.Environment{boosters.Staging, boosters.Production} {
		for _, b := range sets.Get(env) {
			if b == nil {
				continue
			}
			result.Counts[env]++

			group, ok := result.Group(b.ID)
			if !ok {
				orphan := errors.NewOrphanError(env.String(), b.ID)
				logger.Warn().
					Str("environment", env.String()).
					Str("booster_id", b.ID).
					Msg(orphan.Error())
				result.Orphans = append(result.Orphans, orphan)
				r.onOrphan(orphan)
				continue
			}

			group.set(env, r.reduce(b.Clone(), group.Development))
		}

		logger.Debug().
			Str("environment", env.String()).
			Int("count", result.Counts[env]).
			Msg("Reconciled environment")
	}

	return result, nil
}
