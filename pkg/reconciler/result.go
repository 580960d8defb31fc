package reconciler

import (
	"fmt"

	"github.com/fabric8-launcher/boosterconv/pkg/boosters"
	"github.com/fabric8-launcher/boosterconv/pkg/errors"
)

// Result holds reconciled groups in development enumeration order.
type Result struct {
	groups  []*Group
	index   map[string]int
	Orphans []*errors.OrphanError

	// Counts records read per environment, orphans included.
	Counts map[boosters.Environment]int
}

func newResult() *Result {
	return &Result{
		index:  make(map[string]int),
		Counts: make(map[boosters.Environment]int),
	}
}

// Groups returns the groups in order.
func (r *Result) Groups() []*Group {
	return r.groups
}

// Group returns the group for id.
func (r *Result) Group(id string) (*Group, bool) {
	i, ok := r.index[id]
	if !ok {
		return nil, false
	}
	return r.groups[i], true
}

// Len returns the number of groups.
func (r *Result) Len() int {
	return len(r.groups)
}

// Summary returns a one-line description of the result.
func (r *Result) Summary() string {
	return fmt.Sprintf("%d boosters (development=%d, staging=%d, production=%d), %d orphans",
		len(r.groups),
		r.Counts[boosters.Development],
		r.Counts[boosters.Staging],
		r.Counts[boosters.Production],
		len(r.Orphans))
}

func (r *Result) seed(b *boosters.Booster) {
	if i, ok := r.index[b.ID]; ok {
		r.groups[i] = &Group{ID: b.ID, Development: b}
		return
	}
	r.index[b.ID] = len(r.groups)
	r.groups = append(r.groups, &Group{ID: b.ID, Development: b})
}
