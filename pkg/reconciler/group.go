package reconciler

import "github.com/fabric8-launcher/boosterconv/pkg/boosters"

// Group is the reconciled view of one booster id. Development is always
// set; Staging and Production hold reduced overrides when present.
type Group struct {
	ID          string
	Development *boosters.Booster
	Staging     *boosters.Booster
	Production  *boosters.Booster
}

// Get returns the record stored for env.
func (g *Group) Get(env boosters.Environment) *boosters.Booster {
	switch env {
	case boosters.Development:
		return g.Development
	case boosters.Staging:
		return g.Staging
	case boosters.Production:
		return g.Production
	default:
		return nil
	}
}

// Environments lists the populated slots, development first.
func (g *Group) Environments() []boosters.Environment {
	var envs []boosters.Environment
	for _, env := range boosters.Environments() {
		if g.Get(env) != nil {
			envs = append(envs, env)
		}
	}
	return envs
}

func (g *Group) set(env boosters.Environment, b *boosters.Booster) {
	switch env {
	case boosters.Development:
		g.Development = b
	case boosters.Staging:
		g.Staging = b
	case boosters.Production:
		g.Production = b
	}
}
