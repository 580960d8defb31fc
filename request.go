package boosterconv

import (
	"fmt"

	"github.com/fabric8-launcher/boosterconv/pkg/boosters"
	"github.com/fabric8-launcher/boosterconv/pkg/constants"
	"github.com/fabric8-launcher/boosterconv/pkg/errors"
)

// Request names the destination and the refs to convert. An empty
// staging or production ref skips that environment.
type Request struct {
	Dest           string
	DevelopmentRef string
	StagingRef     string
	ProductionRef  string
}

// Ref returns the ref requested for env.
func (r Request) Ref(env boosters.Environment) string {
	switch env {
	case boosters.Development:
		return r.DevelopmentRef
	case boosters.Staging:
		return r.StagingRef
	case boosters.Production:
		return r.ProductionRef
	default:
		return ""
	}
}

// Environments lists the environments with a ref, development first.
func (r Request) Environments() []boosters.Environment {
	var envs []boosters.Environment
	for _, env := range boosters.Environments() {
		if r.Ref(env) != "" {
			envs = append(envs, env)
		}
	}
	return envs
}

// validate fills defaults and rejects requests mode cannot serve.
func (r Request) validate(mode boosters.Mode) (Request, error) {
	if r.Dest == "" {
		return r, &errors.ValidationError{Field: "dest", Message: "destination directory is required"}
	}
	if r.DevelopmentRef == "" {
		r.DevelopmentRef = constants.DefaultDevelopmentRef
	}
	if mode == boosters.ModeCatalog && (r.StagingRef != "" || r.ProductionRef != "") {
		return r, errors.NewConfigError("request",
			fmt.Sprintf("%s mode converts the development ref only; staging and production refs are not supported", mode), nil)
	}
	return r, nil
}
