package boosters

import (
	"fmt"
	"strings"

	"github.com/fabric8-launcher/boosterconv/pkg/errors"
)

// Environment names one of the refs boosters are fetched from.
type Environment string

// Environments in baseline-first order.
const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Environments returns all environments, development first.
func Environments() []Environment {
	return []Environment{Development, Staging, Production}
}

// String returns the environment name.
func (e Environment) String() string {
	return string(e)
}

// IsBaseline reports whether e is the environment other environments are
// reduced against.
func (e Environment) IsBaseline() bool {
	return e == Development
}

// Mode selects how a catalog is converted.
type Mode string

const (
	// ModeEnvironments merges development, staging and production into
	// projected booster documents laid out mission first.
	ModeEnvironments Mode = "environments"
	// ModeCatalog writes the development descriptors as-is, laid out
	// runtime first, plus a metadata.yaml category index.
	ModeCatalog Mode = "catalog"
)

// Modes returns every supported mode.
func Modes() []Mode {
	return []Mode{ModeEnvironments, ModeCatalog}
}

// String returns the mode name.
func (m Mode) String() string {
	return string(m)
}

// IsValid reports whether m is a supported mode.
func (m Mode) IsValid() bool {
	return m == ModeEnvironments || m == ModeCatalog
}

// ParseMode parses a mode name case-insensitively. An empty name selects
// ModeEnvironments.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return ModeEnvironments, nil
	}
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", &errors.ValidationError{
			Field:   "mode",
			Value:   s,
			Message: fmt.Sprintf("must be one of %v", Modes()),
		}
	}
	return m, nil
}
