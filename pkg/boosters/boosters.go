// Package boosters defines the booster record and the classifications
// (missions, runtimes and versions) that identify a booster variant.
package boosters

import (
	"github.com/fabric8-launcher/boosterconv/internal/utils/ptr"
	"github.com/fabric8-launcher/boosterconv/pkg/document"
)

// Booster is one catalog entry as read from a single environment.
//
// Optional fields use nil for "absent". The Delta Reducer clears fields
// by setting them to nil, so an override record only carries the values
// that differ from its baseline.
type Booster struct {
	ID      string   `json:"id" yaml:"id"`
	Mission *Mission `json:"mission,omitempty" yaml:"mission,omitempty"`
	Runtime *Runtime `json:"runtime,omitempty" yaml:"runtime,omitempty"`
	Version *Version `json:"version,omitempty" yaml:"version,omitempty"`

	GithubRepo               *string `json:"githubRepo,omitempty" yaml:"githubRepo,omitempty"`
	GitRef                   *string `json:"gitRef,omitempty" yaml:"gitRef,omitempty"`
	SupportedDeploymentTypes *string `json:"supportedDeploymentTypes,omitempty" yaml:"supportedDeploymentTypes,omitempty"`
	BuildProfile             *string `json:"buildProfile,omitempty" yaml:"buildProfile,omitempty"`
	BoosterDescriptorPath    *string `json:"boosterDescriptorPath,omitempty" yaml:"boosterDescriptorPath,omitempty"`

	// ContentPath is the on-disk root the descriptor path resolves against.
	ContentPath string `json:"-" yaml:"-"`

	// Metadata holds every descriptor key without a typed field.
	Metadata *document.Map `json:"metadata,omitempty" yaml:"metadata,omitempty"`

	// Data is the complete descriptor as read from the catalog.
	Data *document.Map `json:"-" yaml:"-"`
}

// Name returns metadata.name when it is set.
func (b *Booster) Name() (string, bool) {
	return b.Metadata.GetString("name")
}

// Description returns metadata.description when it is set.
func (b *Booster) Description() (string, bool) {
	return b.Metadata.GetString("description")
}

// Clone returns a deep copy. Classifications are immutable and shared.
func (b *Booster) Clone() *Booster {
	if b == nil {
		return nil
	}
	return &Booster{
		ID:                       b.ID,
		Mission:                  b.Mission,
		Runtime:                  b.Runtime,
		Version:                  b.Version,
		GithubRepo:               ptr.Clone(b.GithubRepo),
		GitRef:                   ptr.Clone(b.GitRef),
		SupportedDeploymentTypes: ptr.Clone(b.SupportedDeploymentTypes),
		BuildProfile:             ptr.Clone(b.BuildProfile),
		BoosterDescriptorPath:    ptr.Clone(b.BoosterDescriptorPath),
		ContentPath:              b.ContentPath,
		Metadata:                 b.Metadata.Clone(),
		Data:                     b.Data.Clone(),
	}
}
