package boosters

// Category is the field set shared by every classification kind.
type Category struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Kind names a classification axis.
type Kind string

// Classification kinds.
const (
	KindMission Kind = "mission"
	KindRuntime Kind = "runtime"
	KindVersion Kind = "version"
)

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}

// Classification is implemented by Mission, Runtime and Version only.
type Classification interface {
	Core() Category
	Kind() Kind
	classification()
}

var (
	_ Classification = (*Mission)(nil)
	_ Classification = (*Runtime)(nil)
	_ Classification = (*Version)(nil)
)

// Mission is the use case a booster demonstrates.
type Mission struct {
	Category  `yaml:",inline"`
	Suggested bool `json:"suggested,omitempty" yaml:"suggested,omitempty"`
}

// Core returns the shared fields.
func (m *Mission) Core() Category { return m.Category }

// Kind returns KindMission.
func (m *Mission) Kind() Kind { return KindMission }

func (m *Mission) classification() {}

// Runtime is the language or framework a booster is built on.
type Runtime struct {
	Category         `yaml:",inline"`
	Icon             *string `json:"icon,omitempty" yaml:"icon,omitempty"`
	PipelinePlatform *string `json:"pipelinePlatform,omitempty" yaml:"pipelinePlatform,omitempty"`
}

// Core returns the shared fields.
func (r *Runtime) Core() Category { return r.Category }

// Kind returns KindRuntime.
func (r *Runtime) Kind() Kind { return KindRuntime }

func (r *Runtime) classification() {}

// Version is a release line of a runtime.
type Version struct {
	Category `yaml:",inline"`
}

// Core returns the shared fields.
func (v *Version) Core() Category { return v.Category }

// Kind returns KindVersion.
func (v *Version) Kind() Kind { return KindVersion }

func (v *Version) classification() {}

// ClassificationID returns the id of c, or "" when c is nil.
func ClassificationID(c Classification) string {
	switch v := c.(type) {
	case *Mission:
		if v == nil {
			return ""
		}
	case *Runtime:
		if v == nil {
			return ""
		}
	case *Version:
		if v == nil {
			return ""
		}
	case nil:
		return ""
	}
	return c.Core().ID
}
