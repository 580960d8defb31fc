package boosterconv

import (
	"fmt"
	"strings"
	"time"

	"github.com/fabric8-launcher/boosterconv/pkg/boosters"
	"github.com/fabric8-launcher/boosterconv/pkg/errors"
)

// Result describes a conversion run.
type Result struct {
	Mode boosters.Mode `json:"mode" yaml:"mode"`
	Dest string        `json:"dest" yaml:"dest"`

	// Refs and Counts are keyed by environment name.
	Refs   map[boosters.Environment]string `json:"refs" yaml:"refs"`
	Counts map[boosters.Environment]int    `json:"counts" yaml:"counts"`

	Files       []WrittenFile         `json:"files" yaml:"files"`
	Orphans     []*errors.OrphanError `json:"orphans,omitempty" yaml:"orphans,omitempty"`
	Warnings    []string              `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Overwritten int                   `json:"overwritten" yaml:"overwritten"`

	StartTime time.Time     `json:"startTime" yaml:"startTime"`
	EndTime   time.Time     `json:"endTime" yaml:"endTime"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
}

// WrittenFile is one written document.
type WrittenFile struct {
	ID           string                           `json:"id" yaml:"id"`
	Path         string                           `json:"path" yaml:"path"`
	Environments []boosters.Environment           `json:"environments,omitempty" yaml:"environments,omitempty"`
	Overrides    map[boosters.Environment][]string `json:"overrides,omitempty" yaml:"overrides,omitempty"`
}

func newResult(mode boosters.Mode, req Request) *Result {
	r := &Result{
		Mode:      mode,
		Dest:      req.Dest,
		Refs:      make(map[boosters.Environment]string),
		Counts:    make(map[boosters.Environment]int),
		StartTime: time.Now(),
	}
	for _, env := range req.Environments() {
		r.Refs[env] = req.Ref(env)
	}
	return r
}

func (r *Result) finish() {
	r.EndTime = time.Now()
	r.Duration = r.EndTime.Sub(r.StartTime)
}

func (r *Result) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Boosters returns the number of booster documents written.
func (r *Result) Boosters() int {
	n := 0
	for _, f := range r.Files {
		if f.ID != "" {
			n++
		}
	}
	return n
}

// Summary returns a short human readable description of the run.
func (r *Result) Summary() string {
	var parts []string
	for _, env := range boosters.Environments() {
		if _, ok := r.Refs[env]; ok {
			parts = append(parts, fmt.Sprintf("%s=%d", env, r.Counts[env]))
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Converted %d boosters into %s (%s mode)", r.Boosters(), r.Dest, r.Mode)
	if len(parts) > 0 {
		fmt.Fprintf(&b, "; read %s", strings.Join(parts, ", "))
	}
	if len(r.Orphans) > 0 {
		fmt.Fprintf(&b, "; %d orphans dropped", len(r.Orphans))
	}
	if len(r.Warnings) > 0 {
		fmt.Fprintf(&b, "; %d warnings", len(r.Warnings))
	}
	return b.String()
}
