package markers

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Mapping says which trial label supplies each marker role. A Mapping is never modified after
// construction; With returns a new one.
type Mapping struct {
	labels map[string]string
}

// DefaultMapping maps every role to the label of the same name.
func DefaultMapping() Mapping {
	return Mapping{labels: lo.SliceToMap(Canonical, func(name string) (string, string) {
		return name, name
	})}
}

// With returns a copy of m where each role in overrides is read from the given label instead.
// Unknown roles, empty labels and two roles reading the same label are rejected.
func (m Mapping) With(overrides map[string]string) (Mapping, error) {
	labels := lo.Assign(m.labels)
	for role, label := range overrides {
		if !IsCanonical(role) {
			return Mapping{}, errors.Errorf("cannot remap unknown marker %q", role)
		}
		if label == "" {
			return Mapping{}, errors.Errorf("empty label for marker %q", role)
		}
		labels[role] = label
	}
	if dups := lo.FindDuplicates(lo.Values(labels)); len(dups) > 0 {
		sort.Strings(dups)
		return Mapping{}, errors.Errorf("labels %v are mapped to more than one marker", dups)
	}
	return Mapping{labels: labels}, nil
}

// Label returns the trial label for role. Roles that were never mapped read from their own name.
func (m Mapping) Label(role string) string {
	if label, ok := m.labels[role]; ok {
		return label
	}
	return role
}

// Overrides returns the roles whose label differs from their own name.
func (m Mapping) Overrides() map[string]string {
	return lo.PickBy(m.labels, func(role, label string) bool {
		return role != label
	})
}
