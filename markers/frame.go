package markers

import (
	"github.com/golang/geo/r3"

	"go.viam.com/cgm/spatialmath"
)

// Frame holds the marker positions of one capture frame keyed by role. A role that is missing
// from the map was not seen in that frame.
type Frame map[string]r3.Vector

// Point returns the position of role, or a NaN vector when the marker is absent.
func (f Frame) Point(role string) r3.Vector {
	if p, ok := f[role]; ok {
		return p
	}
	return spatialmath.NaNVector()
}

// Has reports whether role was seen in the frame.
func (f Frame) Has(role string) bool {
	_, ok := f[role]
	return ok
}

// Validate checks that every present marker is a finite point.
func (f Frame) Validate() error {
	for role, p := range f {
		if !spatialmath.IsFiniteVector(p) {
			return spatialmath.NewInvalidInputErrorf(role, "non-finite coordinates %v", p)
		}
	}
	return nil
}
