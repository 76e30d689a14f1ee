// Package inject provides injectable implementations of the calculator interfaces for tests.
package inject

import (
	"sync"

	"github.com/golang/geo/r3"

	sm "go.viam.com/cgm/spatialmath"
)

// JointCenterCall is one recorded JointCenter call.
type JointCenterCall struct {
	A, B, C r3.Vector
	Delta   float64
}

// JointCenterFinder is a JointCenterFinder whose behavior can be replaced. Calls are recorded and
// it is safe for concurrent use as long as JointCenterFunc is.
type JointCenterFinder struct {
	sm.JointCenterFinder
	JointCenterFunc func(a, b, c r3.Vector, delta float64) r3.Vector

	mu    sync.Mutex
	calls []JointCenterCall
}

// JointCenter records the call and runs JointCenterFunc, falling back to the wrapped finder and
// then to the closed form.
func (f *JointCenterFinder) JointCenter(a, b, c r3.Vector, delta float64) r3.Vector {
	f.mu.Lock()
	f.calls = append(f.calls, JointCenterCall{A: a, B: b, C: c, Delta: delta})
	f.mu.Unlock()

	if f.JointCenterFunc != nil {
		return f.JointCenterFunc(a, b, c, delta)
	}
	if f.JointCenterFinder != nil {
		return f.JointCenterFinder.JointCenter(a, b, c, delta)
	}
	return sm.FindJointCenter(a, b, c, delta)
}

// Calls returns a copy of the calls seen so far.
func (f *JointCenterFinder) Calls() []JointCenterCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]JointCenterCall, len(f.calls))
	copy(out, f.calls)
	return out
}
