package cullgo

import (
	"fmt"
)

// ErrDegeneratePlane indicates that plane extraction produced one or
// more planes with a near-zero-length raw normal, typically from a
// malformed or singular view-projection matrix. The culling engine
// skips degenerate planes (they never reject anything), so this error
// is diagnostic: the accompanying Frustum remains usable.
type ErrDegeneratePlane struct {
	// Planes holds the indices of the degenerate planes
	// (PlaneLeft..PlaneFar).
	Planes []int
}

func (e *ErrDegeneratePlane) Error() string {
	return fmt.Sprintf("degenerate frustum plane(s) %v: near-zero normal, check the view-projection matrix", e.Planes)
}
