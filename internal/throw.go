package internal

import "github.com/pkg/errors"

// Threading errors up and down the recursion and the tangent walks would add a
// lot of noise for conditions that only occur when an invariant is broken.
// Instead, we panic with a *GeometryError, and the public API recovers to
// convert it to an error.

// A geometric invariant was violated: malformed tangent indices, a tangent
// search that failed to converge, or a base case given too many points.
type GeometryError struct {
	cause error
}

func (e *GeometryError) Error() string {
	return e.cause.Error()
}

func (e *GeometryError) Unwrap() error {
	return e.cause
}

// Panic with a *GeometryError.
func fatalf(format string, args ...interface{}) {
	panic(&GeometryError{cause: errors.Errorf(format, args...)})
}

func HandleGeometryPanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(*GeometryError); ok {
			return geometryError
		}
		panic(r)
	}
	return nil
}
