package curve

import "fmt"

// NotOnCurveError reports a coordinate pair that does not satisfy the curve
// equation y² = x³ + ax + b.
type NotOnCurveError struct {
	X, Y string // rendered coordinates of the rejected point
}

func (e *NotOnCurveError) Error() string {
	return fmt.Sprintf("(%s, %s) is not on the curve", e.X, e.Y)
}

// DifferentCurveError reports an addition of two points whose curve
// parameters differ.
type DifferentCurveError struct {
	P, Q string // rendered operands
}

func (e *DifferentCurveError) Error() string {
	return fmt.Sprintf("points %s and %s are not on the same curve", e.P, e.Q)
}
