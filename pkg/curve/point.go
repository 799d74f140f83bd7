// Package curve implements the group law of points on a short Weierstrass
// curve y² = x³ + ax + b. The arithmetic is generic over the coordinate type,
// so the same group law serves integer demonstration curves and curves over a
// prime field.
package curve

import "fmt"

// Coordinate is the capability set a coordinate type must provide: total
// field-like arithmetic, equality, and an additive-identity test.
// field.Element satisfies it for curves over a prime field; Int satisfies it
// for integer demonstration curves.
type Coordinate[T any] interface {
	Add(T) (T, error)
	Sub(T) (T, error)
	Mul(T) (T, error)
	Div(T) (T, error)
	Equal(T) bool
	IsZero() bool
}

// Point is an immutable point on the curve y² = x³ + ax + b: either a finite
// (x, y) pair or the point at infinity, the identity of the addition group.
// Adding points produces new values; a Point is safe to share across
// goroutines.
type Point[T Coordinate[T]] struct {
	x, y     T
	a, b     T
	infinite bool
}

// NewPoint constructs the finite point (x, y) on the curve with parameters
// a and b. It returns a NotOnCurveError when the coordinates do not satisfy
// the curve equation.
func NewPoint[T Coordinate[T]](x, y, a, b T) (Point[T], error) {
	lhs, err := y.Mul(y)
	if err != nil {
		return Point[T]{}, err
	}
	rhs, err := evalCurve(x, a, b)
	if err != nil {
		return Point[T]{}, err
	}
	if !lhs.Equal(rhs) {
		return Point[T]{}, &NotOnCurveError{
			X: fmt.Sprint(x), Y: fmt.Sprint(y),
		}
	}
	return Point[T]{x: x, y: y, a: a, b: b}, nil
}

// Infinity returns the identity point of the curve (a, b). It carries no
// coordinates and is never checked against the curve equation.
func Infinity[T Coordinate[T]](a, b T) Point[T] {
	return Point[T]{a: a, b: b, infinite: true}
}

// evalCurve computes x³ + a·x + b.
func evalCurve[T Coordinate[T]](x, a, b T) (T, error) {
	var zero T
	x2, err := x.Mul(x)
	if err != nil {
		return zero, err
	}
	x3, err := x2.Mul(x)
	if err != nil {
		return zero, err
	}
	ax, err := a.Mul(x)
	if err != nil {
		return zero, err
	}
	sum, err := x3.Add(ax)
	if err != nil {
		return zero, err
	}
	return sum.Add(b)
}

// X returns the x coordinate. Only meaningful for a finite point.
func (p Point[T]) X() T { return p.x }

// Y returns the y coordinate. Only meaningful for a finite point.
func (p Point[T]) Y() T { return p.y }

// IsInfinity reports whether the point is the identity of the group.
func (p Point[T]) IsInfinity() bool { return p.infinite }

// Equal reports whether two points are the same point on the same curve:
// both at infinity with matching parameters, or both finite with matching
// coordinates and parameters.
func (p Point[T]) Equal(q Point[T]) bool {
	if !p.a.Equal(q.a) || !p.b.Equal(q.b) {
		return false
	}
	if p.infinite || q.infinite {
		return p.infinite && q.infinite
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

// String renders Point(<x>, <y>)_<a>_<b>, or Point(Infinity)_<a>_<b> for the
// identity.
func (p Point[T]) String() string {
	if p.infinite {
		return fmt.Sprintf("Point(Infinity)_%v_%v", p.a, p.b)
	}
	return fmt.Sprintf("Point(%v, %v)_%v_%v", p.x, p.y, p.a, p.b)
}

// Add combines two points under the group law. It returns a
// DifferentCurveError when the operands' curve parameters differ.
func (p Point[T]) Add(q Point[T]) (Point[T], error) {
	var none Point[T]
	if !p.a.Equal(q.a) || !p.b.Equal(q.b) {
		return none, &DifferentCurveError{P: p.String(), Q: q.String()}
	}

	// The identity is neutral on either side.
	if p.infinite {
		return q, nil
	}
	if q.infinite {
		return p, nil
	}

	// A vertical line meets the curve's third point at infinity. This is
	// either two distinct points mirrored across the x axis, or a doubling
	// whose tangent is vertical (y = 0).
	if p.x.Equal(q.x) && (!p.y.Equal(q.y) || p.y.IsZero()) {
		return Infinity(p.a, p.b), nil
	}

	var slope T
	var err error
	if p.x.Equal(q.x) {
		// Same point with nonzero y: tangent slope (3x² + a) / 2y.
		slope, err = p.tangentSlope()
	} else {
		// Distinct points: chord slope (y₂ - y₁) / (x₂ - x₁).
		slope, err = p.chordSlope(q)
	}
	if err != nil {
		return none, err
	}

	// x₃ = s² - x₁ - x₂ and y₃ = s·(x₁ - x₃) - y₁ cover both the chord and
	// the tangent case, since doubling has x₂ = x₁.
	s2, err := slope.Mul(slope)
	if err != nil {
		return none, err
	}
	x3, err := s2.Sub(p.x)
	if err != nil {
		return none, err
	}
	x3, err = x3.Sub(q.x)
	if err != nil {
		return none, err
	}
	run, err := p.x.Sub(x3)
	if err != nil {
		return none, err
	}
	rise, err := slope.Mul(run)
	if err != nil {
		return none, err
	}
	y3, err := rise.Sub(p.y)
	if err != nil {
		return none, err
	}

	// Constructing through NewPoint re-establishes the on-curve invariant.
	return NewPoint(x3, y3, p.a, p.b)
}

func (p Point[T]) tangentSlope() (T, error) {
	var zero T
	x2, err := p.x.Mul(p.x)
	if err != nil {
		return zero, err
	}
	// 3x² and 2y by repeated addition, staying inside T's arithmetic.
	num, err := x2.Add(x2)
	if err != nil {
		return zero, err
	}
	if num, err = num.Add(x2); err != nil {
		return zero, err
	}
	if num, err = num.Add(p.a); err != nil {
		return zero, err
	}
	den, err := p.y.Add(p.y)
	if err != nil {
		return zero, err
	}
	return num.Div(den)
}

func (p Point[T]) chordSlope(q Point[T]) (T, error) {
	var zero T
	num, err := q.y.Sub(p.y)
	if err != nil {
		return zero, err
	}
	den, err := q.x.Sub(p.x)
	if err != nil {
		return zero, err
	}
	return num.Div(den)
}
