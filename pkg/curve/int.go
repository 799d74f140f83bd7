package curve

import (
	"fmt"
	"strconv"

	"github.com/smallyu/go-ecc/pkg/field"
)

// Int is an exact-integer coordinate for demonstration curves, the kind used
// to explore the group law before moving to a prime field. Its division is
// exact: a chord or tangent slope that is not an integer has no meaning on an
// integer curve, so a non-exact quotient is an error, never a truncation.
type Int struct {
	v int64
}

// NewInt wraps v as a coordinate value.
func NewInt(v int64) Int { return Int{v: v} }

// Int64 returns the underlying integer.
func (i Int) Int64() int64 { return i.v }

// Add returns i + o.
func (i Int) Add(o Int) (Int, error) { return Int{v: i.v + o.v}, nil }

// Sub returns i - o.
func (i Int) Sub(o Int) (Int, error) { return Int{v: i.v - o.v}, nil }

// Mul returns i * o.
func (i Int) Mul(o Int) (Int, error) { return Int{v: i.v * o.v}, nil }

// Div returns i / o when the quotient is exact.
func (i Int) Div(o Int) (Int, error) {
	if o.v == 0 {
		return Int{}, &field.DomainError{Reason: "division by zero"}
	}
	if i.v%o.v != 0 {
		return Int{}, &field.DomainError{
			Reason: fmt.Sprintf("%d is not divisible by %d", i.v, o.v),
		}
	}
	return Int{v: i.v / o.v}, nil
}

// Equal reports whether both values match.
func (i Int) Equal(o Int) bool { return i.v == o.v }

// IsZero reports whether the value is zero.
func (i Int) IsZero() bool { return i.v == 0 }

func (i Int) String() string { return strconv.FormatInt(i.v, 10) }
