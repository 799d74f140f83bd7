package field

import (
	"fmt"
	"math/big"
)

// DomainError reports a value outside the field's valid domain: an
// out-of-range element, an invalid modulus, or an inversion of the zero
// element (which has no multiplicative inverse).
type DomainError struct {
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("field domain error: %s", e.Reason)
}

// IncompatibleFieldError reports a binary operation attempted between
// elements of two different fields.
type IncompatibleFieldError struct {
	Op       string   // the attempted operation, e.g. "add"
	ModulusA *big.Int // modulus of the left operand
	ModulusB *big.Int // modulus of the right operand
}

func (e *IncompatibleFieldError) Error() string {
	return fmt.Sprintf("cannot %s two numbers in different fields %v and %v",
		e.Op, e.ModulusA, e.ModulusB)
}
