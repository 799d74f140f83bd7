// Package field implements arithmetic in a finite field of prime order, the
// coordinate fields of elliptic curves such as secp256k1. All operations are
// pure: an Element is never mutated after construction, so values are safe to
// share across goroutines.
package field

import (
	"fmt"
	"math/big"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Element is an immutable integer modulo a prime. The invariant
// 0 <= value < modulus holds for every constructed Element.
type Element struct {
	value   *big.Int
	modulus *big.Int
}

// New constructs an element of the field of the given modulus. It returns a
// DomainError when the modulus is below 2 or the value is outside
// [0, modulus).
//
// The modulus must be prime for Div and negative-exponent Pow to be correct:
// both rely on Fermat's little theorem, which a composite modulus silently
// breaks. Primality is the caller's obligation and is not verified here, as a
// primality proof at construction time would be prohibitive for
// cryptographic-size moduli.
func New(value, modulus *big.Int) (Element, error) {
	if modulus == nil || modulus.Cmp(two) < 0 {
		return Element{}, &DomainError{
			Reason: fmt.Sprintf("modulus %v must be at least 2", modulus),
		}
	}
	if value == nil || value.Sign() < 0 || value.Cmp(modulus) >= 0 {
		return Element{}, &DomainError{
			Reason: fmt.Sprintf("num %v not in field range 0 to %v",
				value, new(big.Int).Sub(modulus, one)),
		}
	}
	return Element{
		value:   new(big.Int).Set(value),
		modulus: new(big.Int).Set(modulus),
	}, nil
}

// Value returns a copy of the element's integer representative.
func (e Element) Value() *big.Int {
	return new(big.Int).Set(e.value)
}

// Modulus returns a copy of the field's modulus.
func (e Element) Modulus() *big.Int {
	return new(big.Int).Set(e.modulus)
}

// IsZero reports whether the element is the additive identity of the field.
func (e Element) IsZero() bool {
	return e.value.Sign() == 0
}

// Equal reports whether both value and modulus match.
func (e Element) Equal(other Element) bool {
	return e.value.Cmp(other.value) == 0 && e.modulus.Cmp(other.modulus) == 0
}

// String renders the canonical form FieldElement_<modulus>(<value>).
func (e Element) String() string {
	return fmt.Sprintf("FieldElement_%v(%v)", e.modulus, e.value)
}

// Add returns self + other in the field. It returns an
// IncompatibleFieldError when the operands belong to different fields.
func (e Element) Add(other Element) (Element, error) {
	if err := e.sameField("add", other); err != nil {
		return Element{}, err
	}
	sum := new(big.Int).Add(e.value, other.value)
	sum.Mod(sum, e.modulus)
	return Element{value: sum, modulus: e.modulus}, nil
}

// Sub returns self - other in the field. The difference is computed as
// (self + modulus - other) mod modulus, so no negative intermediate is ever
// represented.
func (e Element) Sub(other Element) (Element, error) {
	if err := e.sameField("subtract", other); err != nil {
		return Element{}, err
	}
	diff := new(big.Int).Add(e.value, e.modulus)
	diff.Sub(diff, other.value)
	diff.Mod(diff, e.modulus)
	return Element{value: diff, modulus: e.modulus}, nil
}

// Mul returns self * other in the field.
func (e Element) Mul(other Element) (Element, error) {
	if err := e.sameField("multiply", other); err != nil {
		return Element{}, err
	}
	prod := new(big.Int).Mul(e.value, other.value)
	prod.Mod(prod, e.modulus)
	return Element{value: prod, modulus: e.modulus}, nil
}

// Pow returns self raised to exp, which may be negative. By Fermat's little
// theorem a^(p-1) = 1 for nonzero a, so a negative exponent is first reduced
// to its non-negative residue modulo p-1; the exponentiation itself is
// big.Int's modular repeated squaring, never a full power followed by a
// reduction. A nil exponent and a negative exponent of the zero element are
// DomainErrors, since neither has a defined result.
func (e Element) Pow(exp *big.Int) (Element, error) {
	if exp == nil {
		return Element{}, &DomainError{Reason: "nil exponent"}
	}
	n := exp
	if exp.Sign() < 0 {
		if e.value.Sign() == 0 {
			return Element{}, &DomainError{
				Reason: "zero cannot be raised to a negative exponent",
			}
		}
		// a^k = a^(k mod p-1); big.Int.Mod yields the residue in [0, p-2].
		n = new(big.Int).Mod(exp, new(big.Int).Sub(e.modulus, one))
	}
	r := new(big.Int).Exp(e.value, n, e.modulus)
	return Element{value: r, modulus: e.modulus}, nil
}

// Div returns self / other, computing the inverse of other as other^(p-2)
// (Fermat's little theorem). Dividing by the zero element is a DomainError.
func (e Element) Div(other Element) (Element, error) {
	if err := e.sameField("divide", other); err != nil {
		return Element{}, err
	}
	if other.value.Sign() == 0 {
		return Element{}, &DomainError{
			Reason: "division by the zero element",
		}
	}
	inv, err := other.Pow(new(big.Int).Sub(e.modulus, two))
	if err != nil {
		return Element{}, err
	}
	return e.Mul(inv)
}

func (e Element) sameField(op string, other Element) error {
	if e.modulus.Cmp(other.modulus) != 0 {
		return &IncompatibleFieldError{
			Op:       op,
			ModulusA: new(big.Int).Set(e.modulus),
			ModulusB: new(big.Int).Set(other.modulus),
		}
	}
	return nil
}
