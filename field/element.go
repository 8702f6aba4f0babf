package field

import (
	"fmt"
	"math/big"
	"slices"

	"github.com/fxamacker/cbor/v2"

	"github.com/Tranduy1dol/lumen-stark/num"
)

// Element is an element of a prime field, with value in [0, modulus).
// Elements are immutable; arithmetic returns new elements.
type Element struct {
	value *big.Int
	field Field
}

// Value returns the value of the element.
func (e Element) Value() *big.Int {
	return big.NewInt(0).Set(e.value)
}

// Field returns the field the element belongs to.
func (e Element) Field() Field {
	return e.field
}

// Add returns e + other.
func (e Element) Add(other Element) Element {
	v := big.NewInt(0).Add(e.value, other.value)
	if v.Cmp(e.field.modulus) >= 0 {
		v.Sub(v, e.field.modulus)
	}
	return Element{value: v, field: e.field}
}

// Sub returns e - other.
func (e Element) Sub(other Element) Element {
	v := big.NewInt(0).Sub(e.value, other.value)
	if v.Sign() < 0 {
		v.Add(v, e.field.modulus)
	}
	return Element{value: v, field: e.field}
}

// Mul returns e * other.
func (e Element) Mul(other Element) Element {
	v := big.NewInt(0).Mul(e.value, other.value)
	v.Mod(v, e.field.modulus)
	return Element{value: v, field: e.field}
}

// Neg returns -e.
func (e Element) Neg() Element {
	if e.value.Sign() == 0 {
		return Element{value: big.NewInt(0), field: e.field}
	}
	return Element{value: big.NewInt(0).Sub(e.field.modulus, e.value), field: e.field}
}

// Inv returns the multiplicative inverse of e, computed with the
// extended Euclidean algorithm.
//
// Panics when e is zero.
func (e Element) Inv() Element {
	if e.value.Sign() == 0 {
		panic("inverse of zero field element")
	}

	gcd, s, _ := num.ExtendedGCD(e.value, e.field.modulus)
	if gcd.Cmp(big.NewInt(1)) != 0 {
		panic("inverse does not exist")
	}

	// The Bezout coefficient may be negative; Mod brings it back into [0, p).
	s.Mod(s, e.field.modulus)
	return Element{value: s, field: e.field}
}

// Div returns e / other.
//
// Panics when other is zero.
func (e Element) Div(other Element) Element {
	if other.value.Sign() == 0 {
		panic("division by zero field element")
	}
	return e.Mul(other.Inv())
}

// Pow returns e raised to the given exponent using binary exponentiation.
// An exponent of zero returns one, including for a zero base.
//
// Panics when the exponent is negative.
func (e Element) Pow(exponent *big.Int) Element {
	if exponent.Sign() < 0 {
		panic("negative exponent")
	}

	acc := e.field.One()
	for i := exponent.BitLen() - 1; i >= 0; i-- {
		acc = acc.Mul(acc)
		if exponent.Bit(i) == 1 {
			acc = acc.Mul(e)
		}
	}

	return acc
}

// PowUint64 returns e raised to the given exponent.
func (e Element) PowUint64(exponent uint64) Element {
	return e.Pow(big.NewInt(0).SetUint64(exponent))
}

// Equal returns true if the two elements have the same value.
func (e Element) Equal(other Element) bool {
	return e.value.Cmp(other.value) == 0
}

// IsZero returns true if the element is the additive identity.
func (e Element) IsZero() bool {
	return e.value.Sign() == 0
}

// IsOne returns true if the element is the multiplicative identity.
func (e Element) IsOne() bool {
	return e.value.Cmp(big.NewInt(1)) == 0
}

// String returns the decimal representation of the element's value.
func (e Element) String() string {
	return e.value.String()
}

// Bytes returns the canonical encoding of the element:
// a fixed-width 16-byte little-endian unsigned integer.
// This is the hash-input format for commitments and transcripts.
func (e Element) Bytes() []byte {
	buf := make([]byte, ElementByteLen)
	e.value.FillBytes(buf)
	slices.Reverse(buf)
	return buf
}

// elementWire is the transcript wire form of an Element.
type elementWire struct {
	Value   []byte `cbor:"1,keyasint"`
	Modulus []byte `cbor:"2,keyasint"`
}

// MarshalCBOR implements the [cbor.Marshaler] interface.
func (e Element) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(elementWire{
		Value:   e.value.Bytes(),
		Modulus: e.field.modulus.Bytes(),
	})
}

// UnmarshalCBOR implements the [cbor.Unmarshaler] interface.
func (e *Element) UnmarshalCBOR(data []byte) error {
	var wire elementWire
	if err := cbor.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("field element decode: %w", err)
	}

	modulus := big.NewInt(0).SetBytes(wire.Modulus)
	if modulus.Sign() <= 0 {
		return fmt.Errorf("field element decode: modulus must be positive")
	}
	value := big.NewInt(0).SetBytes(wire.Value)
	if value.Cmp(modulus) >= 0 {
		return fmt.Errorf("field element decode: value exceeds modulus")
	}

	e.value = value
	e.field = Field{modulus: modulus}
	return nil
}
