// Package field implements arithmetic over a fixed 128-bit prime field.
//
// All computation is carried out with math/big, so intermediate products
// never overflow regardless of the modulus width. Elements are immutable
// value types: every operation returns a freshly reduced element.
package field

import (
	"math/big"

	"github.com/Tranduy1dol/lumen-stark/num"
)

// ElementByteLen is the length of the canonical byte encoding of an Element.
const ElementByteLen = 16

var (
	// defaultModulus is the prime 1 + 407*2^119.
	defaultModulus = big.NewInt(0).Add(big.NewInt(0).Lsh(big.NewInt(407), 119), big.NewInt(1))

	// defaultGenerator generates the multiplicative group of the default field.
	defaultGenerator, _ = big.NewInt(0).SetString("85408008396924667383611388730472331217", 10)

	// maxRootOrder is the largest power-of-two order of a root of unity
	// in the default field, 2^119.
	maxRootOrder = big.NewInt(0).Lsh(big.NewInt(1), 119)
)

// Field is a prime field defined by its modulus.
// The modulus is assumed to be prime; this is not checked.
type Field struct {
	modulus *big.Int
}

// New creates a new Field with the given modulus.
//
// Panics when modulus is not positive.
func New(modulus *big.Int) Field {
	if modulus.Sign() <= 0 {
		panic("modulus must be positive")
	}
	return Field{modulus: big.NewInt(0).Set(modulus)}
}

// Default returns the field with modulus 1 + 407*2^119,
// the only field with a known generator.
func Default() Field {
	return Field{modulus: defaultModulus}
}

// Modulus returns the modulus of the field.
func (f Field) Modulus() *big.Int {
	return big.NewInt(0).Set(f.modulus)
}

// Equal returns true if the two fields have the same modulus.
func (f Field) Equal(other Field) bool {
	return f.modulus.Cmp(other.modulus) == 0
}

// NewElement creates a new Element with the given value, reduced modulo the field.
func (f Field) NewElement(value *big.Int) Element {
	return Element{value: big.NewInt(0).Mod(value, f.modulus), field: f}
}

// NewElementFromUint64 creates a new Element with the given value, reduced modulo the field.
func (f Field) NewElementFromUint64(value uint64) Element {
	return f.NewElement(big.NewInt(0).SetUint64(value))
}

// Zero returns the additive identity of the field.
func (f Field) Zero() Element {
	return Element{value: big.NewInt(0), field: f}
}

// One returns the multiplicative identity of the field.
func (f Field) One() Element {
	return Element{value: big.NewInt(1), field: f}
}

// Generator returns the canonical generator of the multiplicative group.
//
// Panics when the field is not the default field, for which alone
// the generator is known.
func (f Field) Generator() Element {
	if f.modulus.Cmp(defaultModulus) != 0 {
		panic("generator is only known for the field 1+407*2^119")
	}
	return Element{value: big.NewInt(0).Set(defaultGenerator), field: f}
}

// PrimitiveNthRoot returns a primitive n-th root of unity.
// It repeatedly squares the generator, halving its order from 2^119 down to n.
//
// Panics when the field is not the default field, or when n is not
// a power of two in [1, 2^119].
func (f Field) PrimitiveNthRoot(n *big.Int) Element {
	if f.modulus.Cmp(defaultModulus) != 0 {
		panic("primitive n-th root is only known for the field 1+407*2^119")
	}
	if !num.BigIsPowerOfTwo(n) || n.Cmp(maxRootOrder) > 0 {
		panic("n must be a power of two not exceeding 2^119")
	}

	root := f.Generator()
	order := big.NewInt(0).Set(maxRootOrder)
	for order.Cmp(n) != 0 {
		root = root.Mul(root)
		order.Rsh(order, 1)
	}

	return root
}

// Sample maps a byte string to a field element by interpreting it as a
// big-endian unsigned integer and reducing modulo the field.
// This is how Fiat-Shamir challenge bytes become field elements.
func (f Field) Sample(data []byte) Element {
	return f.NewElement(big.NewInt(0).SetBytes(data))
}

// FromBytes decodes the canonical little-endian encoding produced by
// [Element.Bytes].
func (f Field) FromBytes(data []byte) Element {
	buf := make([]byte, len(data))
	for i, b := range data {
		buf[len(data)-1-i] = b
	}
	return f.NewElement(big.NewInt(0).SetBytes(buf))
}
