package field_test

import (
	"math/big"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/Tranduy1dol/lumen-stark/field"
)

var testField = field.Default()

func TestFieldConstants(t *testing.T) {
	t.Run("Modulus", func(t *testing.T) {
		modulus, ok := big.NewInt(0).SetString("270497897142230380135924736767050121217", 10)
		assert.True(t, ok)
		assert.Equal(t, modulus, testField.Modulus())
	})

	t.Run("Generator", func(t *testing.T) {
		generator, ok := big.NewInt(0).SetString("85408008396924667383611388730472331217", 10)
		assert.True(t, ok)
		assert.Equal(t, generator, testField.Generator().Value())

		// The generator has order 2^119.
		order := big.NewInt(0).Lsh(big.NewInt(1), 119)
		assert.True(t, testField.Generator().Pow(order).IsOne())
	})

	t.Run("UnknownField", func(t *testing.T) {
		f := field.New(big.NewInt(17))
		assert.Panics(t, func() { f.Generator() })
		assert.Panics(t, func() { f.PrimitiveNthRoot(big.NewInt(4)) })
	})

	t.Run("NonPositiveModulus", func(t *testing.T) {
		assert.Panics(t, func() { field.New(big.NewInt(0)) })
		assert.Panics(t, func() { field.New(big.NewInt(-5)) })
	})
}

func TestPrimitiveNthRoot(t *testing.T) {
	t.Run("Order", func(t *testing.T) {
		for _, logN := range []uint{0, 1, 4, 10} {
			n := big.NewInt(0).Lsh(big.NewInt(1), logN)
			root := testField.PrimitiveNthRoot(n)

			assert.True(t, root.Pow(n).IsOne())
			if logN > 0 {
				half := big.NewInt(0).Rsh(n, 1)
				assert.False(t, root.Pow(half).IsOne())
			}
		}
	})

	t.Run("MaxOrder", func(t *testing.T) {
		n := big.NewInt(0).Lsh(big.NewInt(1), 119)
		root := testField.PrimitiveNthRoot(n)
		assert.Equal(t, testField.Generator(), root)
	})

	t.Run("InvalidOrder", func(t *testing.T) {
		assert.Panics(t, func() { testField.PrimitiveNthRoot(big.NewInt(3)) })
		assert.Panics(t, func() { testField.PrimitiveNthRoot(big.NewInt(0)) })

		tooBig := big.NewInt(0).Lsh(big.NewInt(1), 120)
		assert.Panics(t, func() { testField.PrimitiveNthRoot(tooBig) })
	})
}

func TestElementOps(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("a + (-a) = 0", prop.ForAll(
		func(a uint64) bool {
			x := testField.NewElementFromUint64(a)
			return x.Add(x.Neg()).IsZero()
		},
		gen.UInt64(),
	))

	properties.Property("a * a^-1 = 1 for nonzero a", prop.ForAll(
		func(a uint64) bool {
			x := testField.NewElementFromUint64(a)
			return x.Mul(x.Inv()).IsOne()
		},
		gen.UInt64Range(1, 1<<63),
	))

	properties.Property("a / b * b = a", prop.ForAll(
		func(a, b uint64) bool {
			x := testField.NewElementFromUint64(a)
			y := testField.NewElementFromUint64(b)
			return x.Div(y).Mul(y).Equal(x)
		},
		gen.UInt64(),
		gen.UInt64Range(1, 1<<63),
	))

	properties.Property("addition commutes and associates", prop.ForAll(
		func(a, b, c uint64) bool {
			x := testField.NewElementFromUint64(a)
			y := testField.NewElementFromUint64(b)
			z := testField.NewElementFromUint64(c)
			return x.Add(y).Equal(y.Add(x)) && x.Add(y).Add(z).Equal(x.Add(y.Add(z)))
		},
		gen.UInt64(),
		gen.UInt64(),
		gen.UInt64(),
	))

	properties.Property("multiplication commutes and associates", prop.ForAll(
		func(a, b, c uint64) bool {
			x := testField.NewElementFromUint64(a)
			y := testField.NewElementFromUint64(b)
			z := testField.NewElementFromUint64(c)
			return x.Mul(y).Equal(y.Mul(x)) && x.Mul(y).Mul(z).Equal(x.Mul(y.Mul(z)))
		},
		gen.UInt64(),
		gen.UInt64(),
		gen.UInt64(),
	))

	properties.Property("a^(m+n) = a^m * a^n", prop.ForAll(
		func(a, m, n uint64) bool {
			x := testField.NewElementFromUint64(a)
			sum := big.NewInt(0).Add(
				big.NewInt(0).SetUint64(m),
				big.NewInt(0).SetUint64(n),
			)
			return x.Pow(sum).Equal(x.PowUint64(m).Mul(x.PowUint64(n)))
		},
		gen.UInt64(),
		gen.UInt64Range(0, 1<<16),
		gen.UInt64Range(0, 1<<16),
	))

	properties.Property("(a - b) + b = a", prop.ForAll(
		func(a, b uint64) bool {
			x := testField.NewElementFromUint64(a)
			y := testField.NewElementFromUint64(b)
			return x.Sub(y).Add(y).Equal(x)
		},
		gen.UInt64(),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

func TestElementEdgeCases(t *testing.T) {
	t.Run("ZeroInverse", func(t *testing.T) {
		assert.Panics(t, func() { testField.Zero().Inv() })
	})

	t.Run("DivisionByZero", func(t *testing.T) {
		assert.Panics(t, func() { testField.One().Div(testField.Zero()) })
	})

	t.Run("NegativeExponent", func(t *testing.T) {
		assert.Panics(t, func() { testField.One().Pow(big.NewInt(-1)) })
	})

	t.Run("ZeroToTheZero", func(t *testing.T) {
		assert.True(t, testField.Zero().Pow(big.NewInt(0)).IsOne())
	})

	t.Run("NegateZero", func(t *testing.T) {
		assert.True(t, testField.Zero().Neg().IsZero())
	})

	t.Run("Reduction", func(t *testing.T) {
		beyond := big.NewInt(0).Add(testField.Modulus(), big.NewInt(42))
		assert.Equal(t, testField.NewElementFromUint64(42), testField.NewElement(beyond))
	})
}

func TestSample(t *testing.T) {
	t.Run("BigEndianReduction", func(t *testing.T) {
		beyond := big.NewInt(0).Add(testField.Modulus(), big.NewInt(5))
		assert.Equal(t, testField.NewElementFromUint64(5), testField.Sample(beyond.Bytes()))
	})

	t.Run("SmallValue", func(t *testing.T) {
		assert.Equal(t, testField.NewElementFromUint64(0x0102), testField.Sample([]byte{0x01, 0x02}))
	})

	t.Run("Empty", func(t *testing.T) {
		assert.True(t, testField.Sample(nil).IsZero())
	})
}

func TestBytes(t *testing.T) {
	t.Run("LittleEndianFixedWidth", func(t *testing.T) {
		buf := testField.NewElementFromUint64(0x0102).Bytes()
		assert.Len(t, buf, field.ElementByteLen)
		assert.Equal(t, byte(0x02), buf[0])
		assert.Equal(t, byte(0x01), buf[1])
		for i := 2; i < field.ElementByteLen; i++ {
			assert.Equal(t, byte(0), buf[i])
		}
	})

	t.Run("FullWidth", func(t *testing.T) {
		maxValue := big.NewInt(0).Sub(testField.Modulus(), big.NewInt(1))
		assert.Len(t, testField.NewElement(maxValue).Bytes(), field.ElementByteLen)
	})

	t.Run("FromBytesRoundTrip", func(t *testing.T) {
		x := testField.Generator()
		assert.True(t, x.Equal(testField.FromBytes(x.Bytes())))
	})
}

func TestElementCBOR(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		x := testField.Generator()

		data, err := cbor.Marshal(x)
		assert.NoError(t, err)

		var y field.Element
		assert.NoError(t, cbor.Unmarshal(data, &y))
		assert.True(t, x.Equal(y))
		assert.True(t, x.Field().Equal(y.Field()))
	})

	t.Run("RejectsOutOfRangeValue", func(t *testing.T) {
		data, err := cbor.Marshal(map[int][]byte{
			1: {0x20}, // value 32
			2: {0x11}, // modulus 17
		})
		assert.NoError(t, err)

		var decoded field.Element
		assert.Error(t, cbor.Unmarshal(data, &decoded))
	})

	t.Run("RejectsZeroModulus", func(t *testing.T) {
		data, err := cbor.Marshal(map[int][]byte{1: {0x01}, 2: {}})
		assert.NoError(t, err)

		var decoded field.Element
		assert.Error(t, cbor.Unmarshal(data, &decoded))
	})
}
