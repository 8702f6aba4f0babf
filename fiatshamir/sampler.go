package fiatshamir

import (
	"io"
	"math"
	"math/big"

	"github.com/Tranduy1dol/lumen-stark/field"
)

// bufSize is the read buffer size of Sampler.
const bufSize = 8192

// Sampler expands a Fiat-Shamir challenge seed into uniform values:
// raw bytes, bounded integers, query indices, and field elements.
type Sampler struct {
	xof XOF

	buf [bufSize]byte
	ptr int
}

// NewSampler creates a new Sampler seeded with a challenge.
// A nil XOF constructor selects [NewShake256].
func NewSampler(seed []byte, newXOF func() XOF) *Sampler {
	if newXOF == nil {
		newXOF = NewShake256
	}

	xof := newXOF()
	if _, err := xof.Write(seed); err != nil {
		panic(err)
	}

	return &Sampler{
		xof: xof,
		ptr: bufSize,
	}
}

// Read implements the [io.Reader] interface.
func (s *Sampler) Read(p []byte) (n int, err error) {
	return s.xof.Read(p)
}

// Sample uniformly samples a random uint64.
func (s *Sampler) Sample() uint64 {
	if s.ptr == bufSize {
		if _, err := io.ReadFull(s.xof, s.buf[:]); err != nil {
			panic(err)
		}
		s.ptr = 0
	}

	var res uint64
	res |= uint64(s.buf[s.ptr+0])
	res |= uint64(s.buf[s.ptr+1]) << 8
	res |= uint64(s.buf[s.ptr+2]) << 16
	res |= uint64(s.buf[s.ptr+3]) << 24
	res |= uint64(s.buf[s.ptr+4]) << 32
	res |= uint64(s.buf[s.ptr+5]) << 40
	res |= uint64(s.buf[s.ptr+6]) << 48
	res |= uint64(s.buf[s.ptr+7]) << 56
	s.ptr += 8

	return res
}

// SampleN uniformly samples a random integer in [0, N)
// by rejection sampling.
func (s *Sampler) SampleN(N uint64) uint64 {
	bound := math.MaxUint64 - (math.MaxUint64 % N)
	for {
		res := s.Sample()
		if res < bound {
			return res % N
		}
	}
}

// SampleIndices uniformly samples count query indices in [0, bound).
func (s *Sampler) SampleIndices(bound uint64, count int) []uint64 {
	indices := make([]uint64, count)
	for i := range indices {
		indices[i] = s.SampleN(bound)
	}
	return indices
}

// SampleElement uniformly samples an element of the given field
// by rejection sampling over the modulus bit width.
func (s *Sampler) SampleElement(f field.Field) field.Element {
	modulus := f.Modulus()

	k := (modulus.BitLen() + 7) / 8
	b := uint(modulus.BitLen() % 8)
	if b == 0 {
		b = 8
	}
	msbMask := byte((1 << b) - 1)

	buf := make([]byte, k)
	v := big.NewInt(0)
	for {
		if _, err := io.ReadFull(s, buf); err != nil {
			panic(err)
		}
		buf[0] &= msbMask

		v.SetBytes(buf)
		if v.Cmp(modulus) < 0 {
			return f.NewElement(v)
		}
	}
}
