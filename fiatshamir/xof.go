// Package fiatshamir implements a Fiat-Shamir transcript: an append-only
// log of proof objects with prover-side and verifier-side challenge
// derivation, plus a sampler that expands challenges into uniform values.
package fiatshamir

import (
	"io"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// XOF is an extendable-output hash function: absorb via Write,
// squeeze an arbitrary number of output bytes via Read.
type XOF interface {
	io.Writer
	io.Reader
}

// NewShake256 returns a SHAKE256 XOF, the default transcript hash.
func NewShake256() XOF {
	return sha3.NewShake256()
}

// NewBlake2b returns a BLAKE2b XOF.
func NewBlake2b() XOF {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
	if err != nil {
		panic(err)
	}
	return xof
}
