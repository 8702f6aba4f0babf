package fiatshamir

import (
	"fmt"
	"io"
)

// ProofStream is an append-only ordered log of transcript objects with a
// monotonically increasing read cursor.
//
// The prover pushes objects as the protocol advances and derives each
// challenge by hashing the serialization of the entire log so far. The
// verifier reconstructs the stream from bytes, pulls objects in the same
// order, and derives challenges by hashing only the consumed prefix.
// That asymmetry is a security property: a verifier challenge must not
// depend on objects the prover reveals later in the transcript.
type ProofStream[T any] struct {
	objects    []T
	readIndex  int
	serializer Serializer[T]
	newXOF     func() XOF
}

// New creates a new empty ProofStream.
// A nil serializer selects [CBORSerializer]; a nil XOF constructor
// selects [NewShake256].
func New[T any](serializer Serializer[T], newXOF func() XOF) *ProofStream[T] {
	if serializer == nil {
		serializer = CBORSerializer[T]{}
	}
	if newXOF == nil {
		newXOF = NewShake256
	}
	return &ProofStream[T]{
		objects:    make([]T, 0),
		readIndex:  0,
		serializer: serializer,
		newXOF:     newXOF,
	}
}

// Deserialize reconstructs a ProofStream from serialized bytes,
// with the read cursor reset to zero.
//
// The bytes may come from an untrusted prover, so decoding failures are
// returned as errors rather than panics.
func Deserialize[T any](data []byte, serializer Serializer[T], newXOF func() XOF) (*ProofStream[T], error) {
	ps := New(serializer, newXOF)

	objects, err := ps.serializer.Deserialize(data)
	if err != nil {
		return nil, fmt.Errorf("proof stream: %w", err)
	}
	if objects != nil {
		ps.objects = objects
	}

	return ps, nil
}

// Push appends an object to the stream.
func (ps *ProofStream[T]) Push(obj T) {
	ps.objects = append(ps.objects, obj)
}

// Pull returns the next unread object and advances the read cursor.
// The object stays in the stream; consumption is tracked only by the
// cursor, so the verifier can hash the consumed prefix.
//
// Panics when every object has already been pulled.
func (ps *ProofStream[T]) Pull() T {
	if ps.readIndex >= len(ps.objects) {
		panic("proof stream: cannot pull object; transcript exhausted")
	}
	obj := ps.objects[ps.readIndex]
	ps.readIndex++
	return obj
}

// Len returns the number of objects in the stream.
func (ps *ProofStream[T]) Len() int {
	return len(ps.objects)
}

// ReadIndex returns the read cursor position.
func (ps *ProofStream[T]) ReadIndex() int {
	return ps.readIndex
}

// Serialize encodes the full object sequence.
func (ps *ProofStream[T]) Serialize() ([]byte, error) {
	data, err := ps.serializer.Serialize(ps.objects)
	if err != nil {
		return nil, fmt.Errorf("proof stream: %w", err)
	}
	return data, nil
}

// ProverFiatShamir derives a challenge of numBytes bytes by hashing the
// serialization of the entire object sequence.
func (ps *ProofStream[T]) ProverFiatShamir(numBytes int) ([]byte, error) {
	return ps.fiatShamir(ps.objects, numBytes)
}

// VerifierFiatShamir derives a challenge of numBytes bytes by hashing
// only the prefix of objects consumed via Pull so far.
func (ps *ProofStream[T]) VerifierFiatShamir(numBytes int) ([]byte, error) {
	return ps.fiatShamir(ps.objects[:ps.readIndex], numBytes)
}

// fiatShamir hashes the serialization of the given objects with a fresh
// XOF and squeezes numBytes of output.
func (ps *ProofStream[T]) fiatShamir(objects []T, numBytes int) ([]byte, error) {
	data, err := ps.serializer.Serialize(objects)
	if err != nil {
		return nil, fmt.Errorf("proof stream: %w", err)
	}

	xof := ps.newXOF()
	if _, err := xof.Write(data); err != nil {
		return nil, fmt.Errorf("proof stream: %w", err)
	}

	challenge := make([]byte, numBytes)
	if _, err := io.ReadFull(xof, challenge); err != nil {
		return nil, fmt.Errorf("proof stream: %w", err)
	}

	return challenge, nil
}
