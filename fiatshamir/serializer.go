package fiatshamir

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Serializer turns a transcript object sequence into bytes and back.
// The encoding must be deterministic and round-trip byte-for-byte,
// since transcript hashes are derived from the serialized form.
type Serializer[T any] interface {
	Serialize(objects []T) ([]byte, error)
	Deserialize(data []byte) ([]T, error)
}

// cborEncMode is the core-deterministic CBOR encoder shared by all
// CBORSerializer instances.
var cborEncMode = func() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// CBORSerializer is the default Serializer, using CBOR in
// core-deterministic encoding mode.
type CBORSerializer[T any] struct{}

// Serialize implements the [Serializer] interface.
func (CBORSerializer[T]) Serialize(objects []T) ([]byte, error) {
	data, err := cborEncMode.Marshal(objects)
	if err != nil {
		return nil, fmt.Errorf("cbor encode: %w", err)
	}
	return data, nil
}

// Deserialize implements the [Serializer] interface.
func (CBORSerializer[T]) Deserialize(data []byte) ([]T, error) {
	var objects []T
	if err := cbor.Unmarshal(data, &objects); err != nil {
		return nil, fmt.Errorf("cbor decode: %w", err)
	}
	return objects, nil
}
