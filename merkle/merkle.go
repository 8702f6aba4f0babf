// Package merkle implements a stateless binary Merkle commitment scheme.
//
// The tree is never materialized: commit, open and verify recompute
// hashes recursively over slices of the leaf layer. Leaves are the
// caller's canonical byte encodings of domain values (for field elements,
// the fixed 16-byte little-endian form), each hashed once with the
// configured hash function.
package merkle

import (
	"bytes"
	"hash"

	"golang.org/x/crypto/blake2b"

	"github.com/Tranduy1dol/lumen-stark/num"
)

// Tree is a stateless Merkle commitment scheme parameterized by a
// collision-resistant hash function.
type Tree struct {
	newHash func() hash.Hash
}

// New creates a new Tree with the given hash constructor.
// A nil constructor selects [DefaultHash].
func New(newHash func() hash.Hash) Tree {
	if newHash == nil {
		newHash = DefaultHash
	}
	return Tree{newHash: newHash}
}

// DefaultHash returns a BLAKE2b-256 hash.
func DefaultHash() hash.Hash {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err)
	}
	return h
}

// hashLeaf hashes one leaf encoding.
func (t Tree) hashLeaf(leaf []byte) []byte {
	h := t.newHash()
	h.Write(leaf)
	return h.Sum(nil)
}

// hashPair hashes the concatenation of two child hashes.
func (t Tree) hashPair(left, right []byte) []byte {
	h := t.newHash()
	h.Write(left)
	h.Write(right)
	return h.Sum(nil)
}

// hashLeaves hashes every leaf encoding into the leaf layer.
//
// Panics when the leaf count is not a power of two.
func (t Tree) hashLeaves(leaves [][]byte) [][]byte {
	if !num.IsPowerOfTwo(len(leaves)) {
		panic("number of leaves must be a power of two")
	}

	hashes := make([][]byte, len(leaves))
	for i, leaf := range leaves {
		hashes[i] = t.hashLeaf(leaf)
	}
	return hashes
}

// commit computes the root of the subtree over the given leaf hashes.
func (t Tree) commit(leafHashes [][]byte) []byte {
	if len(leafHashes) == 1 {
		return leafHashes[0]
	}

	mid := len(leafHashes) / 2
	left := t.commit(leafHashes[:mid])
	right := t.commit(leafHashes[mid:])
	return t.hashPair(left, right)
}

// open computes the authentication path for the given index, the
// sibling subtree roots ordered from leaf level to root level.
func (t Tree) open(index int, leafHashes [][]byte) [][]byte {
	if len(leafHashes) == 1 {
		return nil
	}

	mid := len(leafHashes) / 2
	if index < mid {
		path := t.open(index, leafHashes[:mid])
		return append(path, t.commit(leafHashes[mid:]))
	}
	path := t.open(index-mid, leafHashes[mid:])
	return append(path, t.commit(leafHashes[:mid]))
}

// Commit returns the Merkle root of the given leaf encodings.
//
// Panics when the leaf count is not a power of two.
func (t Tree) Commit(leaves [][]byte) []byte {
	return t.commit(t.hashLeaves(leaves))
}

// Open returns the authentication path for the leaf at the given index:
// the sequence of sibling hashes from leaf to root, of length
// log2(len(leaves)).
//
// Panics when the leaf count is not a power of two or the index is
// out of range.
func (t Tree) Open(index int, leaves [][]byte) [][]byte {
	leafHashes := t.hashLeaves(leaves)
	if index < 0 || index >= len(leafHashes) {
		panic("merkle index out of range")
	}
	return t.open(index, leafHashes)
}

// Verify recomputes the root from a leaf encoding and its authentication
// path, using the index's bit pattern to order siblings at each level,
// and returns true if it matches the given root.
//
// Panics when the index is out of range for the path length.
func (t Tree) Verify(root []byte, index int, leaf []byte, path [][]byte) bool {
	if index < 0 || index >= 1<<len(path) {
		panic("merkle index out of range")
	}

	current := t.hashLeaf(leaf)
	for _, sibling := range path {
		if index%2 == 0 {
			current = t.hashPair(current, sibling)
		} else {
			current = t.hashPair(sibling, current)
		}
		index >>= 1
	}

	return bytes.Equal(current, root)
}
