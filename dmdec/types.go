package dmdec

import (
	"errors"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/ringtrace/txgraph"
)

// ErrMatrixNil is returned if a nil matrix pointer is passed to Decompose.
var ErrMatrixNil = errors.New("dmdec: matrix is nil")

// Decomposition is the result of the DM fine decomposition.
type Decomposition struct {
	// RowMates maps each public key to its matched key image, or
	// txgraph.None when unmatched.
	RowMates []int

	// ColMates is the inverse: key image to matched public key.
	ColMates []int

	// MatchedRows is the size of the maximum matching.
	MatchedRows int

	// ReachablePK and ReachableKI mark the vertices reached by the
	// alternating BFS from unmatched public keys. The unreachable
	// vertices on both sides form the perfectly matched square block.
	ReachablePK *bitset.BitSet
	ReachableKI *bitset.BitSet

	// Blocks are the minimal closed sets of the square block, in SCC
	// emission order.
	Blocks []txgraph.ClosedSet
}

// UnreachablePKs returns the number of public keys outside the reach of
// the alternating BFS, one side of the square block.
func (d *Decomposition) UnreachablePKs() int {
	return len(d.RowMates) - int(d.ReachablePK.Count())
}

// UnreachableKIs returns the number of key images outside the reach of
// the alternating BFS, the other side of the square block.
func (d *Decomposition) UnreachableKIs() int {
	return len(d.ColMates) - int(d.ReachableKI.Count())
}

// Singletons counts the blocks of size one.
func (d *Decomposition) Singletons() int {
	n := 0
	for _, b := range d.Blocks {
		if b.Size() == 1 {
			n++
		}
	}
	return n
}

// SizeHistogram maps block size to the number of blocks of that size.
func (d *Decomposition) SizeHistogram() map[int]int {
	h := make(map[int]int)
	for _, b := range d.Blocks {
		h[b.Size()]++
	}
	return h
}
