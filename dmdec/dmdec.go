package dmdec

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/ringtrace/matching"
	"github.com/katalvlaran/ringtrace/scc"
	"github.com/katalvlaran/ringtrace/txgraph"
)

// Decompose runs the DM fine decomposition on the sparse transaction
// matrix.
//
// Steps: maximum matching over the whole graph; alternating BFS from
// the unmatched public keys (forward edges through the CSR view,
// backward edges through the matching); the unreachable remainder is a
// perfectly matched square block; SCCs of the matching-induced digraph
// on its public keys are the minimal closed sets.
func Decompose(m *txgraph.Matrix) (*Decomposition, error) {
	if m == nil {
		return nil, ErrMatrixNil
	}

	rowMates := matching.Maximum(m)
	colMates := matching.ColMates(rowMates, m.NumCols)

	d := &Decomposition{
		RowMates:    rowMates,
		ColMates:    colMates,
		ReachablePK: bitset.New(uint(m.NumRows)),
		ReachableKI: bitset.New(uint(m.NumCols)),
	}

	// Seed the BFS queue with every unmatched public key.
	queue := make([]int, 0, m.NumRows)
	for pk, mate := range rowMates {
		if mate == txgraph.None {
			d.ReachablePK.Set(uint(pk))
			queue = append(queue, pk)
		} else {
			d.MatchedRows++
		}
	}

	// Alternating BFS: a forward edge pk→ki through the graph, then the
	// matching edge ki→mate(ki). A reached matched public key is
	// enqueued to continue the alternation.
	for qhead := 0; qhead < len(queue); qhead++ {
		pk := queue[qhead]
		for _, ki := range m.RowCols(pk) {
			if d.ReachableKI.Test(uint(ki)) {
				continue
			}
			d.ReachableKI.Set(uint(ki))

			// Every reachable key image is matched: an unmatched one
			// would have ended an augmenting path, contradicting the
			// maximality of the matching.
			mate := colMates[ki]
			if mate == txgraph.None {
				return nil, fmt.Errorf("%w: key image %d reachable but unmatched under a maximum matching",
					txgraph.ErrInconsistent, ki)
			}
			if d.ReachablePK.Test(uint(mate)) {
				continue
			}
			d.ReachablePK.Set(uint(mate))
			queue = append(queue, mate)
		}
	}

	if d.UnreachablePKs() != d.UnreachableKIs() {
		return nil, fmt.Errorf("%w: square block is not square (%d public keys, %d key images)",
			txgraph.ErrInconsistent, d.UnreachablePKs(), d.UnreachableKIs())
	}

	// Compress the unreachable public keys into dense local indices for
	// the SCC pass.
	local := make([]int, m.NumRows)
	var unreach []int
	for pk := 0; pk < m.NumRows; pk++ {
		if d.ReachablePK.Test(uint(pk)) {
			local[pk] = txgraph.None
			continue
		}
		local[pk] = len(unreach)
		unreach = append(unreach, pk)
	}

	// Matching-induced digraph on the block: mate(ki) → pk for every
	// unreachable neighbor ki of pk not matched to pk itself.
	adj := make([][]int, len(unreach))
	for lp, pk := range unreach {
		for _, ki := range m.RowCols(pk) {
			if d.ReachableKI.Test(uint(ki)) {
				continue
			}
			if mate := colMates[ki]; mate != pk {
				adj[local[mate]] = append(adj[local[mate]], lp)
			}
		}
	}

	for _, comp := range scc.Strong(adj) {
		pks := make([]int, 0, len(comp))
		kis := make([]int, 0, len(comp))
		for _, lp := range comp {
			pk := unreach[lp]
			pks = append(pks, pk)
			kis = append(kis, rowMates[pk])
		}
		cs, err := txgraph.NewClosedSet(kis, pks)
		if err != nil {
			return nil, err
		}
		d.Blocks = append(d.Blocks, cs)
	}
	return d, nil
}

// Apply runs every block's reduction against g and reports whether any
// ring shrank.
func (d *Decomposition) Apply(g *txgraph.Graph) bool {
	reduced := false
	for _, b := range d.Blocks {
		if b.Apply(g) {
			reduced = true
		}
	}
	return reduced
}
