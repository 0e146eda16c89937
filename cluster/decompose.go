package cluster

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/ringtrace/matching"
	"github.com/katalvlaran/ringtrace/scc"
	"github.com/katalvlaran/ringtrace/txgraph"
)

// decompose splits a balanced cluster (K, P) into its minimal closed
// sets.
//
// The induced bipartite subgraph is re-indexed into a small matrix and
// perfectly matched. A directed graph on P then connects each public
// key to the mates of its ring's other key images; any alternative
// perfect matching is a rotation along a cycle of that graph, so its
// strongly connected components are exactly the minimal closed sets.
func decompose(g *txgraph.Graph, kiSet, pkSet map[int]struct{}) ([]txgraph.ClosedSet, error) {
	if len(kiSet) != len(pkSet) {
		return nil, fmt.Errorf("%w: decompose called with %d key images but %d public keys",
			txgraph.ErrInconsistent, len(kiSet), len(pkSet))
	}

	// Dense local indices, ascending for deterministic output.
	kis := make([]int, 0, len(kiSet))
	for ki := range kiSet {
		kis = append(kis, ki)
	}
	sort.Ints(kis)
	pks := make([]int, 0, len(pkSet))
	for pk := range pkSet {
		pks = append(pks, pk)
	}
	sort.Ints(pks)

	pkLocal := make(map[int]int, len(pks))
	for i, pk := range pks {
		pkLocal[pk] = i
	}

	// Induced subgraph as a local edge list: columns are cluster key
	// images, rows are cluster public keys.
	el := &txgraph.EdgeList{MaxKI: len(kis) - 1, MaxPK: len(pks) - 1}
	for c, ki := range kis {
		for pk := range g.Rings[ki] {
			r, ok := pkLocal[pk]
			if !ok {
				return nil, fmt.Errorf("%w: ring of key image %d leaves the cluster cover (public key %d)",
					txgraph.ErrInconsistent, ki, pk)
			}
			el.KIs = append(el.KIs, c)
			el.PKs = append(el.PKs, r)
		}
	}

	m := txgraph.NewMatrix(el)
	rowMates := matching.Maximum(m)
	for r, c := range rowMates {
		if c == txgraph.None {
			return nil, fmt.Errorf("%w: closed set admits no perfect matching (public key %d unmatched)",
				txgraph.ErrInconsistent, pks[r])
		}
	}
	colMates := matching.ColMates(rowMates, m.NumCols)

	// Directed graph on local public keys: r -> mate(c) for every
	// neighbor column c not matched to r itself.
	adj := make([][]int, len(pks))
	for r := range pks {
		for _, c := range m.RowCols(r) {
			if mate := colMates[c]; mate != r {
				adj[r] = append(adj[r], mate)
			}
		}
	}

	comps := scc.Strong(adj)
	out := make([]txgraph.ClosedSet, 0, len(comps))
	for _, comp := range comps {
		compPKs := make([]int, 0, len(comp))
		compKIs := make([]int, 0, len(comp))
		for _, r := range comp {
			compPKs = append(compPKs, pks[r])
			compKIs = append(compKIs, kis[rowMates[r]])
		}
		cs, err := txgraph.NewClosedSet(compKIs, compPKs)
		if err != nil {
			return nil, err
		}
		out = append(out, cs)
	}
	return out, nil
}
