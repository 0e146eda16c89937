package matching_test

import (
	"testing"

	"github.com/katalvlaran/ringtrace/matching"
	"github.com/katalvlaran/ringtrace/txgraph"
)

// ringEdges builds n rings of the given size over a shared public key
// pool, the shape of a real transaction graph: ring i references keys
// i..i+size-1 modulo the pool.
func ringEdges(n, size int) *txgraph.EdgeList {
	el := &txgraph.EdgeList{MaxKI: n - 1, MaxPK: n - 1}
	for ki := 0; ki < n; ki++ {
		for j := 0; j < size; j++ {
			el.KIs = append(el.KIs, ki)
			el.PKs = append(el.PKs, (ki+j)%n)
		}
	}
	return el
}

func BenchmarkMaximum(b *testing.B) {
	for _, bc := range []struct {
		name    string
		n, size int
	}{
		{"10k_ring4", 10_000, 4},
		{"100k_ring4", 100_000, 4},
		{"10k_ring11", 10_000, 11},
	} {
		m := txgraph.NewMatrix(ringEdges(bc.n, bc.size))
		b.Run(bc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				matching.Maximum(m)
			}
		})
	}
}
