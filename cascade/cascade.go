package cascade

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/ringtrace/txgraph"
)

// Run executes the cascade attack on g, mutating its rings in place.
//
// Each sweep scans key images in ascending order. For every untraced
// size-one ring, its sole public key is removed from every other ring
// that ever listed it, and the key image is marked traced. A ring
// shrunk to size one earlier in the sweep is consumed later in the same
// sweep, which is what makes the reaction cascade.
//
// The run stops after Options.MaxIterations sweeps, or earlier once a
// sweep leaves the traceable count unchanged (fixpoint).
//
// Complexity: amortized O(E) per sweep; each edge is deleted at most
// once across the whole run.
func Run(g *txgraph.Graph, opts Options) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts.normalize()

	numKI := g.NumKI()
	traced := bitset.New(uint(numKI))
	prevTraceable := g.Traceable()

	res := &Result{Traced: traced, Traceable: prevTraceable}

	for iter := 1; iter <= opts.MaxIterations; iter++ {
		for ki := 0; ki < numKI; ki++ {
			if traced.Test(uint(ki)) {
				continue
			}
			pk, ok := g.Rings[ki].Sole()
			if !ok {
				continue
			}
			for _, kj := range g.PkToKi[pk] {
				if kj != ki {
					g.Rings[kj].Remove(pk)
				}
			}
			traced.Set(uint(ki))
		}

		res.Iterations = iter
		res.Traceable = g.Traceable()
		opts.OnIteration(iter, res.Traceable)

		if res.Traceable == prevTraceable {
			break
		}
		prevTraceable = res.Traceable
	}
	return res, nil
}
