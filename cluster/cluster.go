package cluster

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/ringtrace/txgraph"
)

// Run executes the clustering algorithm on g, mutating its rings in
// place, and returns the distinct minimal closed sets it discovered.
//
// Outer loop (pp. 11 of Yu et al., FC 2019): scan key images in
// ascending order; grow a cluster from every unresolved multi-member
// ring; whenever the cluster balances (|K| = |P|), decompose it into
// minimal closed sets and strip their public keys from outside rings.
// A pass that reduces any outside ring schedules another pass; the loop
// stops at the first pass with no reduction.
func Run(g *txgraph.Graph, opts Options) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts.normalize()

	numKI := g.NumKI()
	inClosedSet := bitset.New(uint(numKI))
	for ki := 0; ki < numKI; ki++ {
		if len(g.Rings[ki]) == 1 {
			inClosedSet.Set(uint(ki))
		}
	}

	res := &Result{}
	seen := make(map[string]struct{})

	for changed := true; changed; {
		changed = false
		res.Passes++
		clustersFound := 0

		for ki := 0; ki < numKI; ki++ {
			if len(g.Rings[ki]) == 1 || inClosedSet.Test(uint(ki)) {
				continue
			}
			kiSet, pkSet := formCluster(g, ki, inClosedSet)
			if len(kiSet) != len(pkSet) {
				continue
			}
			clustersFound++
			opts.OnCluster(clustersFound, ki, len(pkSet))

			minimal, err := decompose(g, kiSet, pkSet)
			if err != nil {
				return nil, err
			}
			for member := range kiSet {
				inClosedSet.Set(uint(member))
			}
			for _, cs := range minimal {
				if key := memberKey(cs); !dup(seen, key) {
					res.ClosedSets = append(res.ClosedSets, cs)
				}
				if cs.Apply(g) {
					changed = true
				}
			}
		}

		// Recompute the resolved mask from scratch: size-one rings are
		// resolved, everything else goes back into the candidate pool.
		res.Traceable = 0
		inClosedSet.ClearAll()
		for ki := 0; ki < numKI; ki++ {
			if len(g.Rings[ki]) == 1 {
				inClosedSet.Set(uint(ki))
				res.Traceable++
			}
		}
		opts.OnPass(PassStats{Pass: res.Passes, Clusters: clustersFound, Traceable: res.Traceable})
	}
	return res, nil
}

// formCluster grows a candidate cluster from seed. Starting with the
// seed's ring, it repeatedly adsorbs any unresolved key image whose
// ring adds at most one public key beyond the current cover, until no
// such key image remains.
func formCluster(g *txgraph.Graph, seed int, inClosedSet *bitset.BitSet) (map[int]struct{}, map[int]struct{}) {
	kiSet := map[int]struct{}{seed: {}}
	pkSet := make(map[int]struct{}, len(g.Rings[seed]))
	for pk := range g.Rings[seed] {
		pkSet[pk] = struct{}{}
	}

	for again := true; again; {
		again = false

		candidates := make(map[int]struct{})
		for pk := range pkSet {
			for _, ki := range g.PkToKi[pk] {
				if _, ok := kiSet[ki]; ok {
					continue
				}
				if inClosedSet.Test(uint(ki)) {
					continue
				}
				candidates[ki] = struct{}{}
			}
		}

		for ki := range candidates {
			var delta []int
			for pk := range g.Rings[ki] {
				if _, ok := pkSet[pk]; !ok {
					delta = append(delta, pk)
					if len(delta) > 1 {
						break
					}
				}
			}
			if len(delta) <= 1 {
				for _, pk := range delta {
					pkSet[pk] = struct{}{}
				}
				kiSet[ki] = struct{}{}
				again = true
			}
		}
	}
	return kiSet, pkSet
}

// memberKey produces the dedup key for a closed set: its sorted key
// image list in decimal.
func memberKey(cs txgraph.ClosedSet) string {
	var b strings.Builder
	for i, ki := range cs.KeyImages {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(ki))
	}
	return b.String()
}

func dup(seen map[string]struct{}, key string) bool {
	if _, ok := seen[key]; ok {
		return true
	}
	seen[key] = struct{}{}
	return false
}
