package txgraph

import (
	"fmt"
	"sort"
)

// ClosedSet is a balanced pair (K, P): as many key images as public
// keys, with every ring of K contained in P. No edge leaving K×P can be
// a true spend, so applying the set removes each member of P from every
// ring outside K.
type ClosedSet struct {
	KeyImages []int // sorted
	PubKeys   []int // sorted
}

// NewClosedSet builds a ClosedSet from the two member sets, sorting the
// slices for deterministic output. It returns ErrInconsistent when the
// sides are unbalanced.
func NewClosedSet(keyImages, pubKeys []int) (ClosedSet, error) {
	if len(keyImages) != len(pubKeys) {
		return ClosedSet{}, fmt.Errorf("%w: closed set with %d key images but %d public keys",
			ErrInconsistent, len(keyImages), len(pubKeys))
	}
	kis := append([]int(nil), keyImages...)
	pks := append([]int(nil), pubKeys...)
	sort.Ints(kis)
	sort.Ints(pks)
	return ClosedSet{KeyImages: kis, PubKeys: pks}, nil
}

// Size returns the number of key images (equal to the number of public
// keys) in the set.
func (cs ClosedSet) Size() int { return len(cs.KeyImages) }

// Apply removes every public key of the set from every ring outside the
// set's key images, walking the pk→ki upper-bound map. Reports whether
// any ring actually shrank.
func (cs ClosedSet) Apply(g *Graph) bool {
	inK := make(map[int]struct{}, len(cs.KeyImages))
	for _, ki := range cs.KeyImages {
		inK[ki] = struct{}{}
	}
	reduced := false
	for _, pk := range cs.PubKeys {
		for _, ki := range g.PkToKi[pk] {
			if _, ok := inK[ki]; ok {
				continue
			}
			if g.Rings[ki].Remove(pk) {
				reduced = true
			}
		}
	}
	return reduced
}
