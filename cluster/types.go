package cluster

import (
	"errors"

	"github.com/katalvlaran/ringtrace/txgraph"
)

// ErrGraphNil is returned if a nil graph pointer is passed to Run.
var ErrGraphNil = errors.New("cluster: graph is nil")

// PassStats summarizes one pass of the outer clustering loop.
type PassStats struct {
	Pass      int // 1-based pass number
	Clusters  int // balanced clusters found in this pass
	Traceable int // size-one rings after the pass
}

// Options configures a clustering run.
type Options struct {
	// OnCluster is called for each balanced cluster, with the running
	// cluster count in the current pass, the seed key image, and the
	// cluster's public key count.
	OnCluster func(count, seed, size int)

	// OnPass is called after each pass of the outer loop.
	OnPass func(PassStats)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnCluster: func(int, int, int) {},
		OnPass:    func(PassStats) {},
	}
}

func (o *Options) normalize() {
	if o.OnCluster == nil {
		o.OnCluster = func(int, int, int) {}
	}
	if o.OnPass == nil {
		o.OnPass = func(PassStats) {}
	}
}

// Result reports the outcome of a clustering run.
type Result struct {
	// Passes is the number of outer-loop passes executed.
	Passes int

	// Traceable is the number of size-one rings at the fixpoint.
	Traceable int

	// ClosedSets holds every distinct minimal closed set discovered,
	// in discovery order. Distinctness is by key image membership.
	ClosedSets []txgraph.ClosedSet
}

// Singletons counts the closed sets of size one.
func (r *Result) Singletons() int {
	n := 0
	for _, cs := range r.ClosedSets {
		if cs.Size() == 1 {
			n++
		}
	}
	return n
}

// PubKeys counts the distinct public keys across all closed sets.
func (r *Result) PubKeys() int {
	seen := make(map[int]struct{})
	for _, cs := range r.ClosedSets {
		for _, pk := range cs.PubKeys {
			seen[pk] = struct{}{}
		}
	}
	return len(seen)
}

// NonSingletonPubKeys counts the distinct public keys that belong to at
// least one closed set of size greater than one. Public keys pinned by
// a singleton set are excluded even when they also appear elsewhere.
func (r *Result) NonSingletonPubKeys() int {
	pinned := make(map[int]struct{})
	for _, cs := range r.ClosedSets {
		if cs.Size() == 1 {
			pinned[cs.PubKeys[0]] = struct{}{}
		}
	}
	seen := make(map[int]struct{})
	for _, cs := range r.ClosedSets {
		if cs.Size() == 1 {
			continue
		}
		for _, pk := range cs.PubKeys {
			if _, ok := pinned[pk]; !ok {
				seen[pk] = struct{}{}
			}
		}
	}
	return len(seen)
}

// SizeHistogram maps closed set size to the number of sets of that size.
func (r *Result) SizeHistogram() map[int]int {
	h := make(map[int]int)
	for _, cs := range r.ClosedSets {
		h[cs.Size()]++
	}
	return h
}
