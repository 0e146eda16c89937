package cascade

import (
	"errors"

	"github.com/bits-and-blooms/bitset"
)

// ErrGraphNil is returned if a nil graph pointer is passed to Run.
var ErrGraphNil = errors.New("cascade: graph is nil")

// Options configures a cascade run.
//   - MaxIterations: outer sweep budget. The attack stops earlier as
//     soon as a sweep leaves the traceable count unchanged.
//   - OnIteration: called after each sweep with the 1-based iteration
//     number and the current traceable ring count.
type Options struct {
	MaxIterations int
	OnIteration   func(iteration, traceable int)
}

// DefaultOptions returns the baseline configuration: a single sweep and
// a no-op progress hook. Callers chasing the fixpoint pass a large
// MaxIterations; convergence detection stops the run regardless.
func DefaultOptions() Options {
	return Options{
		MaxIterations: 1,
		OnIteration:   func(int, int) {},
	}
}

func (o *Options) normalize() {
	if o.MaxIterations < 1 {
		o.MaxIterations = 1
	}
	if o.OnIteration == nil {
		o.OnIteration = func(int, int) {}
	}
}

// Result reports the outcome of a cascade run.
type Result struct {
	// Traced marks every key image whose sole ring member was consumed
	// to shrink other rings. Traced(ki) implies the ring has size one.
	Traced *bitset.BitSet

	// Iterations is the number of sweeps actually executed.
	Iterations int

	// Traceable is the number of size-one rings after the final sweep.
	Traceable int
}
