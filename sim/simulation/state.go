package simulation

import "github.com/sarchlab/eventkit/sim/naming"

// A Statistic is an accumulator that the simulation clears between warm-up and
// measurement and resets between replications.
type Statistic interface {
	naming.Named

	// Mean returns the current estimate without changing the accumulator.
	Mean() float64

	// Clear discards the accumulated observations but keeps the last recorded
	// value, so a step function continues across the cut.
	Clear()

	// Reset clears the accumulator and forgets the last recorded value.
	Reset()
}

// A StateHolder owns model state that must return to empty at the start of
// every replication, such as the entities waiting in a queue or the busy units
// of a resource.
type StateHolder interface {
	naming.Named

	// ResetState discards the held state.
	ResetState()
}
