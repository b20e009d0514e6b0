// Package queueing provides the waiting line and the counted resource that
// most service models are built from. Both keep a time-weighted statistic of
// their occupancy and are emptied by the simulation between replications.
package queueing

import (
	"github.com/sarchlab/eventkit/sim/simulation"
	"github.com/sarchlab/eventkit/sim/stats"
)

// Simulation is what queues and resources need from their simulation.
type Simulation interface {
	stats.Registrar
	RegisterStateHolder(holder simulation.StateHolder)
}
