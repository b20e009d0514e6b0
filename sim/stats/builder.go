package stats

import (
	"github.com/sarchlab/eventkit/sim/naming"
	"github.com/sarchlab/eventkit/sim/simulation"
	"github.com/sarchlab/eventkit/sim/timing"
)

// Registrar is the part of a simulation that statistics need: a clock and a
// place to register for clearing and resetting.
type Registrar interface {
	timing.TimeTeller
	RegisterStatistic(stat simulation.Statistic)
}

// Builder creates statistics bound to a simulation.
type Builder struct {
	sim Registrar
}

// MakeBuilder returns a builder with no simulation set.
func MakeBuilder() Builder {
	return Builder{}
}

// WithSimulation sets the simulation the statistics read time from and
// register with.
func (b Builder) WithSimulation(sim Registrar) Builder {
	b.sim = sim
	return b
}

// BuildTimeWeighted creates a time-weighted statistic whose measurement
// period starts now.
func (b Builder) BuildTimeWeighted(name string) *TimeWeighted {
	sim := b.mustHaveSimulation()

	now := sim.Now()
	s := &TimeWeighted{
		NamedBase:  naming.MakeNamedBase(name),
		clock:      sim,
		lastUpdate: now,
		lastClear:  now,
	}

	sim.RegisterStatistic(s)

	return s
}

// BuildDiscrete creates an empty discrete statistic.
func (b Builder) BuildDiscrete(name string) *Discrete {
	sim := b.mustHaveSimulation()

	s := &Discrete{
		NamedBase: naming.MakeNamedBase(name),
	}

	sim.RegisterStatistic(s)

	return s
}

func (b Builder) mustHaveSimulation() Registrar {
	if b.sim == nil {
		panic("stats: simulation is not set")
	}

	return b.sim
}
