package queueing

import (
	"fmt"
	"log"

	"github.com/sarchlab/eventkit/sim/hooking"
	"github.com/sarchlab/eventkit/sim/naming"
	"github.com/sarchlab/eventkit/sim/stats"
)

// HookPosResourceSeize marks a successful seize. The detail is the number of
// units.
var HookPosResourceSeize = &hooking.HookPos{Name: "Resource Seize"}

// HookPosResourceFree marks a successful free. The detail is the number of
// units.
var HookPosResourceFree = &hooking.HookPos{Name: "Resource Free"}

// ResourceBuilder is a builder for Resource.
type ResourceBuilder struct {
	simulation Simulation
	capacity   int
}

// MakeResourceBuilder returns a ResourceBuilder with a capacity of 1.
func MakeResourceBuilder() ResourceBuilder {
	return ResourceBuilder{capacity: 1}
}

// WithSimulation defines the simulation the resource belongs to.
func (b ResourceBuilder) WithSimulation(sim Simulation) ResourceBuilder {
	b.simulation = sim
	return b
}

// WithCapacity sets the number of units.
func (b ResourceBuilder) WithCapacity(capacity int) ResourceBuilder {
	b.capacity = capacity
	return b
}

// Build creates an idle resource. Its busy statistic is registered under
// name + ".Busy".
func (b ResourceBuilder) Build(name string) *Resource {
	if b.simulation == nil {
		log.Panic("resource " + name + " has no simulation")
	}

	mustNotBeNegative("capacity", b.capacity)

	r := &Resource{
		NamedBase: naming.MakeNamedBase(name),
		capacity:  b.capacity,
		busyStat: stats.MakeBuilder().
			WithSimulation(b.simulation).
			BuildTimeWeighted(name + ".Busy"),
	}

	b.simulation.RegisterStateHolder(r)

	return r
}

// A Resource is a pool of identical units. Seize and Free never block. A
// request that cannot be met returns false and changes nothing, and the model
// decides whether to wait and retry.
type Resource struct {
	hooking.HookableBase
	naming.NamedBase

	capacity int
	busy     int
	busyStat *stats.TimeWeighted
}

// Seize takes units if that keeps the busy count within capacity.
func (r *Resource) Seize(units int) bool {
	mustNotBeNegative("units", units)

	if units > r.capacity-r.busy {
		return false
	}

	r.busy += units
	r.busyStat.Record(float64(r.busy))

	if r.NumHooks() > 0 {
		r.InvokeHook(hooking.HookCtx{
			Domain: r,
			Pos:    HookPosResourceSeize,
			Detail: units,
		})
	}

	return true
}

// Free returns units if at least that many are busy.
func (r *Resource) Free(units int) bool {
	mustNotBeNegative("units", units)

	if units > r.busy {
		return false
	}

	r.busy -= units
	r.busyStat.Record(float64(r.busy))

	if r.NumHooks() > 0 {
		r.InvokeHook(hooking.HookCtx{
			Domain: r,
			Pos:    HookPosResourceFree,
			Detail: units,
		})
	}

	return true
}

// Busy returns the number of units in use.
func (r *Resource) Busy() int {
	return r.busy
}

// Capacity returns the number of units.
func (r *Resource) Capacity() int {
	return r.capacity
}

// Available returns how many more units can be seized. It is 0 when the
// capacity has been lowered below the busy count.
func (r *Resource) Available() int {
	if r.busy >= r.capacity {
		return 0
	}

	return r.capacity - r.busy
}

// SetCapacity changes the number of units. Units already busy stay busy even
// if the new capacity is smaller.
func (r *Resource) SetCapacity(capacity int) {
	mustNotBeNegative("capacity", capacity)
	r.capacity = capacity
}

// MeanBusy returns the time-average number of busy units.
func (r *Resource) MeanBusy() float64 {
	return r.busyStat.Mean()
}

// BusyStatistic returns the statistic tracking the busy count.
func (r *Resource) BusyStatistic() *stats.TimeWeighted {
	return r.busyStat
}

// ResetState frees every unit. The capacity is kept.
func (r *Resource) ResetState() {
	r.busy = 0
	r.busyStat.Record(0)
}

func mustNotBeNegative(what string, n int) {
	if n < 0 {
		log.Panic(fmt.Sprintf("negative %s %d", what, n))
	}
}
