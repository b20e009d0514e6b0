package queueing

import (
	"log"

	"github.com/sarchlab/eventkit/sim/hooking"
	"github.com/sarchlab/eventkit/sim/naming"
	"github.com/sarchlab/eventkit/sim/stats"
)

// HookPosQueueAdd marks when an entity joins the tail of a queue.
var HookPosQueueAdd = &hooking.HookPos{Name: "Queue Add"}

// HookPosQueueRemove marks when an entity leaves the head of a queue.
var HookPosQueueRemove = &hooking.HookPos{Name: "Queue Remove"}

// QueueBuilder is a builder for Queue.
type QueueBuilder struct {
	simulation Simulation
}

// MakeQueueBuilder returns a QueueBuilder with no simulation set.
func MakeQueueBuilder() QueueBuilder {
	return QueueBuilder{}
}

// WithSimulation defines the simulation the queue belongs to.
func (b QueueBuilder) WithSimulation(sim Simulation) QueueBuilder {
	b.simulation = sim
	return b
}

// Build creates an empty queue. Its length statistic is registered under
// name + ".Length".
func (b QueueBuilder) Build(name string) *Queue {
	if b.simulation == nil {
		log.Panic("queue " + name + " has no simulation")
	}

	q := &Queue{
		NamedBase: naming.MakeNamedBase(name),
		length: stats.MakeBuilder().
			WithSimulation(b.simulation).
			BuildTimeWeighted(name + ".Length"),
	}

	b.simulation.RegisterStateHolder(q)

	return q
}

// A Queue is a first-in first-out line of entities.
type Queue struct {
	hooking.HookableBase
	naming.NamedBase

	elements []any
	length   *stats.TimeWeighted
}

// Add appends an entity to the tail. Nil entities are not allowed, so that a
// nil from Remove always means the queue was empty.
func (q *Queue) Add(e any) {
	if e == nil {
		log.Panic("cannot add nil to queue " + q.Name())
	}

	q.elements = append(q.elements, e)
	q.length.Record(float64(len(q.elements)))

	if q.NumHooks() > 0 {
		q.InvokeHook(hooking.HookCtx{
			Domain: q,
			Pos:    HookPosQueueAdd,
			Item:   e,
		})
	}
}

// Remove takes the entity at the head, or returns nil if the queue is empty.
func (q *Queue) Remove() any {
	if len(q.elements) == 0 {
		return nil
	}

	e := q.elements[0]
	q.elements[0] = nil
	q.elements = q.elements[1:]
	q.length.Record(float64(len(q.elements)))

	if q.NumHooks() > 0 {
		q.InvokeHook(hooking.HookCtx{
			Domain: q,
			Pos:    HookPosQueueRemove,
			Item:   e,
		})
	}

	return e
}

// Peek returns the entity at the head without removing it, or nil.
func (q *Queue) Peek() any {
	if len(q.elements) == 0 {
		return nil
	}

	return q.elements[0]
}

// Length returns the number of waiting entities.
func (q *Queue) Length() int {
	return len(q.elements)
}

// MeanLength returns the time-average length.
func (q *Queue) MeanLength() float64 {
	return q.length.Mean()
}

// LengthStatistic returns the statistic tracking the length.
func (q *Queue) LengthStatistic() *stats.TimeWeighted {
	return q.length
}

// ResetState drops every waiting entity.
func (q *Queue) ResetState() {
	q.elements = nil
	q.length.Record(0)
}
