// Package simulation holds the state shared by everything in one replication:
// the clock, the event calendar, and the statistics and state holders that are
// reset between replications.
package simulation

import (
	"fmt"
	"math"

	"github.com/sarchlab/eventkit/sim/hooking"
	"github.com/sarchlab/eventkit/sim/timing"
)

// A Simulation is the context of one replication. It is not safe for
// concurrent use; run parallel replications on separate Simulations.
type Simulation struct {
	hooking.HookableBase

	now      timing.VTimeInSec
	calendar timing.Calendar
	stopped  bool

	stats     []Statistic
	statIndex map[string]Statistic

	holders     []StateHolder
	holderIndex map[string]StateHolder

	handlers map[timing.EventType]Handler
}

// NewSimulation creates a simulation at time 0 with an empty heap calendar.
func NewSimulation() *Simulation {
	return MakeBuilder().Build()
}

// Builder creates Simulations.
type Builder struct {
	calendar timing.Calendar
}

// MakeBuilder returns a Builder that uses a heap calendar.
func MakeBuilder() Builder {
	return Builder{}
}

// WithCalendar sets the calendar implementation. The calendar must be empty.
func (b Builder) WithCalendar(c timing.Calendar) Builder {
	b.calendar = c
	return b
}

// Build creates the simulation.
func (b Builder) Build() *Simulation {
	c := b.calendar
	if c == nil {
		c = timing.NewCalendar()
	}

	if c.Len() != 0 {
		panic("simulation: calendar must be empty at construction")
	}

	return &Simulation{
		calendar:    c,
		statIndex:   make(map[string]Statistic),
		holderIndex: make(map[string]StateHolder),
		handlers:    make(map[timing.EventType]Handler),
	}
}

// Now returns the current simulated time.
func (s *Simulation) Now() timing.VTimeInSec {
	return s.now
}

// Calendar returns the pending events.
func (s *Simulation) Calendar() timing.Calendar {
	return s.calendar
}

// Schedule creates an event delay time units from now and puts it on the
// calendar.
func (s *Simulation) Schedule(
	eventType timing.EventType,
	delay timing.VTimeInSec,
) *timing.EventNotice {
	return s.SchedulePlus(eventType, delay, nil)
}

// SchedulePlus is Schedule with a payload that the handler can recover with
// timing.PayloadAs.
func (s *Simulation) SchedulePlus(
	eventType timing.EventType,
	delay timing.VTimeInSec,
	payload any,
) *timing.EventNotice {
	if delay < 0 || math.IsNaN(delay) {
		panic(fmt.Sprintf("simulation: cannot schedule %q with delay %v",
			eventType, delay))
	}

	evt := timing.NewEventNotice(s.now+delay, eventType, payload)
	s.calendar.Schedule(evt)

	return evt
}

// AdvanceTo moves the clock forward. Moving it backwards panics.
func (s *Simulation) AdvanceTo(t timing.VTimeInSec) {
	if t < s.now || math.IsNaN(t) {
		panic(fmt.Sprintf("simulation: cannot move clock from %v back to %v",
			s.now, t))
	}

	s.now = t
}

// NextEvent removes the earliest event, advances the clock to its time and
// returns it. It returns nil and leaves the clock alone when nothing is
// pending.
func (s *Simulation) NextEvent() *timing.EventNotice {
	evt := s.calendar.RemoveEarliest()
	if evt == nil {
		return nil
	}

	s.AdvanceTo(evt.Time())

	return evt
}

// RegisterHandler sets the handler of an event type. Each type can have only
// one handler.
func (s *Simulation) RegisterHandler(eventType timing.EventType, h Handler) {
	if _, found := s.handlers[eventType]; found {
		panic(fmt.Sprintf("simulation: handler for %q already registered",
			eventType))
	}

	s.handlers[eventType] = h
}

// Run dispatches events in time order until the calendar is empty, a handler
// calls Stop, or a handler fails.
func (s *Simulation) Run() error {
	s.stopped = false

	for !s.stopped {
		evt := s.NextEvent()
		if evt == nil {
			return nil
		}

		if err := s.dispatch(evt); err != nil {
			return err
		}
	}

	return nil
}

func (s *Simulation) dispatch(evt *timing.EventNotice) error {
	h, found := s.handlers[evt.Type()]
	if !found {
		return fmt.Errorf("%w: %q at %v", ErrNoHandler, evt.Type(), evt.Time())
	}

	s.InvokeHook(hooking.HookCtx{
		Domain: s,
		Pos:    timing.HookPosBeforeEvent,
		Item:   evt,
	})

	if err := h.Handle(evt); err != nil {
		return fmt.Errorf("handling %q at %v: %w", evt.Type(), evt.Time(), err)
	}

	s.InvokeHook(hooking.HookCtx{
		Domain: s,
		Pos:    timing.HookPosAfterEvent,
		Item:   evt,
	})

	return nil
}

// Stop makes Run return after the current event. Pending events stay on the
// calendar.
func (s *Simulation) Stop() {
	s.stopped = true
}

// RegisterStatistic adds a statistic to the set cleared by ClearStatistics and
// reset by Reset. Registering the same statistic again does nothing.
// Registering a different statistic under a taken name panics.
func (s *Simulation) RegisterStatistic(stat Statistic) {
	name := stat.Name()

	if existing, found := s.statIndex[name]; found {
		if existing != stat {
			panic(fmt.Sprintf("simulation: statistic %q already registered", name))
		}

		return
	}

	s.statIndex[name] = stat
	s.stats = append(s.stats, stat)
}

// RegisterStateHolder adds a state holder to the set reset by Reset. The same
// rules as RegisterStatistic apply.
func (s *Simulation) RegisterStateHolder(holder StateHolder) {
	name := holder.Name()

	if existing, found := s.holderIndex[name]; found {
		if existing != holder {
			panic(fmt.Sprintf("simulation: state holder %q already registered",
				name))
		}

		return
	}

	s.holderIndex[name] = holder
	s.holders = append(s.holders, holder)
}

// Statistics returns the registered statistics in registration order.
func (s *Simulation) Statistics() []Statistic {
	return s.stats
}

// StateHolders returns the registered state holders in registration order.
func (s *Simulation) StateHolders() []StateHolder {
	return s.holders
}

// GetStatisticByName returns the statistic with the given name, or nil.
func (s *Simulation) GetStatisticByName(name string) Statistic {
	return s.statIndex[name]
}

// GetStateHolderByName returns the state holder with the given name, or nil.
func (s *Simulation) GetStateHolderByName(name string) StateHolder {
	return s.holderIndex[name]
}

// Reset prepares a new replication. The clock goes back to 0, pending events
// are dropped, every state holder is emptied, and every statistic is reset.
// State holders go first so that the values they record while emptying are
// wiped by the statistic reset.
func (s *Simulation) Reset() {
	s.now = 0
	s.stopped = false
	s.calendar.Clear()

	for _, h := range s.holders {
		h.ResetState()
	}

	for _, stat := range s.stats {
		stat.Reset()
	}
}

// ClearStatistics discards what the statistics have accumulated so far,
// leaving the clock, the calendar and the state holders alone. Models call it
// at the end of a warm-up period.
func (s *Simulation) ClearStatistics() {
	for _, stat := range s.stats {
		stat.Clear()
	}
}
