// Package stats provides the accumulators that models use to estimate
// long-run averages.
package stats

import (
	"github.com/sarchlab/eventkit/sim/naming"
	"github.com/sarchlab/eventkit/sim/timing"
)

// TimeWeighted accumulates the time integral of a step function, such as a
// queue length or the number of busy servers.
//
// Record must be called after the tracked quantity changes. The recorded value
// holds from the current time until the next Record.
type TimeWeighted struct {
	naming.NamedBase

	clock timing.TimeTeller

	area       float64
	lastValue  float64
	lastUpdate timing.VTimeInSec
	lastClear  timing.VTimeInSec
}

// Record closes the current step at the current time and starts a new step
// at value.
func (s *TimeWeighted) Record(value float64) {
	now := s.clock.Now()

	s.area += s.lastValue * (now - s.lastUpdate)
	s.lastUpdate = now
	s.lastValue = value
}

// Mean returns the time average since the last clear, including the open
// step. It is 0 if no time has passed since the last clear.
func (s *TimeWeighted) Mean() float64 {
	now := s.clock.Now()

	elapsed := now - s.lastClear
	if elapsed <= 0 {
		return 0
	}

	return (s.area + s.lastValue*(now-s.lastUpdate)) / elapsed
}

// LastValue returns the value of the open step.
func (s *TimeWeighted) LastValue() float64 {
	return s.lastValue
}

// Clear starts a new measurement period at the current time. The open step
// keeps its value.
func (s *TimeWeighted) Clear() {
	now := s.clock.Now()

	s.area = 0
	s.lastUpdate = now
	s.lastClear = now
}

// Reset clears the statistic and sets the open step to 0.
func (s *TimeWeighted) Reset() {
	s.Clear()
	s.lastValue = 0
}
