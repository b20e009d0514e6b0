package stats

import (
	"math"

	"github.com/sarchlab/eventkit/sim/naming"
)

// Discrete accumulates independent observations, such as the waiting time of
// each customer.
type Discrete struct {
	naming.NamedBase

	sum   float64
	sumSq float64
	count int
}

// Record adds an observation.
func (s *Discrete) Record(value float64) {
	s.sum += value
	s.sumSq += value * value
	s.count++
}

// Count returns the number of observations since the last clear.
func (s *Discrete) Count() int {
	return s.count
}

// Mean returns the sample mean, or 0 without observations.
func (s *Discrete) Mean() float64 {
	if s.count == 0 {
		return 0
	}

	return s.sum / float64(s.count)
}

// Variance returns the unbiased sample variance, or 0 with fewer than two
// observations.
func (s *Discrete) Variance() float64 {
	if s.count <= 1 {
		return 0
	}

	n := float64(s.count)
	v := (s.sumSq - s.sum*s.sum/n) / (n - 1)

	// Cancellation can leave a tiny negative value for near-constant data.
	if v < 0 {
		return 0
	}

	return v
}

// SampleStdDev returns the square root of Variance.
func (s *Discrete) SampleStdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Clear discards every observation.
func (s *Discrete) Clear() {
	s.sum = 0
	s.sumSq = 0
	s.count = 0
}

// Reset is the same as Clear. Discrete statistics carry nothing across a cut.
func (s *Discrete) Reset() {
	s.Clear()
}
