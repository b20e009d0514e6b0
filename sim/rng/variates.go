package rng

import "math"

// Every variate below consumes draws from the addressed stream only. The
// distribution parameters are not validated; malformed shapes produce whatever
// the formula gives.

// Exponential returns an exponential variate with the given mean.
func (g *Generator) Exponential(mean float64, stream int) float64 {
	return -math.Log(1-g.UniformUnit(stream)) * mean
}

// Uniform returns a variate uniformly distributed between low and high.
func (g *Generator) Uniform(low, high float64, stream int) float64 {
	return low + (high-low)*g.UniformUnit(stream)
}

// Triangular returns a triangular variate with minimum a, mode b and
// maximum c, by inverting the CDF.
func (g *Generator) Triangular(a, b, c float64, stream int) float64 {
	mode := (b - a) / (c - a)
	u := g.UniformUnit(stream)

	var t float64
	if u <= mode {
		t = math.Sqrt(mode * u)
	} else {
		t = 1 - math.Sqrt((1-mode)*(1-u))
	}

	return a + (c-a)*t
}

// Erlang returns the sum of m exponential variates, each with mean mean/m.
func (g *Generator) Erlang(m int, mean float64, stream int) float64 {
	phaseMean := mean / float64(m)

	sum := 0.0
	for i := 0; i < m; i++ {
		sum += g.Exponential(phaseMean, stream)
	}

	return sum
}

// Normal returns a normal variate using the polar method. It keeps drawing
// pairs until one falls inside the unit circle, about 1.27 pairs on average.
func (g *Generator) Normal(mean, variance float64, stream int) float64 {
	var v1, w float64
	for {
		v1 = 2*g.UniformUnit(stream) - 1
		v2 := 2*g.UniformUnit(stream) - 1
		w = v1*v1 + v2*v2

		if w > 0 && w <= 1 {
			break
		}
	}

	y := math.Sqrt(-2 * math.Log(w) / w)

	return mean + math.Sqrt(variance)*v1*y
}

// Lognormal returns a lognormal variate whose own mean and variance are
// meanPrime and variancePrime.
func (g *Generator) Lognormal(meanPrime, variancePrime float64, stream int) float64 {
	m2 := meanPrime * meanPrime
	mean := math.Log(m2 / math.Sqrt(m2+variancePrime))
	variance := math.Log(1 + variancePrime/m2)

	return math.Exp(g.Normal(mean, variance, stream))
}

// DiscreteEmpirical returns the smallest 1-based index i such that
// cdf[i-1] > U. The cdf is expected to be non-decreasing and end at 1. If it
// stops short of U, the last index is returned. An empty cdf panics.
func (g *Generator) DiscreteEmpirical(cdf []float64, stream int) int {
	if len(cdf) == 0 {
		panic("rng: empty cumulative distribution")
	}

	u := g.UniformUnit(stream)
	for i, p := range cdf {
		if u < p {
			return i + 1
		}
	}

	return len(cdf)
}
