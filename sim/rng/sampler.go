package rng

import (
	"fmt"
	"math"
)

// Sampler draws values from one distribution bound to one stream.
type Sampler interface {
	Sample() float64
}

// DistSpec describes a distribution in configuration files.
type DistSpec struct {
	// Type is one of exponential, uniform, triangular, erlang, normal,
	// lognormal, constant or empirical.
	Type string `yaml:"type"`

	// Stream is the generator stream the sampler draws from.
	Stream int `yaml:"stream"`

	// Params holds the named distribution parameters.
	Params map[string]float64 `yaml:"params,omitempty"`

	// CDF holds the cumulative probabilities of an empirical distribution.
	// Sampling returns 1-based indices into it.
	CDF []float64 `yaml:"cdf,omitempty"`
}

type exponentialSampler struct {
	gen    *Generator
	stream int
	mean   float64
}

func (s *exponentialSampler) Sample() float64 {
	return s.gen.Exponential(s.mean, s.stream)
}

type uniformSampler struct {
	gen       *Generator
	stream    int
	low, high float64
}

func (s *uniformSampler) Sample() float64 {
	return s.gen.Uniform(s.low, s.high, s.stream)
}

type triangularSampler struct {
	gen            *Generator
	stream         int
	min, mode, max float64
}

func (s *triangularSampler) Sample() float64 {
	return s.gen.Triangular(s.min, s.mode, s.max, s.stream)
}

type erlangSampler struct {
	gen    *Generator
	stream int
	phases int
	mean   float64
}

func (s *erlangSampler) Sample() float64 {
	return s.gen.Erlang(s.phases, s.mean, s.stream)
}

type normalSampler struct {
	gen            *Generator
	stream         int
	mean, variance float64
}

func (s *normalSampler) Sample() float64 {
	return s.gen.Normal(s.mean, s.variance, s.stream)
}

type lognormalSampler struct {
	gen            *Generator
	stream         int
	mean, variance float64
}

func (s *lognormalSampler) Sample() float64 {
	return s.gen.Lognormal(s.mean, s.variance, s.stream)
}

type constantSampler struct {
	value float64
}

func (s *constantSampler) Sample() float64 {
	return s.value
}

type empiricalSampler struct {
	gen    *Generator
	stream int
	cdf    []float64
}

func (s *empiricalSampler) Sample() float64 {
	return float64(s.gen.DiscreteEmpirical(s.cdf, s.stream))
}

// requireParam checks that all required keys exist in a params map.
func requireParam(params map[string]float64, keys ...string) error {
	for _, k := range keys {
		if _, ok := params[k]; !ok {
			return fmt.Errorf("distribution requires parameter %q", k)
		}
	}

	return nil
}

// NewSampler creates a Sampler from a DistSpec. Configuration mistakes are
// reported as errors rather than panics.
func NewSampler(spec DistSpec, gen *Generator) (Sampler, error) {
	if spec.Type != "constant" && !ValidStream(spec.Stream) {
		return nil, fmt.Errorf("%s distribution: stream %d out of range [1, %d]",
			spec.Type, spec.Stream, NumStreams)
	}

	if spec.Type != "constant" && gen == nil {
		return nil, fmt.Errorf("%s distribution: no generator", spec.Type)
	}

	p := spec.Params

	switch spec.Type {
	case "exponential":
		if err := requireParam(p, "mean"); err != nil {
			return nil, err
		}

		return &exponentialSampler{gen: gen, stream: spec.Stream, mean: p["mean"]}, nil

	case "uniform":
		if err := requireParam(p, "low", "high"); err != nil {
			return nil, err
		}

		if p["low"] > p["high"] {
			return nil, fmt.Errorf("uniform distribution: low %v above high %v",
				p["low"], p["high"])
		}

		return &uniformSampler{
			gen:    gen,
			stream: spec.Stream,
			low:    p["low"],
			high:   p["high"],
		}, nil

	case "triangular":
		if err := requireParam(p, "min", "mode", "max"); err != nil {
			return nil, err
		}

		if !(p["min"] <= p["mode"] && p["mode"] <= p["max"] && p["min"] < p["max"]) {
			return nil, fmt.Errorf("triangular distribution: need min <= mode <= max and min < max, got %v, %v, %v",
				p["min"], p["mode"], p["max"])
		}

		return &triangularSampler{
			gen:    gen,
			stream: spec.Stream,
			min:    p["min"],
			mode:   p["mode"],
			max:    p["max"],
		}, nil

	case "erlang":
		if err := requireParam(p, "phases", "mean"); err != nil {
			return nil, err
		}

		phases := p["phases"]
		if phases < 1 || phases != math.Trunc(phases) {
			return nil, fmt.Errorf("erlang distribution: phases must be a positive integer, got %v", phases)
		}

		return &erlangSampler{
			gen:    gen,
			stream: spec.Stream,
			phases: int(phases),
			mean:   p["mean"],
		}, nil

	case "normal":
		if err := requireParam(p, "mean", "variance"); err != nil {
			return nil, err
		}

		if p["variance"] < 0 {
			return nil, fmt.Errorf("normal distribution: negative variance %v", p["variance"])
		}

		return &normalSampler{
			gen:      gen,
			stream:   spec.Stream,
			mean:     p["mean"],
			variance: p["variance"],
		}, nil

	case "lognormal":
		if err := requireParam(p, "mean", "variance"); err != nil {
			return nil, err
		}

		if p["mean"] <= 0 || p["variance"] < 0 {
			return nil, fmt.Errorf("lognormal distribution: need mean > 0 and variance >= 0, got %v, %v",
				p["mean"], p["variance"])
		}

		return &lognormalSampler{
			gen:      gen,
			stream:   spec.Stream,
			mean:     p["mean"],
			variance: p["variance"],
		}, nil

	case "constant":
		if err := requireParam(p, "value"); err != nil {
			return nil, err
		}

		return &constantSampler{value: p["value"]}, nil

	case "empirical":
		if err := checkCDF(spec.CDF); err != nil {
			return nil, fmt.Errorf("empirical distribution: %w", err)
		}

		return &empiricalSampler{gen: gen, stream: spec.Stream, cdf: spec.CDF}, nil

	default:
		return nil, fmt.Errorf("unknown distribution type %q", spec.Type)
	}
}

func checkCDF(cdf []float64) error {
	if len(cdf) == 0 {
		return fmt.Errorf("cdf has no entries")
	}

	prev := 0.0
	for i, p := range cdf {
		if p < prev {
			return fmt.Errorf("cdf decreases at index %d", i)
		}

		prev = p
	}

	if math.Abs(prev-1) > 1e-9 {
		return fmt.Errorf("cdf ends at %v instead of 1", prev)
	}

	return nil
}
