package rng

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NewSampler", func() {
	var g *Generator

	BeforeEach(func() {
		g = NewGenerator()
	})

	It("should draw the same values as the generator methods", func() {
		s, err := NewSampler(DistSpec{
			Type:   "exponential",
			Stream: 1,
			Params: map[string]float64{"mean": 2},
		}, g)

		Expect(err).NotTo(HaveOccurred())
		Expect(s.Sample()).To(BeNumerically("~", 1.0234116703999379, 1e-12))
	})

	DescribeTable("valid specs",
		func(spec DistSpec) {
			s, err := NewSampler(spec, g)
			Expect(err).NotTo(HaveOccurred())
			Expect(s).NotTo(BeNil())
			s.Sample()
		},
		Entry("uniform", DistSpec{Type: "uniform", Stream: 2,
			Params: map[string]float64{"low": 1, "high": 3}}),
		Entry("triangular", DistSpec{Type: "triangular", Stream: 3,
			Params: map[string]float64{"min": 0, "mode": 1, "max": 4}}),
		Entry("erlang", DistSpec{Type: "erlang", Stream: 4,
			Params: map[string]float64{"phases": 3, "mean": 6}}),
		Entry("normal", DistSpec{Type: "normal", Stream: 5,
			Params: map[string]float64{"mean": 10, "variance": 4}}),
		Entry("lognormal", DistSpec{Type: "lognormal", Stream: 6,
			Params: map[string]float64{"mean": 5, "variance": 1}}),
		Entry("empirical", DistSpec{Type: "empirical", Stream: 7,
			CDF: []float64{0.25, 0.5, 1}}),
	)

	It("should return the constant without a generator", func() {
		s, err := NewSampler(DistSpec{
			Type:   "constant",
			Params: map[string]float64{"value": 1.5},
		}, nil)

		Expect(err).NotTo(HaveOccurred())
		Expect(s.Sample()).To(Equal(1.5))
		Expect(s.Sample()).To(Equal(1.5))
	})

	It("should return empirical indices as floats", func() {
		s, err := NewSampler(DistSpec{
			Type:   "empirical",
			Stream: 1,
			CDF:    []float64{0.2, 0.5, 1.0},
		}, g)

		Expect(err).NotTo(HaveOccurred())
		Expect(s.Sample()).To(Equal(2.0))
		Expect(s.Sample()).To(Equal(3.0))
	})

	DescribeTable("invalid specs",
		func(spec DistSpec) {
			s, err := NewSampler(spec, g)
			Expect(err).To(HaveOccurred())
			Expect(s).To(BeNil())
		},
		Entry("unknown type", DistSpec{Type: "weibull", Stream: 1}),
		Entry("stream zero", DistSpec{Type: "exponential", Stream: 0,
			Params: map[string]float64{"mean": 1}}),
		Entry("stream too large", DistSpec{Type: "exponential", Stream: 101,
			Params: map[string]float64{"mean": 1}}),
		Entry("missing mean", DistSpec{Type: "exponential", Stream: 1}),
		Entry("inverted uniform", DistSpec{Type: "uniform", Stream: 1,
			Params: map[string]float64{"low": 3, "high": 1}}),
		Entry("mode outside range", DistSpec{Type: "triangular", Stream: 1,
			Params: map[string]float64{"min": 0, "mode": 5, "max": 4}}),
		Entry("zero-width triangle", DistSpec{Type: "triangular", Stream: 1,
			Params: map[string]float64{"min": 1, "mode": 1, "max": 1}}),
		Entry("fractional phases", DistSpec{Type: "erlang", Stream: 1,
			Params: map[string]float64{"phases": 2.5, "mean": 1}}),
		Entry("negative variance", DistSpec{Type: "normal", Stream: 1,
			Params: map[string]float64{"mean": 0, "variance": -1}}),
		Entry("non-positive lognormal mean", DistSpec{Type: "lognormal", Stream: 1,
			Params: map[string]float64{"mean": 0, "variance": 1}}),
		Entry("empty cdf", DistSpec{Type: "empirical", Stream: 1}),
		Entry("decreasing cdf", DistSpec{Type: "empirical", Stream: 1,
			CDF: []float64{0.5, 0.4, 1}}),
		Entry("cdf short of one", DistSpec{Type: "empirical", Stream: 1,
			CDF: []float64{0.5, 0.9}}),
	)

	It("should reject a missing generator", func() {
		_, err := NewSampler(DistSpec{Type: "exponential", Stream: 1,
			Params: map[string]float64{"mean": 1}}, nil)

		Expect(err).To(MatchError(ContainSubstring("no generator")))
	})
})
