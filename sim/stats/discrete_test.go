package stats

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"gonum.org/v1/gonum/stat"
)

var _ = Describe("Discrete", func() {
	var (
		mockCtrl *gomock.Controller
		d        *Discrete
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		sim := NewMockRegistrar(mockCtrl)
		sim.EXPECT().RegisterStatistic(gomock.Any())

		d = MakeBuilder().WithSimulation(sim).BuildDiscrete("wait")
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should be empty when built", func() {
		Expect(d.Name()).To(Equal("wait"))
		Expect(d.Count()).To(Equal(0))
		Expect(d.Mean()).To(Equal(0.0))
		Expect(d.SampleStdDev()).To(Equal(0.0))
	})

	It("should compute mean and standard deviation", func() {
		for _, x := range []float64{1, 2, 3, 4, 5} {
			d.Record(x)
		}

		Expect(d.Count()).To(Equal(5))
		Expect(d.Mean()).To(Equal(3.0))
		Expect(d.SampleStdDev()).To(BeNumerically("~", math.Sqrt(2.5), 1e-12))
	})

	It("should report no spread for a single observation", func() {
		d.Record(7)

		Expect(d.Mean()).To(Equal(7.0))
		Expect(d.SampleStdDev()).To(Equal(0.0))
	})

	It("should not go negative on constant data", func() {
		for i := 0; i < 1000; i++ {
			d.Record(0.1)
		}

		Expect(d.Variance()).To(BeNumerically(">=", 0))
	})

	It("should agree with gonum", func() {
		xs := []float64{3.2, 1.5, 8.8, 4.4, 0.7, 9.1, 2.6, 5.5}
		for _, x := range xs {
			d.Record(x)
		}

		mean, std := stat.MeanStdDev(xs, nil)

		Expect(d.Mean()).To(BeNumerically("~", mean, 1e-12))
		Expect(d.SampleStdDev()).To(BeNumerically("~", std, 1e-12))
	})

	It("should clear", func() {
		d.Record(1)
		d.Record(2)

		d.Clear()

		Expect(d.Count()).To(Equal(0))
		Expect(d.Mean()).To(Equal(0.0))

		d.Record(4)
		Expect(d.Mean()).To(Equal(4.0))
	})
})
