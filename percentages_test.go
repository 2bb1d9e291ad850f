package eigenrank

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/floats"
)

var _ = Describe("Percentages", func() {

	DescribeTable("rescales components to sum to 100",
		func(eigenvector, expected []float64) {
			percentages, err := Percentages(eigenvector)
			Expect(err).To(Succeed())
			Expect(percentages).To(HaveLen(len(expected)))
			for i := range expected {
				Expect(percentages[i]).To(BeNumerically("~", expected[i], 1e-9))
			}
			Expect(floats.Sum(percentages)).To(BeNumerically("~", 100, 1e-6))
		},
		Entry("uniform", []float64{0.5, 0.5, 0.5, 0.5}, []float64{25, 25, 25, 25}),
		Entry("one zero component", []float64{3, 0, 4, 1}, []float64{37.5, 0, 50, 12.5}),
		Entry("a single team", []float64{1, 0, 0, 0}, []float64{100, 0, 0, 0}),
	)

	// A sign-flipped vector is not corrected.
	It("passes negative components through unclamped", func() {
		percentages, err := Percentages([]float64{-1, 2, 1})
		Expect(err).To(Succeed())
		Expect(percentages).To(Equal([]float64{-50, 100, 50}))
	})

	It("fails on a zero sum", func() {
		_, err := Percentages([]float64{1, -1, 0, 0})
		Expect(err).To(MatchError(ErrDegenerateVector))

		_, err = Percentages([]float64{0, 0, 0, 0})
		Expect(err).To(MatchError(ErrDegenerateVector))
	})

	It("does not modify the eigenvector", func() {
		eigenvector := []float64{1, 2, 3, 4}
		_, err := Percentages(eigenvector)
		Expect(err).To(Succeed())
		Expect(eigenvector).To(Equal([]float64{1, 2, 3, 4}))
	})

})
